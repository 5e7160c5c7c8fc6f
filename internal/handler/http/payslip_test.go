package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/storage"
	payslipService "github.com/cantiere-paghe/payslip-backend-go/internal/service/payslip"
	reportService "github.com/cantiere-paghe/payslip-backend-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "GIORNO INIZIO,NOME DIPENDENTE,MIN. ORD. VAL,MIN. STRAORD. VAL,POO,POS,PBP,KM Auto Personale,KM Auto Aziendale\n" +
	"15-05-2024,Mario Rossi,480,0,10,12,7,30,0\n" +
	"16-05-2024,Mario Rossi,300,0,10,12,7,0,0\n" +
	"15-05-2024,Aldini Piera,240,0,9,11,7,0,0\n"

func testHandler(t *testing.T) PayslipHandler {
	t.Helper()
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPayslipHandler(
		payslipService.NewPayslipService(logger),
		reportService.NewReportService(local),
	)
}

func multipartRequest(t *testing.T, target, month, year, csv string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	require.NoError(t, mw.WriteField("month", month))
	require.NoError(t, mw.WriteField("year", year))
	fw, err := mw.CreateFormFile("file", "presenze.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestGenerateHandler_ReturnsOrderedPayslips(t *testing.T) {
	h := testHandler(t)
	rr := httptest.NewRecorder()

	h.Generate(rr, multipartRequest(t, "/api/v1/payslips/generate", "05", "2024", testCSV))

	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			EmployeeName string `json:"employee_name"`
			MonthName    string `json:"month_name"`
			SlipURL      string `json:"slip_url"`
			Breakdown    struct {
				OrdinaryAmount string `json:"ordinary_amount"`
				TotalPayable   string `json:"total_payable"`
			} `json:"breakdown"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Aldini Piera", envelope.Data[0].EmployeeName)
	assert.Equal(t, "Mario Rossi", envelope.Data[1].EmployeeName)
	assert.Equal(t, "Maggio", envelope.Data[0].MonthName)
	assert.Equal(t, "36.00", envelope.Data[0].Breakdown.OrdinaryAmount)
	assert.NotEmpty(t, envelope.Data[0].SlipURL)

	// 13h at 10/h, one meal-voucher day at 7 and 30 personal km at 0.37.
	assert.Equal(t, "130.00", envelope.Data[1].Breakdown.OrdinaryAmount)
	assert.Equal(t, "148.10", envelope.Data[1].Breakdown.TotalPayable)
}

func TestGenerateHandler_ValidationFailure(t *testing.T) {
	h := testHandler(t)
	rr := httptest.NewRecorder()

	h.Generate(rr, multipartRequest(t, "/api/v1/payslips/generate", "13", "2024", testCSV))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
}

func TestGenerateHandler_NoRecordsInPeriod(t *testing.T) {
	h := testHandler(t)
	rr := httptest.NewRecorder()

	h.Generate(rr, multipartRequest(t, "/api/v1/payslips/generate", "01", "2019", testCSV))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGenerateHandler_MissingFile(t *testing.T) {
	h := testHandler(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("month", "05"))
	require.NoError(t, mw.WriteField("year", "2024"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payslips/generate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestArchiveHandler_StreamsZip(t *testing.T) {
	h := testHandler(t)
	rr := httptest.NewRecorder()

	h.Archive(rr, multipartRequest(t, "/api/v1/payslips/archive", "05", "2024", testCSV))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/zip", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "buste_paga_Maggio_2024.zip")
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("PK")), "expected a zip payload")
}

func TestMonthsHandler_ReturnsStaticTable(t *testing.T) {
	h := testHandler(t)
	rr := httptest.NewRecorder()

	h.Months(rr, httptest.NewRequest(http.MethodGet, "/api/v1/months", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Gennaio")
	assert.Contains(t, rr.Body.String(), "Dicembre")
}
