package http

import (
	"fmt"
	"net/http"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/cantiere-paghe/payslip-backend-go/internal/fixtures"
	"github.com/cantiere-paghe/payslip-backend-go/internal/handler/http/response"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/tabular"
)

const maxUploadBytes = 32 << 20

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Months(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
	reportService  payslip.ReportService
}

func NewPayslipHandler(payslipService payslip.PayslipService, reportService payslip.ReportService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
		reportService:  reportService,
	}
}

// Generate runs one full computation for the uploaded file and period and
// returns the structured per-employee results, each with a stored-document
// URL. Nothing survives the request besides the rendered documents.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	rows, req, ok := h.parseGenerateRequest(w, r)
	if !ok {
		return
	}

	slips, err := h.payslipService.Generate(r.Context(), rows, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]payslip.PayslipResponse, 0, len(slips))
	for _, p := range slips {
		url, err := h.reportService.StoreSlip(r.Context(), p)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		results = append(results, payslip.NewPayslipResponse(p, fixtures.MonthName(p.Period.Month), url))
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Generated %d payslips", len(results)), results)
}

// Archive streams one zip bundling every employee's rendered payslip.
func (h *payslipHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	rows, req, ok := h.parseGenerateRequest(w, r)
	if !ok {
		return
	}

	slips, err := h.payslipService.Generate(r.Context(), rows, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, name, err := h.reportService.BuildArchive(slips)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(data)
}

// Months exposes the static month-name table the period selector uses.
func (h *payslipHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	response.Success(w, fixtures.MonthNames)
}

func (h *payslipHandlerImpl) parseGenerateRequest(w http.ResponseWriter, r *http.Request) ([]attendance.RawRow, payslip.GeneratePayslipsRequest, bool) {
	var req payslip.GeneratePayslipsRequest

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart request body", nil)
		return nil, req, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Attendance file is required", nil)
		return nil, req, false
	}
	defer file.Close()

	rows, err := tabular.ReadRows(file)
	if err != nil {
		response.HandleError(w, err)
		return nil, req, false
	}

	req.Month = r.FormValue("month")
	req.Year = r.FormValue("year")
	return rows, req, true
}
