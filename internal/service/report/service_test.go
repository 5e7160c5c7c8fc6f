package report

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlip(name string) payslip.Payslip {
	return payslip.Payslip{
		EmployeeName: name,
		Period:       payslip.Period{Month: "05", Year: "2024"},
		Summary: payslip.EmployeeSummary{
			EmployeeName: name,
			DayRows: []attendance.DayAggregate{
				{
					Day:          "15-05-2024",
					OrdinaryTime: "\n5 ore e 0 minuti\n3 ore e 0 minuti",
					SiteName:     "\nCantiere Nord\nCantiere Sud",
					PersonalKm:   30,
				},
			},
		},
		Breakdown: payslip.PayBreakdown{
			OrdinaryAmount:     80,
			TotalPayable:       102.2,
			TotalOrdinaryHours: 8,
			TotalKm:            30,
			MileageAmount:      11.1,
		},
	}
}

func TestRenderSlip_ProducesPDF(t *testing.T) {
	svc := NewReportService(nil)

	data, err := svc.RenderSlip(testSlip("Mario Rossi"))
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected a PDF header")
}

func TestBuildArchive_BundlesOneDocumentPerEmployee(t *testing.T) {
	svc := NewReportService(nil)

	data, name, err := svc.BuildArchive([]payslip.Payslip{
		testSlip("Mario Rossi"),
		testSlip("Aldini Piera"),
	})
	require.NoError(t, err)
	assert.Equal(t, "buste_paga_Maggio_2024.zip", name)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "Mario Rossi_busta_paga_Maggio_2024.pdf", zr.File[0].Name)
	assert.Equal(t, "Aldini Piera_busta_paga_Maggio_2024.pdf", zr.File[1].Name)
}

func TestStoreSlip_WritesThroughStorageAndReturnsURL(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)
	svc := NewReportService(local)

	url, err := svc.StoreSlip(context.Background(), testSlip("Mario Rossi"))
	require.NoError(t, err)

	assert.Contains(t, url, "http://localhost:8080/files/payslips/")
	assert.Contains(t, url, "Mario Rossi_busta_paga_Maggio_2024.pdf")
}

func TestSlipFileName_SanitizesEmployeeName(t *testing.T) {
	svc := NewReportService(nil)

	name := svc.SlipFileName(testSlip("Ma/rio:Rossi"))

	assert.Equal(t, "Ma-rio-Rossi_busta_paga_Maggio_2024.pdf", name)
}
