package payslip

import (
	"context"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
)

// PayslipService runs the attendance aggregation and pay computation engine
// for one period. Each call owns its aggregation state; results never
// persist across runs.
type PayslipService interface {
	Generate(ctx context.Context, rows []attendance.RawRow, req GeneratePayslipsRequest) ([]Payslip, error)
}

// ReportService renders computed payslips into documents and bundles them.
type ReportService interface {
	// RenderSlip renders one payslip PDF in memory.
	RenderSlip(p Payslip) ([]byte, error)

	// StoreSlip renders one payslip and writes it through the storage
	// backend, returning a retrieval URL.
	StoreSlip(ctx context.Context, p Payslip) (string, error)

	// BuildArchive renders every payslip and zips them into one archive,
	// returning the archive bytes and its download filename.
	BuildArchive(slips []Payslip) ([]byte, string, error)

	// SlipFileName is the per-employee document name inside the archive.
	SlipFileName(p Payslip) string
}
