package report

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/cantiere-paghe/payslip-backend-go/internal/fixtures"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	storage storage.FileStorage
}

func NewReportService(fileStorage storage.FileStorage) payslip.ReportService {
	return &ReportServiceImpl{storage: fileStorage}
}

func (s *ReportServiceImpl) RenderSlip(p payslip.Payslip) ([]byte, error) {
	data, err := renderSlipPDF(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", payslip.ErrSlipRenderFailed, p.EmployeeName, err)
	}
	return data, nil
}

func (s *ReportServiceImpl) StoreSlip(ctx context.Context, p payslip.Payslip) (string, error) {
	data, err := s.RenderSlip(p)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("payslips/%s/%s", uuid.New().String(), s.SlipFileName(p))
	stored, err := s.storage.Upload(ctx, bytes.NewReader(data), path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("store payslip: %w", err)
	}

	return s.storage.GetURL(ctx, stored, 0*time.Second)
}

// BuildArchive bundles one rendered document per employee into a single zip,
// the same shape the download-all flow of the original tool produced.
func (s *ReportServiceImpl) BuildArchive(slips []payslip.Payslip) ([]byte, string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range slips {
		data, err := s.RenderSlip(p)
		if err != nil {
			zw.Close()
			return nil, "", err
		}

		entry, err := zw.Create(s.SlipFileName(p))
		if err != nil {
			zw.Close()
			return nil, "", fmt.Errorf("%w: %v", payslip.ErrArchiveBuildFailed, err)
		}
		if _, err := entry.Write(data); err != nil {
			zw.Close()
			return nil, "", fmt.Errorf("%w: %v", payslip.ErrArchiveBuildFailed, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", payslip.ErrArchiveBuildFailed, err)
	}

	name := "archive.zip"
	if len(slips) > 0 {
		name = ArchiveFileName(slips[0].Period)
	}
	return buf.Bytes(), name, nil
}

func (s *ReportServiceImpl) SlipFileName(p payslip.Payslip) string {
	return fmt.Sprintf("%s_busta_paga_%s_%s.pdf",
		sanitizeFileName(p.EmployeeName),
		fixtures.MonthName(p.Period.Month),
		p.Period.Year)
}

func ArchiveFileName(period payslip.Period) string {
	return fmt.Sprintf("buste_paga_%s_%s.zip", fixtures.MonthName(period.Month), period.Year)
}

// sanitizeFileName keeps employee names usable as file names.
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "..", "-")
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		return "dipendente"
	}
	return cleaned
}
