package payslip

import (
	"context"
	"log/slog"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
)

type PayslipServiceImpl struct {
	logger *slog.Logger
}

func NewPayslipService(logger *slog.Logger) payslip.PayslipService {
	return &PayslipServiceImpl{logger: logger}
}

// Generate runs the whole engine for one period: normalize, filter, group by
// employee and day, apply the overtime cap, summarize, compute amounts.
// Purely synchronous and deterministic; every call owns its own aggregation
// state, so concurrent invocations never share maps.
func (s *PayslipServiceImpl) Generate(ctx context.Context, rows []attendance.RawRow, req payslip.GeneratePayslipsRequest) ([]payslip.Payslip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period := req.Period()

	records := make([]attendance.Record, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec, ok := NormalizeRow(row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		s.logger.DebugContext(ctx, "dropped rows without a start day",
			slog.Int("dropped", dropped), slog.Int("total", len(rows)))
	}

	filtered := FilterPeriod(records, period)
	if len(filtered) == 0 {
		return nil, payslip.ErrNoRecordsInPeriod
	}

	employees := AggregateDays(filtered)

	slips := make([]payslip.Payslip, 0, len(employees))
	for _, emp := range employees {
		summary := Summarize(emp)
		slips = append(slips, payslip.Payslip{
			EmployeeName: emp.EmployeeName,
			Period:       period,
			Summary:      summary,
			Breakdown:    Compute(summary),
		})
	}

	s.logger.InfoContext(ctx, "generated payslips",
		slog.String("period", period.Key()),
		slog.Int("employees", len(slips)),
		slog.Int("records", len(filtered)))

	return slips, nil
}
