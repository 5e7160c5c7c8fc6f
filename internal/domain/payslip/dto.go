package payslip

import (
	"math"
	"strings"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type GeneratePayslipsRequest struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a 2-digit month between 01 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a 4-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *GeneratePayslipsRequest) Period() Period {
	return Period{Month: r.Month, Year: r.Year}
}

// ========== RESPONSE DTOs ==========

type DayRowResponse struct {
	Day          string   `json:"day"`
	OrdinaryTime []string `json:"ordinary_time"`
	OvertimeTime []string `json:"overtime_time"`
	SiteName     []string `json:"site_name"`
	Destination  []string `json:"destination"`
	Notes        []string `json:"notes"`
	PersonalKm   int      `json:"personal_km"`
	CompanyKm    int      `json:"company_km"`
}

type SummaryResponse struct {
	OrdinaryHours    string `json:"ordinary_hours"`
	OvertimeHours    string `json:"overtime_hours"`
	BankedHours      string `json:"banked_hours"`
	TotalKm          string `json:"total_km"`
	MealVoucherCount string `json:"meal_voucher_total"`
}

type BreakdownResponse struct {
	OrdinaryAmount       string `json:"ordinary_amount"`
	OvertimeAmount       string `json:"overtime_amount"`
	BankedOvertimeAmount string `json:"banked_overtime_amount"`
	MealVoucherAmount    string `json:"meal_voucher_amount"`
	MileageAmount        string `json:"mileage_amount"`
	ExtraAmount          string `json:"extra_amount"`
	TotalPayable         string `json:"total_payable"`
}

type PayslipResponse struct {
	EmployeeName string           `json:"employee_name"`
	Month        string           `json:"month"`
	MonthName    string           `json:"month_name"`
	Year         string           `json:"year"`
	Days         []DayRowResponse `json:"days"`
	Summary      SummaryResponse  `json:"summary"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	SlipURL      string           `json:"slip_url,omitempty"`
}

func NewPayslipResponse(p Payslip, monthName, slipURL string) PayslipResponse {
	days := make([]DayRowResponse, 0, len(p.Summary.DayRows))
	for _, d := range p.Summary.DayRows {
		days = append(days, DayRowResponse{
			Day:          d.Day,
			OrdinaryTime: MergedLines(d.OrdinaryTime),
			OvertimeTime: MergedLines(d.OvertimeTime),
			SiteName:     MergedLines(d.SiteName),
			Destination:  MergedLines(d.Destination),
			Notes:        MergedLines(d.Notes),
			PersonalKm:   d.PersonalKm,
			CompanyKm:    d.CompanyKm,
		})
	}

	return PayslipResponse{
		EmployeeName: p.EmployeeName,
		Month:        p.Period.Month,
		MonthName:    monthName,
		Year:         p.Period.Year,
		Days:         days,
		Summary: SummaryResponse{
			OrdinaryHours:    Money(p.Breakdown.TotalOrdinaryHours),
			OvertimeHours:    Money(p.Breakdown.TotalOvertimeHours),
			BankedHours:      Money(p.Breakdown.BankedOvertimeHours),
			TotalKm:          Money(p.Breakdown.TotalKm),
			MealVoucherCount: Money(p.Summary.MealVoucherTotal),
		},
		Breakdown: BreakdownResponse{
			OrdinaryAmount:       Money(p.Breakdown.OrdinaryAmount),
			OvertimeAmount:       Money(p.Breakdown.OvertimeAmount),
			BankedOvertimeAmount: Money(p.Breakdown.BankedOvertimeAmount),
			MealVoucherAmount:    Money(p.Breakdown.MealVoucherAmount),
			MileageAmount:        Money(p.Breakdown.MileageAmount),
			ExtraAmount:          Money(p.Breakdown.ExtraAmount),
			TotalPayable:         Money(p.Breakdown.TotalPayable),
		},
		SlipURL: slipURL,
	}
}

// Money renders a monetary or hour figure with exactly two decimals. This is
// the only place amounts get rounded; engine math stays at full precision.
// Non-finite values render as zero, matching the engine's degradation rule.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// MergedLines splits a merged display field back into its per-record values.
// Merged fields carry a leading separator before every value, first included.
func MergedLines(s string) []string {
	s = strings.TrimPrefix(s, attendance.MergeSeparator)
	if s == "" {
		return nil
	}
	return strings.Split(s, attendance.MergeSeparator)
}
