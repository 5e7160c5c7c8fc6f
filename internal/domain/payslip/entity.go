package payslip

import (
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
)

// Period selects which attendance records feed one generation run.
type Period struct {
	Month string // 2-digit, "01".."12"
	Year  string // 4-digit
}

// Key is the month-year segment a matching start day must contain.
func (p Period) Key() string {
	return p.Month + "-" + p.Year
}

// EmployeeSummary folds all of one employee's day aggregates for a period.
type EmployeeSummary struct {
	EmployeeName string

	TotalOrdinaryMinutes float64
	TotalOvertimeMinutes float64
	TotalPersonalKm      float64
	TotalCompanyKm       float64

	// TotalExtra excludes non-numeric source contributions.
	TotalExtra float64

	// Rates come from the first sample of the employee's first day row and
	// are assumed constant for the whole period. NaN when unparsable.
	OrdinaryRate float64
	OvertimeRate float64
	MealRate     float64

	// MealVoucherTotal is already currency-denominated: each qualifying day
	// adds that day's meal rate cast to an integer.
	MealVoucherTotal float64

	// DayRows is ordered by descending day and feeds the report renderer.
	DayRows []attendance.DayAggregate
}

// PayBreakdown is the monetary result for one employee. Amounts are kept at
// full float precision; rounding to 2 decimals happens only at the
// presentation boundary.
type PayBreakdown struct {
	OrdinaryAmount float64

	// OvertimeAmount is the post-split figure when the banked-overtime rule
	// fires; the banked portion is excluded from TotalPayable.
	OvertimeAmount       float64
	BankedOvertimeHours  float64
	BankedOvertimeAmount float64

	MealVoucherAmount float64
	MileageAmount     float64
	ExtraAmount       float64
	TotalPayable      float64

	TotalOrdinaryHours float64
	TotalOvertimeHours float64
	TotalKm            float64
}

// Payslip pairs one employee's summary with its computed breakdown.
type Payslip struct {
	EmployeeName string
	Period       Period
	Summary      EmployeeSummary
	Breakdown    PayBreakdown
}
