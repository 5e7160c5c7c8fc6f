package payslip

import (
	"math"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
)

// Summarize folds one employee's day aggregates into period totals.
//
// Rates are taken from the first sample of the employee's first day row and
// assumed constant for the period; divergent samples on later days are
// discarded (accepted simplification, see DESIGN.md). The meal voucher is
// evaluated once per day: a day whose total worked hours reach the threshold
// adds that day's meal rate, cast to an integer, to the running total.
func Summarize(emp attendance.EmployeeDays) payslip.EmployeeSummary {
	s := payslip.EmployeeSummary{
		EmployeeName: emp.EmployeeName,
		OrdinaryRate: math.NaN(),
		OvertimeRate: math.NaN(),
		MealRate:     math.NaN(),
	}

	if len(emp.Days) > 0 {
		first := emp.Days[0]
		s.OrdinaryRate = firstSample(first.OrdinaryRateSamples)
		s.OvertimeRate = firstSample(first.OvertimeRateSamples)
		s.MealRate = firstSample(first.MealRateSamples)
	}

	s.DayRows = make([]attendance.DayAggregate, 0, len(emp.Days))
	for _, day := range emp.Days {
		s.TotalOrdinaryMinutes += day.OrdinaryMinutes
		s.TotalOvertimeMinutes += day.OvertimeMinutes
		s.TotalPersonalKm += float64(day.PersonalKm)
		s.TotalCompanyKm += float64(day.CompanyKm)

		if !math.IsNaN(day.Extra) {
			s.TotalExtra += day.Extra
		}

		workedHours := (day.OrdinaryMinutes + day.OvertimeMinutes) / 60
		if workedHours >= payslip.MealVoucherMinHours {
			if meal := firstSample(day.MealRateSamples); !math.IsNaN(meal) {
				s.MealVoucherTotal += float64(int(meal))
			}
		}

		s.DayRows = append(s.DayRows, *day)
	}

	return s
}

func firstSample(samples []string) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	return rateValue(samples[0])
}
