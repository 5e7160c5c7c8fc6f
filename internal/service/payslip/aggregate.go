package payslip

import (
	"fmt"
	"math"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
)

// cappedOrdinaryLabel replaces the merged ordinary-time label once the daily
// cap fires: a capped day is exactly eight ordinary hours by definition.
const cappedOrdinaryLabel = "8 ore e 0 minuti"

// AggregateDays groups filtered records by (employee, day), merging every
// record sharing a key into one DayAggregate. The overtime cap rule is
// re-checked after each merge, not once at the end, so intermediate labels
// are always consistent with the numbers.
//
// Records arrive sorted (employee ascending, day descending); first-seen
// order therefore doubles as output order and the aggregation maps never
// leak Go's randomized map iteration into results.
func AggregateDays(records []attendance.Record) []attendance.EmployeeDays {
	var employees []attendance.EmployeeDays
	empIndex := make(map[string]int)
	dayIndex := make(map[string]map[string]*attendance.DayAggregate)

	for _, rec := range records {
		i, ok := empIndex[rec.EmployeeName]
		if !ok {
			i = len(employees)
			empIndex[rec.EmployeeName] = i
			employees = append(employees, attendance.EmployeeDays{EmployeeName: rec.EmployeeName})
			dayIndex[rec.EmployeeName] = make(map[string]*attendance.DayAggregate)
		}

		days := dayIndex[rec.EmployeeName]
		agg, ok := days[rec.StartDay]
		if !ok {
			agg = &attendance.DayAggregate{Day: rec.StartDay}
			days[rec.StartDay] = agg
			employees[i].Days = append(employees[i].Days, agg)
		}

		mergeRecord(agg, rec)
		applyOvertimeCap(agg)
	}

	return employees
}

func mergeRecord(agg *attendance.DayAggregate, rec attendance.Record) {
	agg.OrdinaryTime += attendance.MergeSeparator + rec.OrdinaryTime
	agg.OvertimeTime += attendance.MergeSeparator + rec.OvertimeTime
	agg.SiteName += attendance.MergeSeparator + rec.SiteName
	agg.Notes += attendance.MergeSeparator + rec.Notes
	agg.DURC += attendance.MergeSeparator + rec.DURC
	agg.Destination += attendance.MergeSeparator + rec.Destination

	agg.OrdinaryMinutes += rec.OrdinaryMinutes
	agg.OvertimeMinutes += rec.OvertimeMinutes
	agg.PersonalKm += rec.PersonalKm
	agg.CompanyKm += rec.CompanyKm

	// A non-numeric extra is skipped outright rather than zero-filled, so
	// one bad cell never poisons the rest of the day.
	if !math.IsNaN(rec.Extra) {
		agg.Extra += rec.Extra
	}

	agg.OrdinaryRateSamples = append(agg.OrdinaryRateSamples, rec.OrdinaryRate)
	agg.OvertimeRateSamples = append(agg.OvertimeRateSamples, rec.OvertimeRate)
	agg.MealRateSamples = append(agg.MealRateSamples, rec.MealRate)
}

// applyOvertimeCap enforces the 480-minute ordinary ceiling on one day. The
// excess reclassifies as overtime — minutes are moved, never created or
// destroyed — and both display labels are re-derived from the new numbers.
func applyOvertimeCap(agg *attendance.DayAggregate) {
	if agg.OrdinaryMinutes <= payslip.OrdinaryDailyCapMinutes {
		return
	}

	delta := agg.OrdinaryMinutes - payslip.OrdinaryDailyCapMinutes
	agg.OvertimeMinutes += delta
	agg.OrdinaryMinutes = payslip.OrdinaryDailyCapMinutes

	agg.OrdinaryTime = cappedOrdinaryLabel
	agg.OvertimeTime = formatDuration(agg.OvertimeMinutes)
}

// formatDuration renders minutes as "H ore e M minuti". Minute rounding may
// produce 60, which carries into the hour; zero minutes render as "00".
func formatDuration(minutes float64) string {
	hours := math.Floor(minutes / 60)
	mins := math.Round((minutes/60 - hours) * 60)
	if mins == 60 {
		hours++
		mins = 0
	}
	if mins == 0 {
		return fmt.Sprintf("%.0f ore e 00 minuti", hours)
	}
	return fmt.Sprintf("%.0f ore e %.0f minuti", hours, mins)
}
