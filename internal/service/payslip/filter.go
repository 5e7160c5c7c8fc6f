package payslip

import (
	"sort"
	"strings"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
)

// FilterPeriod selects the records whose start day falls in the requested
// period and orders them for aggregation: ascending by employee name, and
// within an employee descending by day.
//
// Matching is a substring test against the "{month}-{year}" segment, kept
// for compatibility with the source tool. A day string that happened to
// contain the same digits elsewhere would also match; see DESIGN.md.
func FilterPeriod(records []attendance.Record, period payslip.Period) []attendance.Record {
	key := period.Key()

	matched := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(rec.StartDay, key) {
			matched = append(matched, rec)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].EmployeeName == matched[j].EmployeeName {
			return sortableDay(matched[i].StartDay) > sortableDay(matched[j].StartDay)
		}
		return matched[i].EmployeeName < matched[j].EmployeeName
	})

	return matched
}

// sortableDay reverses dd-mm-yyyy into yyyy-mm-dd so days compare correctly
// as strings.
func sortableDay(day string) string {
	parts := strings.Split(day, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "-")
}
