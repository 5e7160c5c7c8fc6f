package payslip

import (
	"math"
	"strconv"
	"strings"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
)

// NormalizeRow converts one raw column-keyed row into a typed attendance
// record. The second return value is false when the row must be dropped: a
// row without a start day has no day to group on.
//
// Numeric coercion is deliberately permissive: missing or unparsable values
// become 0 instead of failing the run, because the source export is sparse.
// The extra column is the one exception — a present but non-numeric value
// stays NaN so the summarizer can skip it instead of zero-filling it.
func NormalizeRow(row attendance.RawRow) (attendance.Record, bool) {
	startDay := row[attendance.ColStartDay]
	if startDay == "" {
		return attendance.Record{}, false
	}

	return attendance.Record{
		EmployeeName:    row[attendance.ColEmployeeName],
		StartDay:        startDay,
		OrdinaryTime:    row[attendance.ColOrdinaryTime],
		OvertimeTime:    row[attendance.ColOvertimeTime],
		SiteName:        row[attendance.ColSiteName],
		Notes:           row[attendance.ColNotes],
		DURC:            row[attendance.ColDURC],
		Destination:     row[attendance.ColDestination],
		OrdinaryMinutes: floatOrZero(row[attendance.ColOrdinaryMin]),
		OvertimeMinutes: floatOrZero(row[attendance.ColOvertimeMin]),
		PersonalKm:      intOrZero(row[attendance.ColPersonalKm]),
		CompanyKm:       intOrZero(row[attendance.ColCompanyKm]),
		OrdinaryRate:    row[attendance.ColOrdinaryRate],
		OvertimeRate:    row[attendance.ColOvertimeRate],
		MealRate:        row[attendance.ColMealRate],
		Extra:           extraValue(row[attendance.ColExtra]),
	}, true
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func intOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// The km columns occasionally carry decimals; truncate like an
		// integer cast instead of discarding the value.
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}

func extraValue(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// rateValue parses a lazily-typed rate sample. Unparsable rates become NaN;
// downstream multiplications clamp non-finite amounts to zero.
func rateValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
