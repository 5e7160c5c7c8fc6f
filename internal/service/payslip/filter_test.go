package payslip

import (
	"testing"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name, day string) attendance.Record {
	return attendance.Record{EmployeeName: name, StartDay: day}
}

func TestFilterPeriod_KeepsOnlyMatchingMonthYear(t *testing.T) {
	records := []attendance.Record{
		rec("Mario Rossi", "15-05-2024"),
		rec("Mario Rossi", "15-04-2024"),
		rec("Mario Rossi", "15-05-2023"),
	}

	got := FilterPeriod(records, payslip.Period{Month: "05", Year: "2024"})

	require.Len(t, got, 1)
	assert.Equal(t, "15-05-2024", got[0].StartDay)
}

func TestFilterPeriod_MatchIsSubstringBased(t *testing.T) {
	// Compatibility contract with the source tool: the check is a substring
	// test on "{month}-{year}", not a parsed-date comparison.
	records := []attendance.Record{rec("Mario Rossi", "03-05-2024")}

	got := FilterPeriod(records, payslip.Period{Month: "05", Year: "2024"})
	require.Len(t, got, 1)

	got = FilterPeriod(records, payslip.Period{Month: "03", Year: "2024"})
	assert.Empty(t, got)
}

func TestFilterPeriod_OrdersByEmployeeThenDayDescending(t *testing.T) {
	records := []attendance.Record{
		rec("Bianchi Luca", "02-05-2024"),
		rec("Aldini Piera", "10-05-2024"),
		rec("Bianchi Luca", "20-05-2024"),
		rec("Aldini Piera", "28-05-2024"),
		rec("Aldini Piera", "01-05-2024"),
	}

	got := FilterPeriod(records, payslip.Period{Month: "05", Year: "2024"})

	require.Len(t, got, 5)
	assert.Equal(t, "Aldini Piera", got[0].EmployeeName)
	assert.Equal(t, "28-05-2024", got[0].StartDay)
	assert.Equal(t, "10-05-2024", got[1].StartDay)
	assert.Equal(t, "01-05-2024", got[2].StartDay)
	assert.Equal(t, "Bianchi Luca", got[3].EmployeeName)
	assert.Equal(t, "20-05-2024", got[3].StartDay)
	assert.Equal(t, "02-05-2024", got[4].StartDay)
}

func TestFilterPeriod_DayComparisonSpansYears(t *testing.T) {
	// dd-mm-yyyy must be reversed before comparing, otherwise "31-01" would
	// sort above "01-12" of the same period selection.
	records := []attendance.Record{
		rec("Mario Rossi", "05-01-2024"),
		rec("Mario Rossi", "31-01-2024"),
	}

	got := FilterPeriod(records, payslip.Period{Month: "01", Year: "2024"})

	require.Len(t, got, 2)
	assert.Equal(t, "31-01-2024", got[0].StartDay)
	assert.Equal(t, "05-01-2024", got[1].StartDay)
}
