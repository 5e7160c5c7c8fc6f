package fixtures

// MonthNames maps the 2-digit month of a period to its Italian name, as
// printed on payslips and used in document filenames. The table is static
// configuration for the rendering side; the engine never derives it.
var MonthNames = map[string]string{
	"01": "Gennaio",
	"02": "Febbraio",
	"03": "Marzo",
	"04": "Aprile",
	"05": "Maggio",
	"06": "Giugno",
	"07": "Luglio",
	"08": "Agosto",
	"09": "Settembre",
	"10": "Ottobre",
	"11": "Novembre",
	"12": "Dicembre",
}

// MonthName returns the localized name for a 2-digit month, falling back to
// the raw number when the month is unknown.
func MonthName(month string) string {
	if name, ok := MonthNames[month]; ok {
		return name
	}
	return month
}
