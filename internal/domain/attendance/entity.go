package attendance

// Column labels of the attendance export. The source file is produced by an
// external time-tracking tool; the labels are part of its contract and are
// matched verbatim.
const (
	ColStartDay     = "GIORNO INIZIO"
	ColEmployeeName = "NOME DIPENDENTE"
	ColOrdinaryTime = "TEMPO TOT. ORD"
	ColOvertimeTime = "TEMPO TOT. STRAORD."
	ColSiteName     = "NOME CANTIERE"
	ColNotes        = "NOTE"
	ColOrdinaryMin  = "MIN. ORD. VAL"
	ColOvertimeMin  = "MIN. STRAORD. VAL"
	ColPersonalKm   = "KM Auto Personale"
	ColCompanyKm    = "KM Auto Aziendale"
	ColDURC         = "DURC"
	ColDestination  = "LUOGO DI DESTINAZIONE"
	ColOrdinaryRate = "POO"
	ColOvertimeRate = "POS"
	ColMealRate     = "PBP"
	ColExtra        = "EXTRA"
)

// MergeSeparator joins display values merged into one day aggregate. Every
// merged value is prefixed with it, the first one included.
const MergeSeparator = "\n"

// RawRow is one source line keyed by column label, as parsed by the tabular
// reader. Values are untyped strings; coercion happens in the normalizer.
type RawRow map[string]string

// Record is one normalized attendance entry. It belongs to exactly one
// employee and one calendar day (StartDay, format dd-mm-yyyy).
type Record struct {
	EmployeeName string
	StartDay     string

	// Display labels in "H ore e M minuti" form, carried through as-is and
	// only recomputed when the daily overtime cap fires.
	OrdinaryTime string
	OvertimeTime string

	SiteName    string
	Notes       string
	DURC        string
	Destination string

	OrdinaryMinutes float64
	OvertimeMinutes float64
	PersonalKm      int
	CompanyKm       int

	// Hourly/voucher rates (POO, POS, PBP). Kept as strings and parsed
	// lazily by the summarizer.
	OrdinaryRate string
	OvertimeRate string
	MealRate     string

	// Extra is NaN when the source value is present but not numeric; the
	// summarizer skips NaN contributions instead of zero-filling them.
	Extra float64
}

// DayAggregate accumulates every record sharing one (employee, day) key.
type DayAggregate struct {
	Day string

	// Merged display fields. Each merged value is prefixed with a line
	// break, including the first one.
	OrdinaryTime string
	OvertimeTime string
	SiteName     string
	Notes        string
	DURC         string
	Destination  string

	OrdinaryMinutes float64
	OvertimeMinutes float64
	PersonalKm      int
	CompanyKm       int
	Extra           float64

	// One sample per merged record, in arrival order.
	OrdinaryRateSamples []string
	OvertimeRateSamples []string
	MealRateSamples     []string
}

// EmployeeDays is all of one employee's day aggregates for a period, in the
// order the filtered records arrived (descending by day).
type EmployeeDays struct {
	EmployeeName string
	Days         []*DayAggregate
}
