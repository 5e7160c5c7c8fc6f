package payslip

const (
	// OrdinaryDailyCapMinutes is the contractual maximum of ordinary minutes
	// in one day; any excess reclassifies as overtime.
	OrdinaryDailyCapMinutes = 480

	// MealVoucherMinHours is the worked-hours threshold at which a day
	// grants the meal voucher.
	MealVoucherMinHours = 6

	// BankedOvertimeThresholdHours is the monthly overtime-hours threshold
	// beyond which 20% of overtime is banked ("IB") instead of paid out.
	BankedOvertimeThresholdHours = 5

	// BankedOvertimeShare is the banked fraction of overtime above the
	// threshold.
	BankedOvertimeShare = 0.2

	// MileageRatePerKm is the flat reimbursement per net kilometre.
	MileageRatePerKm = 0.37
)
