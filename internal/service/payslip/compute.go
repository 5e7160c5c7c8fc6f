package payslip

import (
	"math"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
)

// Compute derives the monetary breakdown for one employee summary.
//
// Amounts stay at full float precision; non-finite products (an unparsable
// rate multiplied through) clamp to zero at the amount level so a bad rate
// degrades to a zero line instead of an invalid number. Above five overtime
// hours the banked-overtime ("IB") split moves 20% of overtime out of the
// immediately payable total.
func Compute(s payslip.EmployeeSummary) payslip.PayBreakdown {
	ordinaryHours := s.TotalOrdinaryMinutes / 60
	overtimeHours := s.TotalOvertimeMinutes / 60

	ordinaryAmount := finiteOrZero(ordinaryHours * s.OrdinaryRate)
	overtimeAmount := finiteOrZero(overtimeHours * s.OvertimeRate)

	var bankedHours, bankedAmount float64
	if overtimeHours > payslip.BankedOvertimeThresholdHours {
		bankedHours = math.Round(overtimeHours * payslip.BankedOvertimeShare)
		bankedAmount = math.Round(overtimeAmount * payslip.BankedOvertimeShare)
		overtimeAmount = math.Round(overtimeAmount * (1 - payslip.BankedOvertimeShare))
	}

	mileageAmount := s.TotalPersonalKm*payslip.MileageRatePerKm - s.TotalCompanyKm*payslip.MileageRatePerKm

	return payslip.PayBreakdown{
		OrdinaryAmount:       ordinaryAmount,
		OvertimeAmount:       overtimeAmount,
		BankedOvertimeHours:  bankedHours,
		BankedOvertimeAmount: bankedAmount,
		MealVoucherAmount:    s.MealVoucherTotal,
		MileageAmount:        mileageAmount,
		ExtraAmount:          s.TotalExtra,
		TotalPayable:         ordinaryAmount + overtimeAmount + s.MealVoucherTotal + s.TotalExtra + mileageAmount,
		TotalOrdinaryHours:   ordinaryHours,
		TotalOvertimeHours:   overtimeHours,
		TotalKm:              s.TotalPersonalKm + s.TotalCompanyKm,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
