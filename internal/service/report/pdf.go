package report

import (
	"bytes"
	"fmt"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/cantiere-paghe/payslip-backend-go/internal/fixtures"
	"github.com/jung-kurt/gofpdf"
)

// Day-table column widths in mm, A4 landscape-ish portrait budget.
var dayColumns = []struct {
	title string
	width float64
}{
	{"Giorno", 22},
	{"Tempo Ordinario", 30},
	{"Tempo Straordinario", 32},
	{"Nome Cantiere", 34},
	{"Km Pers.", 16},
	{"Km Az.", 16},
	{"Destinazione", 26},
	{"Note", 14},
}

func renderSlipPDF(p payslip.Payslip) ([]byte, error) {
	monthName := fixtures.MonthName(p.Period.Month)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "BUSTA PAGA", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s %s", p.EmployeeName, monthName, p.Period.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	renderDayTable(pdf, p)
	renderTotals(pdf, p)
	renderAmounts(pdf, p)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDayTable(pdf *gofpdf.Fpdf, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(242, 242, 242)
	for _, col := range dayColumns {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	for _, day := range p.Summary.DayRows {
		cells := [][]string{
			{day.Day},
			payslip.MergedLines(day.OrdinaryTime),
			payslip.MergedLines(day.OvertimeTime),
			payslip.MergedLines(day.SiteName),
			{fmt.Sprintf("%d", day.PersonalKm)},
			{fmt.Sprintf("%d", day.CompanyKm)},
			payslip.MergedLines(day.Destination),
			payslip.MergedLines(day.Notes),
		}

		rows := 1
		for _, lines := range cells {
			if len(lines) > rows {
				rows = len(lines)
			}
		}

		for r := 0; r < rows; r++ {
			for c, col := range dayColumns {
				var text string
				if r < len(cells[c]) {
					text = cells[c][r]
				}
				pdf.CellFormat(col.width, 5, text, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	pdf.Ln(4)
}

func renderTotals(pdf *gofpdf.Fpdf, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 7, "TOTALE ORE e KM", "", 1, "L", false, 0, "")

	totalRow(pdf, "Totale Ore Ordinarie Lavorate", payslip.Money(p.Breakdown.TotalOrdinaryHours)+" ore")
	if p.Breakdown.BankedOvertimeHours > 0 {
		totalRow(pdf, "Totale Ore Straordinarie Lavorate (IB)", payslip.Money(p.Breakdown.BankedOvertimeHours)+" ore")
	}
	totalRow(pdf, "TOS", payslip.Money(p.Breakdown.TotalOvertimeHours)+" ore")
	totalRow(pdf, "Totale KM Percorsi", payslip.Money(p.Breakdown.TotalKm)+" km")
	pdf.Ln(4)
}

func renderAmounts(pdf *gofpdf.Fpdf, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 7, "RIEPILOGO IMPORTO", "", 1, "L", false, 0, "")

	pdf.SetTextColor(200, 0, 0)
	totalRow(pdf, "Totale da Pagare", payslip.Money(p.Breakdown.TotalPayable)+" Euro")
	pdf.SetTextColor(0, 0, 0)

	totalRow(pdf, "PLUS Straordinario", payslip.Money(p.Breakdown.OvertimeAmount)+" Euro")
	if p.Breakdown.BankedOvertimeAmount > 0 {
		totalRow(pdf, "Importo IB", payslip.Money(p.Breakdown.BankedOvertimeAmount)+" Euro")
	}
	totalRow(pdf, "RIMBORSO KM", payslip.Money(p.Breakdown.MileageAmount)+" Euro")
	totalRow(pdf, "EXTRA", payslip.Money(p.Breakdown.ExtraAmount)+" Euro")
	totalRow(pdf, "PLUS Ordinario", payslip.Money(p.Breakdown.OrdinaryAmount)+" Euro")
	totalRow(pdf, "Buono Pasto Totale", payslip.Money(p.Breakdown.MealVoucherAmount)+" Euro")
}

func totalRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(80, 6, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(60, 6, value, "1", 1, "L", false, 0, "")
}
