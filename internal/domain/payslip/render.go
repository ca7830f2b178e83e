package payslip

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"payslip/internal/domain/employee"
	"payslip/internal/domain/payroll"
	"payslip/internal/platform/config"
)

// Renderer produces the one-page payslip PDF for a single employee
// record. The visual structure is fixed; geometry comes from Layout.
type Renderer struct {
	CompanyName     string
	CompanyLocation string
	LogoPath        string
	Layout          Layout
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		CompanyName:     cfg.CompanyName,
		CompanyLocation: cfg.CompanyLocation,
		LogoPath:        cfg.LogoPath,
		Layout:          DefaultLayout,
	}
}

// Render lays out rec into a finished PDF byte stream. The record is not
// mutated. A missing logo asset is a hard failure for this record.
func (r *Renderer) Render(rec employee.Record) ([]byte, error) {
	if _, err := os.Stat(r.LogoPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLogoMissing, r.LogoPath)
	}
	words, err := payroll.AmountInWords(rec.Salary)
	if err != nil {
		return nil, fmt.Errorf("amount in words for %s: %w", rec.EmployeeID, err)
	}

	l := r.Layout
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	p := page{pdf: pdf}

	// Letterhead.
	pdf.ImageOptions(r.LogoPath, l.Logo.X, l.Logo.Y, l.Logo.W, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	p.text(l.CompanyName, r.CompanyName, "B", 16, inkBlack)
	p.text(l.Location, r.CompanyLocation, "", 9, inkGray)
	p.text(l.PeriodTitle, "Payslip For the Month", "", 12, inkGray)
	p.text(l.PeriodValue, rec.Month, "", 10.5, inkBlack)
	p.rule(l.MarginX, l.ContentRight, l.HeaderRuleY)

	// Employee summary.
	p.text(l.SummaryTitle, "EMPLOYEE SUMMARY", "B", 11, inkBlack)
	summary := [4][2]string{
		{"Employee Name", rec.Name},
		{"Employee ID", rec.EmployeeID},
		{"Pay Period", rec.Month},
		{"Pay Date", rec.PayDate.Format("02/01/2006")},
	}
	for i, row := range summary {
		y := l.SummaryRowYs[i]
		p.text(point{l.LabelX, y}, row[0], "", 9.5, inkGray)
		p.text(point{l.ColonX, y}, ":", "", 9.5, inkGray)
		p.text(point{l.ValueX, y}, row[1], "", 9.5, inkBlack)
	}

	// Net-pay highlight panel.
	p.panel(l.NetPayBox, tintGreen)
	p.text(l.NetPayText, "Rs. "+money(rec.NetPay), "B", 15, inkGreen)
	p.text(l.NetPayLabel, "Total Net Pay", "", 9, inkGray)
	p.panel(l.DaysBox, tintBlue)
	p.text(point{l.DaysLabelX, l.PaidDaysY}, "Paid Days :", "", 9.5, inkBlack)
	p.rightText(l.DaysValueX, l.PaidDaysY, fmt.Sprintf("%d", rec.PaidDays), "", 9.5, inkBlack)
	p.text(point{l.DaysLabelX, l.LOPDaysY}, "LOP Days :", "", 9.5, inkBlack)
	p.rightText(l.DaysValueX, l.LOPDaysY, fmt.Sprintf("%d", rec.LOPDays), "", 9.5, inkBlack)
	p.rule(l.MarginX, l.ContentRight, l.SummaryRuleY)

	// Leave balances.
	p.text(point{l.LabelX, l.LeaveRowY}, "Remaining Leave", "", 9.5, inkGray)
	p.text(point{l.ColonX, l.LeaveRowY}, ":", "", 9.5, inkGray)
	p.text(point{l.ValueX, l.LeaveRowY}, fmt.Sprintf("%d", rec.RemainingLeave), "", 9.5, inkBlack)
	p.text(point{l.LeaveLabel2, l.LeaveRowY}, "Leaves Taken", "", 9.5, inkGray)
	p.text(point{l.LeaveColon2, l.LeaveRowY}, ":", "", 9.5, inkGray)
	p.text(point{l.LeaveValue2, l.LeaveRowY}, fmt.Sprintf("%d", rec.LeavesTaken), "", 9.5, inkBlack)

	// Earnings/deductions table. The two columns iterate independently
	// from the same origin; the box grows with the longer column.
	rows := len(rec.Earnings)
	if len(rec.Deductions) > rows {
		rows = len(rec.Deductions)
	}
	tableH := l.tableHeight(rows)
	p.box(box{X: l.MarginX, Y: l.TableTop, W: l.ContentRight - l.MarginX, H: tableH, Radius: l.TableRadius})

	headerY := l.TableTop + 8
	p.text(point{l.EarnLabelX, headerY}, "EARNINGS", "B", 9.5, inkBlack)
	p.rightText(l.EarnAmountX, headerY, "AMOUNT", "B", 9.5, inkBlack)
	p.text(point{l.DeductLabelX, headerY}, "DEDUCTIONS", "B", 9.5, inkBlack)
	p.rightText(l.DeductAmountX, headerY, "AMOUNT", "B", 9.5, inkBlack)
	p.dashedRule(l.EarnLabelX, l.EarnAmountX, headerY+3)
	p.dashedRule(l.DeductLabelX, l.DeductAmountX, headerY+3)

	rowsTop := l.TableTop + l.TableHeaderH + 5
	y := rowsTop
	for _, item := range rec.Earnings {
		p.text(point{l.EarnLabelX, y}, item.Label, "", 9.5, inkBlack)
		p.rightText(l.EarnAmountX, y, "Rs. "+money(item.Amount), "", 9.5, inkBlack)
		y += l.RowHeight
	}
	y = rowsTop
	for _, item := range rec.Deductions {
		p.text(point{l.DeductLabelX, y}, item.Label, "", 9.5, inkBlack)
		p.rightText(l.DeductAmountX, y, "Rs. "+money(item.Amount), "", 9.5, inkBlack)
		y += l.RowHeight
	}

	totalsRuleY := l.TableTop + l.TableHeaderH + float64(rows)*l.RowHeight + 2
	p.dashedRule(l.EarnLabelX, l.EarnAmountX, totalsRuleY)
	p.dashedRule(l.DeductLabelX, l.DeductAmountX, totalsRuleY)
	totalsY := totalsRuleY + 6
	p.text(point{l.EarnLabelX, totalsY}, "Gross Earnings", "B", 9.5, inkBlack)
	p.rightText(l.EarnAmountX, totalsY, "Rs. "+money(rec.GrossEarnings), "B", 9.5, inkBlack)
	p.text(point{l.DeductLabelX, totalsY}, "Total Deductions", "B", 9.5, inkBlack)
	p.rightText(l.DeductAmountX, totalsY, "Rs. "+money(rec.TotalDeductions), "B", 9.5, inkBlack)

	// TOTAL NET PAYABLE bar with the tinted amount cell on the right.
	barY := l.TableTop + tableH + l.BarGap
	barW := l.ContentRight - l.MarginX
	p.tintedCell(box{X: l.ContentRight - l.BarTintW, Y: barY, W: l.BarTintW, H: l.BarH, Radius: l.TableRadius})
	p.box(box{X: l.MarginX, Y: barY, W: barW, H: l.BarH, Radius: l.TableRadius})
	p.text(point{l.MarginX + l.TextPadX, barY + l.BarTitleDY}, "TOTAL NET PAYABLE", "B", 10, inkBlack)
	p.text(point{l.MarginX + l.TextPadX, barY + l.BarCaptionDY}, "Gross Earnings - Total Deductions", "", 8.5, inkGray)
	p.rightText(l.ContentRight-l.TextPadX, barY+l.BarAmountDY, "Rs. "+money(rec.Salary), "B", 13, inkBlack)

	// Amount in words, centered, then the closing rule.
	wordsY := barY + l.BarH + l.WordsGap
	p.centerText(l.MarginX, l.ContentRight, wordsY, words, "B", 10, inkBlack)
	p.rule(l.MarginX, l.ContentRight, wordsY+l.ClosingGap)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip for %s: %w", rec.EmployeeID, err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type rgb struct{ r, g, b int }

var (
	inkBlack   = rgb{0, 0, 0}
	inkGray    = rgb{128, 128, 128}
	inkGreen   = rgb{10, 159, 73}
	lineGray   = rgb{204, 204, 204}
	dashGray   = rgb{153, 153, 153}
	tintGreen  = rgb{242, 254, 246}
	tintBlue   = rgb{230, 243, 255}
	tintPayout = rgb{230, 249, 239}
)

// page wraps gofpdf with the handful of drawing operations the payslip
// needs, keeping font and color state handling in one place.
type page struct {
	pdf *gofpdf.Fpdf
}

func (p page) text(at point, s, style string, size float64, ink rgb) {
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(ink.r, ink.g, ink.b)
	p.pdf.Text(at.X, at.Y, s)
}

func (p page) rightText(rightX, y float64, s, style string, size float64, ink rgb) {
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(ink.r, ink.g, ink.b)
	p.pdf.Text(rightX-p.pdf.GetStringWidth(s), y, s)
}

func (p page) centerText(leftX, rightX, y float64, s, style string, size float64, ink rgb) {
	p.pdf.SetFont("Helvetica", style, size)
	p.pdf.SetTextColor(ink.r, ink.g, ink.b)
	mid := leftX + (rightX-leftX)/2
	p.pdf.Text(mid-p.pdf.GetStringWidth(s)/2, y, s)
}

func (p page) rule(x1, x2, y float64) {
	p.pdf.SetDrawColor(lineGray.r, lineGray.g, lineGray.b)
	p.pdf.SetLineWidth(0.3)
	p.pdf.Line(x1, y, x2, y)
}

func (p page) dashedRule(x1, x2, y float64) {
	p.pdf.SetDrawColor(dashGray.r, dashGray.g, dashGray.b)
	p.pdf.SetLineWidth(0.2)
	p.pdf.SetDashPattern([]float64{0.7, 0.7}, 0)
	p.pdf.Line(x1, y, x2, y)
	p.pdf.SetDashPattern([]float64{}, 0)
}

// panel draws a rounded box with a tinted fill and gray border.
func (p page) panel(b box, tint rgb) {
	p.pdf.SetFillColor(tint.r, tint.g, tint.b)
	p.pdf.SetDrawColor(lineGray.r, lineGray.g, lineGray.b)
	p.pdf.SetLineWidth(0.3)
	p.pdf.RoundedRect(b.X, b.Y, b.W, b.H, b.Radius, "1234", "FD")
}

// box draws a rounded border only.
func (p page) box(b box) {
	p.pdf.SetDrawColor(lineGray.r, lineGray.g, lineGray.b)
	p.pdf.SetLineWidth(0.3)
	p.pdf.RoundedRect(b.X, b.Y, b.W, b.H, b.Radius, "1234", "D")
}

// tintedCell fills the right section of the net-payable bar; only its
// outer corners are rounded so it sits flush against the bar border.
func (p page) tintedCell(b box) {
	p.pdf.SetFillColor(tintPayout.r, tintPayout.g, tintPayout.b)
	p.pdf.RoundedRect(b.X, b.Y, b.W, b.H, b.Radius, "23", "F")
}
