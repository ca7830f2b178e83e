package payroll

import "github.com/shopspring/decimal"

// LineItem is a single earning or deduction row. Order within a list is
// the display order on the payslip.
type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Totals holds the derived figures for one pay period. NetPay equals
// GrossEarnings; Salary is the take-home amount, floored at zero.
type Totals struct {
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Salary          decimal.Decimal
}

// Compute derives payroll totals from the earning and deduction lists.
// Callers invoke it before every persistence write; stored totals are
// never authoritative on their own.
func Compute(earnings, deductions []LineItem) Totals {
	gross := decimal.Zero
	for _, item := range earnings {
		gross = gross.Add(item.Amount)
	}

	total := decimal.Zero
	for _, item := range deductions {
		total = total.Add(item.Amount)
	}

	salary := gross.Sub(total)
	if salary.IsNegative() {
		salary = decimal.Zero
	}

	return Totals{
		GrossEarnings:   gross,
		TotalDeductions: total,
		NetPay:          gross,
		Salary:          salary,
	}
}
