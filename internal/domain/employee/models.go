package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"payslip/internal/domain/payroll"
)

func init() {
	// Amounts go over the wire as plain JSON numbers, matching what the
	// form frontend sends and expects back.
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is one employee's payroll record for the current pay period.
// GrossEarnings, TotalDeductions, NetPay and Salary are derived from the
// line item lists on every write and are never accepted from clients.
type Record struct {
	EmployeeID      string             `json:"employeeId"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Designation     string             `json:"designation"`
	Month           string             `json:"month"`
	PayDate         time.Time          `json:"payDate"`
	PaidDays        int                `json:"paidDays"`
	LOPDays         int                `json:"lopDays"`
	RemainingLeave  int                `json:"remainingLeave"`
	LeavesTaken     int                `json:"leavesTaken"`
	Earnings        []payroll.LineItem `json:"earnings"`
	Deductions      []payroll.LineItem `json:"deductions"`
	GrossEarnings   decimal.Decimal    `json:"grossEarnings"`
	TotalDeductions decimal.Decimal    `json:"totalDeductions"`
	NetPay          decimal.Decimal    `json:"netPay"`
	Salary          decimal.Decimal    `json:"salary"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Patch carries a partial update. Nil fields keep the stored value.
// EmployeeID is present only so the service can reject rename attempts.
type Patch struct {
	EmployeeID     *string
	Name           *string
	Email          *string
	Designation    *string
	Month          *string
	PayDate        *time.Time
	PaidDays       *int
	LOPDays        *int
	RemainingLeave *int
	LeavesTaken    *int
	Earnings       *[]payroll.LineItem
	Deductions     *[]payroll.LineItem
}

func (r *Record) applyTotals(t payroll.Totals) {
	r.GrossEarnings = t.GrossEarnings
	r.TotalDeductions = t.TotalDeductions
	r.NetPay = t.NetPay
	r.Salary = t.Salary
}
