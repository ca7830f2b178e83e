package employee

import (
	"context"
	"time"

	"payslip/internal/domain/payroll"
)

// Service owns the recompute-on-write policy: payroll totals are derived
// from the line item lists immediately before every store write, as an
// explicit calculator call rather than a trigger hidden in the store.
type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Record, error) {
	return s.store.Get(ctx, employeeID)
}

func (s *Service) Create(ctx context.Context, rec *Record) (*Record, error) {
	if rec.PayDate.IsZero() {
		rec.PayDate = s.now().UTC()
	}
	rec.applyTotals(payroll.Compute(rec.Earnings, rec.Deductions))
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, employeeID string, patch Patch) (*Record, error) {
	if patch.EmployeeID != nil && *patch.EmployeeID != employeeID {
		return nil, ErrImmutableID
	}

	rec, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	applyPatch(rec, patch)
	rec.applyTotals(payroll.Compute(rec.Earnings, rec.Deductions))
	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) (*Record, error) {
	return s.store.Delete(ctx, employeeID)
}

func applyPatch(rec *Record, patch Patch) {
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if patch.Designation != nil {
		rec.Designation = *patch.Designation
	}
	if patch.Month != nil {
		rec.Month = *patch.Month
	}
	if patch.PayDate != nil {
		rec.PayDate = *patch.PayDate
	}
	if patch.PaidDays != nil {
		rec.PaidDays = *patch.PaidDays
	}
	if patch.LOPDays != nil {
		rec.LOPDays = *patch.LOPDays
	}
	if patch.RemainingLeave != nil {
		rec.RemainingLeave = *patch.RemainingLeave
	}
	if patch.LeavesTaken != nil {
		rec.LeavesTaken = *patch.LeavesTaken
	}
	if patch.Earnings != nil {
		rec.Earnings = *patch.Earnings
	}
	if patch.Deductions != nil {
		rec.Deductions = *patch.Deductions
	}
}
