package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"payslip/internal/domain/payroll"
)

type fakeStore struct {
	records map[string]*Record
	order   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*Record)}
}

func (f *fakeStore) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.records[id])
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, employeeID string) (*Record, error) {
	rec, ok := f.records[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeStore) Create(ctx context.Context, rec *Record) error {
	if _, ok := f.records[rec.EmployeeID]; ok {
		return ErrDuplicate
	}
	clone := *rec
	f.records[rec.EmployeeID] = &clone
	f.order = append(f.order, rec.EmployeeID)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, rec *Record) error {
	if _, ok := f.records[rec.EmployeeID]; !ok {
		return ErrNotFound
	}
	clone := *rec
	f.records[rec.EmployeeID] = &clone
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, employeeID string) (*Record, error) {
	rec, ok := f.records[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	delete(f.records, employeeID)
	for i, id := range f.order {
		if id == employeeID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRecord() *Record {
	return &Record{
		EmployeeID: "EMP01",
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Month:      "January 2025",
		Earnings:   []payroll.LineItem{{Label: "Basic Pay", Amount: dec("20000")}},
		Deductions: []payroll.LineItem{{Label: "Income Tax", Amount: dec("2000")}},
	}
}

func TestCreateComputesTotalsAndDefaultsPayDate(t *testing.T) {
	svc := NewService(newFakeStore())
	fixed := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	rec, err := svc.Create(context.Background(), testRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !rec.GrossEarnings.Equal(dec("20000")) {
		t.Fatalf("expected gross 20000, got %s", rec.GrossEarnings)
	}
	if !rec.Salary.Equal(dec("18000")) {
		t.Fatalf("expected salary 18000, got %s", rec.Salary)
	}
	if !rec.PayDate.Equal(fixed) {
		t.Fatalf("expected pay date defaulted to %s, got %s", fixed, rec.PayDate)
	}
}

func TestCreateIgnoresClientSuppliedTotals(t *testing.T) {
	svc := NewService(newFakeStore())
	rec := testRecord()
	rec.GrossEarnings = dec("999999")
	rec.Salary = dec("999999")

	created, err := svc.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.GrossEarnings.Equal(dec("20000")) || !created.Salary.Equal(dec("18000")) {
		t.Fatalf("expected recomputed totals, got gross %s salary %s", created.GrossEarnings, created.Salary)
	}
}

func TestUpdateRecomputesTotals(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	if _, err := svc.Create(context.Background(), testRecord()); err != nil {
		t.Fatalf("create: %v", err)
	}

	earnings := []payroll.LineItem{{Label: "Basic Pay", Amount: dec("30000")}}
	updated, err := svc.Update(context.Background(), "EMP01", Patch{Earnings: &earnings})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.GrossEarnings.Equal(dec("30000")) {
		t.Fatalf("expected gross 30000, got %s", updated.GrossEarnings)
	}
	if !updated.Salary.Equal(dec("28000")) {
		t.Fatalf("expected salary 28000, got %s", updated.Salary)
	}
	if updated.Name != "Asha Rao" {
		t.Fatalf("expected untouched fields to survive, got name %q", updated.Name)
	}
}

func TestUpdateCorrectsStaleStoredTotals(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	if _, err := svc.Create(context.Background(), testRecord()); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Simulate a record whose persisted totals drifted from its line items.
	store.records["EMP01"].Salary = dec("1")

	name := "Asha R"
	updated, err := svc.Update(context.Background(), "EMP01", Patch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Salary.Equal(dec("18000")) {
		t.Fatalf("expected stale salary corrected to 18000, got %s", updated.Salary)
	}
}

func TestUpdateRejectsEmployeeIDChange(t *testing.T) {
	svc := NewService(newFakeStore())
	if _, err := svc.Create(context.Background(), testRecord()); err != nil {
		t.Fatalf("create: %v", err)
	}

	other := "EMP02"
	if _, err := svc.Update(context.Background(), "EMP01", Patch{EmployeeID: &other}); err != ErrImmutableID {
		t.Fatalf("expected ErrImmutableID, got %v", err)
	}
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := NewService(newFakeStore())
	if _, err := svc.Update(context.Background(), "missing", Patch{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsRecord(t *testing.T) {
	svc := NewService(newFakeStore())
	if _, err := svc.Create(context.Background(), testRecord()); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := svc.Delete(context.Background(), "EMP01")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.EmployeeID != "EMP01" {
		t.Fatalf("expected deleted record returned, got %+v", rec)
	}
	if _, err := svc.Get(context.Background(), "EMP01"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
