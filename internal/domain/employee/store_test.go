package employee

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"payslip/internal/db"
	"payslip/internal/domain/payroll"
)

func TestStoreRoundTrip(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dbURL)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := NewStore(pool)
	suffix := time.Now().UnixNano()
	rec := &Record{
		EmployeeID:  fmt.Sprintf("E%d", suffix),
		Name:        "Store Test",
		Email:       fmt.Sprintf("store-%d@example.com", suffix),
		Designation: "Engineer",
		Month:       "January 2025",
		PayDate:     time.Now().UTC(),
		Earnings:    []payroll.LineItem{{Label: "Basic Pay", Amount: dec("20000")}},
		Deductions:  []payroll.LineItem{{Label: "Income Tax", Amount: dec("2000")}},
	}
	rec.GrossEarnings = dec("20000")
	rec.TotalDeductions = dec("2000")
	rec.NetPay = dec("20000")
	rec.Salary = dec("18000")

	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _, _ = store.Delete(ctx, rec.EmployeeID) }()

	got, err := store.Get(ctx, rec.EmployeeID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != rec.Name || len(got.Earnings) != 1 || got.Earnings[0].Label != "Basic Pay" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.Salary.Equal(dec("18000")) {
		t.Fatalf("expected salary 18000, got %s", got.Salary)
	}

	dup := *rec
	dup.Email = fmt.Sprintf("other-%d@example.com", suffix)
	if err := store.Create(ctx, &dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reused employee id, got %v", err)
	}

	got.Designation = "Senior Engineer"
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	deleted, err := store.Delete(ctx, rec.EmployeeID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Designation != "Senior Engineer" {
		t.Fatalf("expected updated record returned on delete, got %+v", deleted)
	}
	if _, err := store.Get(ctx, rec.EmployeeID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
