package employee

import "context"

// StoreAPI is the persistence boundary for employee payroll records.
// List returns records in a deterministic order; uniqueness of both
// employeeId and email is enforced here.
type StoreAPI interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, employeeID string) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, employeeID string) (*Record, error)
}
