package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"payslip/internal/domain/payroll"
)

const recordColumns = `
    employee_id, name, email, designation, month, pay_date,
    paid_days, lop_days, remaining_leave, leaves_taken,
    earnings, deductions,
    gross_earnings, total_deductions, net_pay, salary,
    created_at, updated_at`

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+recordColumns+`
    FROM employees
    ORDER BY created_at, employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM employees
    WHERE employee_id = $1
  `, employeeID)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (s *Store) Create(ctx context.Context, rec *Record) error {
	earnings, deductions, err := marshalLines(rec)
	if err != nil {
		return err
	}
	err = s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      employee_id, name, email, designation, month, pay_date,
      paid_days, lop_days, remaining_leave, leaves_taken,
      earnings, deductions,
      gross_earnings, total_deductions, net_pay, salary
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
    RETURNING created_at, updated_at
  `,
		rec.EmployeeID, rec.Name, rec.Email, rec.Designation, rec.Month, rec.PayDate,
		rec.PaidDays, rec.LOPDays, rec.RemainingLeave, rec.LeavesTaken,
		earnings, deductions,
		rec.GrossEarnings, rec.TotalDeductions, rec.NetPay, rec.Salary,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	return mapUniqueViolation(err)
}

func (s *Store) Update(ctx context.Context, rec *Record) error {
	earnings, deductions, err := marshalLines(rec)
	if err != nil {
		return err
	}
	err = s.DB.QueryRow(ctx, `
    UPDATE employees SET
      name = $2, email = $3, designation = $4, month = $5, pay_date = $6,
      paid_days = $7, lop_days = $8, remaining_leave = $9, leaves_taken = $10,
      earnings = $11, deductions = $12,
      gross_earnings = $13, total_deductions = $14, net_pay = $15, salary = $16,
      updated_at = now()
    WHERE employee_id = $1
    RETURNING created_at, updated_at
  `,
		rec.EmployeeID, rec.Name, rec.Email, rec.Designation, rec.Month, rec.PayDate,
		rec.PaidDays, rec.LOPDays, rec.RemainingLeave, rec.LeavesTaken,
		earnings, deductions,
		rec.GrossEarnings, rec.TotalDeductions, rec.NetPay, rec.Salary,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return mapUniqueViolation(err)
}

func (s *Store) Delete(ctx context.Context, employeeID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    DELETE FROM employees
    WHERE employee_id = $1
    RETURNING`+recordColumns+`
  `, employeeID)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var earnings, deductions []byte
	err := row.Scan(
		&rec.EmployeeID, &rec.Name, &rec.Email, &rec.Designation, &rec.Month, &rec.PayDate,
		&rec.PaidDays, &rec.LOPDays, &rec.RemainingLeave, &rec.LeavesTaken,
		&earnings, &deductions,
		&rec.GrossEarnings, &rec.TotalDeductions, &rec.NetPay, &rec.Salary,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(earnings, &rec.Earnings); err != nil {
		return nil, fmt.Errorf("decode earnings for %s: %w", rec.EmployeeID, err)
	}
	if err := json.Unmarshal(deductions, &rec.Deductions); err != nil {
		return nil, fmt.Errorf("decode deductions for %s: %w", rec.EmployeeID, err)
	}
	return &rec, nil
}

func marshalLines(rec *Record) ([]byte, []byte, error) {
	earnings, err := json.Marshal(lineItemsOrEmpty(rec.Earnings))
	if err != nil {
		return nil, nil, err
	}
	deductions, err := json.Marshal(lineItemsOrEmpty(rec.Deductions))
	if err != nil {
		return nil, nil, err
	}
	return earnings, deductions, nil
}

func lineItemsOrEmpty(items []payroll.LineItem) []payroll.LineItem {
	if items == nil {
		return []payroll.LineItem{}
	}
	return items
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
