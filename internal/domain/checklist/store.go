package checklist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/domain/apperr"
)

// EmployeeState is the slice of the employee row this service acts on.
type EmployeeState struct {
	ID       int64
	StatusID int64
}

type StoreAPI interface {
	RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	FindEmployeeByTempPayrollID(ctx context.Context, tempPayrollID string) (EmployeeState, error)
	UpdateChecklistTx(ctx context.Context, tx pgx.Tx, employeeID int64, checklistIDs, noticePeriod string) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, employeeID, statusID int64, remarks string) error
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) FindEmployeeByTempPayrollID(ctx context.Context, tempPayrollID string) (EmployeeState, error) {
	var state EmployeeState
	err := s.DB.QueryRow(ctx,
		"SELECT id, status_id FROM employees WHERE temp_payroll_id = $1",
		tempPayrollID).Scan(&state.ID, &state.StatusID)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeState{}, apperr.NotFoundf("employee with temp payroll id %s", tempPayrollID)
	}
	if err != nil {
		return EmployeeState{}, err
	}
	return state, nil
}

// UpdateChecklistTx writes the checklist selection; the notice period
// keeps its stored value when none is supplied.
func (s *Store) UpdateChecklistTx(ctx context.Context, tx pgx.Tx, employeeID int64, checklistIDs, noticePeriod string) error {
	_, err := tx.Exec(ctx, `
    UPDATE employees SET
      checklist_ids = $2,
      notice_period = COALESCE($3, notice_period),
      updated_at = now()
    WHERE id = $1
  `, employeeID, checklistIDs, nullIfEmpty(noticePeriod))
	return err
}

func (s *Store) UpdateStatusTx(ctx context.Context, tx pgx.Tx, employeeID, statusID int64, remarks string) error {
	_, err := tx.Exec(ctx, `
    UPDATE employees SET status_id = $2, remarks = $3, updated_at = now()
    WHERE id = $1
  `, employeeID, statusID, nullIfEmpty(remarks))
	return err
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
