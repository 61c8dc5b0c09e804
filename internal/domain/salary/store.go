package salary

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/domain/apperr"
)

type EmployeeState struct {
	ID       int64
	IsActive int16
}

type StoreAPI interface {
	RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	FindEmployeeByTempPayrollID(ctx context.Context, tempPayrollID string) (EmployeeState, error)
	FindPaymentTypeID(ctx context.Context, employeeID int64) (*int64, error)
	InsertSalaryTx(ctx context.Context, tx pgx.Tx, rec *Record) error
	FindActiveSalary(ctx context.Context, employeeID int64) (Record, error)
	UpsertPfDetailsTx(ctx context.Context, tx pgx.Tx, pf PfDetails) error
	FindPfDetails(ctx context.Context, employeeID int64) (PfDetails, bool, error)
	AdvanceStatusTx(ctx context.Context, tx pgx.Tx, employeeID, statusID int64, checklistIDs string) error
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
		"SELECT id, is_active FROM employees WHERE temp_payroll_id = $1",
		tempPayrollID).Scan(&state.ID, &state.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeState{}, apperr.NotFoundf("employee with temp payroll id %s", tempPayrollID)
	}
	if err != nil {
		return EmployeeState{}, err
	}
	return state, nil
}

// FindPaymentTypeID scans the employee's active bank accounts for one
// already carrying a payment type, preferring the SALARY account.
func (s *Store) FindPaymentTypeID(ctx context.Context, employeeID int64) (*int64, error) {
	var paymentTypeID *int64
	err := s.DB.QueryRow(ctx, `
    SELECT payment_type_id FROM employee_bank_accounts
    WHERE employee_id = $1 AND is_active = 1 AND payment_type_id IS NOT NULL
    ORDER BY CASE account_type WHEN 'SALARY' THEN 0 ELSE 1 END, id ASC
    LIMIT 1
  `, employeeID).Scan(&paymentTypeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paymentTypeID, nil
}

func (s *Store) InsertSalaryTx(ctx context.Context, tx pgx.Tx, rec *Record) error {
	return tx.QueryRow(ctx, `
    INSERT INTO employee_salaries
      (employee_id, monthly_ctc, ctc_words, yearly_ctc, structure_id, grade_id,
       cost_center_id, payment_type_id, is_pf_eligible, is_esi_eligible, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, rec.EmployeeID, rec.MonthlyCtc, nullIfEmpty(rec.CtcWords), rec.YearlyCtc, rec.StructureID,
		rec.GradeID, rec.CostCenterID, rec.PaymentTypeID, rec.IsPfEligible, rec.IsEsiEligible,
		rec.CreatedBy).Scan(&rec.ID)
}

func (s *Store) FindActiveSalary(ctx context.Context, employeeID int64) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, monthly_ctc, COALESCE(ctc_words, ''), yearly_ctc,
           structure_id, grade_id, cost_center_id, payment_type_id,
           is_pf_eligible, is_esi_eligible
    FROM employee_salaries
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id DESC
    LIMIT 1
  `, employeeID).Scan(&rec.ID, &rec.EmployeeID, &rec.MonthlyCtc, &rec.CtcWords, &rec.YearlyCtc,
		&rec.StructureID, &rec.GradeID, &rec.CostCenterID, &rec.PaymentTypeID,
		&rec.IsPfEligible, &rec.IsEsiEligible)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, apperr.NotFoundf("no active salary record for employee %d", employeeID)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// UpsertPfDetailsTx writes only the supplied PF fields; nil fields
// keep their stored value.
func (s *Store) UpsertPfDetailsTx(ctx context.Context, tx pgx.Tx, pf PfDetails) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_pf_records (employee_id, pf_num, pf_join_date, esi_num, uan_num, created_by)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (employee_id)
    DO UPDATE SET
      pf_num = COALESCE(EXCLUDED.pf_num, employee_pf_records.pf_num),
      pf_join_date = COALESCE(EXCLUDED.pf_join_date, employee_pf_records.pf_join_date),
      esi_num = COALESCE(EXCLUDED.esi_num, employee_pf_records.esi_num),
      uan_num = COALESCE(EXCLUDED.uan_num, employee_pf_records.uan_num),
      updated_at = now()
  `, pf.EmployeeID, pf.PfNo, pf.PfJoinDate, pf.EsiNo, pf.UanNo, pf.CreatedBy)
	return err
}

func (s *Store) FindPfDetails(ctx context.Context, employeeID int64) (PfDetails, bool, error) {
	pf := PfDetails{EmployeeID: employeeID}
	err := s.DB.QueryRow(ctx, `
    SELECT pf_num, pf_join_date, esi_num, uan_num
    FROM employee_pf_records
    WHERE employee_id = $1
  `, employeeID).Scan(&pf.PfNo, &pf.PfJoinDate, &pf.EsiNo, &pf.UanNo)
	if errors.Is(err, pgx.ErrNoRows) {
		return PfDetails{}, false, nil
	}
	if err != nil {
		return PfDetails{}, false, err
	}
	return pf, true, nil
}

// AdvanceStatusTx sets the post-salary status; the checklist id string
// persists only when supplied.
func (s *Store) AdvanceStatusTx(ctx context.Context, tx pgx.Tx, employeeID, statusID int64, checklistIDs string) error {
	_, err := tx.Exec(ctx, `
    UPDATE employees SET
      status_id = $2,
      checklist_ids = COALESCE($3, checklist_ids),
      updated_at = now()
    WHERE id = $1
  `, employeeID, statusID, nullIfEmpty(checklistIDs))
	return err
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
