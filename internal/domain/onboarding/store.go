package onboarding

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/domain/apperr"
)

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

const employeeColumns = `
    id, first_name, last_name, date_of_join, primary_mobile_no,
    COALESCE(email, ''), COALESCE(temp_payroll_id, ''), COALESCE(permanent_payroll_id, ''),
    status_id, COALESCE(remarks, ''), COALESCE(checklist_ids, ''), COALESCE(notice_period, ''),
    contract_start_date, contract_end_date,
    gender_id, designation_id, department_id, category_id, qualification_id,
    emp_type_id, work_mode_id, join_type_id, mode_of_hiring_id, campus_id,
    reference_emp_id, hired_by_emp_id, manager_id, reporting_manager_id, replaced_by_emp_id,
    agreement_org_id, COALESCE(agreement_type, ''), is_check_submit, agreed_periods,
    total_experience, COALESCE(profile_picture, ''), created_by, is_active`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.DateOfJoin, &e.PrimaryMobileNo,
		&e.Email, &e.TempPayrollID, &e.PermanentPayrollID,
		&e.StatusID, &e.Remarks, &e.ChecklistIDs, &e.NoticePeriod,
		&e.ContractStartDate, &e.ContractEndDate,
		&e.GenderID, &e.DesignationID, &e.DepartmentID, &e.CategoryID, &e.QualificationID,
		&e.EmpTypeID, &e.WorkModeID, &e.JoinTypeID, &e.ModeOfHiringID, &e.CampusID,
		&e.ReferenceEmpID, &e.HiredByEmpID, &e.ManagerID, &e.ReportingManagerID, &e.ReplacedByEmpID,
		&e.AgreementOrgID, &e.AgreementType, &e.IsCheckSubmit, &e.AgreedPeriods,
		&e.TotalExperience, &e.ProfilePicture, &e.CreatedBy, &e.IsActive,
	)
	return e, err
}

func (s *Store) FindEmployeeByTempPayrollID(ctx context.Context, tempPayrollID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE temp_payroll_id = $1
  `, tempPayrollID)
	employee, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, apperr.NotFoundf("employee with temp payroll id %s", tempPayrollID)
	}
	if err != nil {
		return Employee{}, err
	}
	return employee, nil
}

func (s *Store) EmployeeActive(ctx context.Context, id int64) (bool, error) {
	var isActive int16
	err := s.DB.QueryRow(ctx, "SELECT is_active FROM employees WHERE id = $1", id).Scan(&isActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, apperr.NotFoundf("employee %d", id)
	}
	if err != nil {
		return false, err
	}
	return isActive == 1, nil
}

func (s *Store) SkillTestExists(ctx context.Context, tempPayrollID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM skill_test_records WHERE temp_payroll_id = $1", tempPayrollID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertEmployeeTx(ctx context.Context, tx pgx.Tx, e *Employee) error {
	return tx.QueryRow(ctx, `
    INSERT INTO employees
      (first_name, last_name, date_of_join, primary_mobile_no, email,
       temp_payroll_id, status_id, remarks, checklist_ids, notice_period,
       contract_start_date, contract_end_date,
       gender_id, designation_id, department_id, category_id,
       emp_type_id, work_mode_id, join_type_id, mode_of_hiring_id, campus_id,
       reference_emp_id, hired_by_emp_id, manager_id, reporting_manager_id, replaced_by_emp_id,
       agreement_org_id, agreement_type, is_check_submit, agreed_periods,
       total_experience, profile_picture, created_by, is_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,
            $22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,1)
    RETURNING id
  `,
		e.FirstName, e.LastName, e.DateOfJoin, e.PrimaryMobileNo, nullIfEmpty(e.Email),
		nullIfEmpty(e.TempPayrollID), e.StatusID, nullIfEmpty(e.Remarks), nullIfEmpty(e.ChecklistIDs), nullIfEmpty(e.NoticePeriod),
		e.ContractStartDate, e.ContractEndDate,
		e.GenderID, e.DesignationID, e.DepartmentID, e.CategoryID,
		e.EmpTypeID, e.WorkModeID, e.JoinTypeID, e.ModeOfHiringID, e.CampusID,
		e.ReferenceEmpID, e.HiredByEmpID, e.ManagerID, e.ReportingManagerID, e.ReplacedByEmpID,
		e.AgreementOrgID, nullIfEmpty(e.AgreementType), e.IsCheckSubmit, e.AgreedPeriods,
		e.TotalExperience, nullIfEmpty(e.ProfilePicture), e.CreatedBy,
	).Scan(&e.ID)
}

func (s *Store) UpdateEmployeeTx(ctx context.Context, tx pgx.Tx, e Employee) error {
	_, err := tx.Exec(ctx, `
    UPDATE employees SET
      first_name = $2, last_name = $3, date_of_join = $4, primary_mobile_no = $5, email = $6,
      status_id = $7, remarks = $8,
      contract_start_date = $9, contract_end_date = $10,
      gender_id = $11, designation_id = $12, department_id = $13, category_id = $14,
      emp_type_id = $15, work_mode_id = $16, join_type_id = $17, mode_of_hiring_id = $18, campus_id = $19,
      reference_emp_id = $20, hired_by_emp_id = $21, manager_id = $22, reporting_manager_id = $23, replaced_by_emp_id = $24,
      agreement_org_id = $25, agreement_type = $26, is_check_submit = $27, agreed_periods = $28,
      total_experience = $29, profile_picture = $30,
      updated_at = now()
    WHERE id = $1
  `,
		e.ID, e.FirstName, e.LastName, e.DateOfJoin, e.PrimaryMobileNo, nullIfEmpty(e.Email),
		e.StatusID, nullIfEmpty(e.Remarks),
		e.ContractStartDate, e.ContractEndDate,
		e.GenderID, e.DesignationID, e.DepartmentID, e.CategoryID,
		e.EmpTypeID, e.WorkModeID, e.JoinTypeID, e.ModeOfHiringID, e.CampusID,
		e.ReferenceEmpID, e.HiredByEmpID, e.ManagerID, e.ReportingManagerID, e.ReplacedByEmpID,
		e.AgreementOrgID, nullIfEmpty(e.AgreementType), e.IsCheckSubmit, e.AgreedPeriods,
		e.TotalExperience, nullIfEmpty(e.ProfilePicture),
	)
	return err
}

func (s *Store) UpsertPersonalDetailsTx(ctx context.Context, tx pgx.Tx, d PersonalDetails) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_personal_details
      (employee_id, adhaar_name, date_of_birth, aadhar_num, aadhar_enrolment_num, pancard_num,
       blood_group_id, caste_id, religion_id, marital_status_id,
       emergency_ph_no, emergency_relation_id, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    ON CONFLICT (employee_id)
    DO UPDATE SET
      adhaar_name = EXCLUDED.adhaar_name,
      date_of_birth = EXCLUDED.date_of_birth,
      aadhar_num = EXCLUDED.aadhar_num,
      aadhar_enrolment_num = EXCLUDED.aadhar_enrolment_num,
      pancard_num = EXCLUDED.pancard_num,
      blood_group_id = EXCLUDED.blood_group_id,
      caste_id = EXCLUDED.caste_id,
      religion_id = EXCLUDED.religion_id,
      marital_status_id = EXCLUDED.marital_status_id,
      emergency_ph_no = EXCLUDED.emergency_ph_no,
      emergency_relation_id = EXCLUDED.emergency_relation_id,
      updated_at = now()
  `,
		d.EmployeeID, nullIfEmpty(d.AdhaarName), d.DateOfBirth, nullIfEmpty(d.AadharNum),
		nullIfEmpty(d.AadharEnrolmentNum), nullIfEmpty(d.PancardNum),
		d.BloodGroupID, d.CasteID, d.ReligionID, d.MaritalStatusID,
		d.EmergencyPhNo, d.EmergencyRelationID, d.CreatedBy,
	)
	return err
}

func (s *Store) UpsertPfRecordTx(ctx context.Context, tx pgx.Tx, rec PfRecord) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_pf_records (employee_id, pre_uan_num, pre_esi_num, created_by)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (employee_id)
    DO UPDATE SET
      pre_uan_num = EXCLUDED.pre_uan_num,
      pre_esi_num = EXCLUDED.pre_esi_num,
      updated_at = now()
  `, rec.EmployeeID, rec.PreUanNum, rec.PreEsiNum, rec.CreatedBy)
	return err
}

func (s *Store) SetHighestQualificationTx(ctx context.Context, tx pgx.Tx, employeeID, qualificationTypeID int64) error {
	_, err := tx.Exec(ctx,
		"UPDATE employees SET qualification_id = $2, updated_at = now() WHERE id = $1",
		employeeID, qualificationTypeID)
	return err
}

// UpsertSubjectTx keeps exactly one active subject row per employee;
// duplicate active rows found here are deactivated, not deleted.
func (s *Store) UpsertSubjectTx(ctx context.Context, tx pgx.Tx, employeeID, subjectID, periods, createdBy int64) error {
	rows, err := tx.Query(ctx, `
    SELECT id FROM employee_subjects
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(ids) == 0 {
		_, err := tx.Exec(ctx, `
      INSERT INTO employee_subjects (employee_id, subject_id, agreed_periods, created_by)
      VALUES ($1,$2,$3,$4)
    `, employeeID, subjectID, periods, createdBy)
		return err
	}

	if _, err := tx.Exec(ctx, `
    UPDATE employee_subjects SET subject_id = $2, agreed_periods = $3, updated_at = now()
    WHERE id = $1
  `, ids[0], subjectID, periods); err != nil {
		return err
	}
	for _, id := range ids[1:] {
		if _, err := tx.Exec(ctx, "UPDATE employee_subjects SET is_active = 0, updated_at = now() WHERE id = $1", id); err != nil {
			return err
		}
	}
	return nil
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
