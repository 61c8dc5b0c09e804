package onboarding

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListActiveAddressesTx(ctx context.Context, tx pgx.Tx, employeeID int64, addressType string) ([]Address, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, address_type, COALESCE(name, ''), COALESCE(address_line, ''),
           city_id, state_id, country_id, COALESCE(pin, ''), COALESCE(phone_number, '')
    FROM employee_addresses
    WHERE employee_id = $1 AND address_type = $2 AND is_active = 1
    ORDER BY id ASC
  `, employeeID, addressType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.AddressType, &a.Name, &a.AddressLine,
			&a.CityID, &a.StateID, &a.CountryID, &a.Pin, &a.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) InsertAddressTx(ctx context.Context, tx pgx.Tx, a Address) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_addresses
      (employee_id, address_type, name, address_line, city_id, state_id, country_id, pin, phone_number, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, a.EmployeeID, a.AddressType, nullIfEmpty(a.Name), nullIfEmpty(a.AddressLine),
		a.CityID, a.StateID, a.CountryID, nullIfEmpty(a.Pin), nullIfEmpty(a.PhoneNumber), a.CreatedBy)
	return err
}

func (s *Store) UpdateAddressTx(ctx context.Context, tx pgx.Tx, id int64, a Address) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_addresses SET
      name = $2, address_line = $3, city_id = $4, state_id = $5, country_id = $6,
      pin = $7, phone_number = $8, updated_at = now()
    WHERE id = $1
  `, id, nullIfEmpty(a.Name), nullIfEmpty(a.AddressLine), a.CityID, a.StateID, a.CountryID,
		nullIfEmpty(a.Pin), nullIfEmpty(a.PhoneNumber))
	return err
}

func (s *Store) DeactivateAddressTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_addresses SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) DeactivateAddressesOfTypeTx(ctx context.Context, tx pgx.Tx, employeeID int64, addressType string) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_addresses SET is_active = 0, updated_at = now()
    WHERE employee_id = $1 AND address_type = $2 AND is_active = 1
  `, employeeID, addressType)
	return err
}

func (s *Store) ListActiveFamilyTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]FamilyMember, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, COALESCE(first_name, ''), COALESCE(last_name, ''),
           relation_id, gender_id, blood_group_id,
           COALESCE(nationality, ''), COALESCE(occupation, ''), date_of_birth,
           is_late, is_dependent, is_org_employee, parent_emp_id,
           COALESCE(email, ''), COALESCE(phone_number, '')
    FROM employee_family_members
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FamilyMember
	for rows.Next() {
		var m FamilyMember
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.FirstName, &m.LastName,
			&m.RelationID, &m.GenderID, &m.BloodGroupID,
			&m.Nationality, &m.Occupation, &m.DateOfBirth,
			&m.IsLate, &m.IsDependent, &m.IsOrgEmployee, &m.ParentEmpID,
			&m.Email, &m.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) InsertFamilyTx(ctx context.Context, tx pgx.Tx, m FamilyMember) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_family_members
      (employee_id, first_name, last_name, relation_id, gender_id, blood_group_id,
       nationality, occupation, date_of_birth, is_late, is_dependent, is_org_employee,
       parent_emp_id, email, phone_number, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
  `, m.EmployeeID, nullIfEmpty(m.FirstName), nullIfEmpty(m.LastName), m.RelationID, m.GenderID, m.BloodGroupID,
		m.Nationality, m.Occupation, m.DateOfBirth, m.IsLate, m.IsDependent, m.IsOrgEmployee,
		m.ParentEmpID, nullIfEmpty(m.Email), nullIfEmpty(m.PhoneNumber), m.CreatedBy)
	return err
}

func (s *Store) UpdateFamilyTx(ctx context.Context, tx pgx.Tx, id int64, m FamilyMember) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_family_members SET
      first_name = $2, last_name = $3, relation_id = $4, gender_id = $5, blood_group_id = $6,
      nationality = $7, occupation = $8, date_of_birth = $9, is_late = $10, is_dependent = $11,
      is_org_employee = $12, parent_emp_id = $13, email = $14, phone_number = $15,
      updated_at = now()
    WHERE id = $1
  `, id, nullIfEmpty(m.FirstName), nullIfEmpty(m.LastName), m.RelationID, m.GenderID, m.BloodGroupID,
		m.Nationality, m.Occupation, m.DateOfBirth, m.IsLate, m.IsDependent,
		m.IsOrgEmployee, m.ParentEmpID, nullIfEmpty(m.Email), nullIfEmpty(m.PhoneNumber))
	return err
}

func (s *Store) DeactivateFamilyTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_family_members SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) ListActivePriorEmploymentsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]PriorEmployment, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, company_name, designation, from_date, to_date,
           leaving_reason, nature_of_duties, company_address
    FROM employee_prior_employments
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PriorEmployment
	for rows.Next() {
		var p PriorEmployment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.CompanyName, &p.Designation,
			&p.FromDate, &p.ToDate, &p.LeavingReason, &p.NatureOfDuties, &p.CompanyAddress); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) InsertPriorEmploymentTx(ctx context.Context, tx pgx.Tx, p PriorEmployment) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_prior_employments
      (employee_id, company_name, designation, from_date, to_date,
       leaving_reason, nature_of_duties, company_address, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, p.EmployeeID, p.CompanyName, p.Designation, p.FromDate, p.ToDate,
		p.LeavingReason, p.NatureOfDuties, p.CompanyAddress, p.CreatedBy)
	return err
}

func (s *Store) UpdatePriorEmploymentTx(ctx context.Context, tx pgx.Tx, id int64, p PriorEmployment) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_prior_employments SET
      company_name = $2, designation = $3, from_date = $4, to_date = $5,
      leaving_reason = $6, nature_of_duties = $7, company_address = $8,
      updated_at = now()
    WHERE id = $1
  `, id, p.CompanyName, p.Designation, p.FromDate, p.ToDate,
		p.LeavingReason, p.NatureOfDuties, p.CompanyAddress)
	return err
}

func (s *Store) DeactivatePriorEmploymentTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_prior_employments SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) ListActiveQualificationsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Qualification, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, qualification_type_id, COALESCE(qualification_degree_id, 0),
           COALESCE(specialization, ''), COALESCE(university, ''), COALESCE(institute, ''),
           passed_out_year, COALESCE(certificate_file, ''), is_highest
    FROM employee_qualifications
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Qualification
	for rows.Next() {
		var q Qualification
		if err := rows.Scan(&q.ID, &q.EmployeeID, &q.QualificationTypeID, &q.QualificationDegreeID,
			&q.Specialization, &q.University, &q.Institute,
			&q.PassedOutYear, &q.CertificateFile, &q.IsHighest); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) InsertQualificationTx(ctx context.Context, tx pgx.Tx, q Qualification) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_qualifications
      (employee_id, qualification_type_id, qualification_degree_id, specialization,
       university, institute, passed_out_year, certificate_file, is_highest, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, q.EmployeeID, q.QualificationTypeID, nullIfZero(q.QualificationDegreeID), nullIfEmpty(q.Specialization),
		nullIfEmpty(q.University), nullIfEmpty(q.Institute), q.PassedOutYear, nullIfEmpty(q.CertificateFile),
		q.IsHighest, q.CreatedBy)
	return err
}

func (s *Store) UpdateQualificationTx(ctx context.Context, tx pgx.Tx, id int64, q Qualification) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_qualifications SET
      qualification_type_id = $2, qualification_degree_id = $3, specialization = $4,
      university = $5, institute = $6, passed_out_year = $7, certificate_file = $8,
      is_highest = $9, updated_at = now()
    WHERE id = $1
  `, id, q.QualificationTypeID, nullIfZero(q.QualificationDegreeID), nullIfEmpty(q.Specialization),
		nullIfEmpty(q.University), nullIfEmpty(q.Institute), q.PassedOutYear, nullIfEmpty(q.CertificateFile),
		q.IsHighest)
	return err
}

func (s *Store) DeactivateQualificationTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_qualifications SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) ListActiveDocumentsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Document, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, doc_type_id, COALESCE(doc_path, ''), is_verified
    FROM employee_documents
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.DocTypeID, &d.DocPath, &d.IsVerified); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) InsertDocumentTx(ctx context.Context, tx pgx.Tx, d Document) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_documents (employee_id, doc_type_id, doc_path, is_verified, created_by)
    VALUES ($1,$2,$3,$4,$5)
  `, d.EmployeeID, d.DocTypeID, nullIfEmpty(d.DocPath), d.IsVerified, d.CreatedBy)
	return err
}

func (s *Store) UpdateDocumentTx(ctx context.Context, tx pgx.Tx, id int64, d Document) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_documents SET doc_type_id = $2, doc_path = $3, is_verified = $4, updated_at = now()
    WHERE id = $1
  `, id, d.DocTypeID, nullIfEmpty(d.DocPath), d.IsVerified)
	return err
}

func (s *Store) DeactivateDocumentTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_documents SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) FindActiveDocumentByTypeTx(ctx context.Context, tx pgx.Tx, employeeID, docTypeID int64) (Document, bool, error) {
	var d Document
	err := tx.QueryRow(ctx, `
    SELECT id, employee_id, doc_type_id, COALESCE(doc_path, ''), is_verified
    FROM employee_documents
    WHERE employee_id = $1 AND doc_type_id = $2 AND is_active = 1
    ORDER BY id ASC
    LIMIT 1
  `, employeeID, docTypeID).Scan(&d.ID, &d.EmployeeID, &d.DocTypeID, &d.DocPath, &d.IsVerified)
	if err == pgx.ErrNoRows {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, err
	}
	return d, true, nil
}

func (s *Store) UpdateDocumentPathTx(ctx context.Context, tx pgx.Tx, id int64, path string) error {
	_, err := tx.Exec(ctx, "UPDATE employee_documents SET doc_path = $2, updated_at = now() WHERE id = $1", id, path)
	return err
}

func (s *Store) ListActiveBankAccountsTx(ctx context.Context, tx pgx.Tx, employeeID int64, accountType string) ([]BankAccount, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, account_type, acc_no, ifsc_code, holder_name,
           bank_id, bank_branch_id, payment_type_id
    FROM employee_bank_accounts
    WHERE employee_id = $1 AND account_type = $2 AND is_active = 1
    ORDER BY id ASC
  `, employeeID, accountType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BankAccount
	for rows.Next() {
		var b BankAccount
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.AccountType, &b.AccNo, &b.IfscCode, &b.HolderName,
			&b.BankID, &b.BankBranchID, &b.PaymentTypeID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) InsertBankAccountTx(ctx context.Context, tx pgx.Tx, b BankAccount) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_bank_accounts
      (employee_id, account_type, acc_no, ifsc_code, holder_name, bank_id, bank_branch_id, payment_type_id, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, b.EmployeeID, b.AccountType, b.AccNo, b.IfscCode, b.HolderName, b.BankID, b.BankBranchID, b.PaymentTypeID, b.CreatedBy)
	return err
}

func (s *Store) UpdateBankAccountTx(ctx context.Context, tx pgx.Tx, id int64, b BankAccount) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_bank_accounts SET
      acc_no = $2, ifsc_code = $3, holder_name = $4, bank_id = $5, bank_branch_id = $6,
      payment_type_id = $7, updated_at = now()
    WHERE id = $1
  `, id, b.AccNo, b.IfscCode, b.HolderName, b.BankID, b.BankBranchID, b.PaymentTypeID)
	return err
}

func (s *Store) DeactivateBankAccountTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_bank_accounts SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) ListActiveChequesTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Cheque, error) {
	rows, err := tx.Query(ctx, `
    SELECT id, employee_id, cheque_no, COALESCE(bank_name, ''), COALESCE(ifsc_code, '')
    FROM employee_cheques
    WHERE employee_id = $1 AND is_active = 1
    ORDER BY id ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Cheque
	for rows.Next() {
		var c Cheque
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.ChequeNo, &c.BankName, &c.IfscCode); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) InsertChequeTx(ctx context.Context, tx pgx.Tx, c Cheque) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO employee_cheques (employee_id, cheque_no, bank_name, ifsc_code, created_by)
    VALUES ($1,$2,$3,$4,$5)
  `, c.EmployeeID, c.ChequeNo, c.BankName, c.IfscCode, c.CreatedBy)
	return err
}

func (s *Store) UpdateChequeTx(ctx context.Context, tx pgx.Tx, id int64, c Cheque) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_cheques SET cheque_no = $2, bank_name = $3, ifsc_code = $4, updated_at = now()
    WHERE id = $1
  `, id, c.ChequeNo, c.BankName, c.IfscCode)
	return err
}

func (s *Store) DeactivateChequeTx(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE employee_cheques SET is_active = 0, updated_at = now() WHERE id = $1", id)
	return err
}

func (s *Store) DeactivateAllChequesTx(ctx context.Context, tx pgx.Tx, employeeID int64) error {
	_, err := tx.Exec(ctx, `
    UPDATE employee_cheques SET is_active = 0, updated_at = now()
    WHERE employee_id = $1 AND is_active = 1
  `, employeeID)
	return err
}

func nullIfZero(value int64) *int64 {
	if value == 0 {
		return nil
	}
	return &value
}
