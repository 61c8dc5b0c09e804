package onboarding

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
	"onboard/internal/domain/status"
)

type refRow struct {
	name   string
	active bool
}

type fakeRef struct {
	rows map[refdata.Kind]map[int64]refRow
}

func newFakeRef() *fakeRef {
	f := &fakeRef{rows: map[refdata.Kind]map[int64]refRow{}}
	f.add(refdata.KindGender, 1, "Male", true)
	f.add(refdata.KindGender, 2, "Female", true)
	f.add(refdata.KindDesignation, 1, "Teacher", true)
	f.add(refdata.KindDepartment, 1, "Science", true)
	f.add(refdata.KindCategory, 1, "Teaching", true)
	f.add(refdata.KindBloodGroup, 1, "O+", true)
	f.add(refdata.KindCaste, 1, "General", true)
	f.add(refdata.KindReligion, 1, "None", true)
	f.add(refdata.KindMaritalStatus, 1, "Single", true)
	f.add(refdata.KindJoinType, 1, "Fresh", true)
	f.add(refdata.KindJoinType, 2, "Replacement", true)
	f.add(refdata.KindJoinType, 3, "Contract", true)
	f.add(refdata.KindRelation, 1, "Father", true)
	f.add(refdata.KindRelation, 2, "Mother", true)
	f.add(refdata.KindRelation, 3, "Spouse", true)
	f.add(refdata.KindCountry, 1, "India", true)
	f.add(refdata.KindState, 1, "Telangana", true)
	f.add(refdata.KindCity, 1, "Hyderabad", true)
	f.add(refdata.KindQualificationType, 1, "Graduate", true)
	f.add(refdata.KindQualificationType, 2, "Post Graduate", true)
	f.add(refdata.KindQualificationDegree, 1, "B.Sc", true)
	f.add(refdata.KindDocumentType, 1, "Aadhaar Card", true)
	f.add(refdata.KindDocumentType, 2, FamilyPhotoDocumentType, true)
	f.add(refdata.KindPaymentType, 1, "Bank Transfer", true)
	f.add(refdata.KindSubject, 1, "Physics", true)
	f.add(refdata.KindEmployeeType, 1, "Full Time", true)
	f.add(refdata.KindAgreementOrg, 1, "Head Office", true)
	f.add(refdata.KindWorkingMode, 1, "On Site", true)
	f.add(refdata.KindModeOfHiring, 1, "Campus Drive", true)
	f.add(refdata.KindCampus, 1, "Main Campus", true)
	return f
}

func (f *fakeRef) add(kind refdata.Kind, id int64, name string, active bool) {
	if f.rows[kind] == nil {
		f.rows[kind] = map[int64]refRow{}
	}
	f.rows[kind][id] = refRow{name: name, active: active}
}

func (f *fakeRef) Exists(_ context.Context, kind refdata.Kind, id int64) (bool, error) {
	_, ok := f.rows[kind][id]
	return ok, nil
}

func (f *fakeRef) ExistsActive(_ context.Context, kind refdata.Kind, id int64) (bool, error) {
	row, ok := f.rows[kind][id]
	return ok && row.active, nil
}

func (f *fakeRef) Name(_ context.Context, kind refdata.Kind, id int64) (string, error) {
	row, ok := f.rows[kind][id]
	if !ok {
		return "", apperr.NotFoundf("%s %d", kind, id)
	}
	return row.name, nil
}

func (f *fakeRef) IDByName(_ context.Context, kind refdata.Kind, name string) (int64, error) {
	for id, row := range f.rows[kind] {
		if row.active && strings.EqualFold(row.name, name) {
			return id, nil
		}
	}
	return 0, apperr.NotFoundf("%s %q", kind, name)
}

type fakeRegistry struct{}

var statusTable = []status.Status{
	{ID: 1, Name: status.PendingAtDO},
	{ID: 2, Name: status.PendingAtCO},
	{ID: 3, Name: status.Confirm},
	{ID: 4, Name: status.BackToDO},
	{ID: 5, Name: status.BackToCampus},
	{ID: 6, Name: status.ForwardToCO},
}

func (fakeRegistry) ByName(_ context.Context, name string) (status.Status, error) {
	for _, st := range statusTable {
		if st.Name == name {
			return st, nil
		}
	}
	return status.Status{}, apperr.NotFoundf("status %q", name)
}

func (fakeRegistry) ByID(_ context.Context, id int64) (status.Status, error) {
	for _, st := range statusTable {
		if st.ID == id {
			return st, nil
		}
	}
	return status.Status{}, apperr.NotFoundf("status %d", id)
}

// memTable is an in-memory stand-in for one child table: rows keep
// their ids, deactivation keeps the row around.
type memTable[T any] struct {
	ids    []int64
	rows   []T
	active []bool
	next   *int64
	setID  func(*T, int64)
}

func (t *memTable[T]) insert(v T) {
	*t.next++
	t.setID(&v, *t.next)
	t.ids = append(t.ids, *t.next)
	t.rows = append(t.rows, v)
	t.active = append(t.active, true)
}

func (t *memTable[T]) listActive(keep func(T) bool) []T {
	var out []T
	for i, row := range t.rows {
		if t.active[i] && (keep == nil || keep(row)) {
			out = append(out, row)
		}
	}
	return out
}

func (t *memTable[T]) update(id int64, v T) {
	for i, rid := range t.ids {
		if rid == id {
			t.setID(&v, id)
			t.rows[i] = v
		}
	}
}

func (t *memTable[T]) deactivate(id int64) {
	for i, rid := range t.ids {
		if rid == id {
			t.active[i] = false
		}
	}
}

type fakeStore struct {
	nextID int64

	employees map[int64]*Employee
	byTempID  map[string]int64

	activeEmployees map[int64]bool
	skillTests      map[string]bool

	personal map[int64]PersonalDetails
	pf       map[int64]PfRecord

	addresses memTable[Address]
	family    memTable[FamilyMember]
	priors    memTable[PriorEmployment]
	quals     memTable[Qualification]
	docs      memTable[Document]
	banks     memTable[BankAccount]
	cheques   memTable[Cheque]

	subjects    []int64
	highestQual map[int64]int64
}

func newFakeStore() *fakeStore {
	f := &fakeStore{
		employees:       map[int64]*Employee{},
		byTempID:        map[string]int64{},
		activeEmployees: map[int64]bool{},
		skillTests:      map[string]bool{"TP100": true},
		personal:        map[int64]PersonalDetails{},
		pf:              map[int64]PfRecord{},
		highestQual:     map[int64]int64{},
	}
	f.addresses = memTable[Address]{next: &f.nextID, setID: func(a *Address, id int64) { a.ID = id }}
	f.family = memTable[FamilyMember]{next: &f.nextID, setID: func(m *FamilyMember, id int64) { m.ID = id }}
	f.priors = memTable[PriorEmployment]{next: &f.nextID, setID: func(p *PriorEmployment, id int64) { p.ID = id }}
	f.quals = memTable[Qualification]{next: &f.nextID, setID: func(q *Qualification, id int64) { q.ID = id }}
	f.docs = memTable[Document]{next: &f.nextID, setID: func(d *Document, id int64) { d.ID = id }}
	f.banks = memTable[BankAccount]{next: &f.nextID, setID: func(b *BankAccount, id int64) { b.ID = id }}
	f.cheques = memTable[Cheque]{next: &f.nextID, setID: func(c *Cheque, id int64) { c.ID = id }}
	return f
}

func (f *fakeStore) FindEmployeeByTempPayrollID(_ context.Context, tempPayrollID string) (Employee, error) {
	id, ok := f.byTempID[tempPayrollID]
	if !ok {
		return Employee{}, apperr.NotFoundf("employee with temp payroll id %s", tempPayrollID)
	}
	return *f.employees[id], nil
}

func (f *fakeStore) EmployeeActive(_ context.Context, id int64) (bool, error) {
	active, ok := f.activeEmployees[id]
	if !ok {
		return false, apperr.NotFoundf("employee %d", id)
	}
	return active, nil
}

func (f *fakeStore) SkillTestExists(_ context.Context, tempPayrollID string) (bool, error) {
	return f.skillTests[tempPayrollID], nil
}

func (f *fakeStore) RunInTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func (f *fakeStore) InsertEmployeeTx(_ context.Context, _ pgx.Tx, e *Employee) error {
	f.nextID++
	e.ID = f.nextID
	stored := *e
	f.employees[e.ID] = &stored
	if e.TempPayrollID != "" {
		f.byTempID[e.TempPayrollID] = e.ID
	}
	f.activeEmployees[e.ID] = true
	return nil
}

func (f *fakeStore) UpdateEmployeeTx(_ context.Context, _ pgx.Tx, e Employee) error {
	stored := e
	f.employees[e.ID] = &stored
	return nil
}

func (f *fakeStore) UpsertPersonalDetailsTx(_ context.Context, _ pgx.Tx, d PersonalDetails) error {
	f.personal[d.EmployeeID] = d
	return nil
}

func (f *fakeStore) UpsertPfRecordTx(_ context.Context, _ pgx.Tx, rec PfRecord) error {
	f.pf[rec.EmployeeID] = rec
	return nil
}

func (f *fakeStore) ListActiveAddressesTx(_ context.Context, _ pgx.Tx, employeeID int64, addressType string) ([]Address, error) {
	return f.addresses.listActive(func(a Address) bool {
		return a.EmployeeID == employeeID && a.AddressType == addressType
	}), nil
}

func (f *fakeStore) InsertAddressTx(_ context.Context, _ pgx.Tx, a Address) error {
	f.addresses.insert(a)
	return nil
}

func (f *fakeStore) UpdateAddressTx(_ context.Context, _ pgx.Tx, id int64, a Address) error {
	f.addresses.update(id, a)
	return nil
}

func (f *fakeStore) DeactivateAddressTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.addresses.deactivate(id)
	return nil
}

func (f *fakeStore) DeactivateAddressesOfTypeTx(_ context.Context, _ pgx.Tx, employeeID int64, addressType string) error {
	for _, a := range f.addresses.listActive(func(a Address) bool {
		return a.EmployeeID == employeeID && a.AddressType == addressType
	}) {
		f.addresses.deactivate(a.ID)
	}
	return nil
}

func (f *fakeStore) ListActiveFamilyTx(_ context.Context, _ pgx.Tx, employeeID int64) ([]FamilyMember, error) {
	return f.family.listActive(func(m FamilyMember) bool { return m.EmployeeID == employeeID }), nil
}

func (f *fakeStore) InsertFamilyTx(_ context.Context, _ pgx.Tx, m FamilyMember) error {
	f.family.insert(m)
	return nil
}

func (f *fakeStore) UpdateFamilyTx(_ context.Context, _ pgx.Tx, id int64, m FamilyMember) error {
	f.family.update(id, m)
	return nil
}

func (f *fakeStore) DeactivateFamilyTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.family.deactivate(id)
	return nil
}

func (f *fakeStore) ListActivePriorEmploymentsTx(_ context.Context, _ pgx.Tx, employeeID int64) ([]PriorEmployment, error) {
	return f.priors.listActive(func(p PriorEmployment) bool { return p.EmployeeID == employeeID }), nil
}

func (f *fakeStore) InsertPriorEmploymentTx(_ context.Context, _ pgx.Tx, p PriorEmployment) error {
	f.priors.insert(p)
	return nil
}

func (f *fakeStore) UpdatePriorEmploymentTx(_ context.Context, _ pgx.Tx, id int64, p PriorEmployment) error {
	f.priors.update(id, p)
	return nil
}

func (f *fakeStore) DeactivatePriorEmploymentTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.priors.deactivate(id)
	return nil
}

func (f *fakeStore) ListActiveQualificationsTx(_ context.Context, _ pgx.Tx, employeeID int64) ([]Qualification, error) {
	return f.quals.listActive(func(q Qualification) bool { return q.EmployeeID == employeeID }), nil
}

func (f *fakeStore) InsertQualificationTx(_ context.Context, _ pgx.Tx, q Qualification) error {
	f.quals.insert(q)
	return nil
}

func (f *fakeStore) UpdateQualificationTx(_ context.Context, _ pgx.Tx, id int64, q Qualification) error {
	f.quals.update(id, q)
	return nil
}

func (f *fakeStore) DeactivateQualificationTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.quals.deactivate(id)
	return nil
}

func (f *fakeStore) ListActiveDocumentsTx(_ context.Context, _ pgx.Tx, employeeID int64) ([]Document, error) {
	return f.docs.listActive(func(d Document) bool { return d.EmployeeID == employeeID }), nil
}

func (f *fakeStore) InsertDocumentTx(_ context.Context, _ pgx.Tx, d Document) error {
	f.docs.insert(d)
	return nil
}

func (f *fakeStore) UpdateDocumentTx(_ context.Context, _ pgx.Tx, id int64, d Document) error {
	f.docs.update(id, d)
	return nil
}

func (f *fakeStore) DeactivateDocumentTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.docs.deactivate(id)
	return nil
}

func (f *fakeStore) FindActiveDocumentByTypeTx(_ context.Context, _ pgx.Tx, employeeID, docTypeID int64) (Document, bool, error) {
	matches := f.docs.listActive(func(d Document) bool {
		return d.EmployeeID == employeeID && d.DocTypeID == docTypeID
	})
	if len(matches) == 0 {
		return Document{}, false, nil
	}
	return matches[0], true, nil
}

func (f *fakeStore) UpdateDocumentPathTx(_ context.Context, _ pgx.Tx, id int64, path string) error {
	for i, rid := range f.docs.ids {
		if rid == id {
			f.docs.rows[i].DocPath = path
		}
	}
	return nil
}

func (f *fakeStore) ListActiveBankAccountsTx(_ context.Context, _ pgx.Tx, employeeID int64, accountType string) ([]BankAccount, error) {
	return f.banks.listActive(func(b BankAccount) bool {
		return b.EmployeeID == employeeID && b.AccountType == accountType
	}), nil
}

func (f *fakeStore) InsertBankAccountTx(_ context.Context, _ pgx.Tx, b BankAccount) error {
	f.banks.insert(b)
	return nil
}

func (f *fakeStore) UpdateBankAccountTx(_ context.Context, _ pgx.Tx, id int64, b BankAccount) error {
	f.banks.update(id, b)
	return nil
}

func (f *fakeStore) DeactivateBankAccountTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.banks.deactivate(id)
	return nil
}

func (f *fakeStore) ListActiveChequesTx(_ context.Context, _ pgx.Tx, employeeID int64) ([]Cheque, error) {
	return f.cheques.listActive(func(c Cheque) bool { return c.EmployeeID == employeeID }), nil
}

func (f *fakeStore) InsertChequeTx(_ context.Context, _ pgx.Tx, c Cheque) error {
	f.cheques.insert(c)
	return nil
}

func (f *fakeStore) UpdateChequeTx(_ context.Context, _ pgx.Tx, id int64, c Cheque) error {
	f.cheques.update(id, c)
	return nil
}

func (f *fakeStore) DeactivateChequeTx(_ context.Context, _ pgx.Tx, id int64) error {
	f.cheques.deactivate(id)
	return nil
}

func (f *fakeStore) DeactivateAllChequesTx(_ context.Context, _ pgx.Tx, employeeID int64) error {
	for _, c := range f.cheques.listActive(func(c Cheque) bool { return c.EmployeeID == employeeID }) {
		f.cheques.deactivate(c.ID)
	}
	return nil
}

func (f *fakeStore) SetHighestQualificationTx(_ context.Context, _ pgx.Tx, employeeID, qualificationTypeID int64) error {
	f.highestQual[employeeID] = qualificationTypeID
	if emp, ok := f.employees[employeeID]; ok {
		id := qualificationTypeID
		emp.QualificationID = &id
	}
	return nil
}

func (f *fakeStore) UpsertSubjectTx(_ context.Context, _ pgx.Tx, employeeID, subjectID, periods, createdBy int64) error {
	f.subjects = append(f.subjects, subjectID)
	return nil
}
