package onboarding

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// StoreAPI is the persistence surface the orchestrator depends on.
// Methods suffixed Tx run inside the transaction passed to the
// RunInTx callback; everything else is a standalone read.
type StoreAPI interface {
	FindEmployeeByTempPayrollID(ctx context.Context, tempPayrollID string) (Employee, error)
	EmployeeActive(ctx context.Context, id int64) (bool, error)
	SkillTestExists(ctx context.Context, tempPayrollID string) (bool, error)

	RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error

	InsertEmployeeTx(ctx context.Context, tx pgx.Tx, e *Employee) error
	UpdateEmployeeTx(ctx context.Context, tx pgx.Tx, e Employee) error
	UpsertPersonalDetailsTx(ctx context.Context, tx pgx.Tx, d PersonalDetails) error
	UpsertPfRecordTx(ctx context.Context, tx pgx.Tx, rec PfRecord) error

	ListActiveAddressesTx(ctx context.Context, tx pgx.Tx, employeeID int64, addressType string) ([]Address, error)
	InsertAddressTx(ctx context.Context, tx pgx.Tx, a Address) error
	UpdateAddressTx(ctx context.Context, tx pgx.Tx, id int64, a Address) error
	DeactivateAddressTx(ctx context.Context, tx pgx.Tx, id int64) error
	DeactivateAddressesOfTypeTx(ctx context.Context, tx pgx.Tx, employeeID int64, addressType string) error

	ListActiveFamilyTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]FamilyMember, error)
	InsertFamilyTx(ctx context.Context, tx pgx.Tx, m FamilyMember) error
	UpdateFamilyTx(ctx context.Context, tx pgx.Tx, id int64, m FamilyMember) error
	DeactivateFamilyTx(ctx context.Context, tx pgx.Tx, id int64) error

	ListActivePriorEmploymentsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]PriorEmployment, error)
	InsertPriorEmploymentTx(ctx context.Context, tx pgx.Tx, p PriorEmployment) error
	UpdatePriorEmploymentTx(ctx context.Context, tx pgx.Tx, id int64, p PriorEmployment) error
	DeactivatePriorEmploymentTx(ctx context.Context, tx pgx.Tx, id int64) error

	ListActiveQualificationsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Qualification, error)
	InsertQualificationTx(ctx context.Context, tx pgx.Tx, q Qualification) error
	UpdateQualificationTx(ctx context.Context, tx pgx.Tx, id int64, q Qualification) error
	DeactivateQualificationTx(ctx context.Context, tx pgx.Tx, id int64) error

	ListActiveDocumentsTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Document, error)
	InsertDocumentTx(ctx context.Context, tx pgx.Tx, d Document) error
	UpdateDocumentTx(ctx context.Context, tx pgx.Tx, id int64, d Document) error
	DeactivateDocumentTx(ctx context.Context, tx pgx.Tx, id int64) error
	FindActiveDocumentByTypeTx(ctx context.Context, tx pgx.Tx, employeeID, docTypeID int64) (Document, bool, error)
	UpdateDocumentPathTx(ctx context.Context, tx pgx.Tx, id int64, path string) error

	ListActiveBankAccountsTx(ctx context.Context, tx pgx.Tx, employeeID int64, accountType string) ([]BankAccount, error)
	InsertBankAccountTx(ctx context.Context, tx pgx.Tx, b BankAccount) error
	UpdateBankAccountTx(ctx context.Context, tx pgx.Tx, id int64, b BankAccount) error
	DeactivateBankAccountTx(ctx context.Context, tx pgx.Tx, id int64) error

	ListActiveChequesTx(ctx context.Context, tx pgx.Tx, employeeID int64) ([]Cheque, error)
	InsertChequeTx(ctx context.Context, tx pgx.Tx, c Cheque) error
	UpdateChequeTx(ctx context.Context, tx pgx.Tx, id int64, c Cheque) error
	DeactivateChequeTx(ctx context.Context, tx pgx.Tx, id int64) error
	DeactivateAllChequesTx(ctx context.Context, tx pgx.Tx, employeeID int64) error

	SetHighestQualificationTx(ctx context.Context, tx pgx.Tx, employeeID, qualificationTypeID int64) error
	UpsertSubjectTx(ctx context.Context, tx pgx.Tx, employeeID, subjectID, periods, createdBy int64) error
}
