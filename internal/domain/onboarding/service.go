package onboarding

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
	"onboard/internal/domain/status"
)

// Service is the onboarding orchestrator: Resolve, Validate, Prepare,
// Commit, post-commit adjustments, all inside one request and one
// database transaction for the write phase.
type Service struct {
	store    StoreAPI
	ref      refdata.API
	registry status.Registry
	preparer Preparer
}

func NewService(store StoreAPI, ref refdata.API, registry status.Registry, defaults Defaults) *Service {
	return &Service{
		store:    store,
		ref:      ref,
		registry: registry,
		preparer: Preparer{Ref: ref, Defaults: defaults},
	}
}

// Onboard processes one submission and returns it with the assigned
// employee id filled in. Insert vs update mode is decided once, by
// resolving the temporary payroll id.
func (s *Service) Onboard(ctx context.Context, sub Submission) (Submission, error) {
	existing, err := s.resolve(ctx, sub)
	if err != nil {
		return Submission{}, err
	}

	validator := &Validator{Ref: s.ref, Dir: s.store}
	if err := validator.Validate(ctx, sub); err != nil {
		return Submission{}, err
	}
	if err := PreFlight(sub); err != nil {
		return Submission{}, err
	}

	var insertStatusID int64
	if existing == nil {
		pending, err := s.registry.ByName(ctx, status.PendingAtDO)
		if err != nil {
			return Submission{}, err
		}
		insertStatusID = pending.ID
	}

	bundle, err := s.preparer.Prepare(ctx, sub, existing, insertStatusID)
	if err != nil {
		return Submission{}, err
	}

	if existing != nil {
		if err := s.applyResubmission(ctx, existing, &bundle); err != nil {
			return Submission{}, err
		}
	}

	if err := s.store.RunInTx(ctx, func(tx pgx.Tx) error {
		return s.commit(ctx, tx, &bundle)
	}); err != nil {
		slog.Error("onboarding commit failed", "tempPayrollId", sub.BasicInfo.TempPayrollID, "err", err)
		return Submission{}, err
	}

	out := sub
	out.BasicInfo.EmpID = bundle.Employee.ID
	return out, nil
}

func (s *Service) resolve(ctx context.Context, sub Submission) (*Employee, error) {
	tempPayrollID := strings.TrimSpace(sub.BasicInfo.TempPayrollID)
	if tempPayrollID == "" {
		return nil, nil
	}
	employee, err := s.store.FindEmployeeByTempPayrollID(ctx, tempPayrollID)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// applyResubmission moves an employee sent back to the campus into
// Demand Officer review again and clears the rejection remarks.
func (s *Service) applyResubmission(ctx context.Context, existing *Employee, bundle *Prepared) error {
	current, err := s.registry.ByID(ctx, existing.StatusID)
	if err != nil {
		return err
	}
	if current.Name != status.BackToCampus || !status.CanTransition(current.Name, status.PendingAtDO) {
		return nil
	}
	pending, err := s.registry.ByName(ctx, status.PendingAtDO)
	if err != nil {
		return err
	}
	bundle.Employee.StatusID = pending.ID
	bundle.Employee.Remarks = ""
	return nil
}

// commit writes the whole graph: the employee row first (insert mode
// generates the id here), then every child collection reconciled
// positionally, then the post-save adjustments. Any error rolls the
// entire transaction back; an id consumed by the employee insert is
// not reclaimed.
func (s *Service) commit(ctx context.Context, tx pgx.Tx, bundle *Prepared) error {
	if bundle.Mode == ModeInsert {
		if err := s.store.InsertEmployeeTx(ctx, tx, &bundle.Employee); err != nil {
			return err
		}
	} else {
		if err := s.store.UpdateEmployeeTx(ctx, tx, bundle.Employee); err != nil {
			return err
		}
	}
	employeeID := bundle.Employee.ID

	bundle.Personal.EmployeeID = employeeID
	if err := s.store.UpsertPersonalDetailsTx(ctx, tx, bundle.Personal); err != nil {
		return err
	}
	if bundle.Pf != nil {
		bundle.Pf.EmployeeID = employeeID
		if err := s.store.UpsertPfRecordTx(ctx, tx, *bundle.Pf); err != nil {
			return err
		}
	}

	if err := s.commitAddresses(ctx, tx, employeeID, bundle); err != nil {
		return err
	}
	if err := s.commitFamily(ctx, tx, employeeID, bundle.Family); err != nil {
		return err
	}
	if err := s.commitPriorEmployments(ctx, tx, employeeID, bundle.PriorEmployments); err != nil {
		return err
	}
	if err := s.commitQualifications(ctx, tx, employeeID, bundle.Qualifications); err != nil {
		return err
	}
	if err := s.commitDocuments(ctx, tx, employeeID, bundle); err != nil {
		return err
	}
	if err := s.commitBankAccounts(ctx, tx, employeeID, bundle.BankAccounts); err != nil {
		return err
	}
	if err := s.commitCheques(ctx, tx, employeeID, bundle); err != nil {
		return err
	}

	if bundle.SubjectID != nil && bundle.AgreedPeriods != nil {
		if err := s.store.UpsertSubjectTx(ctx, tx, employeeID, *bundle.SubjectID, *bundle.AgreedPeriods, bundle.Employee.CreatedBy); err != nil {
			return err
		}
	}
	if err := s.commitFamilyPhoto(ctx, tx, employeeID, bundle); err != nil {
		return err
	}
	if bundle.HighestQualTypeID != nil {
		if err := s.store.SetHighestQualificationTx(ctx, tx, employeeID, *bundle.HighestQualTypeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) commitAddresses(ctx context.Context, tx pgx.Tx, employeeID int64, bundle *Prepared) error {
	byType := map[string][]Address{}
	for _, addr := range bundle.Addresses {
		addr.EmployeeID = employeeID
		byType[addr.AddressType] = append(byType[addr.AddressType], addr)
	}

	for _, addressType := range []string{AddressTypeCurrent, AddressTypePermanent} {
		if addressType == AddressTypePermanent && bundle.PermanentSameAsCurrent {
			if err := s.store.DeactivateAddressesOfTypeTx(ctx, tx, employeeID, AddressTypePermanent); err != nil {
				return err
			}
			continue
		}
		incoming := byType[addressType]
		if len(incoming) == 0 && bundle.Mode == ModeInsert {
			continue
		}
		existing, err := s.store.ListActiveAddressesTx(ctx, tx, employeeID, addressType)
		if err != nil {
			return err
		}
		err = ReconcileByPosition(existing, incoming,
			func(old Address, next Address) error { return s.store.UpdateAddressTx(ctx, tx, old.ID, next) },
			func(next Address) error { return s.store.InsertAddressTx(ctx, tx, next) },
			func(old Address) error { return s.store.DeactivateAddressTx(ctx, tx, old.ID) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) commitFamily(ctx context.Context, tx pgx.Tx, employeeID int64, incoming []FamilyMember) error {
	for i := range incoming {
		incoming[i].EmployeeID = employeeID
	}
	existing, err := s.store.ListActiveFamilyTx(ctx, tx, employeeID)
	if err != nil {
		return err
	}
	return ReconcileByPosition(existing, incoming,
		func(old FamilyMember, next FamilyMember) error { return s.store.UpdateFamilyTx(ctx, tx, old.ID, next) },
		func(next FamilyMember) error { return s.store.InsertFamilyTx(ctx, tx, next) },
		func(old FamilyMember) error { return s.store.DeactivateFamilyTx(ctx, tx, old.ID) },
	)
}

func (s *Service) commitPriorEmployments(ctx context.Context, tx pgx.Tx, employeeID int64, incoming []PriorEmployment) error {
	for i := range incoming {
		incoming[i].EmployeeID = employeeID
	}
	existing, err := s.store.ListActivePriorEmploymentsTx(ctx, tx, employeeID)
	if err != nil {
		return err
	}
	return ReconcileByPosition(existing, incoming,
		func(old PriorEmployment, next PriorEmployment) error {
			return s.store.UpdatePriorEmploymentTx(ctx, tx, old.ID, next)
		},
		func(next PriorEmployment) error { return s.store.InsertPriorEmploymentTx(ctx, tx, next) },
		func(old PriorEmployment) error { return s.store.DeactivatePriorEmploymentTx(ctx, tx, old.ID) },
	)
}

func (s *Service) commitQualifications(ctx context.Context, tx pgx.Tx, employeeID int64, incoming []Qualification) error {
	for i := range incoming {
		incoming[i].EmployeeID = employeeID
	}
	existing, err := s.store.ListActiveQualificationsTx(ctx, tx, employeeID)
	if err != nil {
		return err
	}
	return ReconcileByPosition(existing, incoming,
		func(old Qualification, next Qualification) error {
			return s.store.UpdateQualificationTx(ctx, tx, old.ID, next)
		},
		func(next Qualification) error { return s.store.InsertQualificationTx(ctx, tx, next) },
		func(old Qualification) error { return s.store.DeactivateQualificationTx(ctx, tx, old.ID) },
	)
}

func (s *Service) commitDocuments(ctx context.Context, tx pgx.Tx, employeeID int64, bundle *Prepared) error {
	incoming := make([]Document, len(bundle.Documents))
	copy(incoming, bundle.Documents)
	for i := range incoming {
		incoming[i].EmployeeID = employeeID
	}

	existing, err := s.store.ListActiveDocumentsTx(ctx, tx, employeeID)
	if err != nil {
		return err
	}

	// The family group photo is managed separately by type; keep it
	// out of the positional pass.
	if bundle.FamilyPhotoPath != "" {
		photoTypeID, err := s.familyPhotoTypeID(ctx)
		if err != nil {
			return err
		}
		filtered := existing[:0]
		for _, doc := range existing {
			if doc.DocTypeID != photoTypeID {
				filtered = append(filtered, doc)
			}
		}
		existing = filtered
	}

	return ReconcileByPosition(existing, incoming,
		func(old Document, next Document) error { return s.store.UpdateDocumentTx(ctx, tx, old.ID, next) },
		func(next Document) error { return s.store.InsertDocumentTx(ctx, tx, next) },
		func(old Document) error { return s.store.DeactivateDocumentTx(ctx, tx, old.ID) },
	)
}

func (s *Service) commitBankAccounts(ctx context.Context, tx pgx.Tx, employeeID int64, accounts []BankAccount) error {
	byType := map[string][]BankAccount{}
	for _, account := range accounts {
		account.EmployeeID = employeeID
		byType[account.AccountType] = append(byType[account.AccountType], account)
	}

	for _, accountType := range []string{AccountTypePersonal, AccountTypeSalary} {
		incoming := byType[accountType]
		existing, err := s.store.ListActiveBankAccountsTx(ctx, tx, employeeID, accountType)
		if err != nil {
			return err
		}
		if len(incoming) == 0 && len(existing) == 0 {
			continue
		}
		err = ReconcileByPosition(existing, incoming,
			func(old BankAccount, next BankAccount) error {
				return s.store.UpdateBankAccountTx(ctx, tx, old.ID, next)
			},
			func(next BankAccount) error { return s.store.InsertBankAccountTx(ctx, tx, next) },
			func(old BankAccount) error { return s.store.DeactivateBankAccountTx(ctx, tx, old.ID) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) commitCheques(ctx context.Context, tx pgx.Tx, employeeID int64, bundle *Prepared) error {
	if !bundle.HasAgreementInfo {
		return nil
	}
	if !bundle.ProvidedCheque {
		return s.store.DeactivateAllChequesTx(ctx, tx, employeeID)
	}

	incoming := make([]Cheque, len(bundle.Cheques))
	copy(incoming, bundle.Cheques)
	for i := range incoming {
		incoming[i].EmployeeID = employeeID
	}
	existing, err := s.store.ListActiveChequesTx(ctx, tx, employeeID)
	if err != nil {
		return err
	}
	return ReconcileByPosition(existing, incoming,
		func(old Cheque, next Cheque) error { return s.store.UpdateChequeTx(ctx, tx, old.ID, next) },
		func(next Cheque) error { return s.store.InsertChequeTx(ctx, tx, next) },
		func(old Cheque) error { return s.store.DeactivateChequeTx(ctx, tx, old.ID) },
	)
}

func (s *Service) commitFamilyPhoto(ctx context.Context, tx pgx.Tx, employeeID int64, bundle *Prepared) error {
	if bundle.FamilyPhotoPath == "" {
		return nil
	}
	photoTypeID, err := s.familyPhotoTypeID(ctx)
	if err != nil {
		return err
	}
	current, found, err := s.store.FindActiveDocumentByTypeTx(ctx, tx, employeeID, photoTypeID)
	if err != nil {
		return err
	}
	if found {
		return s.store.UpdateDocumentPathTx(ctx, tx, current.ID, bundle.FamilyPhotoPath)
	}
	return s.store.InsertDocumentTx(ctx, tx, Document{
		EmployeeID: employeeID,
		DocTypeID:  photoTypeID,
		DocPath:    bundle.FamilyPhotoPath,
		CreatedBy:  bundle.Employee.CreatedBy,
	})
}

func (s *Service) familyPhotoTypeID(ctx context.Context) (int64, error) {
	return s.ref.IDByName(ctx, refdata.KindDocumentType, FamilyPhotoDocumentType)
}
