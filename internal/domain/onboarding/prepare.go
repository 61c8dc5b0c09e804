package onboarding

import (
	"context"
	"strconv"
	"strings"
	"time"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
)

// Defaults are the configured fallbacks applied while preparing the
// entity graph.
type Defaults struct {
	AuditUserID      int64
	ContractTermDays int
}

// Preparer turns an immutable submission into the Prepared entity
// bundle. No rows are written here; the bundle is re-validated as a
// whole before commit.
type Preparer struct {
	Ref      refdata.API
	Defaults Defaults
}

// Prepare builds the bundle. existing is nil in insert mode; in
// update mode the existing employee supplies the id and the fields
// the submission does not own (status, remarks, checklist).
func (p *Preparer) Prepare(ctx context.Context, sub Submission, existing *Employee, insertStatusID int64) (Prepared, error) {
	basic := sub.BasicInfo

	createdBy := p.Defaults.AuditUserID
	if basic.CreatedBy != nil && *basic.CreatedBy > 0 {
		createdBy = *basic.CreatedBy
	}

	dateOfJoin, err := parseDate(basic.DateOfJoin)
	if err != nil {
		return Prepared{}, apperr.InvalidArgumentf("date of join must be a valid date")
	}

	employee := Employee{
		FirstName:          strings.TrimSpace(basic.FirstName),
		LastName:           strings.TrimSpace(basic.LastName),
		DateOfJoin:         dateOfJoin,
		PrimaryMobileNo:    basic.PrimaryMobileNo,
		Email:              strings.TrimSpace(basic.Email),
		TempPayrollID:      strings.TrimSpace(basic.TempPayrollID),
		GenderID:           basic.GenderID,
		DesignationID:      basic.DesignationID,
		DepartmentID:       basic.DepartmentID,
		CategoryID:         basic.CategoryID,
		EmpTypeID:          basic.EmpTypeID,
		WorkModeID:         basic.EmpWorkModeID,
		JoinTypeID:         basic.JoinTypeID,
		ModeOfHiringID:     basic.ModeOfHiringID,
		CampusID:           basic.CampusID,
		ReferenceEmpID:     basic.ReferenceEmpID,
		HiredByEmpID:       basic.HiredByEmpID,
		ManagerID:          basic.ManagerID,
		ReportingManagerID: basic.ReportingManagerID,
		ReplacedByEmpID:    basic.ReplacedByEmpID,
		TotalExperience:    basic.TotalExperience,
		ProfilePicture:     basic.ProfilePicture,
		CreatedBy:          createdBy,
		IsActive:           1,
	}

	mode := ModeInsert
	if existing != nil {
		mode = ModeUpdate
		employee.ID = existing.ID
		employee.StatusID = existing.StatusID
		employee.Remarks = existing.Remarks
		employee.ChecklistIDs = existing.ChecklistIDs
		employee.NoticePeriod = existing.NoticePeriod
		employee.PermanentPayrollID = existing.PermanentPayrollID
		employee.QualificationID = existing.QualificationID
	} else {
		employee.StatusID = insertStatusID
	}

	if err := p.applyContractDates(ctx, basic, &employee); err != nil {
		return Prepared{}, err
	}

	bundle := Prepared{
		Mode:     mode,
		Employee: employee,
	}

	if err := p.preparePersonal(basic, createdBy, &bundle); err != nil {
		return Prepared{}, err
	}
	preparePf(basic, createdBy, &bundle)
	prepareAddresses(sub.AddressInfo, createdBy, &bundle)
	if err := p.prepareFamily(ctx, sub.FamilyInfo, createdBy, &bundle); err != nil {
		return Prepared{}, err
	}
	if err := preparePriorEmployments(sub.PreviousEmployerInfo, createdBy, &bundle); err != nil {
		return Prepared{}, err
	}
	prepareQualifications(sub.Qualification, createdBy, &bundle)
	prepareDocuments(sub.Documents, createdBy, &bundle)
	prepareCategory(sub.CategoryInfo, &bundle)
	if err := prepareBankAccounts(sub.BankInfo, createdBy, &bundle); err != nil {
		return Prepared{}, err
	}
	prepareAgreement(sub.AgreementInfo, createdBy, &bundle)

	if err := validatePrepared(bundle); err != nil {
		return Prepared{}, err
	}
	return bundle, nil
}

func (p *Preparer) applyContractDates(ctx context.Context, basic BasicInfo, employee *Employee) error {
	if basic.JoinTypeID == nil {
		return nil
	}
	name, err := p.Ref.Name(ctx, refdata.KindJoinType, *basic.JoinTypeID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(name, joinTypeContract) {
		return nil
	}

	start, err := parseDate(basic.ContractStartDate)
	if err != nil {
		return apperr.InvalidArgumentf("contract start date must be a valid date")
	}
	end, err := parseDate(basic.ContractEndDate)
	if err != nil {
		return apperr.InvalidArgumentf("contract end date must be a valid date")
	}
	if start.IsZero() {
		start = employee.DateOfJoin
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, p.Defaults.ContractTermDays)
	}
	if end.Before(start) {
		return apperr.InvalidArgumentf("contract end date must not be before contract start date")
	}
	employee.ContractStartDate = &start
	employee.ContractEndDate = &end
	return nil
}

func (p *Preparer) preparePersonal(basic BasicInfo, createdBy int64, bundle *Prepared) error {
	var dob *time.Time
	if basic.DateOfBirth != "" {
		parsed, err := parseDate(basic.DateOfBirth)
		if err != nil {
			return apperr.InvalidArgumentf("date of birth must be a valid date")
		}
		dob = &parsed
	}
	bundle.Personal = PersonalDetails{
		AdhaarName:          strings.TrimSpace(basic.AdhaarName),
		DateOfBirth:         dob,
		AadharNum:           strings.TrimSpace(basic.AadharNum),
		AadharEnrolmentNum:  strings.TrimSpace(basic.AadharEnrolmentNum),
		PancardNum:          strings.TrimSpace(basic.PancardNum),
		BloodGroupID:        basic.BloodGroupID,
		CasteID:             basic.CasteID,
		ReligionID:          basic.ReligionID,
		MaritalStatusID:     basic.MaritalStatusID,
		EmergencyPhNo:       strings.TrimSpace(basic.EmergencyPhNo),
		EmergencyRelationID: basic.EmergencyRelationID,
		CreatedBy:           createdBy,
	}
	return nil
}

// Previous UAN/ESI numbers are the only PF fields recorded during
// onboarding; current numbers arrive through the salary service.
func preparePf(basic BasicInfo, createdBy int64, bundle *Prepared) {
	if basic.PreUanNum == nil && basic.PreEsiNum == nil {
		return
	}
	bundle.Pf = &PfRecord{
		PreUanNum: basic.PreUanNum,
		PreEsiNum: basic.PreEsiNum,
		CreatedBy: createdBy,
	}
}

func prepareAddresses(info *AddressInfo, createdBy int64, bundle *Prepared) {
	if info == nil {
		return
	}
	bundle.PermanentSameAsCurrent = info.PermanentAddressSameAsCurrent

	if info.CurrentAddress != nil {
		bundle.Addresses = append(bundle.Addresses, addressFromSection(*info.CurrentAddress, AddressTypeCurrent, createdBy))
	}
	if !info.PermanentAddressSameAsCurrent && info.PermanentAddress != nil {
		bundle.Addresses = append(bundle.Addresses, addressFromSection(*info.PermanentAddress, AddressTypePermanent, createdBy))
	}
}

func addressFromSection(section AddressSection, addressType string, createdBy int64) Address {
	return Address{
		AddressType: addressType,
		Name:        strings.TrimSpace(section.Name),
		AddressLine: strings.TrimSpace(section.AddressLine),
		CityID:      section.CityID,
		StateID:     section.StateID,
		CountryID:   section.CountryID,
		Pin:         strings.TrimSpace(section.Pin),
		PhoneNumber: strings.TrimSpace(section.PhoneNumber),
		CreatedBy:   createdBy,
	}
}

func (p *Preparer) prepareFamily(ctx context.Context, info *FamilyInfo, createdBy int64, bundle *Prepared) error {
	if info == nil {
		return nil
	}
	bundle.FamilyPhotoPath = strings.TrimSpace(info.FamilyGroupPhotoPath)

	for _, section := range info.FamilyMembers {
		genderID, err := p.resolveFamilyGender(ctx, section)
		if err != nil {
			return err
		}

		var dob *time.Time
		if section.DateOfBirth != "" {
			parsed, err := parseDate(section.DateOfBirth)
			if err != nil {
				return apperr.InvalidArgumentf("family member date of birth must be a valid date")
			}
			dob = &parsed
		}

		bundle.Family = append(bundle.Family, FamilyMember{
			FirstName:     strings.TrimSpace(section.FirstName),
			LastName:      strings.TrimSpace(section.LastName),
			RelationID:    section.RelationID,
			GenderID:      genderID,
			BloodGroupID:  section.BloodGroupID,
			Nationality:   strings.TrimSpace(section.Nationality),
			Occupation:    strings.TrimSpace(section.Occupation),
			DateOfBirth:   dob,
			IsLate:        section.IsLate,
			IsDependent:   section.IsDependent,
			IsOrgEmployee: section.IsOrgEmployee,
			ParentEmpID:   section.ParentEmpID,
			Email:         strings.TrimSpace(section.Email),
			PhoneNumber:   strings.TrimSpace(section.PhoneNumber),
			CreatedBy:     createdBy,
		})
	}
	return nil
}

// resolveFamilyGender derives the gender from the relation for father
// and mother; anything else uses the supplied gender id.
func (p *Preparer) resolveFamilyGender(ctx context.Context, section FamilyMemberSection) (int64, error) {
	relation, err := p.Ref.Name(ctx, refdata.KindRelation, section.RelationID)
	if err != nil {
		return 0, err
	}
	switch {
	case strings.EqualFold(relation, "Father"):
		return p.Ref.IDByName(ctx, refdata.KindGender, "Male")
	case strings.EqualFold(relation, "Mother"):
		return p.Ref.IDByName(ctx, refdata.KindGender, "Female")
	}
	if section.GenderID == nil {
		return 0, apperr.InvalidArgumentf("family member gender id is required for relation %s", relation)
	}
	return *section.GenderID, nil
}

func preparePriorEmployments(info *PreviousEmployerInfo, createdBy int64, bundle *Prepared) error {
	if info == nil {
		return nil
	}
	for _, section := range info.Employers {
		from, err := parseDate(section.FromDate)
		if err != nil {
			return apperr.InvalidArgumentf("previous employer from date must be a valid date")
		}
		to, err := parseDate(section.ToDate)
		if err != nil {
			return apperr.InvalidArgumentf("previous employer to date must be a valid date")
		}
		bundle.PriorEmployments = append(bundle.PriorEmployments, PriorEmployment{
			CompanyName:    strings.TrimSpace(section.CompanyName),
			Designation:    strings.TrimSpace(section.Designation),
			FromDate:       from,
			ToDate:         to,
			LeavingReason:  strings.TrimSpace(section.LeavingReason),
			NatureOfDuties: strings.TrimSpace(section.NatureOfDuties),
			CompanyAddress: strings.TrimSpace(section.CompanyAddressLine),
			CreatedBy:      createdBy,
		})
	}
	return nil
}

func prepareQualifications(info *QualificationInfo, createdBy int64, bundle *Prepared) {
	if info == nil {
		return
	}
	for _, section := range info.Qualifications {
		bundle.Qualifications = append(bundle.Qualifications, Qualification{
			QualificationTypeID:   section.QualificationID,
			QualificationDegreeID: section.QualificationDegreeID,
			Specialization:        strings.TrimSpace(section.Specialization),
			University:            strings.TrimSpace(section.University),
			Institute:             strings.TrimSpace(section.Institute),
			PassedOutYear:         section.PassedOutYear,
			CertificateFile:       section.CertificateFile,
			IsHighest:             section.IsHighest,
			CreatedBy:             createdBy,
		})
		if section.IsHighest {
			id := section.QualificationID
			bundle.HighestQualTypeID = &id
		}
	}
}

func prepareDocuments(info *DocumentInfo, createdBy int64, bundle *Prepared) {
	if info == nil {
		return
	}
	for _, section := range info.Documents {
		bundle.Documents = append(bundle.Documents, Document{
			DocTypeID:  section.DocTypeID,
			DocPath:    section.DocPath,
			IsVerified: section.IsVerified,
			CreatedBy:  createdBy,
		})
	}
}

func prepareCategory(info *CategoryInfo, bundle *Prepared) {
	if info == nil {
		return
	}
	bundle.SubjectID = info.SubjectID
	bundle.AgreedPeriods = info.AgreedPeriodsPerWeek
	if info.AgreedPeriodsPerWeek != nil {
		bundle.Employee.AgreedPeriods = info.AgreedPeriodsPerWeek
	}
	if info.EmployeeTypeID != nil {
		bundle.Employee.EmpTypeID = info.EmployeeTypeID
	}
}

func prepareBankAccounts(info *BankInfo, createdBy int64, bundle *Prepared) error {
	if info == nil {
		return nil
	}
	sections := []struct {
		accountType string
		section     *BankAccountSection
	}{
		{AccountTypePersonal, info.PersonalAccount},
		{AccountTypeSalary, info.SalaryAccount},
	}
	for _, entry := range sections {
		if entry.section == nil {
			continue
		}
		accNo, err := strconv.ParseInt(strings.TrimSpace(entry.section.AccNo), 10, 64)
		if err != nil {
			return apperr.InvalidArgumentf("%s account number must be numeric", strings.ToLower(entry.accountType))
		}
		bundle.BankAccounts = append(bundle.BankAccounts, BankAccount{
			AccountType:   entry.accountType,
			AccNo:         accNo,
			IfscCode:      strings.TrimSpace(entry.section.IfscCode),
			HolderName:    strings.TrimSpace(entry.section.BankHolderName),
			BankID:        info.BankID,
			BankBranchID:  info.BankBranchID,
			PaymentTypeID: info.PaymentTypeID,
			CreatedBy:     createdBy,
		})
	}
	return nil
}

func prepareAgreement(info *AgreementInfo, createdBy int64, bundle *Prepared) {
	if info == nil {
		return
	}
	bundle.HasAgreementInfo = true
	bundle.ProvidedCheque = info.ProvidedCheque
	bundle.Employee.AgreementOrgID = info.AgreementOrgID
	bundle.Employee.AgreementType = strings.TrimSpace(info.AgreementType)
	bundle.Employee.IsCheckSubmit = info.IsCheckSubmit

	if !info.ProvidedCheque {
		return
	}
	for _, section := range info.ChequeDetails {
		bundle.Cheques = append(bundle.Cheques, Cheque{
			ChequeNo:  section.ChequeNo,
			BankName:  strings.TrimSpace(section.ChequeBankName),
			IfscCode:  strings.TrimSpace(section.ChequeBankIfscCode),
			CreatedBy: createdBy,
		})
	}
}

// validatePrepared is the last gate before any write: required fields
// are re-checked on the built entities, after defaults were applied.
func validatePrepared(bundle Prepared) error {
	e := bundle.Employee
	if e.FirstName == "" || e.LastName == "" {
		return apperr.InvalidArgumentf("prepared employee is missing a name")
	}
	if e.DateOfJoin.IsZero() {
		return apperr.InvalidArgumentf("prepared employee is missing the date of join")
	}
	if e.StatusID == 0 {
		return apperr.InvalidArgumentf("prepared employee is missing the application status")
	}
	if e.GenderID == 0 || e.DesignationID == 0 || e.DepartmentID == 0 || e.CategoryID == 0 {
		return apperr.InvalidArgumentf("prepared employee is missing a mandatory reference")
	}
	if e.CreatedBy == 0 {
		return apperr.InvalidArgumentf("prepared employee is missing the created-by stamp")
	}

	p := bundle.Personal
	if p.BloodGroupID == 0 || p.CasteID == 0 || p.ReligionID == 0 || p.MaritalStatusID == 0 {
		return apperr.InvalidArgumentf("prepared personal details are missing a mandatory reference")
	}
	if p.EmergencyPhNo == "" {
		return apperr.InvalidArgumentf("prepared personal details are missing the emergency phone")
	}

	for _, addr := range bundle.Addresses {
		if addr.CountryID == 0 || addr.StateID == 0 || addr.CityID == 0 {
			return apperr.InvalidArgumentf("prepared %s address is missing a location reference", addr.AddressType)
		}
	}
	for _, member := range bundle.Family {
		if member.RelationID == 0 || member.GenderID == 0 || member.BloodGroupID == 0 {
			return apperr.InvalidArgumentf("prepared family member is missing a mandatory reference")
		}
		if member.Nationality == "" || member.Occupation == "" {
			return apperr.InvalidArgumentf("prepared family member is missing nationality or occupation")
		}
	}
	for _, emp := range bundle.PriorEmployments {
		if emp.CompanyName == "" || emp.Designation == "" {
			return apperr.InvalidArgumentf("prepared prior employment is missing a mandatory field")
		}
	}
	for _, account := range bundle.BankAccounts {
		if account.AccNo == 0 || account.IfscCode == "" || account.HolderName == "" {
			return apperr.InvalidArgumentf("prepared %s bank account is incomplete", strings.ToLower(account.AccountType))
		}
	}
	return nil
}
