package onboarding

import (
	"context"
	"strconv"
	"strings"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
)

// Join type names with conditional rules attached to them.
const (
	joinTypeReplacement = "Replacement"
	joinTypeContract    = "Contract"
)

const priorEmploymentFieldMax = 50

// EmployeeDirectory resolves employee links and the skill-test
// staging gate. The orchestrator's store satisfies it.
type EmployeeDirectory interface {
	EmployeeActive(ctx context.Context, id int64) (bool, error)
	SkillTestExists(ctx context.Context, tempPayrollID string) (bool, error)
}

// Validator runs the full domain validation pass over a submission.
// It writes nothing; every failure is raised before the first row is
// touched.
type Validator struct {
	Ref refdata.API
	Dir EmployeeDirectory
}

func (v *Validator) Validate(ctx context.Context, sub Submission) error {
	basic := sub.BasicInfo

	if err := v.validateMandatoryFields(basic); err != nil {
		return err
	}
	if err := v.validateBasicReferences(ctx, basic); err != nil {
		return err
	}
	if err := v.validateEmployeeLinks(ctx, basic); err != nil {
		return err
	}
	if err := v.validateJoinTypeRules(ctx, basic); err != nil {
		return err
	}
	if err := v.validateSkillTestGate(ctx, basic); err != nil {
		return err
	}
	if err := v.validateAddressInfo(ctx, sub.AddressInfo); err != nil {
		return err
	}
	if err := v.validateFamilyInfo(ctx, sub.FamilyInfo); err != nil {
		return err
	}
	if err := v.validatePreviousEmployers(sub.PreviousEmployerInfo); err != nil {
		return err
	}
	if err := v.validateQualifications(ctx, sub.Qualification); err != nil {
		return err
	}
	if err := v.validateDocuments(ctx, sub.Documents); err != nil {
		return err
	}
	if err := v.validateCategoryInfo(ctx, sub.CategoryInfo); err != nil {
		return err
	}
	if err := v.validateBankInfo(ctx, sub.BankInfo); err != nil {
		return err
	}
	if err := v.validateAgreementInfo(ctx, sub.AgreementInfo); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateMandatoryFields(basic BasicInfo) error {
	if strings.TrimSpace(basic.FirstName) == "" {
		return apperr.InvalidArgumentf("first name is required")
	}
	if strings.TrimSpace(basic.LastName) == "" {
		return apperr.InvalidArgumentf("last name is required")
	}
	if doj, err := parseDate(basic.DateOfJoin); err != nil || doj.IsZero() {
		return apperr.InvalidArgumentf("date of join is required and must be a valid date")
	}
	if basic.PrimaryMobileNo == 0 {
		return apperr.InvalidArgumentf("primary mobile number is required")
	}
	if basic.GenderID == 0 {
		return apperr.InvalidArgumentf("gender id is required")
	}
	if basic.DesignationID == 0 {
		return apperr.InvalidArgumentf("designation id is required")
	}
	if basic.DepartmentID == 0 {
		return apperr.InvalidArgumentf("department id is required")
	}
	if basic.CategoryID == 0 {
		return apperr.InvalidArgumentf("category id is required")
	}
	if basic.BloodGroupID == 0 {
		return apperr.InvalidArgumentf("blood group id is required")
	}
	if basic.CasteID == 0 {
		return apperr.InvalidArgumentf("caste id is required")
	}
	if basic.ReligionID == 0 {
		return apperr.InvalidArgumentf("religion id is required")
	}
	if basic.MaritalStatusID == 0 {
		return apperr.InvalidArgumentf("marital status id is required")
	}
	if strings.TrimSpace(basic.EmergencyPhNo) == "" {
		return apperr.InvalidArgumentf("emergency phone number is required")
	}
	if basic.DateOfBirth != "" {
		if _, err := parseDate(basic.DateOfBirth); err != nil {
			return apperr.InvalidArgumentf("date of birth must be a valid date")
		}
	}
	return nil
}

func (v *Validator) validateBasicReferences(ctx context.Context, basic BasicInfo) error {
	required := []struct {
		kind refdata.Kind
		id   int64
	}{
		{refdata.KindGender, basic.GenderID},
		{refdata.KindDesignation, basic.DesignationID},
		{refdata.KindDepartment, basic.DepartmentID},
		{refdata.KindCategory, basic.CategoryID},
		{refdata.KindBloodGroup, basic.BloodGroupID},
		{refdata.KindCaste, basic.CasteID},
		{refdata.KindReligion, basic.ReligionID},
		{refdata.KindMaritalStatus, basic.MaritalStatusID},
	}
	for _, ref := range required {
		if err := v.requireRef(ctx, ref.kind, ref.id); err != nil {
			return err
		}
	}

	optional := []struct {
		kind   refdata.Kind
		id     *int64
		active bool
	}{
		{refdata.KindEmployeeType, basic.EmpTypeID, false},
		{refdata.KindWorkingMode, basic.EmpWorkModeID, true},
		{refdata.KindJoinType, basic.JoinTypeID, false},
		{refdata.KindModeOfHiring, basic.ModeOfHiringID, false},
		{refdata.KindCampus, basic.CampusID, true},
		{refdata.KindRelation, basic.EmergencyRelationID, false},
	}
	for _, ref := range optional {
		if ref.id == nil {
			continue
		}
		var err error
		if ref.active {
			err = v.requireActiveRef(ctx, ref.kind, *ref.id)
		} else {
			err = v.requireRef(ctx, ref.kind, *ref.id)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateEmployeeLinks(ctx context.Context, basic BasicInfo) error {
	activeLinks := []struct {
		field string
		id    *int64
	}{
		{"reference employee", basic.ReferenceEmpID},
		{"hired-by employee", basic.HiredByEmpID},
		{"manager", basic.ManagerID},
		{"reporting manager", basic.ReportingManagerID},
	}
	for _, link := range activeLinks {
		if link.id == nil {
			continue
		}
		active, err := v.Dir.EmployeeActive(ctx, *link.id)
		if err != nil {
			return err
		}
		if !active {
			return apperr.NotFoundf("%s %d is not an active employee", link.field, *link.id)
		}
	}

	if basic.ReplacedByEmpID != nil {
		active, err := v.Dir.EmployeeActive(ctx, *basic.ReplacedByEmpID)
		if err != nil {
			return err
		}
		if active {
			return apperr.InvalidArgumentf("replaced employee %d must be inactive", *basic.ReplacedByEmpID)
		}
	}
	return nil
}

func (v *Validator) validateJoinTypeRules(ctx context.Context, basic BasicInfo) error {
	if basic.JoinTypeID == nil {
		return nil
	}
	name, err := v.Ref.Name(ctx, refdata.KindJoinType, *basic.JoinTypeID)
	if err != nil {
		return err
	}
	if strings.EqualFold(name, joinTypeReplacement) && basic.ReplacedByEmpID == nil {
		return apperr.InvalidArgumentf("replaced employee id is required for replacement hires")
	}
	return nil
}

func (v *Validator) validateSkillTestGate(ctx context.Context, basic BasicInfo) error {
	if strings.TrimSpace(basic.TempPayrollID) == "" {
		return nil
	}
	exists, err := v.Dir.SkillTestExists(ctx, basic.TempPayrollID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("no skill test record for temp payroll id %s", basic.TempPayrollID)
	}
	return nil
}

func (v *Validator) validateAddressInfo(ctx context.Context, info *AddressInfo) error {
	if info == nil {
		return nil
	}
	if err := v.validateAddressSection(ctx, "current", info.CurrentAddress); err != nil {
		return err
	}
	if info.PermanentAddressSameAsCurrent {
		return nil
	}
	return v.validateAddressSection(ctx, "permanent", info.PermanentAddress)
}

func (v *Validator) validateAddressSection(ctx context.Context, label string, addr *AddressSection) error {
	if addr == nil {
		return nil
	}
	if addr.CountryID == 0 {
		return apperr.InvalidArgumentf("%s address country id is required", label)
	}
	if addr.StateID == 0 {
		return apperr.InvalidArgumentf("%s address state id is required", label)
	}
	if addr.CityID == 0 {
		return apperr.InvalidArgumentf("%s address city id is required", label)
	}
	if err := v.requireRef(ctx, refdata.KindCountry, addr.CountryID); err != nil {
		return err
	}
	if err := v.requireRef(ctx, refdata.KindState, addr.StateID); err != nil {
		return err
	}
	return v.requireRef(ctx, refdata.KindCity, addr.CityID)
}

func (v *Validator) validateFamilyInfo(ctx context.Context, info *FamilyInfo) error {
	if info == nil {
		return nil
	}
	for i, member := range info.FamilyMembers {
		if member.RelationID == 0 {
			return apperr.InvalidArgumentf("family member %d: relation id is required", i+1)
		}
		if err := v.requireRef(ctx, refdata.KindRelation, member.RelationID); err != nil {
			return err
		}

		relation, err := v.Ref.Name(ctx, refdata.KindRelation, member.RelationID)
		if err != nil {
			return err
		}
		if !relationImpliesGender(relation) {
			if member.GenderID == nil || *member.GenderID == 0 {
				return apperr.InvalidArgumentf("family member %d: gender id is required for relation %s", i+1, relation)
			}
			if err := v.requireRef(ctx, refdata.KindGender, *member.GenderID); err != nil {
				return err
			}
		}

		if member.BloodGroupID == 0 {
			return apperr.InvalidArgumentf("family member %d: blood group id is required", i+1)
		}
		if err := v.requireRef(ctx, refdata.KindBloodGroup, member.BloodGroupID); err != nil {
			return err
		}
		if strings.TrimSpace(member.Nationality) == "" {
			return apperr.InvalidArgumentf("family member %d: nationality is required", i+1)
		}
		if strings.TrimSpace(member.Occupation) == "" {
			return apperr.InvalidArgumentf("family member %d: occupation is required", i+1)
		}
		if member.DateOfBirth != "" {
			if _, err := parseDate(member.DateOfBirth); err != nil {
				return apperr.InvalidArgumentf("family member %d: date of birth must be a valid date", i+1)
			}
		}

		if member.IsOrgEmployee {
			if member.ParentEmpID == nil {
				return apperr.InvalidArgumentf("family member %d: parent employee id is required for organization employees", i+1)
			}
			if _, err := v.Dir.EmployeeActive(ctx, *member.ParentEmpID); err != nil {
				return err
			}
		}
	}
	return nil
}

// relationImpliesGender reports whether the relation determines the
// gender on its own (father is male, mother is female).
func relationImpliesGender(relation string) bool {
	return strings.EqualFold(relation, "Father") || strings.EqualFold(relation, "Mother")
}

func (v *Validator) validatePreviousEmployers(info *PreviousEmployerInfo) error {
	if info == nil {
		return nil
	}
	for i, employer := range info.Employers {
		fields := []struct {
			name  string
			value string
		}{
			{"company name", employer.CompanyName},
			{"designation", employer.Designation},
			{"leaving reason", employer.LeavingReason},
			{"nature of duties", employer.NatureOfDuties},
			{"company address", employer.CompanyAddressLine},
		}
		for _, field := range fields {
			if strings.TrimSpace(field.value) == "" {
				return apperr.InvalidArgumentf("previous employer %d: %s is required", i+1, field.name)
			}
			if len(field.value) > priorEmploymentFieldMax {
				return apperr.InvalidArgumentf("previous employer %d: %s must be at most %d characters", i+1, field.name, priorEmploymentFieldMax)
			}
		}

		from, err := parseDate(employer.FromDate)
		if err != nil || from.IsZero() {
			return apperr.InvalidArgumentf("previous employer %d: from date is required and must be a valid date", i+1)
		}
		to, err := parseDate(employer.ToDate)
		if err != nil || to.IsZero() {
			return apperr.InvalidArgumentf("previous employer %d: to date is required and must be a valid date", i+1)
		}
		if to.Before(from) {
			return apperr.InvalidArgumentf("previous employer %d: to date must not be before from date", i+1)
		}
	}
	return nil
}

func (v *Validator) validateQualifications(ctx context.Context, info *QualificationInfo) error {
	if info == nil {
		return nil
	}
	highest := 0
	for i, q := range info.Qualifications {
		if q.QualificationID == 0 {
			return apperr.InvalidArgumentf("qualification %d: qualification id is required", i+1)
		}
		if err := v.requireRef(ctx, refdata.KindQualificationType, q.QualificationID); err != nil {
			return err
		}
		if q.QualificationDegreeID != 0 {
			if err := v.requireRef(ctx, refdata.KindQualificationDegree, q.QualificationDegreeID); err != nil {
				return err
			}
		}
		if q.IsHighest {
			highest++
		}
	}
	if highest > 1 {
		return apperr.InvalidArgumentf("at most one qualification may be flagged highest, got %d", highest)
	}
	return nil
}

func (v *Validator) validateDocuments(ctx context.Context, info *DocumentInfo) error {
	if info == nil {
		return nil
	}
	for i, doc := range info.Documents {
		if doc.DocTypeID == 0 {
			return apperr.InvalidArgumentf("document %d: document type id is required", i+1)
		}
		if err := v.requireRef(ctx, refdata.KindDocumentType, doc.DocTypeID); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateCategoryInfo(ctx context.Context, info *CategoryInfo) error {
	if info == nil {
		return nil
	}
	if info.EmployeeTypeID != nil {
		if err := v.requireRef(ctx, refdata.KindEmployeeType, *info.EmployeeTypeID); err != nil {
			return err
		}
	}
	if info.SubjectID != nil {
		if err := v.requireRef(ctx, refdata.KindSubject, *info.SubjectID); err != nil {
			return err
		}
	}
	if info.DepartmentID != nil {
		if err := v.requireRef(ctx, refdata.KindDepartment, *info.DepartmentID); err != nil {
			return err
		}
	}
	if info.DesignationID != nil {
		if err := v.requireRef(ctx, refdata.KindDesignation, *info.DesignationID); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateBankInfo(ctx context.Context, info *BankInfo) error {
	if info == nil {
		return nil
	}
	if err := validateBankAccount("personal", info.PersonalAccount); err != nil {
		return err
	}
	if err := validateBankAccount("salary", info.SalaryAccount); err != nil {
		return err
	}
	if info.PaymentTypeID != nil {
		if err := v.requireRef(ctx, refdata.KindPaymentType, *info.PaymentTypeID); err != nil {
			return err
		}
	}
	return nil
}

func validateBankAccount(label string, account *BankAccountSection) error {
	if account == nil {
		return nil
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(account.AccNo), 10, 64); err != nil {
		return apperr.InvalidArgumentf("%s account number must be numeric", label)
	}
	if strings.TrimSpace(account.IfscCode) == "" {
		return apperr.InvalidArgumentf("%s account IFSC code is required", label)
	}
	if strings.TrimSpace(account.BankHolderName) == "" {
		return apperr.InvalidArgumentf("%s account holder name is required", label)
	}
	return nil
}

func (v *Validator) validateAgreementInfo(ctx context.Context, info *AgreementInfo) error {
	if info == nil {
		return nil
	}
	if info.AgreementOrgID != nil {
		if err := v.requireRef(ctx, refdata.KindAgreementOrg, *info.AgreementOrgID); err != nil {
			return err
		}
	}
	if info.ProvidedCheque {
		for i, cheque := range info.ChequeDetails {
			if cheque.ChequeNo == 0 {
				return apperr.InvalidArgumentf("cheque %d: cheque number is required", i+1)
			}
			if strings.TrimSpace(cheque.ChequeBankName) == "" {
				return apperr.InvalidArgumentf("cheque %d: bank name is required", i+1)
			}
			if strings.TrimSpace(cheque.ChequeBankIfscCode) == "" {
				return apperr.InvalidArgumentf("cheque %d: IFSC code is required", i+1)
			}
		}
	}
	return nil
}

func (v *Validator) requireRef(ctx context.Context, kind refdata.Kind, id int64) error {
	exists, err := v.Ref.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("%s %d", kind, id)
	}
	return nil
}

func (v *Validator) requireActiveRef(ctx context.Context, kind refdata.Kind, id int64) error {
	exists, err := v.Ref.ExistsActive(ctx, kind, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("active %s %d", kind, id)
	}
	return nil
}
