package onboarding

import (
	"context"
	"strings"
	"testing"

	"onboard/internal/domain/apperr"
)

func newTestValidator(store *fakeStore) *Validator {
	return &Validator{Ref: newFakeRef(), Dir: store}
}

func TestValidateRejectsMissingMandatoryFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"first name", func(s *Submission) { s.BasicInfo.FirstName = "" }},
		{"last name", func(s *Submission) { s.BasicInfo.LastName = "" }},
		{"date of join", func(s *Submission) { s.BasicInfo.DateOfJoin = "" }},
		{"mobile number", func(s *Submission) { s.BasicInfo.PrimaryMobileNo = 0 }},
		{"gender", func(s *Submission) { s.BasicInfo.GenderID = 0 }},
		{"designation", func(s *Submission) { s.BasicInfo.DesignationID = 0 }},
		{"department", func(s *Submission) { s.BasicInfo.DepartmentID = 0 }},
		{"category", func(s *Submission) { s.BasicInfo.CategoryID = 0 }},
		{"blood group", func(s *Submission) { s.BasicInfo.BloodGroupID = 0 }},
		{"caste", func(s *Submission) { s.BasicInfo.CasteID = 0 }},
		{"religion", func(s *Submission) { s.BasicInfo.ReligionID = 0 }},
		{"marital status", func(s *Submission) { s.BasicInfo.MaritalStatusID = 0 }},
		{"emergency phone", func(s *Submission) { s.BasicInfo.EmergencyPhNo = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestValidator(newFakeStore())
			sub := baseSubmission()
			tc.mutate(&sub)
			if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
				t.Fatalf("expected invalid argument for missing %s, got %v", tc.name, err)
			}
		})
	}
}

func TestValidateRejectsUnknownReference(t *testing.T) {
	v := newTestValidator(newFakeStore())
	sub := baseSubmission()
	sub.BasicInfo.DesignationID = 999
	if err := v.Validate(context.Background(), sub); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found for unknown designation, got %v", err)
	}
}

func TestValidateReplacementRequiresReplacedEmployee(t *testing.T) {
	store := newFakeStore()
	v := newTestValidator(store)

	replacement := int64(2)
	sub := baseSubmission()
	sub.BasicInfo.JoinTypeID = &replacement
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument without replaced-by id, got %v", err)
	}

	// The replaced employee must be inactive.
	store.activeEmployees[7] = true
	replacedBy := int64(7)
	sub.BasicInfo.ReplacedByEmpID = &replacedBy
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for active replaced employee, got %v", err)
	}

	store.activeEmployees[7] = false
	if err := v.Validate(context.Background(), sub); err != nil {
		t.Fatalf("inactive replaced employee should pass, got %v", err)
	}
}

func TestValidateEmployeeLinksMustBeActive(t *testing.T) {
	store := newFakeStore()
	store.activeEmployees[9] = false
	v := newTestValidator(store)

	manager := int64(9)
	sub := baseSubmission()
	sub.BasicInfo.ManagerID = &manager
	if err := v.Validate(context.Background(), sub); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found for inactive manager, got %v", err)
	}
}

func TestValidateFamilyGenderRules(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.FamilyInfo = &FamilyInfo{FamilyMembers: []FamilyMemberSection{
		{RelationID: 3, BloodGroupID: 1, Nationality: "Indian", Occupation: "Engineer"},
	}}
	err := v.Validate(context.Background(), sub)
	if !apperr.IsInvalidArgument(err) {
		t.Fatalf("spouse without gender should fail, got %v", err)
	}

	// Father's gender is derived, not required.
	sub.FamilyInfo.FamilyMembers[0].RelationID = 1
	if err := v.Validate(context.Background(), sub); err != nil {
		t.Fatalf("father without gender should pass, got %v", err)
	}
}

func TestValidatePreviousEmployerOverflowRejected(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.PreviousEmployerInfo = &PreviousEmployerInfo{Employers: []PriorEmploymentSection{{
		CompanyName:        strings.Repeat("x", 51),
		Designation:        "Clerk",
		FromDate:           "2020-01-01",
		ToDate:             "2021-01-01",
		LeavingReason:      "Relocation",
		NatureOfDuties:     "Admin",
		CompanyAddressLine: "Pune",
	}}}
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for overlong company name, got %v", err)
	}
}

func TestValidatePreviousEmployerDateOrder(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.PreviousEmployerInfo = &PreviousEmployerInfo{Employers: []PriorEmploymentSection{{
		CompanyName:        "Acme",
		Designation:        "Clerk",
		FromDate:           "2022-01-01",
		ToDate:             "2020-01-01",
		LeavingReason:      "Relocation",
		NatureOfDuties:     "Admin",
		CompanyAddressLine: "Pune",
	}}}
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for to-date before from-date, got %v", err)
	}
}

func TestValidateAtMostOneHighestQualification(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.Qualification = &QualificationInfo{Qualifications: []QualificationSection{
		{QualificationID: 1, IsHighest: true},
		{QualificationID: 2, IsHighest: true},
	}}
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for two highest qualifications, got %v", err)
	}
}

func TestValidateBankAccountNumberMustBeNumeric(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.BankInfo = &BankInfo{PersonalAccount: &BankAccountSection{
		AccNo: "12AB34", IfscCode: "SBIN0001", BankHolderName: "Asha Rao",
	}}
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for non-numeric account number, got %v", err)
	}
}

func TestValidateOrgEmployeeFamilyMemberNeedsParentRef(t *testing.T) {
	v := newTestValidator(newFakeStore())

	sub := baseSubmission()
	sub.FamilyInfo = &FamilyInfo{FamilyMembers: []FamilyMemberSection{
		{RelationID: 1, BloodGroupID: 1, Nationality: "Indian", Occupation: "Teacher", IsOrgEmployee: true},
	}}
	if err := v.Validate(context.Background(), sub); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument without parent employee id, got %v", err)
	}
}
