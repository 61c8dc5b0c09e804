package onboarding

import (
	"context"
	"testing"
	"time"
)

func newTestPreparer() *Preparer {
	return &Preparer{Ref: newFakeRef(), Defaults: Defaults{AuditUserID: 1, ContractTermDays: 365}}
}

func TestPrepareAppliesCreatedByDefault(t *testing.T) {
	p := newTestPreparer()

	bundle, err := p.Prepare(context.Background(), baseSubmission(), nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Employee.CreatedBy != 1 {
		t.Fatalf("expected default created-by 1, got %d", bundle.Employee.CreatedBy)
	}

	creator := int64(55)
	sub := baseSubmission()
	sub.BasicInfo.CreatedBy = &creator
	bundle, err = p.Prepare(context.Background(), sub, nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Employee.CreatedBy != 55 {
		t.Fatalf("supplied created-by should win, got %d", bundle.Employee.CreatedBy)
	}
}

func TestPrepareContractDatesDefault(t *testing.T) {
	p := newTestPreparer()

	contract := int64(3)
	sub := baseSubmission()
	sub.BasicInfo.JoinTypeID = &contract

	bundle, err := p.Prepare(context.Background(), sub, nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	start := bundle.Employee.ContractStartDate
	end := bundle.Employee.ContractEndDate
	if start == nil || end == nil {
		t.Fatalf("contract dates should be defaulted for contract hires")
	}
	if !start.Equal(bundle.Employee.DateOfJoin) {
		t.Fatalf("contract start should default to date of join, got %v", start)
	}
	if want := start.AddDate(0, 0, 365); !end.Equal(want) {
		t.Fatalf("contract end should default to start plus term, got %v want %v", end, want)
	}
}

func TestPrepareContractEndBeforeStartRejected(t *testing.T) {
	p := newTestPreparer()

	contract := int64(3)
	sub := baseSubmission()
	sub.BasicInfo.JoinTypeID = &contract
	sub.BasicInfo.ContractStartDate = "2026-06-01"
	sub.BasicInfo.ContractEndDate = "2026-05-01"

	if _, err := p.Prepare(context.Background(), sub, nil, 1); err == nil {
		t.Fatalf("expected error for contract end before start")
	}
}

func TestPrepareDerivesParentGenders(t *testing.T) {
	p := newTestPreparer()

	sub := baseSubmission()
	sub.FamilyInfo = &FamilyInfo{FamilyMembers: []FamilyMemberSection{
		{RelationID: 1, BloodGroupID: 1, Nationality: "Indian", Occupation: "Farmer"},
		{RelationID: 2, BloodGroupID: 1, Nationality: "Indian", Occupation: "Teacher"},
	}}
	bundle, err := p.Prepare(context.Background(), sub, nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Family[0].GenderID != 1 {
		t.Fatalf("father should derive Male (1), got %d", bundle.Family[0].GenderID)
	}
	if bundle.Family[1].GenderID != 2 {
		t.Fatalf("mother should derive Female (2), got %d", bundle.Family[1].GenderID)
	}
}

func TestPrepareSkipsPermanentAddressWhenSame(t *testing.T) {
	p := newTestPreparer()

	sub := baseSubmission()
	sub.AddressInfo = &AddressInfo{
		CurrentAddress:                &AddressSection{CityID: 1, StateID: 1, CountryID: 1},
		PermanentAddress:              &AddressSection{CityID: 1, StateID: 1, CountryID: 1},
		PermanentAddressSameAsCurrent: true,
	}
	bundle, err := p.Prepare(context.Background(), sub, nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if !bundle.PermanentSameAsCurrent {
		t.Fatalf("same-as-current flag lost")
	}
	if len(bundle.Addresses) != 1 || bundle.Addresses[0].AddressType != AddressTypeCurrent {
		t.Fatalf("only the current address should be prepared, got %+v", bundle.Addresses)
	}
}

func TestPrepareUpdateModeKeepsWorkflowFields(t *testing.T) {
	p := newTestPreparer()

	qual := int64(2)
	existing := &Employee{
		ID:           42,
		StatusID:     2,
		Remarks:      "needs photo",
		ChecklistIDs: "1,2",
		NoticePeriod: "30 days",

		PermanentPayrollID: "P-900",
		QualificationID:    &qual,
	}
	bundle, err := p.Prepare(context.Background(), baseSubmission(), existing, 0)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Mode != ModeUpdate {
		t.Fatalf("expected update mode")
	}
	e := bundle.Employee
	if e.ID != 42 || e.StatusID != 2 || e.Remarks != "needs photo" ||
		e.ChecklistIDs != "1,2" || e.NoticePeriod != "30 days" ||
		e.PermanentPayrollID != "P-900" || e.QualificationID == nil || *e.QualificationID != 2 {
		t.Fatalf("workflow fields not carried from existing row: %+v", e)
	}
}

func TestPreparePfRecordOnlyWhenPreviousNumbersSupplied(t *testing.T) {
	p := newTestPreparer()

	bundle, err := p.Prepare(context.Background(), baseSubmission(), nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Pf != nil {
		t.Fatalf("pf record should be absent without previous numbers")
	}

	uan := int64(1234567)
	sub := baseSubmission()
	sub.BasicInfo.PreUanNum = &uan
	bundle, err = p.Prepare(context.Background(), sub, nil, 1)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if bundle.Pf == nil || bundle.Pf.PreUanNum == nil || *bundle.Pf.PreUanNum != 1234567 {
		t.Fatalf("previous uan not carried: %+v", bundle.Pf)
	}
}

func TestParseDateFormats(t *testing.T) {
	got, err := parseDate("2026-06-01")
	if err != nil || got.IsZero() {
		t.Fatalf("plain date: %v %v", got, err)
	}
	rfc, err := parseDate("2026-06-01T00:00:00Z")
	if err != nil {
		t.Fatalf("rfc3339 date: %v", err)
	}
	if !rfc.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parse result %v", rfc)
	}
	if zero, err := parseDate(""); err != nil || !zero.IsZero() {
		t.Fatalf("empty input should parse to zero, got %v %v", zero, err)
	}
}
