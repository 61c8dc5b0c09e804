// Package refdata resolves foreign keys against the master/reference
// tables. Every lookup is read-only; reference rows are maintained
// outside this system.
package refdata

import (
	"context"
	"fmt"
)

// Kind names one reference collection. Lookups are table-driven off
// this whitelist so a bad kind is caught as a plain error instead of
// interpolated SQL.
type Kind string

const (
	KindGender              Kind = "gender"
	KindDesignation         Kind = "designation"
	KindDepartment          Kind = "department"
	KindCategory            Kind = "category"
	KindEmployeeType        Kind = "employee_type"
	KindWorkingMode         Kind = "working_mode"
	KindJoinType            Kind = "join_type"
	KindModeOfHiring        Kind = "mode_of_hiring"
	KindCampus              Kind = "campus"
	KindBloodGroup          Kind = "blood_group"
	KindCaste               Kind = "caste"
	KindReligion            Kind = "religion"
	KindMaritalStatus       Kind = "marital_status"
	KindRelation            Kind = "relation"
	KindCountry             Kind = "country"
	KindState               Kind = "state"
	KindCity                Kind = "city"
	KindQualificationType   Kind = "qualification_type"
	KindQualificationDegree Kind = "qualification_degree"
	KindDocumentType        Kind = "document_type"
	KindPaymentType         Kind = "payment_type"
	KindSalaryStructure     Kind = "salary_structure"
	KindGrade               Kind = "grade"
	KindCostCenter          Kind = "cost_center"
	KindChecklistItem       Kind = "checklist_item"
	KindSubject             Kind = "subject"
	KindAgreementOrg        Kind = "agreement_org"
)

var tables = map[Kind]string{
	KindGender:              "genders",
	KindDesignation:         "designations",
	KindDepartment:          "departments",
	KindCategory:            "categories",
	KindEmployeeType:        "employee_types",
	KindWorkingMode:         "working_modes",
	KindJoinType:            "join_types",
	KindModeOfHiring:        "modes_of_hiring",
	KindCampus:              "campuses",
	KindBloodGroup:          "blood_groups",
	KindCaste:               "castes",
	KindReligion:            "religions",
	KindMaritalStatus:       "marital_statuses",
	KindRelation:            "relations",
	KindCountry:             "countries",
	KindState:               "states",
	KindCity:                "cities",
	KindQualificationType:   "qualification_types",
	KindQualificationDegree: "qualification_degrees",
	KindDocumentType:        "document_types",
	KindPaymentType:         "payment_types",
	KindSalaryStructure:     "salary_structures",
	KindGrade:               "grades",
	KindCostCenter:          "cost_centers",
	KindChecklistItem:       "checklist_items",
	KindSubject:             "subjects",
	KindAgreementOrg:        "agreement_orgs",
}

func tableFor(kind Kind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown reference kind %q", kind)
	}
	return table, nil
}

// API is the lookup surface the validators depend on.
type API interface {
	Exists(ctx context.Context, kind Kind, id int64) (bool, error)
	ExistsActive(ctx context.Context, kind Kind, id int64) (bool, error)
	Name(ctx context.Context, kind Kind, id int64) (string, error)
	IDByName(ctx context.Context, kind Kind, name string) (int64, error)
}
