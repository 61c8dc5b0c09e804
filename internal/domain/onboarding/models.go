package onboarding

import "time"

// Submission is the composite onboarding document as received over
// the wire. It is treated as immutable: preparation reads it and
// produces a Prepared bundle, never mutates it. The echoed response
// is the same shape with the assigned employee id filled in.
type Submission struct {
	BasicInfo            BasicInfo             `json:"basicInfo" validate:"required"`
	AddressInfo          *AddressInfo          `json:"addressInfo,omitempty"`
	FamilyInfo           *FamilyInfo           `json:"familyInfo,omitempty"`
	PreviousEmployerInfo *PreviousEmployerInfo `json:"previousEmployerInfo,omitempty"`
	Qualification        *QualificationInfo    `json:"qualification,omitempty"`
	Documents            *DocumentInfo         `json:"documents,omitempty"`
	CategoryInfo         *CategoryInfo         `json:"categoryInfo,omitempty"`
	BankInfo             *BankInfo             `json:"bankInfo,omitempty"`
	AgreementInfo        *AgreementInfo        `json:"agreementInfo,omitempty"`
}

type BasicInfo struct {
	EmpID               int64  `json:"empId,omitempty"`
	FirstName           string `json:"firstName" validate:"required,max=50"`
	LastName            string `json:"lastName" validate:"required,max=50"`
	DateOfJoin          string `json:"dateOfJoin" validate:"required"`
	PrimaryMobileNo     int64  `json:"primaryMobileNo" validate:"required"`
	Email               string `json:"email,omitempty" validate:"omitempty,max=50"`
	GenderID            int64  `json:"genderId" validate:"required"`
	ReferenceEmpID      *int64 `json:"referenceEmpId,omitempty"`
	HiredByEmpID        *int64 `json:"hiredByEmpId,omitempty"`
	DesignationID       int64  `json:"designationId" validate:"required"`
	DepartmentID        int64  `json:"departmentId" validate:"required"`
	ManagerID           *int64 `json:"managerId,omitempty"`
	CategoryID          int64  `json:"categoryId" validate:"required"`
	ReportingManagerID  *int64 `json:"reportingManagerId,omitempty"`
	EmpTypeID           *int64 `json:"empTypeId,omitempty"`
	EmpWorkModeID       *int64 `json:"empWorkModeId,omitempty"`
	ReplacedByEmpID     *int64 `json:"replacedByEmpId,omitempty"`
	JoinTypeID          *int64 `json:"joinTypeId,omitempty"`
	ModeOfHiringID      *int64 `json:"modeOfHiringId,omitempty"`
	ContractStartDate   string `json:"contractStartDate,omitempty"`
	ContractEndDate     string `json:"contractEndDate,omitempty"`
	AdhaarName          string `json:"adhaarName,omitempty"`
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	AadharNum           string `json:"aadharNum,omitempty"`
	AadharEnrolmentNum  string `json:"aadharEnrolmentNum,omitempty"`
	PancardNum          string `json:"pancardNum,omitempty"`
	BloodGroupID        int64  `json:"bloodGroupId" validate:"required"`
	CasteID             int64  `json:"casteId" validate:"required"`
	ReligionID          int64  `json:"religionId" validate:"required"`
	MaritalStatusID     int64  `json:"maritalStatusId" validate:"required"`
	EmergencyPhNo       string `json:"emergencyPhNo" validate:"required"`
	EmergencyRelationID *int64 `json:"emergencyRelationId,omitempty"`
	PreUanNum           *int64 `json:"preUanNum,omitempty"`
	PreEsiNum           *int64 `json:"preEsiNum,omitempty"`
	CampusID            *int64 `json:"campusId,omitempty"`
	TotalExperience     *int64 `json:"totalExperience,omitempty"`
	ProfilePicture      string `json:"profilePicture,omitempty"`
	CreatedBy           *int64 `json:"createdBy,omitempty"`
	TempPayrollID       string `json:"tempPayrollId,omitempty"`
}

type AddressInfo struct {
	CurrentAddress                *AddressSection `json:"currentAddress,omitempty"`
	PermanentAddress              *AddressSection `json:"permanentAddress,omitempty"`
	PermanentAddressSameAsCurrent bool            `json:"permanentAddressSameAsCurrent,omitempty"`
}

type AddressSection struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=50"`
	AddressLine string `json:"addressLine,omitempty"`
	CityID      int64  `json:"cityId,omitempty"`
	StateID     int64  `json:"stateId,omitempty"`
	CountryID   int64  `json:"countryId,omitempty"`
	Pin         string `json:"pin,omitempty" validate:"omitempty,max=10"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type FamilyInfo struct {
	FamilyMembers        []FamilyMemberSection `json:"familyMembers,omitempty"`
	FamilyGroupPhotoPath string                `json:"familyGroupPhotoPath,omitempty"`
}

type FamilyMemberSection struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	RelationID    int64  `json:"relationId,omitempty"`
	GenderID      *int64 `json:"genderId,omitempty"`
	BloodGroupID  int64  `json:"bloodGroupId,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	IsLate        bool   `json:"isLate,omitempty"`
	IsDependent   bool   `json:"isDependent,omitempty"`
	IsOrgEmployee bool   `json:"isOrgEmployee,omitempty"`
	ParentEmpID   *int64 `json:"parentEmpId,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
}

type PreviousEmployerInfo struct {
	Employers []PriorEmploymentSection `json:"employers,omitempty"`
}

type PriorEmploymentSection struct {
	CompanyName        string `json:"companyName,omitempty"`
	Designation        string `json:"designation,omitempty"`
	FromDate           string `json:"fromDate,omitempty"`
	ToDate             string `json:"toDate,omitempty"`
	LeavingReason      string `json:"leavingReason,omitempty"`
	NatureOfDuties     string `json:"natureOfDuties,omitempty"`
	CompanyAddressLine string `json:"companyAddressLine,omitempty"`
}

type QualificationInfo struct {
	Qualifications []QualificationSection `json:"qualifications,omitempty"`
}

type QualificationSection struct {
	QualificationID       int64  `json:"qualificationId,omitempty"`
	QualificationDegreeID int64  `json:"qualificationDegreeId,omitempty"`
	Specialization        string `json:"specialization,omitempty"`
	University            string `json:"university,omitempty"`
	Institute             string `json:"institute,omitempty"`
	PassedOutYear         *int64 `json:"passedOutYear,omitempty"`
	CertificateFile       string `json:"certificateFile,omitempty"`
	IsHighest             bool   `json:"isHighest,omitempty"`
}

type DocumentInfo struct {
	Documents []DocumentSection `json:"documents,omitempty"`
}

type DocumentSection struct {
	DocTypeID  int64  `json:"docTypeId,omitempty"`
	DocPath    string `json:"docPath,omitempty"`
	IsVerified bool   `json:"isVerified,omitempty"`
}

type CategoryInfo struct {
	EmployeeTypeID       *int64 `json:"employeeTypeId,omitempty"`
	SubjectID            *int64 `json:"subjectId,omitempty"`
	DepartmentID         *int64 `json:"departmentId,omitempty"`
	DesignationID        *int64 `json:"designationId,omitempty"`
	AgreedPeriodsPerWeek *int64 `json:"agreedPeriodsPerWeek,omitempty"`
}

type BankInfo struct {
	PersonalAccount *BankAccountSection `json:"personalAccount,omitempty"`
	SalaryAccount   *BankAccountSection `json:"salaryAccount,omitempty"`
	BankID          *int64              `json:"bankId,omitempty"`
	BankBranchID    *int64              `json:"bankBranchId,omitempty"`
	PaymentTypeID   *int64              `json:"paymentTypeId,omitempty"`
}

type BankAccountSection struct {
	AccNo          string `json:"accNo,omitempty"`
	IfscCode       string `json:"ifscCode,omitempty"`
	BankHolderName string `json:"bankHolderName,omitempty"`
}

type AgreementInfo struct {
	AgreementOrgID *int64          `json:"agreementOrgId,omitempty"`
	AgreementType  string          `json:"agreementType,omitempty"`
	ProvidedCheque bool            `json:"providedCheque,omitempty"`
	IsCheckSubmit  *int16          `json:"isCheckSubmit,omitempty"`
	ChequeDetails  []ChequeSection `json:"chequeDetails,omitempty"`
}

type ChequeSection struct {
	ChequeNo           int64  `json:"chequeNo,omitempty"`
	ChequeBankName     string `json:"chequeBankName,omitempty"`
	ChequeBankIfscCode string `json:"chequeBankIfscCode,omitempty"`
}

// Address types and bank account types stored on the child rows.
const (
	AddressTypeCurrent   = "CURR"
	AddressTypePermanent = "PERM"

	AccountTypePersonal = "PERSONAL"
	AccountTypeSalary   = "SALARY"
)

// FamilyPhotoDocumentType is the distinguished document type attached
// when a family group photo path is supplied.
const FamilyPhotoDocumentType = "Family Group Photo"

// Employee is the aggregate root row. Self-referencing links are
// stored as plain ids and resolved through lookups, never embedded.
type Employee struct {
	ID                 int64
	FirstName          string
	LastName           string
	DateOfJoin         time.Time
	PrimaryMobileNo    int64
	Email              string
	TempPayrollID      string
	PermanentPayrollID string
	StatusID           int64
	Remarks            string
	ChecklistIDs       string
	NoticePeriod       string
	ContractStartDate  *time.Time
	ContractEndDate    *time.Time
	GenderID           int64
	DesignationID      int64
	DepartmentID       int64
	CategoryID         int64
	QualificationID    *int64
	EmpTypeID          *int64
	WorkModeID         *int64
	JoinTypeID         *int64
	ModeOfHiringID     *int64
	CampusID           *int64
	ReferenceEmpID     *int64
	HiredByEmpID       *int64
	ManagerID          *int64
	ReportingManagerID *int64
	ReplacedByEmpID    *int64
	AgreementOrgID     *int64
	AgreementType      string
	IsCheckSubmit      *int16
	AgreedPeriods      *int64
	TotalExperience    *int64
	ProfilePicture     string
	CreatedBy          int64
	IsActive           int16
}

type PersonalDetails struct {
	ID                  int64
	EmployeeID          int64
	AdhaarName          string
	DateOfBirth         *time.Time
	AadharNum           string
	AadharEnrolmentNum  string
	PancardNum          string
	BloodGroupID        int64
	CasteID             int64
	ReligionID          int64
	MaritalStatusID     int64
	EmergencyPhNo       string
	EmergencyRelationID *int64
	CreatedBy           int64
}

type PfRecord struct {
	ID         int64
	EmployeeID int64
	PreUanNum  *int64
	PreEsiNum  *int64
	CreatedBy  int64
}

type Address struct {
	ID          int64
	EmployeeID  int64
	AddressType string
	Name        string
	AddressLine string
	CityID      int64
	StateID     int64
	CountryID   int64
	Pin         string
	PhoneNumber string
	CreatedBy   int64
}

type FamilyMember struct {
	ID            int64
	EmployeeID    int64
	FirstName     string
	LastName      string
	RelationID    int64
	GenderID      int64
	BloodGroupID  int64
	Nationality   string
	Occupation    string
	DateOfBirth   *time.Time
	IsLate        bool
	IsDependent   bool
	IsOrgEmployee bool
	ParentEmpID   *int64
	Email         string
	PhoneNumber   string
	CreatedBy     int64
}

type PriorEmployment struct {
	ID             int64
	EmployeeID     int64
	CompanyName    string
	Designation    string
	FromDate       time.Time
	ToDate         time.Time
	LeavingReason  string
	NatureOfDuties string
	CompanyAddress string
	CreatedBy      int64
}

type Qualification struct {
	ID                    int64
	EmployeeID            int64
	QualificationTypeID   int64
	QualificationDegreeID int64
	Specialization        string
	University            string
	Institute             string
	PassedOutYear         *int64
	CertificateFile       string
	IsHighest             bool
	CreatedBy             int64
}

type Document struct {
	ID         int64
	EmployeeID int64
	DocTypeID  int64
	DocPath    string
	IsVerified bool
	CreatedBy  int64
}

type BankAccount struct {
	ID            int64
	EmployeeID    int64
	AccountType   string
	AccNo         int64
	IfscCode      string
	HolderName    string
	BankID        *int64
	BankBranchID  *int64
	PaymentTypeID *int64
	CreatedBy     int64
}

type Cheque struct {
	ID         int64
	EmployeeID int64
	ChequeNo   int64
	BankName   string
	IfscCode   string
	CreatedBy  int64
}

// Mode is decided once per request by temp-payroll-id resolution.
type Mode int

const (
	ModeInsert Mode = iota
	ModeUpdate
)

// Prepared is the fully built entity graph, assembled in memory with
// defaults applied and re-validated before the first write.
type Prepared struct {
	Mode             Mode
	Employee         Employee
	Personal         PersonalDetails
	Pf               *PfRecord
	Addresses        []Address
	Family           []FamilyMember
	PriorEmployments []PriorEmployment
	Qualifications   []Qualification
	Documents        []Document
	BankAccounts     []BankAccount
	Cheques          []Cheque

	PermanentSameAsCurrent bool
	FamilyPhotoPath        string
	SubjectID              *int64
	AgreedPeriods          *int64
	HasAgreementInfo       bool
	ProvidedCheque         bool
	HighestQualTypeID      *int64
}
