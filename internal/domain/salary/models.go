package salary

import "time"

// Info is the wire shape for salary creation and lookup. PF/ESI/UAN
// values pass through to the employee's PF record; they are not
// columns on the salary row itself.
type Info struct {
	EmployeeID     int64   `json:"empId,omitempty"`
	TempPayrollID  string  `json:"tempPayrollId" validate:"required"`
	MonthlyCtc     float64 `json:"monthlyCtc" validate:"required"`
	CtcWords       string  `json:"ctcWords,omitempty"`
	YearlyCtc      float64 `json:"yearlyCtc" validate:"required"`
	EmpStructureID int64   `json:"empStructureId" validate:"required"`
	GradeID        *int64  `json:"gradeId,omitempty"`
	CostCenterID   *int64  `json:"costCenterId,omitempty"`
	PaymentTypeID  *int64  `json:"paymentTypeId,omitempty"`
	IsPfEligible   int16   `json:"isPfEligible,omitempty"`
	IsEsiEligible  int16   `json:"isEsiEligible,omitempty"`
	PfNo           string  `json:"pfNo,omitempty"`
	PfJoinDate     string  `json:"pfJoinDate,omitempty"`
	EsiNo          string  `json:"esiNo,omitempty"`
	UanNo          *int64  `json:"uanNo,omitempty"`
	CheckListIDs   string  `json:"checkListIds,omitempty"`
}

// Record is the persisted salary row.
type Record struct {
	ID            int64
	EmployeeID    int64
	MonthlyCtc    float64
	CtcWords      string
	YearlyCtc     float64
	StructureID   int64
	GradeID       *int64
	CostCenterID  *int64
	PaymentTypeID *int64
	IsPfEligible  int16
	IsEsiEligible int16
	CreatedBy     int64
}

// PfDetails carries the current PF/ESI/UAN values written alongside a
// salary record. Nil fields are left untouched on update.
type PfDetails struct {
	EmployeeID int64
	PfNo       *string
	PfJoinDate *time.Time
	EsiNo      *string
	UanNo      *int64
	CreatedBy  int64
}
