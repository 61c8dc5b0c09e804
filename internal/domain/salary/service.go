package salary

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
	"onboard/internal/domain/status"
)

// salaryDoneStatusID is the status the employee advances to once a
// salary record exists. The workflow addresses it by its fixed row id.
const salaryDoneStatusID = 3

type Service struct {
	store          StoreAPI
	ref            refdata.API
	registry       status.Registry
	defaultCreator int64
}

func NewService(store StoreAPI, ref refdata.API, registry status.Registry, defaultCreator int64) *Service {
	return &Service{store: store, ref: ref, registry: registry, defaultCreator: defaultCreator}
}

// Create records the salary for an active employee, derives the
// payment type from the employee's bank accounts, writes the current
// PF/ESI/UAN values gated on the eligibility flags, and advances the
// employee's status. All three writes commit in one transaction.
func (s *Service) Create(ctx context.Context, info Info) (Info, error) {
	emp, err := s.store.FindEmployeeByTempPayrollID(ctx, info.TempPayrollID)
	if err != nil {
		return Info{}, err
	}
	if emp.IsActive != 1 {
		return Info{}, apperr.InvalidArgumentf("employee with temp payroll id %s is not active", info.TempPayrollID)
	}

	if err := s.validateRefs(ctx, info); err != nil {
		return Info{}, err
	}

	paymentTypeID, err := s.store.FindPaymentTypeID(ctx, emp.ID)
	if err != nil {
		return Info{}, err
	}

	pf, err := s.buildPfDetails(emp.ID, info)
	if err != nil {
		return Info{}, err
	}
	target, err := s.registry.ByID(ctx, salaryDoneStatusID)
	if err != nil {
		return Info{}, err
	}

	rec := Record{
		EmployeeID:    emp.ID,
		MonthlyCtc:    info.MonthlyCtc,
		CtcWords:      info.CtcWords,
		YearlyCtc:     info.YearlyCtc,
		StructureID:   info.EmpStructureID,
		GradeID:       info.GradeID,
		CostCenterID:  info.CostCenterID,
		PaymentTypeID: paymentTypeID,
		IsPfEligible:  info.IsPfEligible,
		IsEsiEligible: info.IsEsiEligible,
		CreatedBy:     s.defaultCreator,
	}
	err = s.store.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := s.store.InsertSalaryTx(ctx, tx, &rec); err != nil {
			return err
		}
		if pf != nil {
			if err := s.store.UpsertPfDetailsTx(ctx, tx, *pf); err != nil {
				return err
			}
		}
		return s.store.AdvanceStatusTx(ctx, tx, emp.ID, target.ID, info.CheckListIDs)
	})
	if err != nil {
		return Info{}, err
	}

	out := info
	out.EmployeeID = emp.ID
	out.PaymentTypeID = paymentTypeID
	return out, nil
}

// Read returns the active salary record merged with the employee's
// current PF/ESI/UAN values.
func (s *Service) Read(ctx context.Context, tempPayrollID string) (Info, error) {
	emp, err := s.store.FindEmployeeByTempPayrollID(ctx, tempPayrollID)
	if err != nil {
		return Info{}, err
	}
	rec, err := s.store.FindActiveSalary(ctx, emp.ID)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		EmployeeID:     emp.ID,
		TempPayrollID:  tempPayrollID,
		MonthlyCtc:     rec.MonthlyCtc,
		CtcWords:       rec.CtcWords,
		YearlyCtc:      rec.YearlyCtc,
		EmpStructureID: rec.StructureID,
		GradeID:        rec.GradeID,
		CostCenterID:   rec.CostCenterID,
		PaymentTypeID:  rec.PaymentTypeID,
		IsPfEligible:   rec.IsPfEligible,
		IsEsiEligible:  rec.IsEsiEligible,
	}

	pf, found, err := s.store.FindPfDetails(ctx, emp.ID)
	if err != nil {
		return Info{}, err
	}
	if found {
		if pf.PfNo != nil {
			info.PfNo = *pf.PfNo
		}
		if pf.PfJoinDate != nil {
			info.PfJoinDate = pf.PfJoinDate.Format("2006-01-02")
		}
		if pf.EsiNo != nil {
			info.EsiNo = *pf.EsiNo
		}
		info.UanNo = pf.UanNo
	}
	return info, nil
}

func (s *Service) validateRefs(ctx context.Context, info Info) error {
	ok, err := s.ref.ExistsActive(ctx, refdata.KindSalaryStructure, info.EmpStructureID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("salary structure %d", info.EmpStructureID)
	}
	if info.GradeID != nil {
		ok, err := s.ref.ExistsActive(ctx, refdata.KindGrade, *info.GradeID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFoundf("grade %d", *info.GradeID)
		}
	}
	if info.CostCenterID != nil {
		ok, err := s.ref.ExistsActive(ctx, refdata.KindCostCenter, *info.CostCenterID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFoundf("cost center %d", *info.CostCenterID)
		}
	}
	return nil
}

// buildPfDetails applies the eligibility gates: PF number and join
// date persist only when PF-eligible, ESI number only when
// ESI-eligible, UAN whenever supplied.
func (s *Service) buildPfDetails(employeeID int64, info Info) (*PfDetails, error) {
	pf := PfDetails{EmployeeID: employeeID, CreatedBy: s.defaultCreator}
	touched := false

	if info.IsPfEligible == 1 {
		if info.PfNo != "" {
			no := info.PfNo
			pf.PfNo = &no
			touched = true
		}
		if info.PfJoinDate != "" {
			d, err := parseDate(info.PfJoinDate)
			if err != nil {
				return nil, apperr.InvalidArgumentf("pf join date %q is not a valid date", info.PfJoinDate)
			}
			pf.PfJoinDate = &d
			touched = true
		}
	}
	if info.IsEsiEligible == 1 && info.EsiNo != "" {
		no := info.EsiNo
		pf.EsiNo = &no
		touched = true
	}
	if info.UanNo != nil {
		pf.UanNo = info.UanNo
		touched = true
	}
	if !touched {
		return nil, nil
	}
	return &pf, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
