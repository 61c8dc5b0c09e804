package checklist

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"onboard/internal/domain/apperr"
	"onboard/internal/domain/refdata"
	"onboard/internal/domain/status"
)

const maxRemarksLen = 250

// UpdateRequest carries the Central Office checklist confirmation.
// CheckListIDs is a comma-separated list of checklist item ids.
type UpdateRequest struct {
	TempPayrollID string `json:"tempPayrollId" validate:"required"`
	CheckListIDs  string `json:"checkListIds" validate:"required"`
	NoticePeriod  string `json:"noticePeriod,omitempty"`
}

type RejectRequest struct {
	TempPayrollID string `json:"tempPayrollId" validate:"required"`
	Remarks       string `json:"remarks" validate:"required,max=250"`
}

type Service struct {
	store    StoreAPI
	ref      refdata.API
	registry status.Registry
}

func NewService(store StoreAPI, ref refdata.API, registry status.Registry) *Service {
	return &Service{store: store, ref: ref, registry: registry}
}

// Update persists the checklist selection and, when the application is
// sitting at "Pending at CO", confirms it and clears the remarks. Any
// other current status keeps its state and only the checklist and
// notice period change.
func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	ids, err := parseChecklistIDs(req.CheckListIDs)
	if err != nil {
		return err
	}
	if err := s.checkItemsActive(ctx, ids); err != nil {
		return err
	}

	emp, err := s.store.FindEmployeeByTempPayrollID(ctx, req.TempPayrollID)
	if err != nil {
		return err
	}
	current, err := s.registry.ByID(ctx, emp.StatusID)
	if err != nil {
		return err
	}

	confirming := current.Name == status.PendingAtCO
	var confirmed status.Status
	if confirming {
		if !status.CanTransition(current.Name, status.Confirm) {
			return apperr.InvalidArgumentf("cannot confirm from status %q", current.Name)
		}
		confirmed, err = s.registry.ByName(ctx, status.Confirm)
		if err != nil {
			return err
		}
	}

	return s.store.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := s.store.UpdateChecklistTx(ctx, tx, emp.ID, req.CheckListIDs, strings.TrimSpace(req.NoticePeriod)); err != nil {
			return err
		}
		if !confirming {
			return nil
		}
		return s.store.UpdateStatusTx(ctx, tx, emp.ID, confirmed.ID, "")
	})
}

// RejectBackToDO pushes a pending application back to the Demand
// Officer with the reviewer's remarks. Only "Pending at CO" may be
// rejected; the error names the actual status otherwise.
func (s *Service) RejectBackToDO(ctx context.Context, req RejectRequest) error {
	remarks := strings.TrimSpace(req.Remarks)
	if remarks == "" {
		return apperr.InvalidArgumentf("remarks are required")
	}
	if len(remarks) > maxRemarksLen {
		return apperr.InvalidArgumentf("remarks must be at most %d characters", maxRemarksLen)
	}

	emp, err := s.store.FindEmployeeByTempPayrollID(ctx, req.TempPayrollID)
	if err != nil {
		return err
	}
	current, err := s.registry.ByID(ctx, emp.StatusID)
	if err != nil {
		return err
	}
	if current.Name != status.PendingAtCO || !status.CanTransition(current.Name, status.BackToDO) {
		return apperr.InvalidArgumentf("cannot reject application in status %q", current.Name)
	}

	target, err := s.registry.ByName(ctx, status.BackToDO)
	if err != nil {
		return err
	}
	return s.store.RunInTx(ctx, func(tx pgx.Tx) error {
		return s.store.UpdateStatusTx(ctx, tx, emp.ID, target.ID, remarks)
	})
}

func parseChecklistIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperr.InvalidArgumentf("checklist ids are required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, apperr.InvalidArgumentf("checklist id %q is not a number", strings.TrimSpace(part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Service) checkItemsActive(ctx context.Context, ids []int64) error {
	var bad []string
	for _, id := range ids {
		ok, err := s.ref.ExistsActive(ctx, refdata.KindChecklistItem, id)
		if err != nil {
			return err
		}
		if !ok {
			bad = append(bad, strconv.FormatInt(id, 10))
		}
	}
	if len(bad) > 0 {
		return apperr.InvalidArgumentf("checklist items not active: %s", strings.Join(bad, ", "))
	}
	return nil
}
