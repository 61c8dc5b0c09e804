// Package centraloffice exposes the Central Office review endpoints:
// checklist confirmation and reject-back-to-DO.
package centraloffice

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboard/internal/domain/checklist"
	"onboard/internal/middleware"
	"onboard/internal/transport/http/api"
	"onboard/internal/transport/http/shared"
)

type ServiceAPI interface {
	Update(ctx context.Context, req checklist.UpdateRequest) error
	RejectBackToDO(ctx context.Context, req checklist.RejectRequest) error
}

type Handler struct {
	service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/central-office/update-checklist", h.updateChecklist)
	r.Put("/central-office/update-checklist", h.updateChecklist)
	r.Post("/central-office/reject-back-to-do", h.rejectBackToDO)
}

func (h *Handler) updateChecklist(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req checklist.UpdateRequest
	if !shared.DecodeAndValidate(w, r, &req, requestID) {
		return
	}

	if err := h.service.Update(r.Context(), req); err != nil {
		shared.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"tempPayrollId": req.TempPayrollID}, requestID)
}

func (h *Handler) rejectBackToDO(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req checklist.RejectRequest
	if !shared.DecodeAndValidate(w, r, &req, requestID) {
		return
	}

	if err := h.service.RejectBackToDO(r.Context(), req); err != nil {
		shared.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"tempPayrollId": req.TempPayrollID}, requestID)
}
