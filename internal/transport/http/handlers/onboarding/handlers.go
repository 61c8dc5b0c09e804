// Package onboarding exposes the onboarding submission endpoint.
package onboarding

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboard/internal/domain/onboarding"
	"onboard/internal/middleware"
	"onboard/internal/transport/http/api"
	"onboard/internal/transport/http/shared"
)

type ServiceAPI interface {
	Onboard(ctx context.Context, sub onboarding.Submission) (onboarding.Submission, error)
}

type Handler struct {
	service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/onboard", h.onboard)
}

func (h *Handler) onboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var sub onboarding.Submission
	if !shared.DecodeAndValidate(w, r, &sub, requestID) {
		return
	}

	out, err := h.service.Onboard(r.Context(), sub)
	if err != nil {
		shared.FailFromError(w, err, requestID)
		return
	}
	api.Created(w, out, requestID)
}
