// Package salary exposes the salary record endpoints.
package salary

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"onboard/internal/domain/salary"
	"onboard/internal/middleware"
	"onboard/internal/transport/http/api"
	"onboard/internal/transport/http/shared"
)

type ServiceAPI interface {
	Create(ctx context.Context, info salary.Info) (salary.Info, error)
	Read(ctx context.Context, tempPayrollID string) (salary.Info, error)
}

type Handler struct {
	service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/salary-info", h.create)
	r.Get("/salary-info/by-temp-payroll-id", h.read)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var info salary.Info
	if !shared.DecodeAndValidate(w, r, &info, requestID) {
		return
	}

	out, err := h.service.Create(r.Context(), info)
	if err != nil {
		shared.FailFromError(w, err, requestID)
		return
	}
	api.Created(w, out, requestID)
}

func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	tempPayrollID := strings.TrimSpace(r.URL.Query().Get("tempPayrollId"))
	if tempPayrollID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_argument", "tempPayrollId query parameter is required", requestID)
		return
	}

	info, err := h.service.Read(r.Context(), tempPayrollID)
	if err != nil {
		shared.FailFromError(w, err, requestID)
		return
	}
	api.Success(w, info, requestID)
}
