package shared

import (
	"net/http"

	"onboard/internal/domain/apperr"
	"onboard/internal/transport/http/api"
)

// FailFromError maps a domain error onto the wire envelope.
func FailFromError(w http.ResponseWriter, err error, requestID string) {
	status := apperr.HTTPStatus(err)
	code := "internal_error"
	message := "internal server error"
	switch {
	case apperr.IsNotFound(err):
		code = "not_found"
		message = err.Error()
	case apperr.IsInvalidArgument(err):
		code = "invalid_argument"
		message = err.Error()
	}
	api.Fail(w, status, code, message, requestID)
}
