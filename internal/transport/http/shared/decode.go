package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"onboard/internal/transport/http/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// DecodeAndValidate decodes the JSON body into dst and runs its
// `validate` struct tags. On failure it writes the error response and
// returns false; the handler should return immediately.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, requestID string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			issues := make([]ValidationIssue, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				issues = append(issues, ValidationIssue{
					Field:  fieldPath(fe.Namespace()),
					Reason: reasonFor(fe),
				})
			}
			api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed", map[string]any{"fields": issues}, requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}

	return true
}

// fieldPath drops the top-level struct name from the namespace so the
// caller sees "basicInfo.firstName" style paths.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return lowerFirstSegments(namespace[idx+1:])
	}
	return namespace
}

func lowerFirstSegments(path string) string {
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		segments[i] = strings.ToLower(segment[:1]) + segment[1:]
	}
	return strings.Join(segments, ".")
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "numeric":
		return "must be numeric"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
