package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/amanranjan113114/qr-generator/internal/payload"
	"github.com/amanranjan113114/qr-generator/pkg/binder"
)

// ErrorDetail contains error information for the JSON error envelope.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error *ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeImage(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "inline; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// classifyError maps an error to its HTTP status and wire detail.
func classifyError(err error) (int, *ErrorDetail) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: ve.Error(),
			Details: map[string][]string(ve),
		}
	}

	var missing *payload.MissingFieldsError
	if errors.As(err, &missing) {
		details := make(map[string][]string, len(missing.Fields))
		for _, f := range missing.Fields {
			details[f] = []string{"is required"}
		}
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "missing_fields",
			Message: missing.Error(),
			Details: details,
		}
	}

	var invalid *payload.InvalidFieldError
	if errors.As(err, &invalid) {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: invalid.Error(),
			Details: map[string][]string{invalid.Field: {invalid.Reason}},
		}
	}

	if errors.Is(err, payload.ErrMeCardIdentity) {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "invalid_mecard_identity",
			Message: err.Error(),
		}
	}

	if errors.Is(err, payload.ErrUnsupportedKind) {
		return http.StatusBadRequest, &ErrorDetail{
			Code:    "unsupported_type",
			Message: err.Error(),
		}
	}

	if errors.Is(err, binder.ErrFailedToParseJSON) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) {
		return ErrInvalidRequestBody.Code, &ErrorDetail{
			Code:    ErrInvalidRequestBody.Key,
			Message: err.Error(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: "an error occurred processing the request",
	}
}
