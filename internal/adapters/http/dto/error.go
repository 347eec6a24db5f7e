package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Code is
// the stable domain error code.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Fixed details replace the error text for 500 and 504 responses.
const (
	internalDetail = "an unexpected error occurred"
	timeoutDetail  = "the request did not complete in time"
)

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	detail := err.Error()
	switch status {
	case http.StatusInternalServerError:
		detail = internalDetail
	case http.StatusGatewayTimeout:
		detail = timeoutDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     errorCode(err, status),
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json. Server-side
// failures are logged; 401 responses carry a Bearer challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.String("code", resp.Code),
			slog.Any("error", err),
		)
	}
	if resp.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="task-tracker"`)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain errors to HTTP status codes. File
// admission errors are checked before the sentinels they wrap.
func domainErrorToStatus(err error) int {
	var (
		tooLarge    *domain.FileSizeExceededError
		unsupported *domain.UnsupportedFileTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorCode prefers the typed error's code and falls back to one derived
// from the status for bare sentinels.
func errorCode(err error, status int) string {
	if code := domain.ErrorCode(err); code != domain.CodeInternal {
		return code
	}
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadGateway:
		return "UPSTREAM_UNAVAILABLE"
	case http.StatusGatewayTimeout:
		return "REQUEST_TIMEOUT"
	default:
		return domain.CodeInternal
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
