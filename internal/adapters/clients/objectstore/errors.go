package objectstore

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// problemDetail is the subset of an RFC 7807 body we look at.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an object store error response to a domain error.
//
// Authentication failures are the tracker's misconfiguration, not the
// caller's, so 401 and 403 surface as ErrUnavailable along with 5xx.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("object store: %s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusRequestEntityTooLarge:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("object store: %s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("object store: %s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("object store: %s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("object store: unexpected status %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
