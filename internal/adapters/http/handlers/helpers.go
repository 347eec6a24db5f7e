package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// queryInt64 reads an optional integer query parameter into fields on
// failure.
func queryInt64(q url.Values, key string, fields map[string]string) int64 {
	raw := q.Get(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fields[key] = "must be a valid integer"
		return 0
	}
	return v
}

func queryInt(q url.Values, key string, fields map[string]string) int {
	return int(queryInt64(q, key, fields))
}

// parsePage reads limit and offset.
func parsePage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	fields := make(map[string]string)
	limit = queryInt(q, "limit", fields)
	offset = queryInt(q, "offset", fields)
	if len(fields) > 0 {
		return 0, 0, &domain.ValidationError{Fields: fields}
	}
	return limit, offset, nil
}

// parseTaskFilter builds a task.Filter from query parameters. Range checks
// are left to the service.
func parseTaskFilter(r *http.Request) (task.Filter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	f := task.Filter{
		Status:     task.Status(q.Get("status")),
		CreatorID:  queryInt64(q, "creator_id", fields),
		AssigneeID: queryInt64(q, "assignee_id", fields),
		TagID:      queryInt64(q, "tag_id", fields),
		Limit:      queryInt(q, "limit", fields),
		Offset:     queryInt(q, "offset", fields),
	}
	if raw := q.Get("include_archived"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields["include_archived"] = "must be a boolean"
		}
		f.IncludeArchived = b
	}

	if len(fields) > 0 {
		return task.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return f, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// pathID parses the named path parameter and writes a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := parseID(r, param)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, false
	}
	return id, true
}
