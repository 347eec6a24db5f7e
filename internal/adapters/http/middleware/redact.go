package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns headers into log attributes sorted by name. Values of
// the credential headers in logging.SensitiveHeaders are replaced, so a
// bearer token never reaches the request log even at debug level.
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		value := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
