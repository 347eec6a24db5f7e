package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lower-cased header names that carry credentials.
// The HTTP middleware redacts the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns that may appear in arbitrary string fields.
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// sensitiveFields are attribute names whose values are always masked.
var sensitiveFields = []string{
	"password",
	"password_hash",
	"secret",
	"jwt_secret",
	"token",
	"access_token",
	"refresh_token",
}

// newRedactAttr masks sensitive attributes by name and, for values logged
// under innocent names, by pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
