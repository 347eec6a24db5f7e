package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     time.Second,
		multiplier:      2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: 800 * time.Millisecond},
		{attempt: 10, base: time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 200 {
				if d := backoff(tt.attempt, cfg); d < lo || d > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
				}
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("put: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unexpected EOF", err: io.ErrUnexpectedEOF, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retry := []int{429, 500, 502, 503, 504}
	final := []int{200, 201, 204, 400, 401, 403, 404, 409, 413, 501, 505}

	for _, code := range retry {
		if !isRetryableStatus(code) {
			t.Errorf("isRetryableStatus(%d) = false, want true", code)
		}
	}
	for _, code := range final {
		if isRetryableStatus(code) {
			t.Errorf("isRetryableStatus(%d) = true, want false", code)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "", want: 0},
		{in: "3", want: 3 * time.Second},
		{in: " 1 ", want: time.Second},
		{in: "-5", want: 0},
		{in: "Wed, 21 Oct 2026 07:28:00 GMT", want: 0},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.in); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRewindable(t *testing.T) {
	t.Parallel()

	buffered, _ := http.NewRequest(http.MethodPut, "http://blob/objects/a", strings.NewReader("x"))
	empty, _ := http.NewRequest(http.MethodGet, "http://blob/objects/a", http.NoBody)
	streamed, _ := http.NewRequest(http.MethodPut, "http://blob/objects/a", io.MultiReader(strings.NewReader("x")))

	if !rewindable(buffered) {
		t.Error("strings.Reader body should be rewindable")
	}
	if !rewindable(empty) {
		t.Error("NoBody should be rewindable")
	}
	if rewindable(streamed) {
		t.Error("streamed body should not be rewindable")
	}
}

func TestSecureRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := secureRandFloat64(); v < 0 || v >= 1 {
			t.Fatalf("secureRandFloat64() = %v, want [0, 1)", v)
		}
	}
}
