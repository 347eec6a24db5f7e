package httpclient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry sends req, retrying transport errors and retryable statuses
// with jittered exponential backoff. The body is rewound through
// req.GetBody between attempts; a body without GetBody, such as a streamed
// attachment upload, gets exactly one attempt. A Retry-After header on 429
// or 503 replaces the computed delay, capped at the max interval.
//
// The response is written to resp instead of returned to keep the
// bodyclose linter quiet; the caller closes it. After the last attempt a
// retryable response is handed back with its body unread, alongside the
// error.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if !rewindable(req) {
		attempts = 1
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := rewind(req); err != nil {
				return err
			}
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			retryAfter = 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"))
		drainResponseBody(r)
	}

	return lastErr
}

// rewindable reports whether req can be sent more than once.
func rewindable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// parseRetryAfter reads the delay-seconds form of Retry-After. HTTP dates
// and garbage yield zero, meaning use the computed backoff.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// drainResponseBody discards the rest of a body so the connection can be
// reused for the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the retry at WARN and sleeps for the backoff, or for
// retryAfter when the server asked for a longer pause.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if retryAfter > delay {
		delay = min(retryAfter, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	// Apply ±25% jitter to prevent thundering herd.
	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport error is worth another attempt.
// Only the caller's own cancellation or deadline stops retries.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the object store may succeed on a
// later attempt. 501 and 505 are permanent.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
