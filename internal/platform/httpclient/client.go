// Package httpclient is the resilient outbound HTTP client used for the
// remote blob store. Each request passes through
//
//	Circuit Breaker -> Rate Limiter -> Header Injection -> OTEL Span -> Retry -> HTTP
//
// Request and correlation ids stored with WithRequestID and
// WithCorrelationID are forwarded as X-Request-ID and X-Correlation-ID.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for forwarding.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation id for forwarding.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil disables rate limiting
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for the service at cfg.BaseURL. serviceName labels
// spans, metrics and the breaker, e.g. "blob-store". metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	cb := cfg.CircuitBreaker
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		// A caller giving up says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: c.logBreakerChange,
	})
	return c
}

func (c *Client) logBreakerChange(name string, from, to gobreaker.State) {
	level := slog.LevelWarn
	if to == gobreaker.StateClosed {
		level = slog.LevelInfo
	}
	c.logger.Log(context.Background(), level, "circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

// Do sends req through the pipeline described in the package doc.
//
// A non-nil resp always carries an open body the caller must close. After
// retries are exhausted on a retryable status both resp and err are set;
// a breaker rejection or network failure returns a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		// The span context drives cancellation and trace propagation.
		req = req.WithContext(spanCtx)

		err := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL returns the base URL configured for this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest builds a request for path relative to the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("joining %q onto %q: %w", path, c.baseURL, err)
	}
	return http.NewRequestWithContext(ctx, method, u, body)
}

// Name returns the downstream service identifier. With HealthCheck it
// satisfies ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker state without a network call: closed is
// healthy, half-open is degraded and open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// waitForRateLimit blocks until the rate limiter allows the request or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders adds Request-ID and Correlation-ID headers to the outbound
// request if present in the context.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan opens a client span named "HTTP <method> <service>" and writes
// the W3C trace context into req's headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL.Redacted()),
		attribute.String("peer.service", c.serviceName),
	}
	if req.ContentLength > 0 {
		attrs = append(attrs, attribute.Int64("http.request_content_length", req.ContentLength))
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted
// too, with result "circuit_open". Nil metrics are ignored.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case uint64(v) > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
