package config

import (
	"errors"
	"fmt"
)

// minJWTSecretLength is the shortest HMAC key accepted for signing tokens.
const minJWTSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Blob.validate(),
		c.Auth.validate(),
		c.Events.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("client.rate_limit.requests_per_second must not be negative"))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Driver != "sqlite" {
		errs = append(errs, fmt.Errorf("database.driver must be sqlite, got %q", d.Driver))
	}
	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if d.MaxOpenConns < 0 || d.MaxIdleConns < 0 {
		errs = append(errs, errors.New("database pool sizes must not be negative"))
	}

	return errors.Join(errs...)
}

func (b *BlobConfig) validate() error {
	var errs []error

	switch b.Backend {
	case BlobBackendLocal:
		if b.RootDir == "" {
			errs = append(errs, errors.New("blob.root_dir must not be empty for the local backend"))
		}
	case BlobBackendHTTP:
	default:
		errs = append(errs, fmt.Errorf("blob.backend must be one of: local, http; got %q", b.Backend))
	}
	if b.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("blob.max_upload_bytes must be positive"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLength))
	}
	if a.AccessTTL <= 0 || a.RefreshTTL <= 0 {
		errs = append(errs, errors.New("auth.access_ttl and auth.refresh_ttl must be positive"))
	}
	if a.RefreshTTL < a.AccessTTL {
		errs = append(errs, errors.New("auth.refresh_ttl must not be shorter than auth.access_ttl"))
	}
	if a.BcryptCost < 4 || a.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between 4 and 31, got %d", a.BcryptCost))
	}

	return errors.Join(errs...)
}

func (e *EventsConfig) validate() error {
	if !e.Enabled {
		return nil
	}

	var errs []error
	if e.RedisAddr == "" {
		errs = append(errs, errors.New("events.redis_addr must not be empty when events are enabled"))
	}
	if e.Channel == "" {
		errs = append(errs, errors.New("events.channel must not be empty when events are enabled"))
	}
	return errors.Join(errs...)
}
