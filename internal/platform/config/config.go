// Package config loads the task tracker's configuration. Values are layered
// defaults -> base.yaml -> {profile}.yaml -> APP_ environment variables.
package config

import "time"

// Config holds all configuration for the service and the admin CLI.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"`
	Blob      BlobConfig      `koanf:"blob"`
	Auth      AuthConfig      `koanf:"auth"`
	Events    EventsConfig    `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the outbound HTTP client used by the remote blob
// store.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound requests. Zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DatabaseConfig configures the GORM connection.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// Blob backends.
const (
	BlobBackendLocal = "local"
	BlobBackendHTTP  = "http"
)

// BlobConfig selects where attachment bytes are kept. The http backend
// talks to the object store at Client.BaseURL.
type BlobConfig struct {
	Backend        string `koanf:"backend"`
	RootDir        string `koanf:"root_dir"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes"`
}

// AuthConfig configures token signing and password hashing.
type AuthConfig struct {
	JWTSecret  string        `koanf:"jwt_secret" masq:"secret"`
	Issuer     string        `koanf:"issuer"`
	AccessTTL  time.Duration `koanf:"access_ttl"`
	RefreshTTL time.Duration `koanf:"refresh_ttl"`
	BcryptCost int           `koanf:"bcrypt_cost"`
}

// EventsConfig configures activity publishing over Redis pub/sub.
type EventsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	RedisAddr string `koanf:"redis_addr"`
	Password  string `koanf:"password" masq:"secret"`
	DB        int    `koanf:"db"`
	Channel   string `koanf:"channel"`
}
