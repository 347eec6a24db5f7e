package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxOpenConns = 1
	defaultMaxIdleConns = 1

	defaultMaxUploadBytes = 10 << 20
	defaultBcryptCost     = 12
)

// defaults is the lowest configuration layer. Every key a profile may
// override from the environment must appear here or in base.yaml.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:9000",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "task-tracker",

		"database.driver":            "sqlite",
		"database.dsn":               "task_tracker.db?_busy_timeout=5000&_foreign_keys=on",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "1h",
		"database.slow_threshold":    "200ms",
		"database.auto_migrate":      true,

		"blob.backend":          BlobBackendLocal,
		"blob.root_dir":         "data/attachments",
		"blob.max_upload_bytes": defaultMaxUploadBytes,

		"auth.jwt_secret":  "",
		"auth.issuer":      "task-tracker",
		"auth.access_ttl":  "15m",
		"auth.refresh_ttl": "168h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"events.enabled":    false,
		"events.redis_addr": "localhost:6379",
		"events.password":   "",
		"events.db":         0,
		"events.channel":    "task-tracker.activity",
	}
}
