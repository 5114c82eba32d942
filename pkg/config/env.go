package config

const (
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBMaxOpenConns    = "DB_MAX_OPEN_CONNS"
	EnvDBMaxIdleConns    = "DB_MAX_IDLE_CONNS"
	EnvDBConnMaxLifetime = "DB_CONN_MAX_LIFETIME"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBookingCodePrefix      = "BOOKING_CODE_PREFIX"
	EnvBookingCodeMin         = "BOOKING_CODE_MIN"
	EnvBookingCodeMax         = "BOOKING_CODE_MAX"
	EnvBookingCodeMaxAttempts = "BOOKING_CODE_MAX_ATTEMPTS"

	EnvBookingEventsEnabled = "BOOKING_EVENTS_ENABLED"
	EnvBookingEventsTopic   = "BOOKING_EVENTS_TOPIC"
)
