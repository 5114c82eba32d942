package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"pawbook/pkg/logger"
)

type Config struct {
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BookingCodePrefix      string
	BookingCodeMin         int
	BookingCodeMax         int
	BookingCodeMaxAttempts int

	BookingEventsEnabled bool
	BookingEventsTopic   string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		DatabaseURL:       getEnvStr(EnvDatabaseURL, DefaultDatabaseURL),
		DBMaxOpenConns:    getEnvNum(EnvDBMaxOpenConns, DefaultDBMaxOpenConns),
		DBMaxIdleConns:    getEnvNum(EnvDBMaxIdleConns, DefaultDBMaxIdleConns),
		DBConnMaxLifetime: getEnvDuration(EnvDBConnMaxLifetime, DefaultDBConnMaxLifetime),

		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BookingCodePrefix:      getEnvStr(EnvBookingCodePrefix, DefaultBookingCodePrefix),
		BookingCodeMin:         getEnvNum(EnvBookingCodeMin, DefaultBookingCodeMin),
		BookingCodeMax:         getEnvNum(EnvBookingCodeMax, DefaultBookingCodeMax),
		BookingCodeMaxAttempts: getEnvNum(EnvBookingCodeMaxAttempts, DefaultBookingCodeMaxAttempts),

		BookingEventsEnabled: getEnvBool(EnvBookingEventsEnabled, false),
		BookingEventsTopic:   getEnvStr(EnvBookingEventsTopic, DefaultBookingEventsTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.DatabaseURL == "" {
		errors = append(errors, "DatabaseURL cannot be empty")
	}
	if cfg.DBMaxOpenConns <= 0 {
		errors = append(errors, fmt.Sprintf("DBMaxOpenConns must be positive, got: %d", cfg.DBMaxOpenConns))
	}
	if cfg.DBMaxIdleConns < 0 {
		errors = append(errors, fmt.Sprintf("DBMaxIdleConns cannot be negative, got: %d", cfg.DBMaxIdleConns))
	}
	if cfg.DBConnMaxLifetime <= 0 {
		errors = append(errors, fmt.Sprintf("DBConnMaxLifetime must be positive, got: %s", cfg.DBConnMaxLifetime))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if !regexp.MustCompile(`^[A-Z]{2}$`).MatchString(cfg.BookingCodePrefix) {
		errors = append(errors, fmt.Sprintf("BookingCodePrefix must be two uppercase letters, got: %s", cfg.BookingCodePrefix))
	}
	if cfg.BookingCodeMin < 1000 || cfg.BookingCodeMin > cfg.BookingCodeMax {
		errors = append(errors, fmt.Sprintf("BookingCodeMin must be a 4-digit lower bound <= BookingCodeMax, got: %d", cfg.BookingCodeMin))
	}
	if cfg.BookingCodeMax > 9999 {
		errors = append(errors, fmt.Sprintf("BookingCodeMax must stay 4-digit, got: %d", cfg.BookingCodeMax))
	}
	if cfg.BookingCodeMaxAttempts <= 0 {
		errors = append(errors, fmt.Sprintf("BookingCodeMaxAttempts must be positive, got: %d", cfg.BookingCodeMaxAttempts))
	}

	if cfg.BookingEventsEnabled && cfg.BookingEventsTopic == "" {
		errors = append(errors, "BookingEventsTopic cannot be empty when booking events are enabled")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"database_url", redactDatabaseURL(cfg.DatabaseURL),
		"db_max_open_conns", cfg.DBMaxOpenConns,
		"db_max_idle_conns", cfg.DBMaxIdleConns,
		"db_conn_max_lifetime", cfg.DBConnMaxLifetime,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"booking_code_prefix", cfg.BookingCodePrefix,
		"booking_code_min", cfg.BookingCodeMin,
		"booking_code_max", cfg.BookingCodeMax,
		"booking_code_max_attempts", cfg.BookingCodeMaxAttempts,
		"booking_events_enabled", cfg.BookingEventsEnabled,
		"booking_events_topic", cfg.BookingEventsTopic,
	)
}

func redactDatabaseURL(url string) string {
	credentialRegex := regexp.MustCompile(`(postgres(ql)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(url, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
