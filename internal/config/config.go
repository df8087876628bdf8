package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
	Watchdog   WatchdogConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration for cashier tokens
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Timezone    string
}

// AttendanceConfig carries the clock-in/clock-out tolerance windows.
// Defaults mirror the store policy: 15 minutes of grace after the
// scheduled start, and leaving more than 30 minutes before the
// scheduled end counts as an early departure.
type AttendanceConfig struct {
	GraceMinutes          int
	EarlyDepartureMinutes int
}

// PayrollConfig carries payroll computation policy.
type PayrollConfig struct {
	// ExcusedDeductionFactor is applied to the per-absence deduction
	// amount for excused days (sick, leave, early departure).
	ExcusedDeductionFactor decimal.Decimal
}

type WatchdogConfig struct {
	Enabled           bool
	Interval          time.Duration
	StaleSessionHours int
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "kasirku-pos"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Jakarta"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Attendance policy
	graceMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_GRACE_MINUTES: %w", err)
	}
	earlyDepartureMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_EARLY_DEPARTURE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_EARLY_DEPARTURE_MINUTES: %w", err)
	}
	config.Attendance = AttendanceConfig{
		GraceMinutes:          graceMinutes,
		EarlyDepartureMinutes: earlyDepartureMinutes,
	}

	// Payroll policy
	excusedFactor, err := decimal.NewFromString(getEnv("PAYROLL_EXCUSED_DEDUCTION_FACTOR", "0.5"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_EXCUSED_DEDUCTION_FACTOR: %w", err)
	}
	config.Payroll = PayrollConfig{
		ExcusedDeductionFactor: excusedFactor,
	}

	// Watchdog configuration
	watchdogInterval, err := time.ParseDuration(getEnv("WATCHDOG_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid WATCHDOG_INTERVAL: %w", err)
	}
	staleHours, err := strconv.Atoi(getEnv("WATCHDOG_STALE_SESSION_HOURS", "16"))
	if err != nil {
		return nil, fmt.Errorf("invalid WATCHDOG_STALE_SESSION_HOURS: %w", err)
	}
	config.Watchdog = WatchdogConfig{
		Enabled:           getEnv("WATCHDOG_ENABLED", "true") == "true",
		Interval:          watchdogInterval,
		StaleSessionHours: staleHours,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.GraceMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_GRACE_MINUTES must not be negative")
	}
	if c.Attendance.EarlyDepartureMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_EARLY_DEPARTURE_MINUTES must not be negative")
	}
	if c.Payroll.ExcusedDeductionFactor.IsNegative() {
		return fmt.Errorf("PAYROLL_EXCUSED_DEDUCTION_FACTOR must not be negative")
	}
	return nil
}

// Location resolves the configured application timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
