package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
)

const defaultAPIToken = "dev-token"

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort  string
	AdminPort string
	APIToken  string

	DBConnStr     string
	MigrateOnBoot bool

	RepriceSchedule string
	RepriceTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:          stringOr(k, "APP_ENV", "development"),
		LogLevel:        stringOr(k, "LOG_LEVEL", "info"),
		GRPCPort:        stringOr(k, "GRPC_PORT", "8080"),
		AdminPort:       stringOr(k, "ADMIN_PORT", "9090"),
		APIToken:        stringOr(k, "API_TOKEN", defaultAPIToken),
		DBConnStr:       stringOr(k, "DB_CONN_STR", ""),
		MigrateOnBoot:   boolOr(k, "MIGRATE_ON_BOOT", true),
		RepriceSchedule: stringOr(k, "REPRICE_SCHEDULE", "0 3 * * *"),
		RepriceTimeout:  durationOr(k, "REPRICE_TIMEOUT", 2*time.Minute),
		ShutdownTimeout: durationOr(k, "SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	// If explicit string is missing, build it from individual vars (Docker friendly)
	if cfg.DBConnStr == "" {
		cfg.DBConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			stringOr(k, "DB_HOST", "localhost"),
			stringOr(k, "DB_PORT", "5432"),
			stringOr(k, "DB_USER", "postgres"),
			stringOr(k, "DB_PASSWORD", "postgres"),
			stringOr(k, "DB_NAME", "recipecost"),
			stringOr(k, "DB_SSLMODE", "disable"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if _, err := cron.ParseStandard(c.RepriceSchedule); err != nil {
		return fmt.Errorf("REPRICE_SCHEDULE: %w", err)
	}
	if c.IsProduction() && c.APIToken == defaultAPIToken {
		return errors.New("API_TOKEN must be set in production")
	}
	if c.GRPCPort == c.AdminPort {
		return errors.New("GRPC_PORT and ADMIN_PORT must differ")
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// GRPCAddr returns the address the gRPC server should bind to.
func (c *Config) GRPCAddr() string {
	return listenAddr(c.GRPCPort)
}

// AdminAddr returns the address the admin HTTP server should bind to.
func (c *Config) AdminAddr() string {
	return listenAddr(c.AdminPort)
}

func listenAddr(port string) string {
	port = strings.TrimSpace(port)
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// stringOr returns the trimmed value at key, or fallback when it is blank
func stringOr(k *koanf.Koanf, key, fallback string) string {
	if value := strings.TrimSpace(k.String(key)); value != "" {
		return value
	}
	return fallback
}

// durationOr falls back when the value is blank, malformed or not positive
func durationOr(k *koanf.Koanf, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(k.String(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// boolOr accepts the strconv.ParseBool spellings and falls back on anything else
func boolOr(k *koanf.Koanf, key string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(k.String(key)))
	if err != nil {
		return fallback
	}
	return b
}
