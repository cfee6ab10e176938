package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/salescraft/outreach-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	GeminiConnectorCfg GeminiConnectorConfig `envPrefix:"GEMINI_"`
	GoogleConnectorCfg GoogleConnectorConfig `envPrefix:"GOOGLE_"`

	// Session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Settings cache TTL for the admin settings read path
	SettingsCacheTTL time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"5m"`

	// Retry policy for the best-effort usage accounting write
	UsageRetryCfg pkgRetry.RetryConfig `envPrefix:"USAGE_RETRY_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConnectorConfig configures the generativelanguage connector
type GeminiConnectorConfig struct {
	HTTPClientConfig
}

// GoogleConnectorConfig configures the Google OAuth connector
type GoogleConnectorConfig struct {
	HTTPClientConfig
	ClientID      string `env:"CLIENT_ID"`
	ClientSecret  string `env:"CLIENT_SECRET"`
	RedirectURI   string `env:"REDIRECT_URI"`
	AllowedDomain string `env:"ALLOWED_DOMAIN,notEmpty"`
}

// SessionConfig configures session cookies and lifetime
type SessionConfig struct {
	CookieName    string        `env:"COOKIE_NAME" envDefault:"sales_admin_session"`
	Duration      time.Duration `env:"DURATION" envDefault:"720h"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"true"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Url                   string        `env:"SERVICE_URL"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if cfg.GeminiConnectorCfg.Url == "" {
		cfg.GeminiConnectorCfg.Url = "https://generativelanguage.googleapis.com"
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}
	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}
	if cfg.SessionCfg.Duration < time.Hour {
		errs = append(errs, fmt.Sprintf("SESSION_DURATION must be at least 1h, got %s", cfg.SessionCfg.Duration))
	}
	if cfg.SettingsCacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("SETTINGS_CACHE_TTL must not be negative, got %s", cfg.SettingsCacheTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
