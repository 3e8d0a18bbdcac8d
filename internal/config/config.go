package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App         AppConfig
	Juspay      JuspayConfig
	Hyperswitch HyperswitchConfig
	Platform    PlatformConfig
	Database    DatabaseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// JuspayConfig carries the Juspay API credentials. The same username and
// password pair is expected on inbound webhook basic auth.
type JuspayConfig struct {
	Username   string
	Password   string
	MerchantID string
	APIURL     string
}

type HyperswitchConfig struct {
	APIKey         string
	PublishableKey string
	ProfileID      string
	APIURL         string
}

// PlatformConfig identifies the platform installation this deployment is
// bound to: API URL, app token and the channel the provider credentials
// are mapped to.
type PlatformConfig struct {
	APIURL    string
	AppToken  string
	ChannelID string
}

type DatabaseConfig struct {
	Enabled  bool // webhook audit logging toggle
	Host     string
	Port     int
	User     string
	Password string
	Database string
	MaxConns int
	MinConns int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ledger-bridge"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Juspay: JuspayConfig{
			Username:   os.Getenv("JUSPAY_USERNAME"),
			Password:   os.Getenv("JUSPAY_PASSWORD"),
			MerchantID: os.Getenv("JUSPAY_MERCHANT_ID"),
			APIURL:     getEnv("JUSPAY_API_URL", "https://api.juspay.in"),
		},
		Hyperswitch: HyperswitchConfig{
			APIKey:         os.Getenv("HYPERSWITCH_API_KEY"),
			PublishableKey: os.Getenv("HYPERSWITCH_PUBLISHABLE_KEY"),
			ProfileID:      os.Getenv("HYPERSWITCH_PROFILE_ID"),
			APIURL:         getEnv("HYPERSWITCH_API_URL", "https://sandbox.hyperswitch.io"),
		},
		Platform: PlatformConfig{
			APIURL:    os.Getenv("PLATFORM_API_URL"),
			AppToken:  os.Getenv("PLATFORM_APP_TOKEN"),
			ChannelID: os.Getenv("PLATFORM_CHANNEL_ID"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvBool("WEBHOOK_AUDIT_ENABLED", false),
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnvInt("PG_PORT", 5432),
			User:     getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DBNAME", "ledger_bridge"),
			MaxConns: getEnvInt("PG_MAX_CONNS", 10),
			MinConns: getEnvInt("PG_MIN_CONNS", 2),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Juspay.Username == "" || c.Juspay.Password == "" {
		return fmt.Errorf("JUSPAY_USERNAME and JUSPAY_PASSWORD are required")
	}
	if c.Platform.APIURL == "" || c.Platform.AppToken == "" {
		return fmt.Errorf("PLATFORM_API_URL and PLATFORM_APP_TOKEN are required")
	}
	return nil
}

// ConnectTimeouts returns the default retry/backoff parameters for the
// audit database connection.
func (c *DatabaseConfig) ConnectTimeouts() (maxRetries int, retryDelay, connectTimeout time.Duration) {
	return 3, time.Second, 10 * time.Second
}

// =====================================================
// ENV HELPERS
// =====================================================

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
