package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
	Auth        AuthConfig        `yaml:"auth"`
	Email       EmailConfig       `yaml:"email"`
	Log         LogConfig         `yaml:"log"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// MarketplaceConfig contains the ledger's deployment-time rules. Owner is
// the single privileged identity allowed to list assets and collect fees.
type MarketplaceConfig struct {
	Owner           string `yaml:"owner"`
	FeeBps          uint64 `yaml:"fee_bps"`
	MaxExtension    uint64 `yaml:"max_extension"`
	MaxReasonLength int    `yaml:"max_reason_length"`
}

// AuthConfig contains JWT token settings
type AuthConfig struct {
	JWTSecret          string `yaml:"jwt_secret"`
	TokenExpiryMinutes int    `yaml:"token_expiry_minutes"`
}

// EmailConfig contains SendGrid settings
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
	AdminEmail     string `yaml:"admin_email"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ExpiryReminders      string `yaml:"expiry_reminders"`
	PendingDisputeReport string `yaml:"pending_dispute_report"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Marketplace
	if val := os.Getenv("MARKETPLACE_OWNER"); val != "" {
		c.Marketplace.Owner = val
	}
	if val := os.Getenv("MARKETPLACE_FEE_BPS"); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.Marketplace.FeeBps = parsed
		}
	}
	if val := os.Getenv("MARKETPLACE_MAX_EXTENSION"); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.Marketplace.MaxExtension = parsed
		}
	}

	// Auth
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("ADMIN_EMAIL"); val != "" {
		c.Email.AdminEmail = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Marketplace validation
	if c.Marketplace.Owner == "" {
		return fmt.Errorf("marketplace owner identity is required")
	}
	if c.Marketplace.FeeBps > 10000 {
		return fmt.Errorf("marketplace fee_bps must not exceed 10000, got %d", c.Marketplace.FeeBps)
	}
	if c.Marketplace.MaxExtension == 0 {
		c.Marketplace.MaxExtension = 1000
	}
	if c.Marketplace.MaxReasonLength == 0 {
		c.Marketplace.MaxReasonLength = 500
	}

	// Auth validation
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.TokenExpiryMinutes == 0 {
		c.Auth.TokenExpiryMinutes = 60
	}

	// Scheduler defaults
	if c.Scheduler.ExpiryReminders == "" {
		c.Scheduler.ExpiryReminders = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.PendingDisputeReport == "" {
		c.Scheduler.PendingDisputeReport = "0 0 9 * * 1" // Mondays at 9 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
