package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	EnvName     string `mapstructure:"ENV_NAME"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Role names granting access to the leave API
	AdminRole string `mapstructure:"ADMIN_ROLE"`
	StaffRole string `mapstructure:"STAFF_ROLE"`

	// Slack configuration
	SlackBotKey    string `mapstructure:"SLACK_BOT_KEY"`
	SlackChannelID string `mapstructure:"SLACK_CHANNEL_ID"`
	SlackAPIURL    string `mapstructure:"SLACK_API_URL"`

	// Identity and event bus configuration
	IdentityAPIURL             string `mapstructure:"IDENTITY_API_URL"`
	IdentityRoleMemberPageSize int    `mapstructure:"IDENTITY_ROLE_MEMBER_PAGE_SIZE"`
	BusAPIURL                  string `mapstructure:"BUS_API_URL"`
	M2MAuthURL                 string `mapstructure:"M2M_AUTH_URL"`
	M2MAuthAudience            string `mapstructure:"M2M_AUTH_AUDIENCE"`
	M2MAuthClientID            string `mapstructure:"M2M_AUTH_CLIENT_ID"`
	M2MAuthClientSecret        string `mapstructure:"M2M_AUTH_CLIENT_SECRET"`
	LeaveReminderTemplateID    string `mapstructure:"SENDGRID_LEAVE_REMINDER_TEMPLATE_ID"`
	LeaveReminderMonthOffset   int    `mapstructure:"LEAVE_REMINDER_MONTH_OFFSET"`

	// Scheduler configuration
	SchedulerEnabled    bool   `mapstructure:"SCHEDULER_ENABLED"`
	DailySummaryCron    string `mapstructure:"DAILY_SUMMARY_CRON"`
	MonthlyReminderCron string `mapstructure:"MONTHLY_REMINDER_CRON"`

	// Distributed lock configuration
	LockBackend   string        `mapstructure:"LOCK_BACKEND"`
	LockNamespace string        `mapstructure:"LOCK_NAMESPACE"`
	LockTTL       time.Duration `mapstructure:"LOCK_TTL"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
}

// Supported lock backends
const (
	LockBackendPostgres = "postgres"
	LockBackendRedis    = "redis"
	LockBackendMemory   = "memory"
)

const (
	defaultRoleMemberPageSize = 200
	maxRoleMemberPageSize     = 1000
)

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	normalize(&config)

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("ENV_NAME", "")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "leave_tracker")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("ADMIN_ROLE", "Administrator")
	viper.SetDefault("STAFF_ROLE", "Topcoder Staff")

	// Slack defaults
	viper.SetDefault("SLACK_BOT_KEY", "")
	viper.SetDefault("SLACK_CHANNEL_ID", "")
	viper.SetDefault("SLACK_API_URL", "https://slack.com/api/chat.postMessage")

	// Identity and event bus defaults
	viper.SetDefault("IDENTITY_API_URL", "https://api.topcoder-dev.com/v6")
	viper.SetDefault("IDENTITY_ROLE_MEMBER_PAGE_SIZE", defaultRoleMemberPageSize)
	viper.SetDefault("BUS_API_URL", "https://api.topcoder-dev.com/v5/bus/events")
	viper.SetDefault("M2M_AUTH_URL", "")
	viper.SetDefault("M2M_AUTH_AUDIENCE", "")
	viper.SetDefault("M2M_AUTH_CLIENT_ID", "")
	viper.SetDefault("M2M_AUTH_CLIENT_SECRET", "")
	viper.SetDefault("SENDGRID_LEAVE_REMINDER_TEMPLATE_ID", "")
	viper.SetDefault("LEAVE_REMINDER_MONTH_OFFSET", 1)

	// Scheduler defaults
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("DAILY_SUMMARY_CRON", "0 0 * * 1-5")
	viper.SetDefault("MONTHLY_REMINDER_CRON", "0 0 * * *")

	// Lock defaults
	viper.SetDefault("LOCK_BACKEND", LockBackendPostgres)
	viper.SetDefault("LOCK_NAMESPACE", "leave-api")
	viper.SetDefault("LOCK_TTL", 30*time.Minute)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

// normalize clamps numeric settings into their supported ranges.
func normalize(config *Config) {
	if config.IdentityRoleMemberPageSize <= 0 {
		config.IdentityRoleMemberPageSize = defaultRoleMemberPageSize
	}
	if config.IdentityRoleMemberPageSize > maxRoleMemberPageSize {
		config.IdentityRoleMemberPageSize = maxRoleMemberPageSize
	}
	config.LockBackend = strings.ToLower(strings.TrimSpace(config.LockBackend))
	config.SlackBotKey = strings.TrimSpace(config.SlackBotKey)
	config.SlackChannelID = strings.TrimSpace(config.SlackChannelID)
	config.LeaveReminderTemplateID = strings.TrimSpace(config.LeaveReminderTemplateID)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.LockBackend {
	case LockBackendPostgres, LockBackendRedis, LockBackendMemory:
	default:
		return fmt.Errorf("unsupported LOCK_BACKEND %q", config.LockBackend)
	}

	if config.LockNamespace == "" {
		return fmt.Errorf("LOCK_NAMESPACE is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlackConfigured reports whether both the bot key and channel are set
func (c *Config) SlackConfigured() bool {
	return c.SlackBotKey != "" && c.SlackChannelID != ""
}

// M2MConfigured reports whether machine-to-machine credentials are available
func (c *Config) M2MConfigured() bool {
	return c.M2MAuthURL != "" && c.M2MAuthClientID != "" && c.M2MAuthClientSecret != ""
}
