package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds" validate:"gte=1"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds" validate:"gte=1"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`

	// CORSAllowedOrigins is passed to the CORS middleware as is. "*" allows any origin.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"min=1"`
	// RateLimitPerMinute caps requests per client IP. Zero disables the limiter.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44640"`          // Max 31 days
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0,lt=525600"` // Max 365 days
	BCryptCost                  int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	// RequireForWrites guards every catalog POST, PUT and DELETE with a bearer token.
	RequireForWrites bool `mapstructure:"require_for_writes"`
}
