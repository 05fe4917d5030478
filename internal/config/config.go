package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"          validate:"required,min=1"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains the MongoDB connection settings.
type DatabaseConfig struct {
	URI                   string `mapstructure:"uri"                     validate:"required,startswith=mongodb"`
	Name                  string `mapstructure:"name"                    validate:"required"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// EnforceOwnerMatch requires the token email to match an :email path
	// parameter on protected routes.
	EnforceOwnerMatch bool `mapstructure:"enforce_owner_match"`
}

// PaymentConfig contains the payment provider settings.
type PaymentConfig struct {
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	Currency  string `mapstructure:"currency"   validate:"required,len=3,lowercase"`
}
