package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. ACADEMY_SERVER_PORT.
const EnvPrefix = "ACADEMY"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about. The
	// unprefixed names are the deployment's legacy variables and lose to the
	// prefixed ones when both are set.
	bindings := []struct {
		key      string
		fallback string
	}{
		{key: "server.port", fallback: "PORT"},
		{key: "database.uri"},
		{key: "auth.jwt_secret", fallback: "ACCESS_TOKEN_SECRET"},
		{key: "payment.secret_key", fallback: "PAYMENT_SECRET_KEY"},
	}
	for _, b := range bindings {
		names := []string{b.key}
		if b.fallback != "" {
			prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(b.key, ".", "_"))
			names = []string{b.key, prefixed, b.fallback}
		}
		if err := v.BindEnv(names...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", b.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.name", "shutterAcademyDb")
	v.SetDefault("database.connect_timeout_seconds", 10)

	v.SetDefault("auth.token_lifetime_minutes", 24*60)
	v.SetDefault("auth.enforce_owner_match", false)

	v.SetDefault("payment.currency", "usd")
}
