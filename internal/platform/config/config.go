package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "dev-only-zakat-secret-change-me"

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// PaymentSessionDuration bounds how long a calculation's payment session
	// token stays redeemable.
	PaymentSessionDuration time.Duration

	// GatewayTimeout bounds the payment gateway call; a slower gateway fails
	// the attempt.
	GatewayTimeout time.Duration

	// NisabWebhookSecret guards the nisab-update endpoint. Required in
	// production; startup fails when unset there.
	NisabWebhookSecret string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "zakat-platform")
	viper.SetDefault("PAYMENT_SESSION_DURATION", "30m")
	viper.SetDefault("GATEWAY_TIMEOUT", "15s")
	viper.SetDefault("NISAB_WEBHOOK_SECRET", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		NisabWebhookSecret: viper.GetString("NISAB_WEBHOOK_SECRET"),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION. Defaulting to %s.\n", jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	sessionDuration, err := time.ParseDuration(viper.GetString("PAYMENT_SESSION_DURATION"))
	if err != nil {
		sessionDuration = 30 * time.Minute
		log.Printf("Warning: Invalid value for PAYMENT_SESSION_DURATION. Defaulting to %s.\n", sessionDuration)
	}
	cfg.PaymentSessionDuration = sessionDuration

	gatewayTimeout, err := time.ParseDuration(viper.GetString("GATEWAY_TIMEOUT"))
	if err != nil {
		gatewayTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for GATEWAY_TIMEOUT. Defaulting to %s.\n", gatewayTimeout)
	}
	cfg.GatewayTimeout = gatewayTimeout

	// Secrets are allowed to fall back to development defaults only outside
	// production. A misconfigured production deployment must fail at startup,
	// not per request.
	if cfg.IsProduction {
		if cfg.JWTSecret == defaultJWTSecret || cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if cfg.NisabWebhookSecret == "" {
			return nil, fmt.Errorf("NISAB_WEBHOOK_SECRET must be set in production")
		}
	} else if cfg.NisabWebhookSecret == "" {
		cfg.NisabWebhookSecret = "dev-nisab-secret"
		log.Println("Warning: NISAB_WEBHOOK_SECRET not set. Using development default.")
	}

	return cfg, nil
}
