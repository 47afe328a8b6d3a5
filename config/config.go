package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	MetricsEnabled    bool   `mapstructure:"METRICS_ENABLED"`

	// Shared secret checked on every tool endpoint.
	APIKey       string `mapstructure:"SIERRA_API_KEY"`
	APIKeyHeader string `mapstructure:"API_KEY_HEADER"`

	// Stripe configuration.
	StripeKey       string `mapstructure:"STRIPE_API_KEY"`
	CheckoutBaseURL string `mapstructure:"CHECKOUT_BASE_URL"`

	// Twilio configuration.
	TwilioSID        string `mapstructure:"TWILIO_SID"`
	TwilioToken      string `mapstructure:"TWILIO_TOKEN"`
	TwilioFromNumber string `mapstructure:"TWILIO_FROM_NUMBER"`

	// Supabase configuration (unused until bookings move off process memory).
	SupabaseURL string `mapstructure:"SUPABASE_URL"`
	SupabaseKey string `mapstructure:"SUPABASE_KEY"`
}

// DefaultAPIKey is the insecure demo secret used when SIERRA_API_KEY is unset.
const DefaultAPIKey = "demo-secret"

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 0)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SIERRA_API_KEY", DefaultAPIKey)
	v.SetDefault("API_KEY_HEADER", "X-API-Key")
	v.SetDefault("STRIPE_API_KEY", "sk_test_xxx")
	v.SetDefault("CHECKOUT_BASE_URL", "https://checkout.stripe.com/pay/")
	v.SetDefault("TWILIO_SID", "")
	v.SetDefault("TWILIO_TOKEN", "")
	v.SetDefault("TWILIO_FROM_NUMBER", "")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
}

// Load reads config.yaml (if any), the environment and defaults into a Config.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
