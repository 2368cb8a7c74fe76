package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Money settings
	BaseCurrency            string          `mapstructure:"BASE_CURRENCY"`
	DefaultUSDRate          decimal.Decimal `mapstructure:"DEFAULT_USD_RATE"`
	CompletedBalanceEpsilon decimal.Decimal `mapstructure:"COMPLETED_BALANCE_EPSILON"`

	// HTTP edge
	RateLimit          string   `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	PosthogAPIKey      string   `mapstructure:"POSTHOG_API_KEY"`
}

const (
	defaultBaseCurrency   = "EGP"
	defaultUSDRate        = "50"
	defaultBalanceEpsilon = "1"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("BASE_CURRENCY", defaultBaseCurrency)
	viper.SetDefault("DEFAULT_USD_RATE", defaultUSDRate)
	viper.SetDefault("COMPLETED_BALANCE_EPSILON", defaultBalanceEpsilon)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("BASE_CURRENCY")))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.BaseCurrency, defaultBaseCurrency)
		cfg.BaseCurrency = defaultBaseCurrency
	}

	cfg.DefaultUSDRate = decimalSetting("DEFAULT_USD_RATE", defaultUSDRate)
	cfg.CompletedBalanceEpsilon = decimalSetting("COMPLETED_BALANCE_EPSILON", defaultBalanceEpsilon)

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Request analytics disabled.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

// decimalSetting reads a positive decimal, falling back to def when missing or invalid.
func decimalSetting(key, def string) decimal.Decimal {
	raw := viper.GetString(key)
	value, err := decimal.NewFromString(raw)
	if err != nil || !value.IsPositive() {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return decimal.RequireFromString(def)
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
