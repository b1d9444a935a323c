package config

import (
	"errors"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, MongoDB connection details and dashboard defaults.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	MONGODB_URI=mongodb://localhost:27017
//	MONGODB_DB=idx
//	MONGODB_TIMEOUT=10s
//	NEWS_DB=T3
//	NEWS_COLLECTION=BERITA_IQPLUS
//	NEWS_VARIANT=iqplus
//	DEFAULT_STOCK=AALI
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Dashboard DashboardConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string   `env:"SERVER_PORT" validate:"required"`
	AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" validate:"required,min=1"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" validate:"gt=0"`
}

// MongoConfig defines connection details for MongoDB.
//
// Fields:
//   - URI: connection string passed to the driver.
//   - Database: default database for price and financial collections.
//   - Timeout: server selection and connect timeout.
type MongoConfig struct {
	URI      string        `env:"MONGODB_URI" validate:"required"`
	Database string        `env:"MONGODB_DB" validate:"required"`
	Timeout  time.Duration `env:"MONGODB_TIMEOUT" validate:"gt=0"`
}

// DashboardConfig selects the collections and defaults used by the resolvers.
type DashboardConfig struct {
	PriceCollection string `env:"PRICE_COLLECTION" validate:"required"`
	// PriceOrderField, when set, sorts price documents ascending on this field
	// before the first/last grouping. Empty keeps the store's natural order.
	PriceOrderField string `env:"PRICE_ORDER_FIELD"`
	NewsDatabase    string `env:"NEWS_DB" validate:"required"`
	NewsCollection  string `env:"NEWS_COLLECTION" validate:"required"`
	NewsVariant     string `env:"NEWS_VARIANT" validate:"oneof=iqplus headline"`
	DefaultStock    string `env:"DEFAULT_STOCK" validate:"required"`
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

var validate = newValidator()

// newValidator reports struct fields by their env key so that a failed
// validation names the variable the operator has to fix.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DB", "idx")
	viper.SetDefault("MONGODB_TIMEOUT", "10s")

	viper.SetDefault("PRICE_COLLECTION", "yfinance")
	viper.SetDefault("PRICE_ORDER_FIELD", "")
	viper.SetDefault("NEWS_DB", "T3")
	viper.SetDefault("NEWS_COLLECTION", "BERITA_IQPLUS")
	viper.SetDefault("NEWS_VARIANT", "iqplus")
	viper.SetDefault("DEFAULT_STOCK", "AALI")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			AllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DB"),
			Timeout:  viper.GetDuration("MONGODB_TIMEOUT"),
		},
		Dashboard: DashboardConfig{
			PriceCollection: viper.GetString("PRICE_COLLECTION"),
			PriceOrderField: viper.GetString("PRICE_ORDER_FIELD"),
			NewsDatabase:    viper.GetString("NEWS_DB"),
			NewsCollection:  viper.GetString("NEWS_COLLECTION"),
			NewsVariant:     strings.ToLower(viper.GetString("NEWS_VARIANT")),
			DefaultStock:    strings.ToUpper(viper.GetString("DEFAULT_STOCK")),
		},
	}

	validateConfig()
}

// splitList turns a comma separated value into a trimmed slice, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// invalidKeys returns the env keys of every field of cfg that fails validation.
func invalidKeys(cfg Config) []string {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	keys := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		keys = append(keys, fe.Field())
	}
	return keys
}

// validateConfig ensures required variables are present and valid, and terminates
// the application if they are not.
func validateConfig() {
	if missing := invalidKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
