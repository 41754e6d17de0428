package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string        `env:"ADDR" validate:"required"`
	DBPath               string        `env:"DB_PATH" validate:"required"`
	LogLevel             string        `env:"LOG_LEVEL" validate:"required,oneof=DEBUG INFO WARN WARNING ERROR debug info warn warning error"`
	CatalogPath          string        `env:"CATALOG_PATH"`
	DefaultLanguage      string        `env:"DEFAULT_LANGUAGE" validate:"required,min=2,max=8"`
	SessionTTL           time.Duration `env:"SESSION_TTL" validate:"gt=0"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" validate:"gt=0"`
	CORSAllowedOrigins   []string      `env:"CORS_ALLOWED_ORIGINS"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:linguacards.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		CatalogPath:          envOr("CATALOG_PATH", ""),
		DefaultLanguage:      envOr("DEFAULT_LANGUAGE", "es"),
		SessionTTL:           envDurationOr("SESSION_TTL", 2*time.Hour),
		SessionSweepInterval: envDurationOr("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		CORSAllowedOrigins:   envListOr("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

var (
	validate   = validator.New()
	configType = reflect.TypeOf(Config{})
)

// Validate checks the loaded values and names the offending variable.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	if f, ok := configType.FieldByName(fe.StructField()); ok {
		if env := f.Tag.Get("env"); env != "" {
			name = env
		}
	}
	switch fe.Tag() {
	case "required":
		return name + " cannot be empty"
	case "oneof":
		return fmt.Sprintf("%s must be one of DEBUG, INFO, WARN, ERROR (got %v)", name, fe.Value())
	case "gt":
		return name + " must be positive"
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
