package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	do "github.com/samber/do/v2"
	"github.com/spf13/viper"
)

var Package = do.Package(
	do.Lazy[*Config](NewConfig),
)

// Config holds the application configuration.
type Config struct {
	Addr          string
	DBPath        string
	JWTSecret     string
	JWTIssuer     string
	JWTTTL        time.Duration
	CacheTTL      time.Duration
	VerifyBaseURL string
}

// NewConfig creates a new configuration from environment variables (for DI).
func NewConfig(_ do.Injector) (*Config, error) {
	return New()
}

// New creates a new configuration from environment variables. A .env file
// in the working directory is loaded first, for local development.
func New() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	keys := []string{
		"TODO_ADDR", "TODO_DB_PATH",
		"TODO_JWT_SECRET", "TODO_JWT_ISSUER", "TODO_JWT_TTL",
		"TODO_CACHE_TTL", "TODO_VERIFY_BASE_URL",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("TODO_ADDR", ":8080")
	v.SetDefault("TODO_DB_PATH", "todo.db")
	v.SetDefault("TODO_JWT_ISSUER", "todoapp")
	v.SetDefault("TODO_JWT_TTL", "24h")
	v.SetDefault("TODO_CACHE_TTL", "2h")
	v.SetDefault("TODO_VERIFY_BASE_URL", "http://localhost:5173")

	secret := v.GetString("TODO_JWT_SECRET")
	if secret == "" {
		return nil, errors.New("TODO_JWT_SECRET environment variable is required")
	}

	return &Config{
		Addr:          v.GetString("TODO_ADDR"),
		DBPath:        v.GetString("TODO_DB_PATH"),
		JWTSecret:     secret,
		JWTIssuer:     v.GetString("TODO_JWT_ISSUER"),
		JWTTTL:        v.GetDuration("TODO_JWT_TTL"),
		CacheTTL:      v.GetDuration("TODO_CACHE_TTL"),
		VerifyBaseURL: v.GetString("TODO_VERIFY_BASE_URL"),
	}, nil
}
