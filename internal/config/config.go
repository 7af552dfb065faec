package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env            string
	Port           string
	JWTSecret      string
	DatabaseURL    string
	RedisURL       string
	AllowedOrigin  string // Frontend origin suffix allowed by CORS (e.g. ".example.com")
	HealthAdminKey string
}

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. There is no
// fallback secret: the process must not boot without one.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	secret := viper.GetString("JWT_SECRET")
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		Env:            env,
		Port:           port,
		JWTSecret:      secret,
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		RedisURL:       viper.GetString("REDIS_URL"),
		AllowedOrigin:  viper.GetString("ALLOWED_ORIGIN"),
		HealthAdminKey: viper.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}
