package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a .env
// file first when one exists in the working directory. Unset variables leave
// the current values untouched.
//
// Recognized variables:
//
//	FOCUSBOARD_ADDR            HTTP bind address
//	FOCUSBOARD_DATABASE_DSN    PostgreSQL DSN
//	FOCUSBOARD_SECRET_KEY      JWT HMAC secret
//	FOCUSBOARD_ACCESS_TTL      access token lifetime (Go duration, e.g. "15m")
//	FOCUSBOARD_REFRESH_TTL     refresh token lifetime (Go duration, e.g. "720h")
func parseEnv(config *Config) {
	// .env is optional; plain environment variables still apply without it.
	_ = godotenv.Load()

	if v := os.Getenv("FOCUSBOARD_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("FOCUSBOARD_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("FOCUSBOARD_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("FOCUSBOARD_ACCESS_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("FOCUSBOARD_REFRESH_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
}
