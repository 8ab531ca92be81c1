package config

import (
	"os"
	"strconv"
)

// Config holds all startup configuration, resolved once from the
// environment. Nothing re-reads env vars per call.
type Config struct {
	Port         string
	DatabasePath string
	UseHTTPS     bool

	// ActivationBuildEnabled gates the multisig authority workflow's
	// mutating operations. It does not, and cannot, enable execution.
	ActivationBuildEnabled bool

	// OIDC admin login
	OIDCDomain       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
}

// Load resolves configuration from the environment with sane defaults.
func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DatabasePath:           getEnv("DATABASE_PATH", "governance.db"),
		UseHTTPS:               getBool("USE_HTTPS", false),
		ActivationBuildEnabled: getBool("ACTIVATION_BUILD_ENABLED", false),
		OIDCDomain:             os.Getenv("OIDC_DOMAIN"),
		OIDCClientID:           os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret:       os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCCallbackURL:        os.Getenv("OIDC_CALLBACK_URL"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
