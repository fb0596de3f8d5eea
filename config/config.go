// Package config provides configuration management for the market application.
// It handles loading and validation of configuration values from environment variables,
// with support for default values and collective error reporting.
// This is the Go counterpart of reading `process.env` at the top of an Express app,
// except that every value is parsed and validated once, up front, instead of being
// re-read (and re-trusted) on every request.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret is the key used for signing session tokens.
	// The default is a demo value and is explicitly unsuitable for production.
	JWTSecret string
	// TokenDuration is the validity window of an issued session token.
	TokenDuration time.Duration
	// RequireAuth decides whether mutating catalog endpoints sit behind the
	// bearer-token gate. With it disabled the server behaves like the open
	// demo variant: anyone may create or delete listings.
	RequireAuth bool
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Auth   *AuthConfig
	Server *ServerConfig
}

const (
	// defaultJWTSecret is the fallback signing key used when JWT_SECRET is unset.
	// Kept deliberately obvious so nobody mistakes it for a real secret.
	defaultJWTSecret = "secreto-demo-cambiar-en-produccion"
	// defaultTokenDuration matches the session lifetime of the original backend.
	defaultTokenDuration = 2 * time.Hour
	// defaultPort matches the original backend's fallback port.
	defaultPort = "5000"
)

// Helper function to get an optional environment variable with a default string value.
// Provides sensible defaults if an optional configuration is not explicitly set.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as time.Duration.
// Uses defaultValue if not set. Appends an error if parsing fails.
// `time.ParseDuration` expects a string like "2h", "90m", "1h30m".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueDuration
}

// Helper function to get an optional environment variable parsed as a bool.
// Accepts the usual strconv spellings ("true", "1", "false", "0", ...).
func getOptionalEnvBool(key string, defaultValue bool, errors *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
// Every variable here is optional; the defaults produce a working demo server.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Auth Configuration
	jwtSecret := getOptionalEnv("JWT_SECRET", defaultJWTSecret)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", defaultTokenDuration, &errors)
	requireAuth := getOptionalEnvBool("AUTH_REQUIRED", true, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
		RequireAuth:   requireAuth,
	}

	// Server Configuration
	// Note: the port is kept as a string because it's used directly in the
	// listen address (e.g., ":5000").
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", defaultPort),
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
