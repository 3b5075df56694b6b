// Package config has the configuration file for the app
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Port     string
	Address  string
	Env      string
	LogLevel string
	LogDir   string

	SearchAPIKey         string
	SearchBaseURL        string
	ProviderDomain       string // pricing provider, e.g. goodrx.com
	RequestDelayMs       int    // unconditional delay before every search call
	ThrottleRetryDelayMs int    // extra wait before the single retry after a 429
	SearchTimeoutSeconds int    // per-call timeout at the search gateway

	MaxRequestBody int64 // Maximum request body size in bytes
	MaxHeaderSize  int64 // Maximum header size in bytes
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnvWithDefault("PORT", "8000"),
		Address:              getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:                  getEnvWithDefault("ENV", "dev"),
		LogLevel:             getEnvWithDefault("LOG_LEVEL", "info"),
		LogDir:               getEnvWithDefault("LOG_DIR", "logs"),
		SearchAPIKey:         os.Getenv("SEARCH_API_KEY"),
		SearchBaseURL:        os.Getenv("SEARCH_BASE_URL"), // empty means the gateway default
		ProviderDomain:       getEnvWithDefault("PROVIDER_DOMAIN", "goodrx.com"),
		RequestDelayMs:       getIntEnvWithDefault("REQUEST_DELAY_MS", 1200),
		ThrottleRetryDelayMs: getIntEnvWithDefault("THROTTLE_RETRY_DELAY_MS", 2000),
		SearchTimeoutSeconds: getIntEnvWithDefault("SEARCH_TIMEOUT_SECONDS", 10),
		MaxRequestBody:       getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576), // 1MB default
		MaxHeaderSize:        getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),  // 1MB default
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if strings.TrimSpace(cfg.ProviderDomain) == "" {
		return fmt.Errorf("invalid PROVIDER_DOMAIN: cannot be empty")
	}

	if err := validateDelay(cfg.RequestDelayMs, "REQUEST_DELAY_MS"); err != nil {
		return err
	}

	if err := validateDelay(cfg.ThrottleRetryDelayMs, "THROTTLE_RETRY_DELAY_MS"); err != nil {
		return err
	}

	if cfg.SearchTimeoutSeconds <= 0 || cfg.SearchTimeoutSeconds > 300 {
		return fmt.Errorf("invalid SEARCH_TIMEOUT_SECONDS: must be between 1 and 300, got: %d", cfg.SearchTimeoutSeconds)
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return fmt.Errorf("invalid MAX_REQUEST_BODY: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return fmt.Errorf("invalid MAX_HEADER_SIZE: %w", err)
	}

	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateDelay validates millisecond delay configuration values
func validateDelay(ms int, configName string) error {
	if ms < 0 {
		return fmt.Errorf("invalid %s: must not be negative, got: %d", configName, ms)
	}

	if ms > 60000 {
		return fmt.Errorf("invalid %s: too large (max 60000 ms), got: %d", configName, ms)
	}

	return nil
}

// validateSizeLimit validates size limit configuration values
func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 { // 100MB
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"PORT",
		"ADDRESS",
		"ENV",
		"LOG_LEVEL",
		"LOG_DIR",
		"SEARCH_API_KEY",
		"SEARCH_BASE_URL",
		"PROVIDER_DOMAIN",
		"REQUEST_DELAY_MS",
		"THROTTLE_RETRY_DELAY_MS",
		"SEARCH_TIMEOUT_SECONDS",
		"MAX_REQUEST_BODY",
		"MAX_HEADER_SIZE",
	}
}
