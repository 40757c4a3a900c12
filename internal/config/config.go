package config

import (
	"os"
	"path/filepath"
	"strings"

	"aek/wallet/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory, or its parent, into
// the process environment. Variables already set are not overridden. It
// returns the file it loaded, or "" when none was found.
func LoadEnv() (string, error) {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return "", nil
		}
	}
	if err := godotenv.Load(envFile); err != nil {
		return "", err
	}
	return envFile, nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// BootstrapLogLevel returns LOG_LEVEL, lowercased, defaulting to info. It is
// read before the full configuration so early messages honour it.
func BootstrapLogLevel() string {
	return strings.ToLower(GetEnv("LOG_LEVEL", "info"))
}

// BootstrapLogFormat returns LOG_FORMAT, lowercased, defaulting to text.
func BootstrapLogFormat() string {
	return strings.ToLower(GetEnv("LOG_FORMAT", "text"))
}

// ConfigureLoggingFromConfig builds the application logger from the log
// section of config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
