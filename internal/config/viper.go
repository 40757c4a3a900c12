// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aek/wallet/internal/kvstore"
	"aek/wallet/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "WALLET"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
		Key        string `mapstructure:"key" yaml:"key"`
	} `mapstructure:"storage" yaml:"storage"`

	App struct {
		CompanyName    string `mapstructure:"company_name" yaml:"company_name"`
		Currency       string `mapstructure:"currency" yaml:"currency"`
		DashboardTitle string `mapstructure:"dashboard_title" yaml:"dashboard_title"`
		PrimaryColor   string `mapstructure:"primary_color" yaml:"primary_color"`
		SecondaryColor string `mapstructure:"secondary_color" yaml:"secondary_color"`
		DangerColor    string `mapstructure:"danger_color" yaml:"danger_color"`
		CreatedBy      string `mapstructure:"created_by" yaml:"created_by"`
		Locale         string `mapstructure:"locale" yaml:"locale"`
	} `mapstructure:"app" yaml:"app"`

	Categories struct {
		Income         []string `mapstructure:"income" yaml:"income"`
		Expense        []string `mapstructure:"expense" yaml:"expense"`
		PaymentMethods []string `mapstructure:"payment_methods" yaml:"payment_methods"`
	} `mapstructure:"categories" yaml:"categories"`

	Dashboard struct {
		RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit"`
		MonthCount  int `mapstructure:"month_count" yaml:"month_count"`
	} `mapstructure:"dashboard" yaml:"dashboard"`
}

// InitializeConfig loads configuration from the default search path.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile loads configuration with hierarchical precedence:
// defaults, then the config file, then WALLET_* environment variables.
// An empty configFile searches $HOME/.wallet, .wallet and the working
// directory for config.yaml; a missing file there is not an error. An
// explicit configFile must exist.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.wallet")
		v.AddConfigPath(".wallet")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &config
}

// DefaultDataDirectory returns $HOME/.wallet/data, or .wallet/data when the
// home directory cannot be determined.
func DefaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".wallet", "data")
	}
	return filepath.Join(home, ".wallet", "data")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Storage defaults
	v.SetDefault("storage.backend", string(kvstore.BackendFile))
	v.SetDefault("storage.directory", DefaultDataDirectory())
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.key", models.StorageKey)

	// Display defaults
	v.SetDefault("app.company_name", "AEK")
	v.SetDefault("app.currency", "LAK")
	v.SetDefault("app.dashboard_title", "ລະບົບກະເປົາເງິນອີເລັກໂຕຣນິກ")
	v.SetDefault("app.primary_color", "#3b82f6")
	v.SetDefault("app.secondary_color", "#10b981")
	v.SetDefault("app.danger_color", "#ef4444")
	v.SetDefault("app.created_by", models.DefaultCreatedBy)
	v.SetDefault("app.locale", "lo-LA")

	// Suggestion lists
	v.SetDefault("categories.income", models.IncomeCategories)
	v.SetDefault("categories.expense", models.ExpenseCategories)
	v.SetDefault("categories.payment_methods", models.PaymentMethods)

	// Dashboard defaults
	v.SetDefault("dashboard.recent_limit", 10)
	v.SetDefault("dashboard.month_count", 12)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	backend, err := kvstore.ParseBackend(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("invalid storage.backend: %w", err)
	}
	if backend == kvstore.BackendFile && strings.TrimSpace(config.Storage.Directory) == "" {
		return fmt.Errorf("storage.directory is required for the file backend")
	}

	if strings.TrimSpace(config.Storage.Key) == "" {
		return fmt.Errorf("storage.key must not be empty")
	}

	if config.Dashboard.RecentLimit < 1 {
		return fmt.Errorf("dashboard.recent_limit must be at least 1, got: %d", config.Dashboard.RecentLimit)
	}
	if config.Dashboard.MonthCount < 1 || config.Dashboard.MonthCount > 120 {
		return fmt.Errorf("dashboard.month_count must be between 1 and 120, got: %d", config.Dashboard.MonthCount)
	}

	if len(config.Categories.Income) == 0 {
		return fmt.Errorf("categories.income must not be empty")
	}
	if len(config.Categories.Expense) == 0 {
		return fmt.Errorf("categories.expense must not be empty")
	}
	if len(config.Categories.PaymentMethods) == 0 {
		return fmt.Errorf("categories.payment_methods must not be empty")
	}

	return nil
}

// StorageOptions translates the storage section into kvstore options.
// The SQLite file defaults to wallet.db inside the data directory.
func (c *Config) StorageOptions() (kvstore.Options, error) {
	backend, err := kvstore.ParseBackend(c.Storage.Backend)
	if err != nil {
		return kvstore.Options{}, err
	}
	sqlitePath := c.Storage.SQLitePath
	if sqlitePath == "" {
		sqlitePath = filepath.Join(c.Storage.Directory, "wallet.db")
	}
	return kvstore.Options{
		Backend:    backend,
		Directory:  c.Storage.Directory,
		SQLitePath: sqlitePath,
	}, nil
}

// CategoriesFor returns the suggested categories for a transaction type.
func (c *Config) CategoriesFor(t models.TransactionType) []string {
	if t == models.TypeIncome {
		return c.Categories.Income
	}
	return c.Categories.Expense
}
