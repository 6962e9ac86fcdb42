package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Path to the persisted credential file
	AuthFile string

	// Path to the CSV the export command writes
	OutputFile string

	// Path to the export command's log file
	LogFile string

	// Log level for the export command (debug, info, warn, error)
	LogLevel string

	// Audible marketplace country code
	Locale string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("auth_file", filepath.Join("auth", "audible_auth.txt"))
	v.SetDefault("output_file", filepath.Join("data", "library.csv"))
	v.SetDefault("log_file", "audiblex.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("locale", "us")

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("AUDIBLEX")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		AuthFile:   v.GetString("auth_file"),
		OutputFile: v.GetString("output_file"),
		LogFile:    v.GetString("log_file"),
		LogLevel:   v.GetString("log_level"),
		Locale:     v.GetString("locale"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "audiblex")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}
