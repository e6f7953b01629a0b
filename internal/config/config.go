package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration settings. Command-line flags override
// whatever the config file and environment provide.
type Config struct {
	// Author whose commits make up the timesheet (exact, case-sensitive match)
	Author string `mapstructure:"author"`

	// Output is the path of the CSV file to write
	Output string `mapstructure:"output"`

	// StartUpTime is the assumed time, in seconds, to produce the first
	// commit of a work session (default 3 hours)
	StartUpTime float64 `mapstructure:"start_up_time"`

	// TitleExps are tried in order against each commit message; the first
	// match's first capture group becomes the entry title
	TitleExps []string `mapstructure:"title_exps"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		StartUpTime: 3 * 3600,
	}
}

// Load loads configuration from file and environment
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Registering every key makes AutomaticEnv pick the variables up during
	// Unmarshal even when no config file sets them.
	cfg := Default()
	v.SetDefault("author", cfg.Author)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("start_up_time", cfg.StartUpTime)
	v.SetDefault("title_exps", cfg.TitleExps)

	// Environment variables: GITSHEET_AUTHOR, GITSHEET_OUTPUT, ...
	v.SetEnvPrefix("GITSHEET")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".gitsheet")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".gitsheet"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}
