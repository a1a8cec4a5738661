// Package config loads daybrief configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PatternsConfig tunes the historical pattern learner.
type PatternsConfig struct {
	Enabled bool `yaml:"enabled"`

	// InfluenceLevel bounds the pattern boost: low, medium, or high.
	InfluenceLevel string `yaml:"influence_level"`

	// MinimumDaysRequired is the distinct completion-day count before learned
	// boosts activate.
	MinimumDaysRequired int `yaml:"minimum_days_required"`
}

// Config holds application configuration. Precedence: defaults, then the YAML
// file, then environment variables.
type Config struct {
	AppEnv    string `yaml:"app_env"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Storage selects the log backend: sqlite (default), postgres, or file.
	Storage     string `yaml:"storage"`
	DatabaseURL string `yaml:"database_url"`
	DataDir     string `yaml:"data_dir"`

	Patterns PatternsConfig `yaml:"patterns"`
}

// Default returns the zero-config local setup.
func Default() *Config {
	return &Config{
		AppEnv:    "development",
		LogLevel:  "info",
		LogFormat: "text",
		Storage:   "sqlite",
		DataDir:   defaultDataDir(),
		Patterns: PatternsConfig{
			Enabled:             true,
			InfluenceLevel:      "medium",
			MinimumDaysRequired: 14,
		},
	}
}

// Load builds the configuration from defaults, the optional config file, and
// the environment.
func Load() (*Config, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	cfg := Default()

	if path := configFilePath(cfg.DataDir); path != "" {
		if err := applyYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if !validInfluence(cfg.Patterns.InfluenceLevel) {
		cfg.Patterns.InfluenceLevel = "medium"
	}
	if cfg.Patterns.MinimumDaysRequired <= 0 {
		cfg.Patterns.MinimumDaysRequired = 14
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func configFilePath(dataDir string) string {
	if explicit := os.Getenv("DAYBRIEF_CONFIG"); explicit != "" {
		return explicit
	}
	path := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.AppEnv = getEnv("DAYBRIEF_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("DAYBRIEF_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("DAYBRIEF_LOG_FORMAT", cfg.LogFormat)
	cfg.Storage = getEnv("DAYBRIEF_STORAGE", cfg.Storage)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DataDir = getEnv("DAYBRIEF_DATA_DIR", cfg.DataDir)

	cfg.Patterns.Enabled = getBoolEnv("DAYBRIEF_PATTERNS_ENABLED", cfg.Patterns.Enabled)
	cfg.Patterns.InfluenceLevel = strings.ToLower(getEnv("DAYBRIEF_PATTERN_INFLUENCE", cfg.Patterns.InfluenceLevel))
	cfg.Patterns.MinimumDaysRequired = getIntEnv("DAYBRIEF_PATTERN_MIN_DAYS", cfg.Patterns.MinimumDaysRequired)
}

func validInfluence(level string) bool {
	switch level {
	case "low", "medium", "high":
		return true
	default:
		return false
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybrief"
	}
	return filepath.Join(home, ".daybrief")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
