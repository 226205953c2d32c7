package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL     string `yaml:"database_url"`
	Port            string `yaml:"port"`
	LogLevel        string `yaml:"log_level"`
	GinMode         string `yaml:"gin_mode"`
	CORSOrigins     string `yaml:"cors_origins"`  // comma separated, * for any
	SlowQueryMillis int    `yaml:"slow_query_ms"` // queries slower than this are logged
	SecretKey       string `yaml:"secret_key"`    // kept for parity with old deployments, no sessions use it
	ConfigFile      string `yaml:"-"`
}

// Default configuration values
const (
	DefaultDatabaseURL     = "sqlite:///organizer.db"
	DefaultPort            = "5000"
	DefaultLogLevel        = "info"
	DefaultGinMode         = "release"
	DefaultCORSOrigins     = "*"
	DefaultSlowQueryMillis = 200
	DefaultSecretKey       = "dev-key-change-in-production"
)

// Load loads configuration from environment variables and config file
// Priority: Environment variables > Config file > Default values
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     DefaultDatabaseURL,
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		GinMode:         DefaultGinMode,
		CORSOrigins:     DefaultCORSOrigins,
		SlowQueryMillis: DefaultSlowQueryMillis,
		SecretKey:       DefaultSecretKey,
	}

	if err := cfg.loadFromFile(configPaths()); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()

	return cfg, nil
}

func configPaths() []string {
	if path := os.Getenv("ORGANIZER_CONFIG"); path != "" {
		return []string{path}
	}
	return []string{
		"config.yaml",
		filepath.Join("config", "config.yaml"),
	}
}

// loadFromFile loads the first config file that exists. A missing file is not an error.
func (c *Config) loadFromFile(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if err := yaml.Unmarshal(data, c); err != nil {
			return err
		}
		c.ConfigFile = path
		return nil
	}

	return nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
	}
	if val := os.Getenv("SECRET_KEY"); val != "" {
		c.SecretKey = val
	}
	if val := os.Getenv("ORGANIZER_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("ORGANIZER_GIN_MODE"); val != "" {
		c.GinMode = val
	}
	if val := os.Getenv("ORGANIZER_CORS_ORIGINS"); val != "" {
		c.CORSOrigins = val
	}
	if val := os.Getenv("ORGANIZER_SLOW_QUERY_MS"); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms >= 0 {
			c.SlowQueryMillis = ms
		}
	}
}

// GetCORSOrigins splits CORSOrigins into a list, dropping empty entries
func (c *Config) GetCORSOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
