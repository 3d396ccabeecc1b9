package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string        `yaml:"port" env:"SERVER_PORT"`
		Mode         string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Catalog struct {
		// DatasetPath overrides the embedded dataset when set
		DatasetPath       string        `yaml:"dataset_path" env:"CATALOG_DATASET_PATH"`
		SearchLimit       int           `yaml:"search_limit" env:"CATALOG_SEARCH_LIMIT"`
		GroupSize         int           `yaml:"group_size" env:"CATALOG_GROUP_SIZE"`
		RecommendationIDs []int64       `yaml:"recommendation_ids" env:"CATALOG_RECOMMENDATION_IDS"`
		Recommendations   int           `yaml:"recommendations" env:"CATALOG_RECOMMENDATIONS"`
		FilterDebounce    time.Duration `yaml:"filter_debounce" env:"CATALOG_FILTER_DEBOUNCE"`
	} `yaml:"catalog"`

	Sessions struct {
		TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL"`
		SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
		MaxSessions   int           `yaml:"max_sessions" env:"SESSION_MAX"`
	} `yaml:"sessions"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults and env vars are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Catalog.SearchLimit = 5
	config.Catalog.GroupSize = 3
	config.Catalog.Recommendations = 9
	config.Catalog.FilterDebounce = 50 * time.Millisecond

	config.Sessions.TTL = 30 * time.Minute
	config.Sessions.SweepInterval = time.Minute
	config.Sessions.MaxSessions = 10000
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Catalog.SearchLimit <= 0 {
		return fmt.Errorf("catalog search limit must be positive, got %d", config.Catalog.SearchLimit)
	}

	if config.Catalog.GroupSize <= 0 {
		return fmt.Errorf("catalog group size must be positive, got %d", config.Catalog.GroupSize)
	}

	if config.Catalog.FilterDebounce < 0 {
		return fmt.Errorf("filter debounce cannot be negative")
	}

	if config.Sessions.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	if config.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("session sweep interval must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
