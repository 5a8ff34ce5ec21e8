package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// PipelineConfig holds the file paths of the batch pipeline
type PipelineConfig struct {
	// InputPath is the raw classification dump
	InputPath string `yaml:"inputPath"`
	// FormattedPath receives the normalized record collection
	FormattedPath string `yaml:"formattedPath"`
	// HierarchyPath receives the short-id-keyed adjacency map
	HierarchyPath string `yaml:"hierarchyPath"`
}

// ServerConfig holds the query server settings
type ServerConfig struct {
	Address        string `yaml:"address"`
	EnableMetrics  bool   `yaml:"enableMetrics"`
	EnableCORS     bool   `yaml:"enableCORS"`
	WatchHierarchy bool   `yaml:"watchHierarchy"`
}

// Config holds all application configuration
type Config struct {
	Environment string         `yaml:"environment"`
	LogLevel    string         `yaml:"logLevel"`
	Pipeline    PipelineConfig `yaml:"pipeline"`
	Server      ServerConfig   `yaml:"server"`
}

// LoadConfig loads configuration in layers: defaults, then an optional
// YAML file (ICD11_CONFIG_FILE), then environment variables on top.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("ICD11_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Pipeline: PipelineConfig{
			InputPath:     "./data/ICD11.json",
			FormattedPath: "./data/FormattedICD11.json",
			HierarchyPath: "./data/ICD11_Hierarchy.json",
		},
		Server: ServerConfig{
			Address:        ":8080",
			EnableMetrics:  true,
			EnableCORS:     true,
			WatchHierarchy: true,
		},
	}
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.Pipeline.InputPath = getEnv("ICD11_INPUT_PATH", c.Pipeline.InputPath)
	c.Pipeline.FormattedPath = getEnv("ICD11_FORMATTED_PATH", c.Pipeline.FormattedPath)
	c.Pipeline.HierarchyPath = getEnv("ICD11_HIERARCHY_PATH", c.Pipeline.HierarchyPath)

	c.Server.Address = getEnv("SERVER_ADDRESS", c.Server.Address)
	c.Server.EnableMetrics = getEnvBool("ENABLE_METRICS", c.Server.EnableMetrics)
	c.Server.EnableCORS = getEnvBool("ENABLE_CORS", c.Server.EnableCORS)
	c.Server.WatchHierarchy = getEnvBool("WATCH_HIERARCHY", c.Server.WatchHierarchy)
}

// Validate checks required configuration values
func (c *Config) Validate() error {
	if c.Pipeline.InputPath == "" {
		return fmt.Errorf("pipeline input path is required")
	}
	if c.Pipeline.FormattedPath == "" {
		return fmt.Errorf("formatted output path is required")
	}
	if c.Pipeline.HierarchyPath == "" {
		return fmt.Errorf("hierarchy output path is required")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool gets a boolean environment variable with a fallback
func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
