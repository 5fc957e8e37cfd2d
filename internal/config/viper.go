// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatText = "text"
)

// Clustering modes for the grouping engine.
const (
	ClusteringGreedy     = "greedy"
	ClusteringTransitive = "transitive"
)

// DefaultAIModel is the Gemini model used to refine receipt item categories.
const DefaultAIModel = "gemini-1.5-flash"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Format   string `mapstructure:"format" yaml:"format"`
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"output" yaml:"output"`

	Data struct {
		PatternsFile  string `mapstructure:"patterns_file" yaml:"patterns_file"`
		MerchantsFile string `mapstructure:"merchants_file" yaml:"merchants_file"`
	} `mapstructure:"data" yaml:"data"`

	Grouping struct {
		Clustering string `mapstructure:"clustering" yaml:"clustering"`
		TopLimit   int    `mapstructure:"top_limit" yaml:"top_limit"`
	} `mapstructure:"grouping" yaml:"grouping"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finny")
	v.AddConfigPath(".finny")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINNY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
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

// Default returns a configuration holding only the default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// defaults always unmarshal
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Output defaults
	v.SetDefault("output.format", FormatJSON)
	v.SetDefault("output.currency", "INR")

	// Data defaults, empty means built-in dictionaries
	v.SetDefault("data.patterns_file", "")
	v.SetDefault("data.merchants_file", "")

	// Grouping defaults
	v.SetDefault("grouping.clustering", ClusteringGreedy)
	v.SetDefault("grouping.top_limit", 5)

	// AI defaults, receipt item categories are refined only when enabled
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", DefaultAIModel)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := ValidateOutputFormat(config.Output.Format); err != nil {
		return err
	}

	if config.Output.Currency == "" {
		return fmt.Errorf("output.currency must not be empty")
	}

	switch config.Grouping.Clustering {
	case ClusteringGreedy, ClusteringTransitive:
	default:
		return fmt.Errorf("invalid grouping.clustering: %s (must be '%s' or '%s')",
			config.Grouping.Clustering, ClusteringGreedy, ClusteringTransitive)
	}

	if config.Grouping.TopLimit < 1 {
		return fmt.Errorf("grouping.top_limit must be at least 1, got: %d", config.Grouping.TopLimit)
	}

	if config.AI.Enabled && strings.TrimSpace(config.AI.Model) == "" {
		return fmt.Errorf("ai.model must be set when ai.enabled is true")
	}

	return nil
}

// ValidateOutputFormat checks that format is one of the supported output formats.
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, FormatCSV, FormatText:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be json, yaml, csv or text)", format)
	}
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
