package config

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. LESSONS_ENVIRONMENT
const EnvPrefix = "LESSONS"

// Config holds all configuration for the application
type Config struct {
	// Environment (development, production, test)
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`

	// Logging configuration
	LogDir     string `mapstructure:"log_dir"`
	LogConsole bool   `mapstructure:"log_console"`

	// Lessons to run, in catalogue order. Empty runs all of them.
	Lessons []string `mapstructure:"lessons" validate:"dive,required"`

	// Metrics configuration
	MetricsEnabled  bool   `mapstructure:"metrics_enabled"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_console", false)
	v.SetDefault("lessons", []string{})
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_textfile", "")

	// Set config file path
	if path != "" {
		v.AddConfigPath(path)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with defaults and environment variables
	}

	// LESSONS_LOG_DIR -> log_dir
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the struct tags on Config
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
