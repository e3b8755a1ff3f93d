// Package config provides configuration for the optics CLI using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the complete CLI configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
	Document DocumentConfig `mapstructure:"document" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// DocumentConfig defines how documents are read and written.
type DocumentConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=json yaml yml toml msgpack mpk"`
	Pretty bool   `mapstructure:"pretty"`
}

// OutputConfig defines terminal output settings.
type OutputConfig struct {
	Color string `mapstructure:"color" validate:"required,oneof=auto on off"`
}

var (
	configValidator = validator.New()
)

// EnvPrefix is the prefix of environment variables overriding configuration.
const EnvPrefix = "OPTICS"

// Load reads configuration from defaults, an optional config file and
// OPTICS_* environment variables, in increasing order of precedence.
// An empty path searches for optics.yaml in the working directory and
// $HOME/.config/optics; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("optics")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/optics")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "warn", Format: "text"},
		Document: DocumentConfig{Format: "json", Pretty: true},
		Output:   OutputConfig{Color: "auto"},
	}
}

// Validate validates the configuration using struct tags.
func Validate(config *Config) error {
	if err := configValidator.Struct(config); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("document.format", d.Document.Format)
	v.SetDefault("document.pretty", d.Document.Pretty)

	v.SetDefault("output.color", d.Output.Color)
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
				fieldError.Field(), fieldError.Tag(), fieldError.Value())
			messages = append(messages, message)
		}
		return fmt.Errorf("validation errors: %s", strings.Join(messages, "; "))
	}
	return err
}
