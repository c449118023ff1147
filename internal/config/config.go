package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the pbrctl configuration
type Config struct {
	// Session source
	Source SourceConfig `json:"source" mapstructure:"source"`

	// Output
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Limits
	Limits LimitsConfig `json:"limits" mapstructure:"limits"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// SourceConfig selects the backend that holds the PBR session
type SourceConfig struct {
	Driver string `json:"driver" mapstructure:"driver"` // image, sqlite
	Path   string `json:"path" mapstructure:"path"`
}

// OutputConfig holds presentation settings
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"` // text, list, json, yaml
}

// LimitsConfig bounds resource usage
type LimitsConfig struct {
	MaxBufferBytes int `json:"max_buffer_bytes" mapstructure:"max_buffer_bytes"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// MetricsConfig holds metrics export settings
type MetricsConfig struct {
	Textfile string `json:"textfile" mapstructure:"textfile"` // empty disables export
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Driver: "image",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Limits: LimitsConfig{
			MaxBufferBytes: 256 << 20,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
			Pretty:  true,
		},
	}
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	v := NewValidator()

	if err := v.ValidateDriver(c.Source.Driver); err != nil {
		return err
	}
	if err := v.ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if err := v.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Limits.MaxBufferBytes <= 0 {
		return fmt.Errorf("limits.max_buffer_bytes must be positive, got %d", c.Limits.MaxBufferBytes)
	}

	return nil
}
