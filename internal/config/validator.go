package config

import (
	"fmt"
	"strings"

	"github.com/harun/pbrctl/pkg/render"
	"github.com/harun/pbrctl/pkg/source"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDriver validates a session source driver name
func (v *Validator) ValidateDriver(driver string) error {
	for _, d := range source.Drivers {
		if driver == d {
			return nil
		}
	}
	return fmt.Errorf("invalid source driver %q (must be: %s)", driver, strings.Join(source.Drivers, ", "))
}

// ValidateFormat validates an output format name
func (v *Validator) ValidateFormat(format string) error {
	if _, err := render.ParseFormat(format); err != nil {
		names := make([]string, 0, len(render.Formats))
		for _, f := range render.Formats {
			names = append(names, string(f))
		}
		return fmt.Errorf("invalid output format %q (must be: %s)", format, strings.Join(names, ", "))
	}
	return nil
}

// ValidateLogLevel validates a log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, l := range validLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (must be: %s)", level, strings.Join(validLevels, ", "))
}
