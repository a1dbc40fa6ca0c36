package utils

import "fmt"

// ConfigurationError reports a configuration value that cannot be used to
// start a simulation.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%v: %s", e.Field, e.Value, e.Reason)
}

// InvalidSizeError is returned when a grid is requested below the minimum size.
type InvalidSizeError struct {
	Size int
	Min  int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %d (minimum %d)", e.Size, e.Min)
}
