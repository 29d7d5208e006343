package config

import "fmt"

// Overrides holds values given on the command line. They win over the file
// and the environment. Zero values leave the loaded configuration untouched.
type Overrides struct {
	Port     int
	LogLevel string
}

// ApplyOverrides merges command line overrides into cfg and revalidates it
func ApplyOverrides(cfg *Config, o Overrides) error {
	merged := *cfg
	if o.Port != 0 {
		merged.App.Port = o.Port
	}
	if o.LogLevel != "" {
		merged.Service.LogLevel = o.LogLevel
	}

	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid command line overrides: %w", err)
	}
	*cfg = merged
	return nil
}
