package config

import (
	"fmt"
	"strings"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of: %s)",
			c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// ValidateInput checks that an input file is configured.
func (c *Config) ValidateInput() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input is required\nHint: pass a file argument or set input in %s", DefaultConfigName)
	}
	return nil
}

func isOutputFormat(s string) bool {
	for _, f := range OutputFormats {
		if s == f {
			return true
		}
	}
	return false
}
