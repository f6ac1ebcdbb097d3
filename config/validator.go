package config

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
)

var (
	validFormats   = []string{"text", "json"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	var problems []string

	if !contains(validFormats, strings.ToLower(c.Format)) {
		problems = append(problems, fmt.Sprintf("format %q is not one of %s",
			c.Format, strings.Join(validFormats, ", ")))
	}
	if !contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of %s",
			c.Log.Level, strings.Join(validLogLevels, ", ")))
	}

	if len(problems) > 0 {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("configuration validation failed: %s", strings.Join(problems, "; ")),
		)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
