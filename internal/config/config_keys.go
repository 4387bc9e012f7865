// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so config.go can focus on YAML structure
// and loading while this file handles the CLI and MCP surface where
// config is accessed by string keys (e.g. "audit.enabled").

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"audit.enabled",
		"output.color",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "audit.enabled":
		return strconv.FormatBool(c.AuditEnabled()), nil
	case "output.color":
		return c.Color(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "audit.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: audit.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Audit.Enabled = &b
	case "output.color":
		if !validColor(value) {
			return fmt.Errorf("%w: output.color must be one of auto, always, never", ErrInvalidValue)
		}
		c.Output.Color = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"audit.enabled": strconv.FormatBool(c.AuditEnabled()),
		"output.color":  c.Color(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "audit.enabled":
		return c.Audit.Enabled != nil
	case "output.color":
		return c.Output.Color != ""
	default:
		return false
	}
}
