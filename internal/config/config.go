// Package config provides reading and writing of snapname configuration.
// Supports both global (~/.snapname/config.yaml) and local
// (.snapname/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: defaults to global, use the local scope explicitly.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dadap/snapd/internal/osutil"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.snapname/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .snapname/config.yaml
	ScopeLocal
)

// Audit holds audit-log configuration options.
type Audit struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Output holds output rendering options.
type Output struct {
	Color string `yaml:"color,omitempty"`
}

// Valid values for output.color.
var colorModes = []string{"auto", "always", "never"}

// DefaultColor is used when output.color is not set.
const DefaultColor = "auto"

// Config contains configuration for snapname.
type Config struct {
	Audit  Audit  `yaml:"audit,omitempty"`
	Output Output `yaml:"output,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable. Returns
// nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Output.Color != "" && !validColor(c.Output.Color) {
		return fmt.Errorf("%w: output.color must be one of auto, always, never; got %q",
			ErrInvalidValue, c.Output.Color)
	}
	return nil
}

func validColor(v string) bool {
	for _, m := range colorModes {
		if v == m {
			return true
		}
	}
	return false
}

// AuditEnabled returns whether decision audit logging is enabled
// (defaults to true).
func (c *Config) AuditEnabled() bool {
	if c.Audit.Enabled == nil {
		return true
	}
	return *c.Audit.Enabled
}

// Color returns the configured colour mode (defaults to "auto").
func (c *Config) Color() string {
	if c.Output.Color == "" {
		return DefaultColor
	}
	return c.Output.Color
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".snapname", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.snapname/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snapname", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755. The file itself
// is written atomically so a crash cannot leave a torn config behind.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := osutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
