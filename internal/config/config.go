// Package config handles cafe-install configuration loading and defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/dongho-jung/cafeinstall/internal/constants"
)

// Config represents the installer configuration.
// The zero-config defaults install the Cafe Management System with npm.
type Config struct {
	Runtime        string   `yaml:"runtime"`         // Executable probed with --version
	RuntimeName    string   `yaml:"runtime_name"`    // Display name of the runtime
	RuntimeURL     string   `yaml:"runtime_url"`     // Where operators download the runtime
	InstallCommand string   `yaml:"install_command"` // Dependency install shell command
	BuildCommand   string   `yaml:"build_command"`   // Build shell command
	StartCommand   string   `yaml:"start_command"`   // Command the startup script runs
	RequiredPaths  []string `yaml:"required_paths"`  // Entries that must exist in the project
	DatabaseFile   string   `yaml:"database_file"`   // Placeholder database created if absent
	ScriptName     string   `yaml:"script_name"`     // Startup script name without extension
	BuildOutput    string   `yaml:"build_output"`    // File the build is expected to produce
	Title          string   `yaml:"title"`           // Application title shown in scripts
	WebURL         string   `yaml:"web_url"`         // Local URL of the installed application
	LoginUser      string   `yaml:"login_user"`      // Default login shown to the operator
	LoginPassword  string   `yaml:"login_password"`  // Default password shown to the operator
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Runtime:        constants.DefaultRuntime,
		RuntimeName:    constants.DefaultRuntimeName,
		RuntimeURL:     constants.DefaultRuntimeURL,
		InstallCommand: constants.DefaultInstallCommand,
		BuildCommand:   constants.DefaultBuildCommand,
		StartCommand:   constants.DefaultStartCommand,
		RequiredPaths:  constants.RequiredPaths(),
		DatabaseFile:   constants.DatabaseFileName,
		ScriptName:     constants.ScriptBaseName,
		BuildOutput:    constants.BuildOutputPath,
		Title:          constants.DefaultTitle,
		WebURL:         constants.DefaultWebURL,
		LoginUser:      constants.DefaultLoginUser,
		LoginPassword:  constants.DefaultLoginPassword,
	}
}

// Load reads the configuration file from the root of fs.
// A missing file yields the default configuration.
func Load(fs afero.Fs) (*Config, error) {
	exists, err := afero.Exists(fs, constants.ConfigFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check config: %w", err)
	}
	if !exists {
		return DefaultConfig(), nil
	}
	return LoadFile(fs, constants.ConfigFileName)
}

// LoadFile reads the configuration from an explicit path. The file must exist.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig decodes YAML on top of the defaults, so absent keys keep
// their default values. Unknown keys are rejected.
func parseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// Normalize restores defaults for fields that were set empty and returns a
// warning for each restored field.
func (c *Config) Normalize() []string {
	defaults := DefaultConfig()
	var warnings []string

	fields := []struct {
		key   string
		value *string
		def   string
	}{
		{"runtime", &c.Runtime, defaults.Runtime},
		{"runtime_name", &c.RuntimeName, defaults.RuntimeName},
		{"runtime_url", &c.RuntimeURL, defaults.RuntimeURL},
		{"install_command", &c.InstallCommand, defaults.InstallCommand},
		{"build_command", &c.BuildCommand, defaults.BuildCommand},
		{"start_command", &c.StartCommand, defaults.StartCommand},
		{"database_file", &c.DatabaseFile, defaults.DatabaseFile},
		{"script_name", &c.ScriptName, defaults.ScriptName},
		{"build_output", &c.BuildOutput, defaults.BuildOutput},
		{"title", &c.Title, defaults.Title},
		{"web_url", &c.WebURL, defaults.WebURL},
		{"login_user", &c.LoginUser, defaults.LoginUser},
		{"login_password", &c.LoginPassword, defaults.LoginPassword},
	}

	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			*f.value = f.def
			warnings = append(warnings, fmt.Sprintf("%s is empty, using %q", f.key, f.def))
		}
	}

	paths := make([]string, 0, len(c.RequiredPaths))
	for _, p := range c.RequiredPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		paths = defaults.RequiredPaths
		warnings = append(warnings, fmt.Sprintf("required_paths is empty, using %s", strings.Join(paths, ", ")))
	}
	c.RequiredPaths = paths

	return warnings
}
