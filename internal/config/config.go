// Package config provides configuration defaults and file loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "searchpresets"

	// DefaultIndent is the JSON indent used when pretty output is enabled.
	DefaultIndent = "  "

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultEngineListCode is the code of the engine list used when a
	// country has no mapping or its target has no list.
	DefaultEngineListCode = "default"

	// OutputFileMode is the permission of files written with --output.
	OutputFileMode = 0644
)

// Config holds runtime configuration.
type Config struct {
	Pretty               bool   `yaml:"pretty"`
	Indent               string `yaml:"indent"`
	LogLevel             string `yaml:"log_level"`
	WarnUnknownCountries bool   `yaml:"warn_unknown_countries"`
	DefaultCode          string `yaml:"default_code"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Indent:      DefaultIndent,
		LogLevel:    DefaultLogLevel,
		DefaultCode: DefaultEngineListCode,
	}
}

// Load reads a YAML config file on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DefaultCode == "" {
		cfg.DefaultCode = DefaultEngineListCode
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// JSONIndent returns the indent to encode with, empty for compact output.
func (c *Config) JSONIndent() string {
	if !c.Pretty {
		return ""
	}
	if c.Indent == "" {
		return DefaultIndent
	}
	return c.Indent
}
