// Package config loads the pymote CLI configuration file.
//
// The file is YAML and lives at ~/.pymote.yaml by default. Every field
// is optional; missing fields fall back to the defaults, so an empty or
// absent file yields a working configuration pointing at a local
// simulator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 9500
	DefaultTimeout  = "30s"
	DefaultLogLevel = "warning"

	defaultFileName = ".pymote.yaml"
)

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Timeout  string `yaml:"timeout"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath returns the default configuration file location in the
// user's home directory. It falls back to the bare file name when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultFileName
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads the configuration file at path, overlaying it on the
// defaults and validating the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return nil
}

// CommandTimeout returns the timeout as a duration. The value was
// validated at load time, so parse failures only occur on hand-built
// configurations; those fall back to the default.
func (c *Config) CommandTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}
