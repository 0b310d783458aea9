// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name looked up in the standard locations.
const ConfigFileName = ".curp-scan.yaml"

// Config represents the application configuration.
type Config struct {
	// Default settings, overridable from the command line
	Defaults struct {
		Format    string `yaml:"format"`
		NoColor   bool   `yaml:"no_color"`
		Verbose   bool   `yaml:"verbose"`
		Quiet     bool   `yaml:"quiet"`
		Recursive bool   `yaml:"recursive"`
	} `yaml:"defaults"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = "text"
	return cfg
}

// FindConfigFile looks for a configuration file in the current directory and
// then in the user's home directory. It returns an empty string when none
// exists.
func FindConfigFile() string {
	candidates := []string{ConfigFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ConfigFileName))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfig loads the configuration file at path, or the defaults when path
// is empty.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Defaults.Format == "" {
		cfg.Defaults.Format = "text"
	}
	return cfg, nil
}
