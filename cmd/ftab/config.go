package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the ftab configuration file
// (~/.config/ftab/config.yaml). Pointer fields distinguish "not set"
// from zero values; command-line flags always win over the file.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Overwrite makes pack/unpack replace existing files by default.
	Overwrite *bool `yaml:"overwrite"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ftab", "config.yaml")
}

// loadConfig reads the config file if one exists. A missing or broken
// file yields the zero config; configuration is strictly optional.
func loadConfig() Config {
	var cfg Config
	path := configPath()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// overwriteDefault resolves the effective overwrite setting for a
// command: the flag when given, else the config file, else false.
func overwriteDefault(flagSet, flagValue bool, cfg Config) bool {
	if flagSet {
		return flagValue
	}
	if cfg.Overwrite != nil {
		return *cfg.Overwrite
	}
	return false
}
