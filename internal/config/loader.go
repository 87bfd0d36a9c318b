package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"confkit/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/confkit"
	configFileName = "config.yaml"
)

// osUserHomeDir is replaced in tests.
var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPath returns ~/.config/confkit.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads config.yaml from configPath on top of the defaults. A
// missing file yields the defaults. Relative store files are resolved
// against configPath.
func LoadConfig(configPath string) (ConfkitConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Warn("Config", "Error loading config.yaml from %s: %s", configFilePath, err)
		return ConfkitConfig{}, NewConfigurationError(configFilePath, ErrorTypeIO, err.Error())
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		cfgErr := NewConfigurationError(configFilePath, ErrorTypeParse, err.Error())
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			cfgErr.Suggestions = append(cfgErr.Suggestions, "check the value types against the documented keys")
		}
		return ConfkitConfig{}, cfgErr
	}

	applyDefaults(&config)
	for i, f := range config.Store.Files {
		if !filepath.IsAbs(f) {
			config.Store.Files[i] = filepath.Join(configPath, f)
		}
	}

	if err := Validate(config); err != nil {
		cfgErr := NewConfigurationError(configFilePath, ErrorTypeValidation, err.Error())
		cfgErr.Suggestions = []string{
			fmt.Sprintf("output.format must be one of %v", OutputFormats),
			"logging.level must be one of debug, info, warn, error",
		}
		return ConfkitConfig{}, cfgErr
	}

	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// applyDefaults fills fields that an explicit empty value in the file
// cleared.
func applyDefaults(c *ConfkitConfig) {
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Output.Indent <= 0 {
		c.Output.Indent = DefaultIndent
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
