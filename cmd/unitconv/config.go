// Config loading for the unitconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFile     = "config.yaml"

	// Config keys.
	cfgKeyPolicy  = "default_policy"
	cfgKeyStrict  = "strict_property"
	cfgKeyHistory = "history"
	cfgKeyDataDir = "data_dir"

	// Defaults.
	defaultPolicy  = "1-1000"
	defaultStrict  = true
	defaultHistory = true
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# unitconv configuration

# Auto-range policy used when --policy is not given.
# One of: 1-1000, 1-100, 1-10, 0.1-1
default_policy: 1-1000

# Restrict auto-range candidates to the originating unit's quantity kind.
strict_property: true

# Record conversions to the local history database.
history: true

# Data directory for the history database (optional; overridable by --data-dir)
# data_dir:
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPolicy, defaultPolicy)
	v.SetDefault(cfgKeyStrict, defaultStrict)
	v.SetDefault(cfgKeyHistory, defaultHistory)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFile)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
