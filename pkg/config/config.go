// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/spf13/viper"
)

// Config is a thin wrapper around viper for CLI-level settings.
// Precedence: flags > env vars > config file > built-in defaults.
type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// NodeURL returns the configured default node endpoint, falling back to the
// built-in default.
func (c *Config) NodeURL() string {
	if c.ConfigValueIsSet(constants.ConfigNodeURLKey) {
		return c.GetConfigStringValue(constants.ConfigNodeURLKey)
	}
	return constants.DefaultNodeURL
}

// TemplateRepo returns the template repository cloned by `contract new`.
func (c *Config) TemplateRepo() string {
	if c.ConfigValueIsSet(constants.ConfigTemplateRepoKey) {
		return c.GetConfigStringValue(constants.ConfigTemplateRepoKey)
	}
	return constants.DefaultTemplateRepo
}

// ToolchainPath returns the external WASM toolchain binary.
func (c *Config) ToolchainPath() string {
	if c.ConfigValueIsSet(constants.ConfigToolchainKey) {
		return c.GetConfigStringValue(constants.ConfigToolchainKey)
	}
	return constants.DefaultToolchainBin
}
