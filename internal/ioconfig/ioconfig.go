// Package ioconfig provides I/O operations for bootstrapping and
// loading configuration. This is an impure package that touches the
// file system and environment variables.
package ioconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

const configHeader = `# BioHub backend configuration.
#
# Every value below can be overridden with a BIOHUB_* environment
# variable, for example BIOHUB_DATABASE_HOST or BIOHUB_SEARCH_URL.
# Command line flags take precedence over both.

`

// EnsureDirs creates the config, blob and log directories under the
// user's home directory when they do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a documented config.yaml with default values
// to the config directory. Does not overwrite an existing file.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := generateYAML()
	if err != nil {
		return WriteFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}

// generateYAML renders the default configuration as YAML with a
// header explaining the override rules.
func generateYAML() ([]byte, error) {
	cfg := config.New()
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal default config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}

// ValidateConfigFile reads a config file and checks that it parses
// into a Config. Used by tests and the config subcommand.
func ValidateConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ReadFileError(path, err)
	}

	return nil
}
