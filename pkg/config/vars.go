package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "biohub"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/biohub by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for locally stored submission
// archives (the default filesystem blob store).
// Returns ~/.local/share/biohub/blobs by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "blobs")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/biohub/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/biohub/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
