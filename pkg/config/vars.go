package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "pantry"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pantry by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for application data, such as
// the default SQLite database file.
// Returns ~/.local/share/pantry by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/pantry/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pantry/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the default location of the SQLite database file.
func SQLitePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "pantry.db")
}
