// Package iofs prepares the file system layout pantry relies on:
// config, data and log directories, and the files copied there on
// first run.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/pantry/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed catalog.yaml
var CatalogYAML string

// EnsureDirs creates config, data and log directories under homeDir.
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

// EnsureConfigFile writes the embedded config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureCatalogFile writes a sample seed catalog next to config.yaml
// and returns its path.
func EnsureCatalogFile(homeDir string) (string, error) {
	path := CatalogPath(homeDir)
	return path, ensureFile(path, CatalogYAML)
}

// CatalogPath returns the location of the sample seed catalog.
func CatalogPath(homeDir string) string {
	return filepath.Join(config.ConfigDir(homeDir), "catalog.yaml")
}

// ReadFile reads a user-supplied file, wrapping failures into ReadFileError.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := touchDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
