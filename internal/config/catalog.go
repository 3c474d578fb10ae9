// Package config loads and stores the YAML device catalog.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName     = "oledcfg"
	catalogFile = "catalog.yaml"
)

// Dir returns the configuration directory for oledcfg, following the
// platform's convention (XDG on Linux, Application Support on macOS,
// AppData on Windows).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// Path returns the full path of the catalog file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, catalogFile), nil
}

// Load reads the catalog from its default location. A missing file yields
// the built-in defaults.
func Load() (*Catalog, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a catalog from an explicit path. A missing file yields the
// built-in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if catalog.Version != 1 {
		return nil, fmt.Errorf("unsupported catalog version: %d (expected 1)", catalog.Version)
	}
	return &catalog, nil
}

// Save writes the catalog to its default location, creating the config
// directory if needed.
func Save(catalog *Catalog) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveFile(path, catalog)
}

// SaveFile writes the catalog to an explicit path.
func SaveFile(path string, catalog *Catalog) error {
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
