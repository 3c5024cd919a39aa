package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name looked up in the working directory
const DefaultConfigFile = ".gomodelinfo.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk configuration. Zero values leave defaults untouched,
// except max_triangles where an explicit 0 disables the limit
type File struct {
	MaxFileSize  int64   `yaml:"max_file_size"`
	MaxTriangles *uint32 `yaml:"max_triangles"`
	Workers      int     `yaml:"workers"`
	Hint         string  `yaml:"hint"`
	LogLevel     string  `yaml:"log_level"`
	LogJSON      bool    `yaml:"log_json"`
	Database     string  `yaml:"database"`
}

// LoadConfigFile reads a YAML configuration file
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// Empty file
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &f, nil
}

// FindConfigFile returns the first existing configuration file: the
// explicit path, ./.gomodelinfo.yaml, then the XDG config file. It returns
// an empty string when none exists
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	if _, err := os.Stat(DefaultConfigPath()); err == nil {
		return DefaultConfigPath()
	}

	return ""
}

// Load builds the effective configuration from defaults and the config
// file. An explicit configPath that does not exist is an error; a missing
// default file is not
func Load(configPath string) (*Config, error) {
	cfg := NewConfig()

	path := FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return cfg, nil
	}

	f, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(f)

	return cfg, nil
}
