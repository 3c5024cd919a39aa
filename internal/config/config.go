package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/philipparndt/gomodelinfo/pkg/model"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "gomodelinfo"

	// DefaultMaxFileSize rejects uploads larger than 256MB before parsing
	DefaultMaxFileSize = 256 * 1024 * 1024

	// DefaultWorkers is the number of files inspected concurrently
	DefaultWorkers = 4

	// DefaultLogLevel keeps per-file progress out of command output
	DefaultLogLevel = "warn"
)

// Config controls how model files are inspected
type Config struct {
	// MaxFileSize is the largest file, in bytes, handed to the parsers
	MaxFileSize int64

	// MaxTriangles bounds the triangle count accepted from binary STL files.
	// Zero disables the limit
	MaxTriangles uint32

	// Workers is the number of files inspected in parallel
	Workers int

	// Hint forces a format for every file: "obj", "stl" or empty to
	// derive it from the file extension
	Hint string

	LogLevel string
	LogJSON  bool

	// Database is the SQLite file storing inspection history
	Database string
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		MaxFileSize:  DefaultMaxFileSize,
		MaxTriangles: model.DefaultMaxTriangles,
		Workers:      DefaultWorkers,
		LogLevel:     DefaultLogLevel,
		Database:     DefaultDatabasePath(),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return ErrInvalidMaxFileSize
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if _, err := model.ParseHint(c.Hint); err != nil {
		return ErrInvalidHint
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// Merge overwrites c with the non-zero values of other
func (c *Config) Merge(other *File) {
	if other == nil {
		return
	}
	if other.MaxFileSize != 0 {
		c.MaxFileSize = other.MaxFileSize
	}
	if other.MaxTriangles != nil {
		c.MaxTriangles = *other.MaxTriangles
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
	if other.Hint != "" {
		c.Hint = other.Hint
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogJSON {
		c.LogJSON = true
	}
	if other.Database != "" {
		c.Database = other.Database
	}
}

// DefaultDatabasePath returns the inspection history location under the
// XDG data directory
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppName, AppName+".db")
}

// DefaultConfigPath returns the config file location under the XDG config
// directory
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
