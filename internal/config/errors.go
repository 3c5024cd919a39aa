package config

import "errors"

// Configuration validation errors returned by Config.Validate
var (
	ErrInvalidMaxFileSize = errors.New("invalid max file size: must be positive")
	ErrInvalidWorkers     = errors.New("invalid workers: must be positive")
	ErrInvalidHint        = errors.New("invalid hint: must be obj, stl or empty")
	ErrInvalidLogLevel    = errors.New("invalid log level: must be debug, info, warn or error")
)
