package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"
)

// Environment variables read by Load
const (
	// EnvWindowSize overrides the scan window size (supports "64Mi", "4M", or raw bytes)
	EnvWindowSize = "SHANNONENTROPY_WINDOW_SIZE"

	// EnvLogLevel sets the diagnostic log level (debug, info, warn, error)
	EnvLogLevel = "SHANNONENTROPY_LOG_LEVEL"
)

// FallbackWindowSize is used when the page size cannot be determined
const FallbackWindowSize int64 = 4096 * 1024

// MaxWindowSize caps the window so page alignment cannot overflow
const MaxWindowSize int64 = 1 << 30

// pagesPerWindow is how many memory pages make up one default window
const pagesPerWindow = 1024

// pageSize is swapped in tests
var pageSize = os.Getpagesize

// Config represents the calculator configuration
type Config struct {
	// WindowSize is the number of bytes scanned per window, always a multiple of the page size
	WindowSize int64 `json:"windowSize" validate:"required,min=1"`

	// LogLevel is the minimum level written to standard error
	LogLevel slog.Level `json:"logLevel"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		WindowSize: DefaultWindowSize(),
		LogLevel:   slog.LevelWarn,
	}
}

// DefaultWindowSize returns 1024 pages, or FallbackWindowSize when the page size is unknown
func DefaultWindowSize() int64 {
	ps := int64(pageSize())
	if ps <= 0 {
		return FallbackWindowSize
	}
	return ps * pagesPerWindow
}

// Load builds a configuration from the defaults and the given environment lookup.
// The returned configuration is always usable: a setting that does not parse
// keeps its default and is reported in the returned error, which callers
// should log rather than treat as fatal.
func Load(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if raw := strings.TrimSpace(getenv(EnvWindowSize)); raw != "" {
		size, err := ParseWindowSize(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", EnvWindowSize, err))
		} else {
			cfg.WindowSize = size
		}
	}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", EnvLogLevel, err))
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg, errors.Join(errs...)
}

// ParseWindowSize parses a size quantity string (e.g., "64Mi", "1048576") to bytes,
// rounded up to the next multiple of the page size
func ParseWindowSize(sizeString string) (int64, error) {
	q, err := resource.ParseQuantity(sizeString)
	if err != nil {
		return 0, fmt.Errorf("failed to parse window size quantity %q: %w", sizeString, err)
	}

	size := q.Value()
	if size <= 0 {
		return 0, fmt.Errorf("window size must be positive, got %q", sizeString)
	}
	if size > MaxWindowSize {
		return 0, fmt.Errorf("window size must be at most %d bytes, got %q", MaxWindowSize, sizeString)
	}

	return alignToPage(size), nil
}

// alignToPage rounds size up to a multiple of the page size so that every
// window starts at an offset mmap accepts
func alignToPage(size int64) int64 {
	ps := int64(pageSize())
	if ps <= 0 {
		return size
	}
	if rem := size % ps; rem != 0 {
		size += ps - rem
	}
	return size
}
