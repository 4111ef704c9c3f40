// Package config loads compositor settings from the environment.
//
// Values come from NFT_COMPOSITOR_* environment variables. A .env file in
// the working directory, if present, seeds variables that are not already
// set; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nami2111/nft-studio/internal/compositor"
	"github.com/nami2111/nft-studio/internal/engine"
	"github.com/nami2111/nft-studio/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel       = "NFT_COMPOSITOR_LOG_LEVEL"
	EnvResampler      = "NFT_COMPOSITOR_RESAMPLER"
	EnvRounding       = "NFT_COMPOSITOR_ROUNDING"
	EnvPNGCompression = "NFT_COMPOSITOR_PNG_COMPRESSION"
	EnvMaxPixels      = "NFT_COMPOSITOR_MAX_PIXELS"
)

// Config holds validated settings.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string

	// Resampler names the preview resampler backend: "imaging" or "bild".
	Resampler string

	// Rounding selects blend quantization.
	Rounding compositor.Rounding

	// PNGCompression selects the zlib effort for encoded results.
	PNGCompression imaging.Compression

	// MaxPixels caps decoded inputs and preview targets.
	MaxPixels int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:       "info",
		Resampler:      imaging.ResamplerImaging,
		Rounding:       compositor.Truncate,
		PNGCompression: imaging.CompressionDefault,
		MaxPixels:      imaging.DefaultMaxPixels,
	}
}

// Load reads the optional .env files (default ".env") and then the
// environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup function. Unset or
// empty variables keep their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.ToLower(strings.TrimSpace(v))
	}

	if v := get(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := get(EnvResampler); v != "" {
		cfg.Resampler = v
	}
	if v := get(EnvRounding); v != "" {
		r, err := compositor.ParseRounding(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRounding, err)
		}
		cfg.Rounding = r
	}
	if v := get(EnvPNGCompression); v != "" {
		c, err := imaging.ParseCompression(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPNGCompression, err)
		}
		cfg.PNGCompression = c
	}
	if v := get(EnvMaxPixels); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMaxPixels, err)
		}
		cfg.MaxPixels = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks fields that are stored unparsed.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "info", "debug":
	default:
		return fmt.Errorf("%s: unknown log level: %s", EnvLogLevel, c.LogLevel)
	}
	if _, err := imaging.NewResampler(c.Resampler); err != nil {
		return fmt.Errorf("%s: %w", EnvResampler, err)
	}
	if c.MaxPixels <= 0 {
		return fmt.Errorf("%s: must be positive, got %d", EnvMaxPixels, c.MaxPixels)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// EngineOptions converts the configuration into engine options.
func (c Config) EngineOptions() (engine.Options, error) {
	r, err := imaging.NewResampler(c.Resampler)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Resampler:   r,
		Rounding:    c.Rounding,
		Compression: c.PNGCompression,
		MaxPixels:   c.MaxPixels,
		Debug:       c.Debug(),
	}, nil
}
