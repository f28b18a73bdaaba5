// Package config holds the runtime configuration for the pipeline.
// Values are injected into the handler at construction; nothing here is a
// compile-time constant.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/candrel/s3translate/internal/langid"
)

// Config is the pipeline's runtime configuration.
type Config struct {
	// OutputBucket receives translation results. Required.
	OutputBucket string

	// DefaultSourceLang and DefaultTargetLang fill in missing language
	// fields on stored requests.
	DefaultSourceLang string
	DefaultTargetLang string

	// MaxDocumentBytes caps a single translation service call.
	// Zero means the service default.
	MaxDocumentBytes int

	Environment string
}

// FromEnv builds a Config from the Lambda environment.
func FromEnv() (Config, error) {
	cfg := Config{
		OutputBucket:      os.Getenv("OUTPUT_BUCKET"),
		DefaultSourceLang: os.Getenv("DEFAULT_SOURCE_LANG"),
		DefaultTargetLang: os.Getenv("DEFAULT_TARGET_LANG"),
		Environment:       os.Getenv("ENVIRONMENT"),
	}

	if v := os.Getenv("MAX_DOCUMENT_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_DOCUMENT_BYTES %q: %w", v, err)
		}
		cfg.MaxDocumentBytes = n
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultSourceLang == "" {
		c.DefaultSourceLang = langid.DefaultSource
	}
	if c.DefaultTargetLang == "" {
		c.DefaultTargetLang = langid.DefaultTarget
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.OutputBucket == "" {
		return fmt.Errorf("OUTPUT_BUCKET is required")
	}
	if c.MaxDocumentBytes < 0 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must not be negative")
	}
	return nil
}
