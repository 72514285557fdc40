package checker

import (
	"github.com/oasguard/oasguard/internal/options"
	"github.com/oasguard/oasguard/loader"
)

// Option is a function that configures a check run
type Option func(*checkConfig) error

// checkConfig holds configuration for a check run
type checkConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	document *loader.Document

	// Configuration options
	includeWarnings bool
	expectations    *Expectations
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*checkConfig, error) {
	cfg := &checkConfig{
		// Set defaults to match Checker defaults
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithDocument)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a contract file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *checkConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already loaded document as the input source
func WithDocument(doc *loader.Document) Option {
	return func(cfg *checkConfig) error {
		cfg.document = doc
		return nil
	}
}

// WithIncludeWarnings enables or disables warning findings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithExpectations replaces the expectation tables for this run.
// Default: DefaultExpectations()
func WithExpectations(e Expectations) Option {
	return func(cfg *checkConfig) error {
		cfg.expectations = &e
		return nil
	}
}
