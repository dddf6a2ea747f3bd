package document

import (
	"fmt"
	"io"

	"github.com/erraggy/oasexplorer/internal/options"
	"github.com/erraggy/oasexplorer/oaserrors"
)

// DefaultMaxFileSize is the largest document accepted by default (10 MiB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64
	sourceName  *string
}

// ParseWithOptions loads an OpenAPI document using functional options.
//
// Example:
//
//	doc, err := document.ParseWithOptions(
//	    document.WithFilePath("openapi.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("document: invalid options: %w", err)
	}

	l := &loader{logger: OrNop(cfg.logger), maxFileSize: cfg.maxFileSize}

	var doc *Document
	switch {
	case cfg.filePath != nil:
		doc, err = l.parseFile(*cfg.filePath)
	case cfg.reader != nil:
		doc, err = l.parseReader(cfg.reader)
	default:
		doc, err = l.parseBytes(cfg.bytes, "")
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

// ParseFile is shorthand for ParseWithOptions(WithFilePath(path)).
func ParseFile(path string) (*Document, error) {
	return ParseWithOptions(WithFilePath(path))
}

// ParseBytes is shorthand for ParseWithOptions(WithBytes(data)).
func ParseBytes(data []byte) (*Document, error) {
	return ParseWithOptions(WithBytes(data))
}

// ParseReader is shorthand for ParseWithOptions(WithReader(r)).
func ParseReader(r io.Reader) (*Document, error) {
	return ParseWithOptions(WithReader(r))
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source.
// The special path "-" reads standard input.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("document: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("document: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger used while loading.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize limits the number of bytes read from the input source.
// Default: DefaultMaxFileSize
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size <= 0 {
			return &oaserrors.ConfigError{Option: "max-file-size", Value: size, Message: "must be greater than zero"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithSourceName overrides the SourcePath reported on the loaded document.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
