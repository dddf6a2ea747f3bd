package aggregator

import (
	"fmt"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/options"
)

// Option is a function that configures an aggregation
type Option func(*aggregateConfig) error

type aggregateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	doc      *document.Document

	logger document.Logger
}

// Aggregate groups the operations of doc into services.
func Aggregate(doc *document.Document) ([]Service, error) {
	return AggregateWithOptions(WithDocument(doc))
}

// AggregateWithOptions groups operations using functional options.
//
// Example:
//
//	services, err := aggregator.AggregateWithOptions(
//	    aggregator.WithFilePath("openapi.yaml"),
//	)
func AggregateWithOptions(opts ...Option) ([]Service, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("aggregator: invalid options: %w", err)
	}
	logger := document.OrNop(cfg.logger)

	doc := cfg.doc
	if cfg.filePath != nil {
		doc, err = document.ParseWithOptions(
			document.WithFilePath(*cfg.filePath),
			document.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("aggregator: %w", err)
		}
	}

	a := &aggregator{doc: doc, logger: logger}
	return a.run()
}

func applyOptions(opts ...Option) (*aggregateConfig, error) {
	cfg := &aggregateConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithDocument)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.doc != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath loads the document from a file. "-" reads standard input.
func WithFilePath(path string) Option {
	return func(cfg *aggregateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument uses an already loaded document.
func WithDocument(doc *document.Document) Option {
	return func(cfg *aggregateConfig) error {
		if doc == nil {
			return fmt.Errorf("aggregator: document cannot be nil")
		}
		cfg.doc = doc
		return nil
	}
}

// WithLogger sets the logger for diagnostics.
// Default: document.NopLogger
func WithLogger(l document.Logger) Option {
	return func(cfg *aggregateConfig) error {
		cfg.logger = l
		return nil
	}
}
