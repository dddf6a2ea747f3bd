package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrParse             = errors.New("parse error")
	ErrReference         = errors.New("reference error")
	ErrCircularReference = errors.New("circular reference")
	ErrEmptyDocument     = errors.New("empty document")
	ErrConfig            = errors.New("configuration error")
)

// describe joins head with each non-empty detail as "head: d1: d2".
func describe(head string, details ...string) string {
	var b strings.Builder
	b.WriteString(head)
	for _, d := range details {
		if d != "" {
			b.WriteString(": ")
			b.WriteString(d)
		}
	}
	return b.String()
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ParseError reports a document that could not be read, was not valid
// YAML or JSON, or whose root is not a mapping.
type ParseError struct {
	Path    string
	Line    int // 1-based; 0 when unknown
	Column  int // 1-based; 0 when unknown
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	head := "parse error"
	if e.Path != "" {
		head += " in " + e.Path
	}
	if e.Line > 0 {
		head += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			head += fmt.Sprintf(", column %d", e.Column)
		}
	}
	return describe(head, e.Message, causeText(e.Cause))
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ReferenceError reports a $ref that a strict lookup could not resolve.
// IsCircular marks refs that were rejected because they are being expanded.
type ReferenceError struct {
	Ref        string
	IsCircular bool
	Message    string
	Cause      error
}

func (e *ReferenceError) Error() string {
	head := "reference error"
	if e.IsCircular {
		head = "circular reference"
	}
	return describe(head, e.Ref, e.Message, causeText(e.Cause))
}

func (e *ReferenceError) Unwrap() error { return e.Cause }

// Is matches ErrReference, and ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || (e.IsCircular && target == ErrCircularReference)
}

// EmptyDocumentError reports a document with no paths, or whose paths
// declare no supported operation.
type EmptyDocumentError struct {
	Source    string
	PathCount int // path entries inspected
	Message   string
}

func (e *EmptyDocumentError) Error() string {
	head := "empty document"
	if e.Source != "" {
		head += " " + e.Source
	}
	return describe(head, e.Message)
}

func (e *EmptyDocumentError) Is(target error) bool { return target == ErrEmptyDocument }

// ConfigError reports an invalid option value or a missing or conflicting
// input.
type ConfigError struct {
	Option  string
	Value   any // nil when no value applies
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	head := "configuration error"
	if e.Option != "" {
		head += " for " + e.Option
	}
	if e.Value != nil {
		head += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return describe(head, e.Message, causeText(e.Cause))
}

func (e *ConfigError) Unwrap() error { return e.Cause }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
