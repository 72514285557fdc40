// Package guarderrors provides structured error types for oasguard.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - NotFoundError: The contract document does not exist at the given path
//   - SyntaxError: The contract document could not be parsed as YAML
//   - ConfigError: Invalid configuration or input options
//
// Loader errors are terminal: when one is returned the conformance checks
// never run and the process must exit with failure.
//
// # Usage with errors.Is
//
//	doc, err := loader.Load("api/openapi.yaml")
//	if err != nil {
//	    if errors.Is(err, guarderrors.ErrNotFound) {
//	        // Report the missing file, not a parse diagnostic
//	    }
//	}
package guarderrors

import "errors"

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotFound indicates the contract document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrSyntax indicates the contract document could not be parsed.
	ErrSyntax = errors.New("syntax error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// NotFoundError represents a missing contract document.
type NotFoundError struct {
	// Path is the file path that was not found
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := "document not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SyntaxError represents a failure to parse the contract document as YAML.
type SyntaxError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure, carrying the parser diagnostic
	Message string
	// Cause is the underlying parser error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "syntax error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the option name that was invalid
	Option string
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += ": " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ConfigError has no underlying cause.
func (e *ConfigError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewNotFoundError creates a NotFoundError for the given path.
func NewNotFoundError(path string, cause error) *NotFoundError {
	return &NotFoundError{Path: path, Cause: cause}
}

// NewSyntaxError creates a SyntaxError carrying the parser diagnostic.
func NewSyntaxError(path string, cause error) *SyntaxError {
	var msg string
	if cause != nil {
		msg = cause.Error()
	}
	return &SyntaxError{Path: path, Message: msg, Cause: cause}
}
