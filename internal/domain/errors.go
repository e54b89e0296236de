package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUsage         = errors.New("usage error")
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrMalformedLine = errors.New("malformed line")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage         ErrorKind = "usage"
	KindNotFound      ErrorKind = "not_found"
	KindIO            ErrorKind = "io"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindMalformedLine ErrorKind = "malformed_line"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line int    // Optional: 1-based input line number
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// The outermost OpError decides.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
