package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrDocumentOpen  = errors.New("document open error")
	ErrPageRender    = errors.New("page render error")
	ErrEncoding      = errors.New("encoding error")
	ErrEmptyInput    = errors.New("empty input")
	ErrWrite         = errors.New("write error")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindDocumentOpen  ErrorKind = "document_open"
	KindPageRender    ErrorKind = "page_render"
	KindEncoding      ErrorKind = "encoding"
	KindEmptyInput    ErrorKind = "empty_input"
	KindWrite         ErrorKind = "write"
	KindInvalidConfig ErrorKind = "invalid_config"
)

var kindSentinels = map[ErrorKind]error{
	KindDocumentOpen:  ErrDocumentOpen,
	KindPageRender:    ErrPageRender,
	KindEncoding:      ErrEncoding,
	KindEmptyInput:    ErrEmptyInput,
	KindWrite:         ErrWrite,
	KindInvalidConfig: ErrInvalidConfig,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Doc  string // Optional: document name
	Page int    // Optional: 1-based page number
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Doc != "" {
		base += fmt.Sprintf(" (doc=%s)", e.Doc)
	}
	if e.Page > 0 {
		base += fmt.Sprintf(" (page=%d)", e.Page)
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

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
