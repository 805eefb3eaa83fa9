package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"yfmcp/internal/provider"
)

// ErrorKind classifies a failed Result. The zero value means success.
type ErrorKind string

const (
	KindUnknownOperation ErrorKind = "unknown_operation"
	KindInvalidArgument  ErrorKind = "invalid_argument"
	KindValidation       ErrorKind = "validation"
	KindNotFound         ErrorKind = "not_found"
	KindEmpty            ErrorKind = "empty"
	KindProvider         ErrorKind = "provider"
)

// Result is the outcome of an operation: either a formatted payload or an
// error message, told apart by Kind.
type Result struct {
	// Text is the payload on success and the error message on failure.
	Text string
	// Kind is empty on success.
	Kind ErrorKind
	// Groups holds one JSON document per industry for the grouped
	// top-lists. Text is the JSON array of the same documents.
	Groups []string
}

// IsError reports whether r is a failure.
func (r Result) IsError() bool { return r.Kind != "" }

func success(text string) Result { return Result{Text: text} }

// Error is an operation failure detected by the router itself.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// failure turns err into a failed Result.
func failure(err error) Result {
	var te *Error
	switch {
	case errors.As(err, &te):
		return Result{Kind: te.Kind, Text: err.Error()}
	case errors.Is(err, provider.ErrNotFound):
		return Result{Kind: KindNotFound, Text: err.Error()}
	default:
		return Result{Kind: KindProvider, Text: err.Error()}
	}
}

// encodeJSON renders v without HTML escaping and without a trailing newline.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", errors.Wrap(err, "encoding result")
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
