// Package service holds the use-case layer between handlers and the pagination core.
// Kept intentionally lean: only orchestration, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/pagewindow/pkg/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrNotAcceptable means no representation matches the client's Accept header (maps to HTTP 406).
var ErrNotAcceptable = errors.New("not acceptable")

// FieldError describes a single invalid field in a client request or setting.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInput builds an aggregated validation error if any field errors are present.
func NewInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// WindowService turns raw request metadata into a normalized page window.
type WindowService interface {
	Describe(ctx context.Context, q pagination.Values, h pagination.HeaderFunc) pagination.Descriptor
	Settings() Settings
	Ping(ctx context.Context) error
}

// WindowObserver receives every descriptor the service produces; metrics hook in here.
type WindowObserver interface {
	ObserveWindow(d pagination.Descriptor)
}
