// Package apperr defines the error kinds every workflow operation can
// return. Callers classify failures with errors.Is against the exported
// sentinels:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
//
// The menu layer uses the kind to decide how to present a failure; no
// operation is retried and no partial work is rolled back.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — a referenced entity is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput — user-supplied value out of range or unparseable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState — entity is not in the state the operation requires.
	ErrInvalidState = errors.New("invalid state")

	// ErrStore — the underlying persistence operation failed.
	ErrStore = errors.New("store error")
)

// NotFound returns a NotFound-kind error with formatted context.
func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

// InvalidInput returns an InvalidInput-kind error with formatted context.
func InvalidInput(format string, args ...any) error {
	return wrap(ErrInvalidInput, format, args...)
}

// InvalidState returns an InvalidState-kind error with formatted context.
func InvalidState(format string, args ...any) error {
	return wrap(ErrInvalidState, format, args...)
}

// Store wraps a driver error as a Store-kind error. The driver error's
// message is preserved; its chain is not (the kind is the chain).
func Store(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
