package service

import (
	"errors"
	"fmt"
)

// Service errors.
var (
	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("antigone: client is closed")

	// ErrValidation indicates a request parameter is out of range or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the requested line or word does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a rejected request parameter.
type ValidationError struct {
	Message string
}

// Error returns the message.
func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError describes a missing line or word.
type NotFoundError struct {
	Message string
}

// Error returns the message.
func (e *NotFoundError) Error() string { return e.Message }

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
