package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures that cross the handler boundary.
type ErrorKind string

const (
	KindValidation       ErrorKind = "VALIDATION_ERROR"
	KindAuth             ErrorKind = "UNAUTHORIZED"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindConflict         ErrorKind = "CONFLICT"
	KindMethodNotAllowed ErrorKind = "METHOD_NOT_ALLOWED"
)

// statusByKind maps error kinds to HTTP status codes. Conflicts are reported
// as 400, which is what existing clients expect.
var statusByKind = map[ErrorKind]int{
	KindValidation:       http.StatusBadRequest,
	KindAuth:             http.StatusUnauthorized,
	KindNotFound:         http.StatusNotFound,
	KindConflict:         http.StatusBadRequest,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
}

// AppError is an expected, client-facing failure.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

// Status returns the HTTP status for the error kind.
func (e *AppError) Status() int {
	if s, ok := statusByKind[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Is matches any AppError of the same kind, so errors.Is(err, ErrValidation) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels for errors.Is checks.
var (
	ErrValidation       = &AppError{Kind: KindValidation}
	ErrAuth             = &AppError{Kind: KindAuth}
	ErrNotFound         = &AppError{Kind: KindNotFound}
	ErrConflict         = &AppError{Kind: KindConflict}
	ErrMethodNotAllowed = &AppError{Kind: KindMethodNotAllowed}
)

func NewValidationError(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewMethodNotAllowedError() *AppError {
	return &AppError{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
}

// AsAppError extracts an AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
