// Package apperr classifies failures so the transport layer can map them
// to HTTP status codes without inspecting error text.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	CodeValidation   Code = "validation"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal"
)

// Error is a code-classified error. Message is safe to return to callers;
// Err carries the underlying cause for logs only.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and caller-visible message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message)
}

func NotFound(resource, id string) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

func Conflict(message string) *Error {
	return New(CodeConflict, message)
}

// CodeOf extracts the classification of err, defaulting to CodeInternal
// for unclassified errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-visible message of err. Unclassified errors
// yield a generic message so internal detail never reaches the caller.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return "Internal server error"
}
