// Package errs defines the service error taxonomy and its HTTP mapping.
//
// Every validation or persistence failure surfaces as an *Error carrying a
// machine-readable code, so handlers can translate it into a consistent
// JSON error response without inspecting message strings.
package errs

import (
	"errors"
	"net/http"
)

// Code identifies the category of a service error.
type Code string

const (
	CodeInvalidField      Code = "INVALID_FIELD"
	CodeDuplicateEntity   Code = "DUPLICATE_ENTITY"
	CodeDuplicateRelation Code = "DUPLICATE_RELATION"
	CodeMissingReference  Code = "MISSING_REFERENCE"
	CodeNotFound          Code = "NOT_FOUND"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeInternal          Code = "INTERNAL"
)

// Error is the error type returned by the services layer. It is designed
// to be serialized directly to JSON.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidField reports malformed or missing input.
func InvalidField(message string) *Error {
	return &Error{Code: CodeInvalidField, Message: message}
}

// DuplicateEntity reports a unique-key collision (username, email, invite code).
func DuplicateEntity(message string) *Error {
	return &Error{Code: CodeDuplicateEntity, Message: message}
}

// DuplicateRelation reports that a relation pair already exists.
func DuplicateRelation(message string) *Error {
	return &Error{Code: CodeDuplicateRelation, Message: message}
}

// MissingReference reports that a referenced entity does not exist.
func MissingReference(message string) *Error {
	return &Error{Code: CodeMissingReference, Message: message}
}

// NotFound reports that the target of a read, update or delete is absent.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Internal wraps an unexpected persistence-layer failure. The underlying
// cause is logged by the caller, never sent to the client.
func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Message: message}
}

// HTTPStatus maps an error to the status code sent to the client.
// Unknown error types map to 500.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeInvalidField:
		return http.StatusBadRequest
	case CodeDuplicateEntity, CodeDuplicateRelation:
		return http.StatusConflict
	case CodeMissingReference, CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
