package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

var (
	ErrNotFound          = &ErrorWithStatusCode{Message: "Not found", StatusCode: http.StatusNotFound}
	ErrDuplicateIdentity = errors.New("admin with this username already exists")
	ErrNoToken           = &ErrorWithStatusCode{Message: "Access denied. Token required.", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken      = &ErrorWithStatusCode{Message: "Invalid token. Access forbidden.", StatusCode: http.StatusForbidden}
	ErrInvalidCreds      = &ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	ErrMisconfigured     = &ErrorWithStatusCode{Message: "Server is misconfigured", StatusCode: http.StatusInternalServerError}
)

// ValidationError is a user-correctable 400 naming the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func InvalidField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is invalid", field)}
}

// PersistenceError wraps a storage failure. Its detail is for logs only.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// StatusCode maps an error onto the http status the handler should answer with.
func StatusCode(err error) int {
	var v *ValidationError
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
