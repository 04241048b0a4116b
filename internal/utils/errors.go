package utils

import (
	"errors"
	"net/http"
)

// AppError is an error that carries the HTTP status it should be reported with.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func NewMethodNotAllowedError(message string) *AppError {
	return &AppError{StatusCode: http.StatusMethodNotAllowed, Message: message}
}

func NewRequestTooLargeError(message string) *AppError {
	return &AppError{StatusCode: http.StatusRequestEntityTooLarge, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}

func NewServiceUnavailableError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusServiceUnavailable, Message: message, Err: err}
}

// StatusAndMessage resolves the status and client-facing message for err.
// Errors that are not an *AppError are reported as a generic 500.
func StatusAndMessage(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
