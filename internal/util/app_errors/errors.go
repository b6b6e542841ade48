package app_errors

import "errors"

// Error classes. Services wrap them with New so callers can branch with
// errors.Is while Error() stays the short user-facing message.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
	ErrSchemaMismatch   = errors.New("schema mismatch")
)

type AppError struct {
	class   error
	message string
}

func New(class error, message string) *AppError {
	return &AppError{class: class, message: message}
}

func (e *AppError) Error() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.class
}

func IsClassified(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
