package apperrors

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrBadRequest         = errors.New("bad request")
)

// Domain-specific conflicts. Each wraps ErrConflict.
var (
	ErrUsernameTaken = NewConflictError("Please use a different username.")
	ErrEmailTaken    = NewConflictError("Please use a different email address.")
	ErrCourseExists  = NewConflictError("A course with this code already exists")
)

func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

func NewInvalidCredentialsError(message string) error {
	return &CustomError{Err: ErrInvalidCredentials, Message: message}
}

func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// Is reports whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError carries a user-facing message on top of a sentinel.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
