package apperrors

import "errors"

// Common errors
var (
	// ErrConnectionFailed is returned when no database connection can be acquired.
	ErrConnectionFailed = errors.New("database connection failed")
	// ErrDatabase is the target every DatabaseError unwraps to.
	ErrDatabase = errors.New("database error")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student Errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// DatabaseError reports a failure raised by the data access layer after a
// connection was obtained: a rejected statement, a constraint violation or a
// broken result stream.
type DatabaseError struct {
	Err error
}

// NewDatabaseError wraps err as a DatabaseError. A nil err yields nil.
func NewDatabaseError(err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DatabaseError{Err: err}
}

// Error implements error interface
func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return ErrDatabase.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes both the driver error and ErrDatabase to errors.Is.
func (e *DatabaseError) Unwrap() []error {
	return []error{ErrDatabase, e.Err}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
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
