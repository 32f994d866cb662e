// Package errors defines the application error taxonomy: each error carries the HTTP status,
// a stable business code and a Portuguese message for shop staff.
package errors

import (
	"net/http"

	"backoffice/internal/errors"
)

// AppError is an error the delivery layer can render without inspecting its cause.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, e.g. the offending field or the failing cascade step
}

// BaseError is the value form of AppError used for every predefined error.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is compares business codes, so a copy from WithDetails still matches its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying details. The receiver is never modified.
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// NewValidationError is ErrValidationFailed carrying the offending field.
func NewValidationError(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

// DatabaseExecuteError is a store failure that is neither a not-found nor a conflict.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Falha ao executar a operação na base de dados" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

// As is errors.As re-exported so callers of this package need a single import.
func As(err error, target any) bool {
	return errors.As(err, target)
}
