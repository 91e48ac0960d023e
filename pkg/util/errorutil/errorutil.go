package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// Error codes surfaced in the response envelope.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternal         = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewNotFound builds a 404 carrying the exact message given.
func NewNotFound(message string) error {
	return NewDomainError(CodeNotFound, message, http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fromFiberError(fiberErr)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewDomainError(CodeNotFound, "resource not found", http.StatusNotFound, nil)
	}
	return NewInternalError(err).(*DomainError)
}

func fromFiberError(err *fiber.Error) *DomainError {
	switch err.Code {
	case http.StatusNotFound:
		return NewDomainError(CodeNotFound, err.Message, err.Code, nil)
	case http.StatusUnauthorized:
		return NewDomainError(CodeUnauthorized, err.Message, err.Code, nil)
	case http.StatusForbidden:
		return NewDomainError(CodeForbidden, err.Message, err.Code, nil)
	}
	if err.Code >= 400 && err.Code < 500 {
		return NewDomainError(CodeValidationFailed, err.Message, err.Code, nil)
	}
	return NewInternalError(err).(*DomainError)
}
