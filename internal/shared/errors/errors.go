// Package errors provides application-level error types and utilities.
// It defines the dispatcher's error taxonomy: not found, invalid transition,
// already assigned, conflict, forbidden, invalid argument and invalid state.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeAlreadyAssigned   ErrorType = "already_assigned"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInvalidArgument   ErrorType = "invalid_argument"
	ErrorTypeInvalidState      ErrorType = "invalid_state"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeInternal          ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewInvalidTransitionError creates an error for a status transition the
// lifecycle table does not permit. It names both the current and the
// attempted status.
func NewInvalidTransitionError(current, attempted string) *AppError {
	return newAppError(ErrorTypeInvalidTransition, http.StatusConflict,
		fmt.Sprintf("cannot transition from %s to %s", current, attempted))
}

// NewAlreadyAssignedError creates an error for a claim that lost the race
// on a state read: the request already has a different assignee.
func NewAlreadyAssignedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAlreadyAssigned, http.StatusConflict, message, details...)
}

// NewConflictError creates an error for a versioned write rejected by the
// store because the stored version moved underneath the caller.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidArgument, http.StatusBadRequest, message, details...)
}

// NewInvalidStateError creates an error for an operation not permitted in
// the request's current lifecycle state.
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, http.StatusConflict, message, details...)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return isType(err, ErrorTypeInvalidTransition)
}

// IsAlreadyAssignedError checks if the error is an already assigned error
func IsAlreadyAssignedError(err error) bool {
	return isType(err, ErrorTypeAlreadyAssigned)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsInvalidArgumentError checks if the error is an invalid argument error
func IsInvalidArgumentError(err error) bool {
	return isType(err, ErrorTypeInvalidArgument)
}

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool {
	return isType(err, ErrorTypeInvalidState)
}

// IsClaimLostError reports whether the error is either outcome of losing a
// claim race: AlreadyAssigned (stale state read) or Conflict (version
// mismatch at write time). Callers treat both the same way.
func IsClaimLostError(err error) bool {
	return IsAlreadyAssignedError(err) || IsConflictError(err)
}
