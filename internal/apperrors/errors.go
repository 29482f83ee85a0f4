package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid session credential.
var ErrUnauthorized = errors.New("authentication required")

// ErrForbidden indicates a valid session whose role does not permit the action.
var ErrForbidden = errors.New("insufficient role for this action")

// ErrAccessDenied indicates the email failed the pre-authentication allowlist check.
// Distinct from ErrUnauthorized: the address may not even attempt to log in.
var ErrAccessDenied = errors.New("email is not authorized to access the system")

// ErrProfileMissing indicates an authenticated identity with no directory entry.
var ErrProfileMissing = errors.New("no profile exists for this account")

// ErrRoleMissing indicates a directory entry whose role has not been assigned yet.
var ErrRoleMissing = errors.New("profile exists but has no role assigned")

// ErrStateConflict indicates an operation that is invalid for the current
// lifecycle state, e.g. editing a published day or initializing a day twice.
var ErrStateConflict = errors.New("operation conflicts with current state")

// ErrInsufficientStock indicates a sale that would drive inventory negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token has expired")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError constructs an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
