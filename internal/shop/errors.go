package shop

import (
	"errors"
	"fmt"
)

// ValidationError is a rejected user input. It is always recoverable and
// nothing has been mutated when it is returned.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingFields      = &ValidationError{Code: "missing_fields", Message: "please fill in every field"}
	ErrPasswordMismatch   = &ValidationError{Code: "password_mismatch", Message: "passwords do not match"}
	ErrPasswordTooShort   = &ValidationError{Code: "password_too_short", Message: fmt.Sprintf("password must be at least %d characters", PasswordMinLength)}
	ErrInvalidEmail       = &ValidationError{Code: "invalid_email", Message: "email address is not valid"}
	ErrEmailTaken         = &ValidationError{Code: "email_taken", Message: "this email is already registered"}
	ErrMissingCredentials = &ValidationError{Code: "missing_credentials", Message: "please enter email and password"}
	ErrInvalidCredentials = &ValidationError{Code: "invalid_credentials", Message: "email or password is incorrect"}
	ErrInvalidAvatar      = &ValidationError{Code: "invalid_avatar", Message: "avatar must be a jpeg, png, gif or webp image up to 2 MiB"}
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrDirectoryUnavailable means the user directory could not be read, so
	// no credential or profile check could run. Nothing was changed.
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
)

// PersistenceError reports that a mutation was applied in memory but could not
// be written (or read back) under Key. It is a warning, not a failure of the operation.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsPersistence reports whether err only carries persistence warnings.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
