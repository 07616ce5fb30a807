// Package apperr defines the error taxonomy shared by services and
// handlers. Services return (or wrap) these sentinels; handlers map
// them to HTTP statuses without inspecting error strings.
package apperr

import "errors"

var (
	// ErrInvalidCredential means the password check failed.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrInvalidInput means a request field failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnverified means the account exists but has not consumed its
	// verification token.
	ErrUnverified = errors.New("account not verified")
	// ErrBlocked means an admin has blocked the account.
	ErrBlocked = errors.New("account blocked")
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrForeignKey means a referenced user id does not exist.
	ErrForeignKey = errors.New("referenced user does not exist")
	// ErrInvalidToken means a verification token is unknown or spent.
	ErrInvalidToken = errors.New("invalid verification token")
	// ErrUnauthorized means the session token is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the token is valid but the role is insufficient.
	ErrForbidden = errors.New("forbidden")
)
