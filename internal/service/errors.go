package service

import "errors"

var (
	// ErrInvalidDataProvided signals a request body or query that fails
	// validation before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Login failures are deliberately indistinguishable so the
	// endpoint cannot be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotOwner signals that the record exists but belongs to a
	// different user than the caller.
	ErrNotOwner = errors.New("not authorized to access this expense")

	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
