package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned by the auth middleware when the incoming
	// request does not include an "Authorization" header, or the header cannot
	// be parsed as a bearer token.
	ErrNoTokenProvided = errors.New("not authorized, no token provided")

	// ErrTokenExpired is returned when the bearer token was valid once but
	// its expiry claim is in the past.
	ErrTokenExpired = errors.New("not authorized, token expired")

	// ErrInvalidToken is returned when the bearer token fails signature or
	// issuer validation, or is otherwise malformed.
	ErrInvalidToken = errors.New("not authorized, invalid token")

	// ErrUserNoLongerExists is returned when the token parses fine but the
	// account it was issued for has since been deleted.
	ErrUserNoLongerExists = errors.New("not authorized, user no longer exists")
)
