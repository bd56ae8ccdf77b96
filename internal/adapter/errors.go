package adapter

import "errors"

// Sentinel errors mapped from the server's HTTP status codes. Match with
// [errors.Is]; the wrapped error text carries the server's JSON message.
var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrBadRequest   = errors.New("bad request")
)
