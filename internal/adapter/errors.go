package adapter

import "errors"

// Sentinel errors returned by [CloudAdapter] implementations. HTTP responses
// are mapped onto them by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedLoginResponse is returned when a 2xx login response cannot
	// be decoded.
	ErrMalformedLoginResponse = errors.New("malformed login response")
)
