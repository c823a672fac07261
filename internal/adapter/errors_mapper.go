package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// cloudError is the error body returned by the cloud API, both for OAuth
// failures ({"error":"invalid_grant","error_description":"..."}) and for
// regular API failures ({"error":"...","info":"..."}).
type cloudError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Info             string `json:"info"`
}

// message returns the most descriptive text available in the error body.
func (e *cloudError) message() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if e.Error != "" {
		parts = append(parts, e.Error)
	}
	if e.ErrorDescription != "" {
		parts = append(parts, e.ErrorDescription)
	} else if e.Info != "" {
		parts = append(parts, e.Info)
	}
	return strings.Join(parts, ": ")
}

// mapHTTPError converts a non-2xx status into one of the package sentinels,
// wrapped together with the server-provided message. It returns nil for 2xx.
func mapHTTPError(statusCode int, body string) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(statusCode)
		}
		return fmt.Errorf("http %d: %s", statusCode, body)
	}
}
