package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("username and password must both be set")
	ErrLoginOnServer      = errors.New("login on server failed")
	ErrEmptyAccessToken   = errors.New("server returned an empty access token")

	ErrOpenStream        = errors.New("failed to open event stream")
	ErrStreamClosed      = errors.New("event stream closed by server")
	ErrStreamInterrupted = errors.New("event stream interrupted")
	ErrHandleEvent       = errors.New("failed to handle event")
)
