// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the device
// cloud API.
//
// The primary abstraction is [CloudAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPCloudAdapter]) that performs the OAuth password
// login and opens the server-sent event stream of a device.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/device-event-logger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CloudAdapter defines communication with the device cloud.
type CloudAdapter interface {
	// Login exchanges the account credentials for an access token. It issues
	// exactly one request and never retries. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// OpenEventStream opens the live event stream selected by req, authorized
	// with session's access token. The returned stream stays open until it is
	// closed, ctx is cancelled or the server ends it. Returns an error if the
	// connection cannot be established or the server rejects it.
	OpenEventStream(ctx context.Context, session models.Session, req models.StreamRequest) (EventStream, error)
}

// EventStream is an open stream of device events.
type EventStream interface {
	// Next blocks until the next event arrives. It returns io.EOF when the
	// server ends the stream.
	Next() (models.Event, error)

	// Close releases the underlying connection.
	Close() error
}
