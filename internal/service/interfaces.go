// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the two stages of the listener pipeline:
// authentication against the device cloud and the event subscription that
// feeds every received event to a handler.
package service

import (
	"context"

	"github.com/MKhiriev/device-event-logger/models"
)

// EventHandler is invoked once per received event, in arrival order.
// Returning an error stops the subscription.
type EventHandler func(ctx context.Context, evt models.Event) error

// AuthService obtains the session used by the subscription.
type AuthService interface {
	// Authenticate issues a single login request with creds and returns the
	// resulting session. It never retries. Returns an error wrapping
	// [ErrLoginOnServer] if the cloud rejects the login or cannot be
	// reached.
	Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error)
}

// SubscriptionService streams device events to a handler.
type SubscriptionService interface {
	// Subscribe opens the event stream selected by req using exactly the
	// token of session, then calls handle for every event until the stream
	// ends, ctx is cancelled or handle fails.
	//
	// If the stream cannot be opened the error wraps [ErrOpenStream] and
	// handle is never called. A stream ended by the server yields
	// [ErrStreamClosed]; cancellation yields ctx.Err(). There is no
	// reconnect.
	Subscribe(ctx context.Context, session models.Session, req models.StreamRequest, handle EventHandler) error
}
