// Package store holds the persistence side of the device event logger: the
// append-only events log that receives every event read from the stream.
package store

import (
	"context"

	"github.com/MKhiriev/device-event-logger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EventStore is an append-only sink for device events.
type EventStore interface {
	// Append records evt as one entry. Entries are written in call order and
	// the event payload is stored as received.
	Append(ctx context.Context, evt models.Event) error

	// Close flushes and releases the underlying resources. Append must not be
	// called after Close.
	Close() error
}
