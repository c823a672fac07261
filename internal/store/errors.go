package store

import "errors"

var (
	// ErrEventStoreClosed is returned by Append after the store has been closed.
	ErrEventStoreClosed = errors.New("event store is closed")

	// ErrAppendEvent wraps the write error of an entry that could not be
	// stored.
	ErrAppendEvent = errors.New("failed to append event")
)
