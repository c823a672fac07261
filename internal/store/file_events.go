// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/models"
)

// fileEventStore appends events to a flat log file, one JSON line per event:
//
//	{"level":"info","event":"temp","data":"{\"data\":\"21.5\",...}","time":"..."}
//
// The "data" field holds the payload string exactly as it came off the
// stream. The file is opened in append mode, so restarts never truncate it.
type fileEventStore struct {
	log    *logger.Logger
	out    *errRecorder
	closer io.Closer

	mu     sync.Mutex
	closed bool
}

// NewFileEventStore opens (or creates) the events log at path.
func NewFileEventStore(path string) (EventStore, error) {
	file, err := logger.OpenAppendFile(path)
	if err != nil {
		return nil, fmt.Errorf("create file event store: %w", err)
	}

	return newEventStore(file, file), nil
}

func newEventStore(w io.Writer, closer io.Closer) *fileEventStore {
	out := &errRecorder{w: w}
	return &fileEventStore{
		log:    logger.NewEntryLogger(out),
		out:    out,
		closer: closer,
	}
}

// Append implements [EventStore]. A failed write of the entry is returned.
func (s *fileEventStore) Append(_ context.Context, evt models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrEventStoreClosed
	}

	s.out.reset()
	s.log.Info().
		Str("event", evt.Name).
		Str("data", evt.Data).
		Send()

	if err := s.out.err; err != nil {
		return fmt.Errorf("%w: %w", ErrAppendEvent, err)
	}
	return nil
}

// Close implements [EventStore]. It is safe to call more than once.
func (s *fileEventStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// errRecorder passes writes through to w and keeps the last write error,
// which zerolog would otherwise only report to its global error handler.
type errRecorder struct {
	w   io.Writer
	err error
}

func (r *errRecorder) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		r.err = err
	}
	return n, err
}

func (r *errRecorder) reset() {
	r.err = nil
}
