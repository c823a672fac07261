package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/device-event-logger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level string `json:"level"`
	Event string `json:"event"`
	Data  string `json:"data"`
	Time  string `json:"time"`
}

func readEntries(t *testing.T, path string) []entry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func TestFileEventStore_AppendKeepsOrderAndPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	s, err := NewFileEventStore(path)
	require.NoError(t, err)

	events := []models.Event{
		{Name: "e1", Data: `{"data":"1","ttl":60,"published_at":"2026-01-01T00:00:00.000Z","coreid":"abc"}`},
		{Name: "e2", Data: "plain text with \"quotes\""},
		{Name: "e3", Data: "multi\nline"},
	}
	for _, evt := range events {
		require.NoError(t, s.Append(context.Background(), evt))
	}
	require.NoError(t, s.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, len(events))
	for i, evt := range events {
		assert.Equal(t, "info", entries[i].Level)
		assert.Equal(t, evt.Name, entries[i].Event)
		assert.Equal(t, evt.Data, entries[i].Data)
		assert.NotEmpty(t, entries[i].Time)
	}
}

func TestFileEventStore_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")

	for _, name := range []string{"first", "second"} {
		s, err := NewFileEventStore(path)
		require.NoError(t, err)
		require.NoError(t, s.Append(context.Background(), models.Event{Name: name, Data: "x"}))
		require.NoError(t, s.Close())
	}

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Event)
	assert.Equal(t, "second", entries[1].Event)
}

func TestFileEventStore_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "events.log")

	s, err := NewFileEventStore(path)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "create file event store")
}

func TestFileEventStore_AppendAfterClose(t *testing.T) {
	var buf bytes.Buffer
	s := newEventStore(&buf, nil)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	err := s.Append(context.Background(), models.Event{Name: "late", Data: "x"})
	assert.ErrorIs(t, err, ErrEventStoreClosed)
	assert.Empty(t, buf.String())
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestFileEventStore_AppendReturnsWriteError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	w := &failingWriter{err: diskFull}
	s := newEventStore(w, nil)

	err := s.Append(context.Background(), models.Event{Name: "temp", Data: "21.5"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAppendEvent)
	assert.ErrorIs(t, err, diskFull)

	// A later successful write is not reported as failed.
	w.err = nil
	var buf bytes.Buffer
	s.out.w = &buf
	require.NoError(t, s.Append(context.Background(), models.Event{Name: "temp", Data: "21.6"}))
	assert.Contains(t, buf.String(), `"data":"21.6"`)
}

func TestFileEventStore_AppendAfterFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	s := newEventStore(file, file)

	require.NoError(t, file.Close())

	err = s.Append(context.Background(), models.Event{Name: "temp", Data: "x"})
	assert.ErrorIs(t, err, ErrAppendEvent)
	assert.ErrorIs(t, err, os.ErrClosed)
}
