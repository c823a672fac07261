package adapter

import (
	"bufio"
	"io"
	"strings"

	"github.com/MKhiriev/device-event-logger/models"
)

// sseStream reads server-sent events from an HTTP response body.
//
// Only the "event" and "data" fields are interpreted. Comment lines (the
// cloud sends ":ok" as keep-alive), "id" and "retry" are skipped. An event
// is dispatched on the blank line that ends it, and only if it carried at
// least one data line.
type sseStream struct {
	body   io.ReadCloser
	reader *bufio.Reader
}

func newEventStream(body io.ReadCloser) *sseStream {
	return &sseStream{
		body:   body,
		reader: bufio.NewReader(body),
	}
}

// Next implements [EventStream]. A partially received event at the end of
// the stream is dropped and io.EOF is returned.
func (s *sseStream) Next() (models.Event, error) {
	var (
		name    string
		data    []string
		hasData bool
	)

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return models.Event{}, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line == "" {
			if hasData {
				return models.Event{Name: name, Data: strings.Join(data, "\n")}, nil
			}
			name = ""
			continue
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			name = value
		case "data":
			data = append(data, value)
			hasData = true
		}
	}
}

// Close implements [EventStream].
func (s *sseStream) Close() error {
	return s.body.Close()
}
