package models

// Event is a single message received from the device event stream.
//
// The payload shape is owned by the cloud service: Data holds the "data"
// field of the server-sent event exactly as it arrived and is never decoded
// or validated.
type Event struct {
	// Name is the value of the SSE "event" field.
	Name string

	// Data is the SSE payload. Multi-line payloads are joined with "\n".
	Data string
}
