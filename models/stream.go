package models

// AllDevices is the device identifier the cloud understands as "every device
// owned by the authenticated account".
const AllDevices = "mine"

// StreamRequest selects which event stream to open.
type StreamRequest struct {
	// DeviceID is the device whose events are streamed. [AllDevices] streams
	// the events of every device of the account.
	DeviceID string

	// EventName optionally restricts the stream to events whose name starts
	// with the given prefix. Empty means all events.
	EventName string
}
