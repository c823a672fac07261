package utils

import (
	"fmt"

	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/go-resty/resty/v2"
)

// defaultUserAgent identifies the listener to the device cloud.
const defaultUserAgent = "device-event-logger"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://api.particle.io/v1/devices")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose internal resty diagnostics are
// routed to log. A nil log discards them.
//
// The client has no global timeout: it is shared by short requests (login),
// which are bounded through their context, and by the long-lived event
// stream, which must stay open for the lifetime of the process.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetHeader("User-Agent", defaultUserAgent).
		SetLogger(&restyLogger{log: log})

	return &HTTPClient{Client: client}
}

// restyLogger adapts [logger.Logger] to the resty.Logger interface.
type restyLogger struct {
	log *logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
