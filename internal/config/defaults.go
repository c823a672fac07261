package config

import "time"

// Default values applied to every setting the other sources leave empty.
const (
	DefaultAPIURL         = "https://api.particle.io"
	DefaultClientID       = "particle"
	DefaultClientSecret   = "particle"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenDuration  = 90 * 24 * time.Hour
	DefaultDeviceID       = "mine"
	DefaultEventsFile     = "events.log"

	// DefaultJSONFileName is looked up next to the executable when no
	// config file is given explicitly.
	DefaultJSONFileName = "config.json"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			ClientID:       DefaultClientID,
			ClientSecret:   DefaultClientSecret,
			RequestTimeout: DefaultRequestTimeout,
			TokenDuration:  DefaultTokenDuration,
		},
		Stream: Stream{
			DeviceID: DefaultDeviceID,
		},
		Log: Log{
			EventsFile: DefaultEventsFile,
		},
	}
}
