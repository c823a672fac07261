package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args. Unset flags stay zero
// so lower-precedence sources can fill them.
//
// Flags:
//
//	-username cloud account username
//	-password cloud account password
//	-c/-config json file path with configs
//	-api-url cloud API base URL
//	-client-id OAuth client id
//	-client-secret OAuth client secret
//	-request-timeout login request timeout (e.g., "30s", "1m")
//	-token-duration requested access token lifetime (e.g., "24h")
//	-device-id device whose events are logged ("mine" for all devices)
//	-event-name event name prefix filter
//	-events-log events log file path
//
// Every setting is also accepted under its key name (-USERNAME, -PASSWORD,
// -CONFIG, -API_URL, -CLIENT_ID, -CLIENT_SECRET, -REQUEST_TIMEOUT,
// -TOKEN_DURATION, -DEVICE_ID, -EVENT_NAME, -EVENTS_LOG), so the names used
// in the environment and in config.json work on the command line as well.
func parseFlags(args []string) (*StructuredConfig, error) {
	var username, password string
	var jsonConfigPath string
	var apiURL, clientID, clientSecret string
	var requestTimeout, tokenDuration time.Duration
	var deviceID, eventName string
	var eventsFile string

	fs := flag.NewFlagSet("listener", flag.ContinueOnError)
	fs.StringVar(&username, "username", "", "Cloud account username")
	fs.StringVar(&password, "password", "", "Cloud account password")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiURL, "api-url", "", "Cloud API base URL")
	fs.StringVar(&clientID, "client-id", "", "OAuth client id")
	fs.StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Login request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Requested access token lifetime (e.g., 24h)")
	fs.StringVar(&deviceID, "device-id", "", "Device ID (\"mine\" for every device of the account)")
	fs.StringVar(&eventName, "event-name", "", "Event name prefix filter")
	fs.StringVar(&eventsFile, "events-log", "", "Events log file path")

	fs.StringVar(&username, "USERNAME", "", "Alias of -username")
	fs.StringVar(&password, "PASSWORD", "", "Alias of -password")
	fs.StringVar(&jsonConfigPath, "CONFIG", "", "Alias of -config")
	fs.StringVar(&apiURL, "API_URL", "", "Alias of -api-url")
	fs.StringVar(&clientID, "CLIENT_ID", "", "Alias of -client-id")
	fs.StringVar(&clientSecret, "CLIENT_SECRET", "", "Alias of -client-secret")
	fs.DurationVar(&requestTimeout, "REQUEST_TIMEOUT", 0, "Alias of -request-timeout")
	fs.DurationVar(&tokenDuration, "TOKEN_DURATION", 0, "Alias of -token-duration")
	fs.StringVar(&deviceID, "DEVICE_ID", "", "Alias of -device-id")
	fs.StringVar(&eventName, "EVENT_NAME", "", "Alias of -event-name")
	fs.StringVar(&eventsFile, "EVENTS_LOG", "", "Alias of -events-log")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			Username: username,
			Password: password,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			ClientID:       clientID,
			ClientSecret:   clientSecret,
			RequestTimeout: requestTimeout,
			TokenDuration:  tokenDuration,
		},
		Stream: Stream{
			DeviceID:  deviceID,
			EventName: eventName,
		},
		Log: Log{
			EventsFile: eventsFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
