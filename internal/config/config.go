// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the device
// event logger. It is populated by merging values from command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - env: environment variable name for scalar fields (caarlos0/env).
//     Nested structs carry no prefix so the variable names stay short
//     (USERNAME, PASSWORD, DEVICE_ID, ...).
type StructuredConfig struct {
	// Auth holds the device cloud account credentials.
	Auth Auth

	// Adapter holds the settings of the cloud API transport.
	Adapter Adapter

	// Stream selects the device event stream to subscribe to.
	Stream Stream

	// Log holds the location of the events log file.
	Log Log

	// JSONFilePath is the path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	// When empty, config.json next to the executable is used if it exists.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the account credentials used for the login request.
// Both fields are required.
type Auth struct {
	// Env: USERNAME
	Username string `env:"USERNAME"`

	// Env: PASSWORD
	Password string `env:"PASSWORD"`
}

// Adapter holds the configuration of the device cloud HTTP transport.
type Adapter struct {
	// APIURL is the base URL of the cloud API (e.g. "https://api.particle.io").
	// Env: API_URL
	APIURL string `env:"API_URL"`

	// ClientID and ClientSecret are the OAuth client credentials sent with
	// the login request as HTTP basic auth.
	// Env: CLIENT_ID, CLIENT_SECRET
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// RequestTimeout bounds the login request. It does not apply to the
	// event stream, which stays open for the lifetime of the process.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenDuration is the access token lifetime requested at login.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Stream selects which event stream is opened after login.
type Stream struct {
	// DeviceID is the device whose events are logged; "mine" means every
	// device of the account.
	// Env: DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// EventName optionally filters events by name prefix.
	// Env: EVENT_NAME
	EventName string `env:"EVENT_NAME"`
}

// Log holds the location of the append-only events log.
type Log struct {
	// Env: EVENTS_LOG
	EventsFile string `env:"EVENTS_LOG"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win):
//  1. Command-line flags (os.Args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or a required setting is missing.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Get returns the value of a setting by the key name it is known under in
// the environment (e.g. "USERNAME", "DEVICE_ID"). The second result is false
// for unknown keys and for settings that are not set.
func (cfg *StructuredConfig) Get(key string) (string, bool) {
	var value string

	switch key {
	case "USERNAME":
		value = cfg.Auth.Username
	case "PASSWORD":
		value = cfg.Auth.Password
	case "CONFIG":
		value = cfg.JSONFilePath
	case "API_URL":
		value = cfg.Adapter.APIURL
	case "CLIENT_ID":
		value = cfg.Adapter.ClientID
	case "CLIENT_SECRET":
		value = cfg.Adapter.ClientSecret
	case "REQUEST_TIMEOUT":
		if cfg.Adapter.RequestTimeout != 0 {
			value = cfg.Adapter.RequestTimeout.String()
		}
	case "TOKEN_DURATION":
		if cfg.Adapter.TokenDuration != 0 {
			value = cfg.Adapter.TokenDuration.String()
		}
	case "DEVICE_ID":
		value = cfg.Stream.DeviceID
	case "EVENT_NAME":
		value = cfg.Stream.EventName
	case "EVENTS_LOG":
		value = cfg.Log.EventsFile
	default:
		return "", false
	}

	return value, value != ""
}
