package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-username", "alice",
				"-password", "secret",
				"-c", "/path/to/config.json",
				"-api-url", "https://cloud.example.com",
				"-client-id", "cli",
				"-client-secret", "cli-secret",
				"-request-timeout", "30s",
				"-token-duration", "1h",
				"-device-id", "0123456789abcdef",
				"-event-name", "temp",
				"-events-log", "/tmp/events.log",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "alice", cfg.Auth.Username)
				assert.Equal(t, "secret", cfg.Auth.Password)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "https://cloud.example.com", cfg.Adapter.APIURL)
				assert.Equal(t, "cli", cfg.Adapter.ClientID)
				assert.Equal(t, "cli-secret", cfg.Adapter.ClientSecret)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Hour, cfg.Adapter.TokenDuration)
				assert.Equal(t, "0123456789abcdef", cfg.Stream.DeviceID)
				assert.Equal(t, "temp", cfg.Stream.EventName)
				assert.Equal(t, "/tmp/events.log", cfg.Log.EventsFile)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "double dash form",
			args: []string{
				"--username=alice",
				"--device-id=abc",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "alice", cfg.Auth.Username)
				assert.Equal(t, "abc", cfg.Stream.DeviceID)
				assert.Empty(t, cfg.Auth.Password)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests parseFlags with malformed arguments
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown flag",
			args: []string{"-no-such-flag", "x"},
		},
		{
			name: "invalid duration",
			args: []string{"-request-timeout", "soon"},
		},
		{
			name: "missing value",
			args: []string{"-username"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

// TestParseFlags_HelpRequested verifies that -h is surfaced as flag.ErrHelp.
func TestParseFlags_HelpRequested(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	require.ErrorIs(t, err, flag.ErrHelp)
}

// TestParseFlags_KeyNamedAliases verifies that the key-named flags fill the
// same settings as their lowercase counterparts.
func TestParseFlags_KeyNamedAliases(t *testing.T) {
	cfg, err := parseFlags([]string{
		"--USERNAME=cli-u",
		"-PASSWORD", "cli-p",
		"-CONFIG", "/etc/listener.json",
		"-API_URL", "https://cloud.example.com",
		"-REQUEST_TIMEOUT", "15s",
		"-DEVICE_ID", "dev-1",
		"-EVENT_NAME", "temp",
		"-EVENTS_LOG", "/tmp/events.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "cli-u", cfg.Auth.Username)
	assert.Equal(t, "cli-p", cfg.Auth.Password)
	assert.Equal(t, "/etc/listener.json", cfg.JSONFilePath)
	assert.Equal(t, "https://cloud.example.com", cfg.Adapter.APIURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "dev-1", cfg.Stream.DeviceID)
	assert.Equal(t, "temp", cfg.Stream.EventName)
	assert.Equal(t, "/tmp/events.log", cfg.Log.EventsFile)
}
