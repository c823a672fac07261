package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadStructuredConfig_Precedence verifies that for a key supplied by
// several sources the command line wins, then the environment, then the
// config file, then the default.
func TestLoadStructuredConfig_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      string
		file     string
		expected string
	}{
		{name: "all sources", flag: "from-flag", env: "from-env", file: "from-file", expected: "from-flag"},
		{name: "env over file", env: "from-env", file: "from-file", expected: "from-env"},
		{name: "file over default", file: "from-file", expected: "from-file"},
		{name: "default only", expected: DefaultDeviceID},
		{name: "flag over default", flag: "from-flag", expected: "from-flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"USERNAME": "alice", "PASSWORD": "secret"}
			if tt.env != "" {
				env["DEVICE_ID"] = tt.env
			}
			setEnvVars(t, env)

			payload := StructuredJSONConfig{}
			payload.Stream.DeviceID = tt.file
			path := writeTempJSONConfig(t, payload)

			args := []string{"-c", path}
			if tt.flag != "" {
				args = append(args, "-device-id", tt.flag)
			}

			cfg, err := loadStructuredConfig(args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Stream.DeviceID)

			value, ok := cfg.Get("DEVICE_ID")
			assert.True(t, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

// TestLoadStructuredConfig_CredentialsFromFile verifies that credentials may
// come from the config file alone.
func TestLoadStructuredConfig_CredentialsFromFile(t *testing.T) {
	clearEnvVars(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth":{"username":"u","password":"p"}}`), 0o600))
	t.Setenv("CONFIG", path)

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.Auth.Username)
	assert.Equal(t, "p", cfg.Auth.Password)
	assert.Equal(t, DefaultEventsFile, cfg.Log.EventsFile)
}

// TestLoadStructuredConfig_FlatKeysFromFile verifies that a config file
// using the environment variable names satisfies the required settings.
func TestLoadStructuredConfig_FlatKeysFromFile(t *testing.T) {
	clearEnvVars(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"USERNAME":"u","PASSWORD":"p","DEVICE_ID":"dev-1"}`), 0o600))

	cfg, err := loadStructuredConfig([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.Auth.Username)
	assert.Equal(t, "p", cfg.Auth.Password)
	assert.Equal(t, "dev-1", cfg.Stream.DeviceID)

	value, ok := cfg.Get("USERNAME")
	assert.True(t, ok)
	assert.Equal(t, "u", value)
}

// TestLoadStructuredConfig_KeyNamedFlags verifies that settings can be given
// on the command line under their key names and still take precedence over
// the environment and the config file.
func TestLoadStructuredConfig_KeyNamedFlags(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"USERNAME": "env-u", "PASSWORD": "env-p", "DEVICE_ID": "env-dev"})

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"USERNAME":"file-u","DEVICE_ID":"file-dev"}`), 0o600))

	cfg, err := loadStructuredConfig([]string{"-c", path, "--USERNAME=cli-u", "-DEVICE_ID", "cli-dev"})
	require.NoError(t, err)
	assert.Equal(t, "cli-u", cfg.Auth.Username)
	assert.Equal(t, "env-p", cfg.Auth.Password)
	assert.Equal(t, "cli-dev", cfg.Stream.DeviceID)
}

// TestLoadStructuredConfig_MissingRequired verifies that a missing required
// key aborts loading with a message naming the key and how to set it.
func TestLoadStructuredConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		missing []string
		present []string
	}{
		{
			name:    "both missing",
			env:     map[string]string{},
			missing: []string{"USERNAME", "PASSWORD"},
		},
		{
			name:    "password missing",
			env:     map[string]string{"USERNAME": "alice"},
			missing: []string{"PASSWORD"},
			present: []string{"USERNAME"},
		},
		{
			name:    "username missing",
			env:     map[string]string{"PASSWORD": "secret"},
			missing: []string{"USERNAME"},
			present: []string{"PASSWORD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			cfg, err := loadStructuredConfig(nil)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrMissingRequiredSetting)

			for _, key := range tt.missing {
				assert.Contains(t, err.Error(), "you must set the "+key+" environment variable or add it to config.json")
			}
			for _, key := range tt.present {
				assert.NotContains(t, err.Error(), "set the "+key+" ")
			}
		})
	}
}

// TestValidate_NegativeDurations verifies that negative timeouts are rejected.
func TestValidate_NegativeDurations(t *testing.T) {
	cfg := credentialsConfig()
	cfg.Adapter.RequestTimeout = -time.Second

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestStructuredConfig_Get(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{Username: "alice", Password: "secret"},
		Adapter: Adapter{
			APIURL:         "https://cloud.example.com",
			ClientID:       "cli",
			ClientSecret:   "cli-secret",
			RequestTimeout: 30 * time.Second,
			TokenDuration:  time.Hour,
		},
		Stream:       Stream{DeviceID: "abc", EventName: "temp"},
		Log:          Log{EventsFile: "events.log"},
		JSONFilePath: "/etc/config.json",
	}

	expected := map[string]string{
		"USERNAME":        "alice",
		"PASSWORD":        "secret",
		"CONFIG":          "/etc/config.json",
		"API_URL":         "https://cloud.example.com",
		"CLIENT_ID":       "cli",
		"CLIENT_SECRET":   "cli-secret",
		"REQUEST_TIMEOUT": "30s",
		"TOKEN_DURATION":  "1h0m0s",
		"DEVICE_ID":       "abc",
		"EVENT_NAME":      "temp",
		"EVENTS_LOG":      "events.log",
	}

	for key, want := range expected {
		got, ok := cfg.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := cfg.Get("NOT_A_KEY")
	assert.False(t, ok)

	_, ok = (&StructuredConfig{}).Get("REQUEST_TIMEOUT")
	assert.False(t, ok)
}
