package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file. Every
// setting may be given either under its environment variable name at the
// top level or in the nested sections:
//
//	{"USERNAME": "...", "PASSWORD": "...", "DEVICE_ID": "mine"}
//
//	{
//	  "auth":    {"username": "...", "password": "..."},
//	  "adapter": {"api_url": "...", "request_timeout": "30s", ...},
//	  "stream":  {"device_id": "mine", "event_name": ""},
//	  "log":     {"events_file": "events.log"}
//	}
//
// When a setting appears in both forms the nested one wins.
type StructuredJSONConfig struct {
	Username       string   `json:"USERNAME,omitempty"`
	Password       string   `json:"PASSWORD,omitempty"`
	APIURL         string   `json:"API_URL,omitempty"`
	ClientID       string   `json:"CLIENT_ID,omitempty"`
	ClientSecret   string   `json:"CLIENT_SECRET,omitempty"`
	RequestTimeout Duration `json:"REQUEST_TIMEOUT,omitempty"`
	TokenDuration  Duration `json:"TOKEN_DURATION,omitempty"`
	DeviceID       string   `json:"DEVICE_ID,omitempty"`
	EventName      string   `json:"EVENT_NAME,omitempty"`
	EventsFile     string   `json:"EVENTS_LOG,omitempty"`

	Auth struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"adapter,omitempty"`

	Stream struct {
		DeviceID  string `json:"device_id"`
		EventName string `json:"event_name"`
	} `json:"stream,omitempty"`

	Log struct {
		EventsFile string `json:"events_file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			Username: jsonCfg.Auth.Username,
			Password: jsonCfg.Auth.Password,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			ClientID:       jsonCfg.Adapter.ClientID,
			ClientSecret:   jsonCfg.Adapter.ClientSecret,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			TokenDuration:  time.Duration(jsonCfg.Adapter.TokenDuration),
		},
		Stream: Stream{
			DeviceID:  jsonCfg.Stream.DeviceID,
			EventName: jsonCfg.Stream.EventName,
		},
		Log: Log{
			EventsFile: jsonCfg.Log.EventsFile,
		},
		JSONFilePath: "",
	}

	flat := &StructuredConfig{
		Auth: Auth{
			Username: jsonCfg.Username,
			Password: jsonCfg.Password,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.APIURL,
			ClientID:       jsonCfg.ClientID,
			ClientSecret:   jsonCfg.ClientSecret,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
			TokenDuration:  time.Duration(jsonCfg.TokenDuration),
		},
		Stream: Stream{
			DeviceID:  jsonCfg.DeviceID,
			EventName: jsonCfg.EventName,
		},
		Log: Log{
			EventsFile: jsonCfg.EventsFile,
		},
	}

	if err := mergo.Merge(cfg, flat); err != nil {
		return nil, fmt.Errorf("error merging json config keys: %w", err)
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
