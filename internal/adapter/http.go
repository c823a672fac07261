package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/device-event-logger/internal/config"
	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/internal/utils"
	"github.com/MKhiriev/device-event-logger/models"
)

// maxErrorBodySize bounds how much of a rejected stream response is read
// into the error message.
const maxErrorBodySize = 4 << 10

type httpCloudAdapter struct {
	client *utils.HTTPClient

	clientID       string
	clientSecret   string
	requestTimeout time.Duration
	tokenDuration  time.Duration

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs the HTTP implementation of [CloudAdapter].
// It normalises and validates the base URL from cfg.APIURL and configures the
// shared HTTP client with it.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a valid URL.
func NewHTTPCloudAdapter(cfg config.Adapter, logger *logger.Logger) (CloudAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.SetBaseURL(baseURL)

	return &httpCloudAdapter{
		client:         client,
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		requestTimeout: cfg.RequestTimeout,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [CloudAdapter]. It POSTs an OAuth password grant to
// POST /oauth/token with the client credentials as basic auth and decodes
// the access token from the JSON response. The request is bounded by the
// configured request timeout.
func (h *httpCloudAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	form := map[string]string{
		"grant_type": "password",
		"username":   creds.Username,
		"password":   creds.Password,
	}
	if h.tokenDuration > 0 {
		form["expires_in"] = strconv.FormatInt(int64(h.tokenDuration/time.Second), 10)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.clientID, h.clientSecret).
		SetFormData(form).
		Post("/oauth/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), errorMessage(resp.Body())); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrMalformedLoginResponse, err)
	}

	h.logger.Debug().
		Str("token_type", session.TokenType).
		Int64("expires_in", session.ExpiresIn).
		Msg("login succeeded")

	return session, nil
}

// OpenEventStream implements [CloudAdapter]. It GETs the device event
// stream (see eventStreamPath) with the session token as bearer auth and
// returns a reader over the server-sent events once the server has answered
// with a 2xx status. The response body is not buffered: it stays open until
// the returned stream is closed or ctx is cancelled.
func (h *httpCloudAdapter) OpenEventStream(ctx context.Context, session models.Session, req models.StreamRequest) (EventStream, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetAuthToken(session.AccessToken).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		Get(eventStreamPath(req))
	if err != nil {
		return nil, fmt.Errorf("open event stream request: %w", err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp.StatusCode(), ""); err != nil {
		var raw []byte
		if body != nil {
			raw, _ = io.ReadAll(io.LimitReader(body, maxErrorBodySize))
			_ = body.Close()
		}
		return nil, mapHTTPError(resp.StatusCode(), errorMessage(raw))
	}
	if body == nil {
		return nil, errors.New("open event stream: empty response body")
	}

	return newEventStream(body), nil
}

// eventStreamPath returns the API path of the stream selected by req:
//
//	/v1/devices/events[/{name}]            every device of the account
//	/v1/devices/{device}/events[/{name}]   a single device
func eventStreamPath(req models.StreamRequest) string {
	var sb strings.Builder
	sb.WriteString("/v1/devices")

	if req.DeviceID != "" && req.DeviceID != models.AllDevices {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(req.DeviceID))
	}

	sb.WriteString("/events")

	if req.EventName != "" {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(req.EventName))
	}

	return sb.String()
}

// errorMessage extracts a readable message from an error response body,
// falling back to the raw body when it is not a cloud error document.
func errorMessage(body []byte) string {
	var ce cloudError
	if err := json.Unmarshal(body, &ce); err == nil {
		if msg := ce.message(); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}
