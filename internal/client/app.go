package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/device-event-logger/internal/config"
	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/internal/service"
	"github.com/MKhiriev/device-event-logger/internal/store"
	"github.com/MKhiriev/device-event-logger/internal/utils"
	"github.com/MKhiriev/device-event-logger/models"
)

var errNilDependency = errors.New("nil dependency")

// App runs the listener pipeline once: it logs in, opens the event stream
// and appends every received event to the event store.
type App struct {
	services   *service.Services
	eventStore store.EventStore

	creds   models.Credentials
	request models.StreamRequest

	ids    *utils.IDGenerator
	logger *logger.Logger
}

// NewApp wires the pipeline from its services, the event sink and the
// merged configuration.
func NewApp(services *service.Services, eventStore store.EventStore, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	if services == nil || eventStore == nil || cfg == nil || logger == nil {
		return nil, fmt.Errorf("init app: %w", errNilDependency)
	}

	return &App{
		services:   services,
		eventStore: eventStore,
		creds: models.Credentials{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		},
		request: models.StreamRequest{
			DeviceID:  cfg.Stream.DeviceID,
			EventName: cfg.Stream.EventName,
		},
		ids:    utils.NewIDGenerator(),
		logger: logger,
	}, nil
}

// Run executes the pipeline. Each failure is logged exactly once and
// returned: a failed login ends the run before any subscription is attempted,
// and a stream that cannot be opened is not retried. A cancelled ctx stops
// the subscription and is returned as ctx.Err().
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("username", a.creds.Username).Msg("logging in")

	session, err := a.services.AuthService.Authenticate(ctx, a.creds)
	if err != nil {
		a.logger.Error().Err(err).Msg("login failed")
		return err
	}
	a.logger.Info().Stringer("session", session).Msg("access token acquired")

	subLogger := a.logger.GetChildLogger()
	subLogger.Logger = subLogger.With().Str("subscription_id", a.ids.Generate()).Logger()
	ctx = subLogger.WithContext(ctx)

	err = a.services.SubscriptionService.Subscribe(ctx, session, a.request, a.eventStore.Append)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		subLogger.Info().Msg("stopped listening")
		return err
	case errors.Is(err, service.ErrOpenStream):
		subLogger.Error().Err(err).Str("device_id", a.request.DeviceID).Msg("failed to start listening")
		return err
	default:
		subLogger.Error().Err(err).Msg("event stream ended")
		return err
	}
}
