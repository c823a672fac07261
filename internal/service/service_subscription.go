package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/device-event-logger/internal/adapter"
	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/models"
)

type subscriptionService struct {
	adapter adapter.CloudAdapter
	logger  *logger.Logger
}

func NewSubscriptionService(cloudAdapter adapter.CloudAdapter, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{adapter: cloudAdapter, logger: logger}
}

func (s *subscriptionService) Subscribe(ctx context.Context, session models.Session, req models.StreamRequest, handle EventHandler) error {
	log := logger.FromContextOr(ctx, s.logger)

	stream, err := s.adapter.OpenEventStream(ctx, session, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenStream, err)
	}
	defer stream.Close()

	log.Info().
		Str("device_id", req.DeviceID).
		Str("event_name", req.EventName).
		Msg("started listening")

	var received int64
	for {
		evt, err := stream.Next()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, io.EOF) {
				return ErrStreamClosed
			}
			return fmt.Errorf("%w: %w", ErrStreamInterrupted, err)
		}

		received++
		log.Debug().Str("event", evt.Name).Int64("received", received).Msg("event received")

		if err = handle(ctx, evt); err != nil {
			return fmt.Errorf("%w: %w", ErrHandleEvent, err)
		}
	}
}
