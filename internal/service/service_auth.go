package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/device-event-logger/internal/adapter"
	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/models"
)

type authService struct {
	adapter adapter.CloudAdapter
	logger  *logger.Logger
}

func NewAuthService(cloudAdapter adapter.CloudAdapter, logger *logger.Logger) AuthService {
	return &authService{adapter: cloudAdapter, logger: logger}
}

func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if creds.IsEmpty() {
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if session.AccessToken == "" {
		return models.Session{}, ErrEmptyAccessToken
	}

	a.logger.Debug().Str("username", creds.Username).Msg("access token received")

	return session, nil
}
