package service

import (
	"github.com/MKhiriev/device-event-logger/internal/adapter"
	"github.com/MKhiriev/device-event-logger/internal/logger"
)

// Services bundles the pipeline stages built on top of a single
// [adapter.CloudAdapter].
type Services struct {
	AuthService         AuthService
	SubscriptionService SubscriptionService
}

func NewServices(cloudAdapter adapter.CloudAdapter, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(cloudAdapter, logger),
		SubscriptionService: NewSubscriptionService(cloudAdapter, logger),
	}
}
