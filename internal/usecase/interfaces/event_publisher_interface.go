package interfaces

import (
	"context"

	"vendor_registration/internal/domain/entities"
)

// IEventPublisher announces completed registrations to other services.
type IEventPublisher interface {
	PublishRegistered(ctx context.Context, ev entities.RegistrationEvent) error
}
