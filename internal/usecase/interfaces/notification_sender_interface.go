package interfaces

import (
	"context"

	"vendor_registration/internal/domain/entities"
)

// INotificationSender dispatches the transactional emails of a registration.
type INotificationSender interface {
	SendVendorConfirmation(ctx context.Context, s entities.VendorSubmission, recordID string) error
	SendAdminAlert(ctx context.Context, s entities.VendorSubmission, recordID string) error
}
