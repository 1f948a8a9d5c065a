package interfaces

import (
	"context"

	"vendor_registration/internal/domain/entities"
)

// IDocumentArchive keeps a copy of uploaded documents in object storage.
type IDocumentArchive interface {
	Archive(ctx context.Context, recordID string, doc entities.Document) error
}
