package interfaces

import (
	"context"
	"fmt"

	"vendor_registration/internal/domain/entities"
)

// ICRMGateway abstracts the external CRM module that stores vendor records.
//
// The vendor registration flow uses it to:
//   - look up an existing record by email (duplicate check)
//   - create the vendor record
//   - attach uploaded documents to the created record
type ICRMGateway interface {
	FindByEmail(ctx context.Context, accessToken, email string) (recordID string, found bool, err error)
	CreateRecord(ctx context.Context, accessToken string, fields map[string]any) (recordID string, err error)
	UploadAttachment(ctx context.Context, accessToken, recordID string, doc entities.Document) error
}

// CRMError is returned when the CRM answered but refused the request. Payload
// keeps the CRM's own diagnostic body for operators.
type CRMError struct {
	StatusCode int
	Code       string
	Message    string
	Payload    []byte
}

func (e *CRMError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("crm request failed: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("crm request failed: status=%d", e.StatusCode)
}
