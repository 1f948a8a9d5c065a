package response

import (
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase"
)

type VendorRegistrationData struct {
	RecordID              string    `json:"recordId" example:"5725767000000423001"`
	SubmittedAt           time.Time `json:"submittedAt"`
	FilesUploaded         int       `json:"filesUploaded" example:"2"`
	ConfirmationEmailSent bool      `json:"confirmationEmailSent" example:"true"`
}

type VendorRegistrationResponse struct {
	Success bool                   `json:"success" example:"true"`
	Data    VendorRegistrationData `json:"data"`
}

func FromRegistration(r entities.Registration) VendorRegistrationResponse {
	return VendorRegistrationResponse{
		Success: true,
		Data: VendorRegistrationData{
			RecordID:              r.RecordID,
			SubmittedAt:           r.SubmittedAt,
			FilesUploaded:         r.FilesUploaded,
			ConfirmationEmailSent: r.ConfirmationEmailSent,
		},
	}
}

type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Services  map[string]string `json:"services"`
	Timestamp time.Time         `json:"timestamp"`
}

func FromHealthReport(r usecase.HealthReport) HealthResponse {
	return HealthResponse{Status: r.Status, Services: r.Services, Timestamp: r.CheckedAt}
}
