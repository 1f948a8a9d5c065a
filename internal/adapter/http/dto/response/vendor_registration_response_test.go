package response

import (
	"encoding/json"
	"testing"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase"
)

func TestFromRegistration(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	res := FromRegistration(entities.Registration{
		RecordID:              "rec-1",
		SubmittedAt:           at,
		FilesUploaded:         2,
		FilesTotal:            3,
		ConfirmationEmailSent: true,
	})

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"success":true,"data":{"recordId":"rec-1","submittedAt":"2026-02-03T04:05:06Z","filesUploaded":2,"confirmationEmailSent":true}}`
	if string(b) != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", b, want)
	}
}

func TestFromHealthReport(t *testing.T) {
	r := usecase.HealthReport{Status: usecase.HealthStatusDegraded, Services: map[string]string{"cache": "unavailable"}}
	res := FromHealthReport(r)
	if res.Status != "degraded" || res.Services["cache"] != "unavailable" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
