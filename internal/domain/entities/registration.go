package entities

import "time"

// Registration is the outcome of a successful submission: the CRM record
// handle plus the counters of the best-effort side effects.
type Registration struct {
	RecordID              string
	SubmittedAt           time.Time
	FilesUploaded         int
	FilesTotal            int
	ConfirmationEmailSent bool
	AdminAlertSent        bool
}

// RegistrationEvent is published after a vendor has been registered.
type RegistrationEvent struct {
	RecordID      string    `json:"recordId"`
	CompanyName   string    `json:"companyName"`
	Email         string    `json:"email"`
	SubmittedAt   time.Time `json:"submittedAt"`
	FilesUploaded int       `json:"filesUploaded"`
}
