package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var (
	ErrEmailNotConfigured = errors.New("email provider not configured")
	ErrNoAdminRecipient   = errors.New("admin email not configured")
)

// SenderConfig configures the transactional email sender.
type SenderConfig struct {
	APIKey     string
	APIURL     string
	From       string
	ReplyTo    string
	AdminEmail string

	VendorConfirmationSubject string
	AdminAlertSubject         string
}

// ResendNotificationSender sends the registration emails through Resend.
type ResendNotificationSender struct {
	cfg    SenderConfig
	client *resend.Client
}

var _ interfaces.INotificationSender = (*ResendNotificationSender)(nil)

func NewResendNotificationSender(cfg SenderConfig, timeout time.Duration) (*ResendNotificationSender, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, cfg.APIKey)
	if cfg.APIURL != "" {
		// the client resolves "emails" against the base, so it needs a trailing slash
		base, err := url.Parse(strings.TrimRight(cfg.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid email api url: %w", err)
		}
		client.BaseURL = base
	}
	return &ResendNotificationSender{cfg: cfg, client: client}, nil
}

func (s *ResendNotificationSender) SendVendorConfirmation(ctx context.Context, v entities.VendorSubmission, recordID string) error {
	html, err := render(vendorConfirmationTmpl, newTemplateData(v, recordID))
	if err != nil {
		return err
	}
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{v.Email},
		ReplyTo: s.cfg.ReplyTo,
		Subject: s.cfg.VendorConfirmationSubject,
		Html:    html,
	})
}

func (s *ResendNotificationSender) SendAdminAlert(ctx context.Context, v entities.VendorSubmission, recordID string) error {
	if s.cfg.AdminEmail == "" {
		return ErrNoAdminRecipient
	}
	html, err := render(adminAlertTmpl, newTemplateData(v, recordID))
	if err != nil {
		return err
	}
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{s.cfg.AdminEmail},
		ReplyTo: v.Email,
		Subject: fmt.Sprintf("%s: %s", s.cfg.AdminAlertSubject, v.CompanyName),
		Html:    html,
	})
}

func (s *ResendNotificationSender) send(ctx context.Context, msg *resend.SendEmailRequest) error {
	if s.cfg.APIKey == "" || s.cfg.From == "" {
		return ErrEmailNotConfigured
	}

	sent, err := s.client.Emails.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.FromContext(ctx).Info("[email][sender] email sent",
		zap.String("subject", msg.Subject), zap.String("message_id", sent.Id))
	return nil
}
