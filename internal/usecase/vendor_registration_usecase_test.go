package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendor_registration/internal/adapter/persistence/repository"
	"vendor_registration/internal/config"
	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/domain/mapping"
	"vendor_registration/internal/domain/validation"
	"vendor_registration/internal/usecase/interfaces"
	mock_interfaces "vendor_registration/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type registrationFixture struct {
	crm      *mock_interfaces.MockICRMGateway
	exch     *mock_interfaces.MockITokenExchanger
	notifier *mock_interfaces.MockINotificationSender
	archive  *mock_interfaces.MockIDocumentArchive
	events   *mock_interfaces.MockIEventPublisher
	store    *repository.MemoryTTLStore
	deps     RegistrationDeps
}

func newRegistrationFixture(t *testing.T, ctrl *gomock.Controller) *registrationFixture {
	t.Helper()
	schema, err := config.LoadFormSchema("")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	rules, err := schema.RuleSet()
	if err != nil {
		t.Fatalf("compile rules: %v", err)
	}

	f := &registrationFixture{
		crm:      mock_interfaces.NewMockICRMGateway(ctrl),
		exch:     mock_interfaces.NewMockITokenExchanger(ctrl),
		notifier: mock_interfaces.NewMockINotificationSender(ctrl),
		archive:  mock_interfaces.NewMockIDocumentArchive(ctrl),
		events:   mock_interfaces.NewMockIEventPublisher(ctrl),
		store:    repository.NewMemoryTTLStore(),
	}
	f.deps = RegistrationDeps{
		Engine: validation.NewEngine(rules, validation.FileRules{
			MaxSize:           10 * 1024 * 1024,
			MaxCount:          5,
			AllowedTypes:      []string{"application/pdf", "image/png"},
			AllowedExtensions: []string{"pdf", "png"},
		}),
		Mapper:   mapping.NewMapper(schema.FieldMappings(), schema.DerivedFields(), nil),
		Limiter:  NewRateLimiter(f.store, RateWindow{Window: time.Hour, Max: 10}, RateWindow{Window: 24 * time.Hour, Max: 3}),
		Tokens:   NewTokenCache(f.store, f.exch, 0),
		CRM:      f.crm,
		Notifier: f.notifier,
	}
	return f
}

func validSubmission() entities.VendorSubmission {
	return entities.VendorSubmission{
		CompanyName:                "Acme Foods Ltd",
		ContactPerson:              "Jordan Lee",
		Email:                      "jordan@acme.example",
		Phone:                      "+44 20 7946 0958",
		Country:                    "United Kingdom",
		BusinessRegistrationNumber: "GB123456",
		ProductCategory:            "Snacks",
		ProductDescription:         "Baked vegetable crisps in recyclable packaging.",
		MinimumOrderQuantity:       "500",
		PackagingType:              "Carton",
		UnitPrice:                  "1.25",
		Currency:                   "GBP",
		TermsAccepted:              true,
		PrivacyAccepted:            true,
	}
}

func pdf(name string) entities.Document {
	return entities.Document{Name: name, MimeType: "application/pdf", Size: 4, Content: []byte("%PDF")}
}

func allOptions() RegistrationOptions {
	return RegistrationOptions{RateLimitEnabled: true, DuplicateCheck: true, EmailNotifications: true, CallTimeout: time.Second}
}

func TestVendorRegistrationUseCase_Register(t *testing.T) {
	t.Run("validation errors enumerate every field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		s := validSubmission()
		s.CompanyName = " "
		s.Email = "not-an-email"
		s.TermsAccepted = false

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: s, ClientIP: "1.1.1.1"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, field := range []string{entities.FieldCompanyName, entities.FieldEmail, entities.FieldTermsAccepted} {
			if _, ok := verr.Fields[field]; !ok {
				t.Fatalf("expected error for %s, got %v", field, verr.Fields)
			}
		}
		if len(verr.Fields) != 3 {
			t.Fatalf("expected exactly 3 field errors, got %v", verr.Fields)
		}
	})

	t.Run("sanitization happens before validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		s := validSubmission()
		s.CompanyName = "<script>alert(1)</script>"

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: s})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields[entities.FieldCompanyName] == "" {
			t.Fatalf("expected company name to be empty after sanitizing, got %v", err)
		}
	})

	t.Run("file errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		s := validSubmission()
		s.Documents = []entities.Document{{Name: "run.exe", MimeType: "application/x-msdownload", Size: 10}}

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: s})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Files) != 2 {
			t.Fatalf("expected type and extension errors, got %v", err)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		f.deps.Limiter = NewRateLimiter(f.store, RateWindow{Window: time.Hour, Max: 1}, RateWindow{Window: time.Hour, Max: 10})
		uc := NewVendorRegistrationUseCase(f.deps, RegistrationOptions{RateLimitEnabled: true})

		_ = f.store.Set(context.Background(), AccessTokenKey, "tok", time.Hour)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("rec-1", nil)

		cmd := RegistrationCommand{Submission: validSubmission(), ClientIP: "1.1.1.1"}
		if _, err := uc.Register(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Register(context.Background(), cmd)
		var rerr *RateLimitError
		if !errors.As(err, &rerr) || rerr.Scope != entities.RateScopeIP || rerr.RetryAfter <= 0 {
			t.Fatalf("expected ip RateLimitError, got %v", err)
		}
	})

	t.Run("authentication failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		f.exch.EXPECT().Exchange(gomock.Any()).Return("", errors.New("invalid_code"))

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission(), ClientIP: "1.1.1.1"})
		if !errors.Is(err, ErrAuthentication) {
			t.Fatalf("expected ErrAuthentication, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		f.exch.EXPECT().Exchange(gomock.Any()).Return("tok", nil)
		f.crm.EXPECT().FindByEmail(gomock.Any(), "tok", "jordan@acme.example").Return("rec-0", true, nil)

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission(), ClientIP: "1.1.1.1"})
		if !errors.Is(err, ErrDuplicateVendor) {
			t.Fatalf("expected ErrDuplicateVendor, got %v", err)
		}
	})

	t.Run("duplicate check outage does not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		f.exch.EXPECT().Exchange(gomock.Any()).Return("tok", nil)
		f.crm.EXPECT().FindByEmail(gomock.Any(), "tok", gomock.Any()).Return("", false, errors.New("timeout"))
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("rec-1", nil)
		f.notifier.EXPECT().SendVendorConfirmation(gomock.Any(), gomock.Any(), "rec-1").Return(nil)
		f.notifier.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), "rec-1").Return(nil)

		reg, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission(), ClientIP: "1.1.1.1"})
		if err != nil || reg.RecordID != "rec-1" {
			t.Fatalf("expected success, got %+v err=%v", reg, err)
		}
	})

	t.Run("crm create failure keeps upstream payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, RegistrationOptions{})

		_ = f.store.Set(context.Background(), AccessTokenKey, "tok", time.Hour)
		crmErr := &interfaces.CRMError{StatusCode: 400, Code: "MANDATORY_NOT_FOUND", Payload: []byte(`{"code":"MANDATORY_NOT_FOUND"}`)}
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("", crmErr)

		_, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission()})
		var got *interfaces.CRMError
		if !errors.As(err, &got) || string(got.Payload) != `{"code":"MANDATORY_NOT_FOUND"}` {
			t.Fatalf("expected CRMError with payload, got %v", err)
		}
	})

	t.Run("mapped fields reach the crm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, RegistrationOptions{})

		_ = f.store.Set(context.Background(), AccessTokenKey, "tok", time.Hour)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) (string, error) {
				if fields["Vendor_Name"] != "Acme Foods Ltd" {
					t.Fatalf("unexpected vendor name: %v", fields["Vendor_Name"])
				}
				if fields["Estimated_Order_Value"] != 625.0 {
					t.Fatalf("unexpected estimate: %v", fields["Estimated_Order_Value"])
				}
				if fields["Lead_Source"] != "Vendor Registration Form" {
					t.Fatalf("unexpected source: %v", fields["Lead_Source"])
				}
				return "rec-1", nil
			},
		)

		reg, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.FilesUploaded != 0 || reg.ConfirmationEmailSent {
			t.Fatalf("unexpected registration: %+v", reg)
		}
		if reg.SubmittedAt.IsZero() {
			t.Fatalf("expected submittedAt")
		}
	})

	t.Run("one of three uploads failing still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		f.deps.Archive = f.archive
		f.deps.Events = f.events
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		s := validSubmission()
		s.Documents = []entities.Document{pdf("a.pdf"), pdf("b.pdf"), pdf("c.pdf")}

		f.exch.EXPECT().Exchange(gomock.Any()).Return("tok", nil)
		f.crm.EXPECT().FindByEmail(gomock.Any(), "tok", gomock.Any()).Return("", false, nil)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("rec-9", nil)
		f.crm.EXPECT().UploadAttachment(gomock.Any(), "tok", "rec-9", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, doc entities.Document) error {
				if doc.Name == "b.pdf" {
					return errors.New("413")
				}
				return nil
			},
		).Times(3)
		f.archive.EXPECT().Archive(gomock.Any(), "rec-9", gomock.Any()).Return(nil).Times(3)
		f.notifier.EXPECT().SendVendorConfirmation(gomock.Any(), gomock.Any(), "rec-9").Return(nil)
		f.notifier.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), "rec-9").Return(nil)
		f.events.EXPECT().PublishRegistered(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.RegistrationEvent) error {
				if ev.RecordID != "rec-9" || ev.FilesUploaded != 2 {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		reg, err := uc.Register(context.Background(), RegistrationCommand{Submission: s, ClientIP: "1.1.1.1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.FilesUploaded != 2 || reg.FilesTotal != 3 || !reg.ConfirmationEmailSent || !reg.AdminAlertSent {
			t.Fatalf("unexpected registration: %+v", reg)
		}
	})

	t.Run("upload panic counts as not uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, RegistrationOptions{})

		s := validSubmission()
		s.Documents = []entities.Document{pdf("a.pdf")}

		_ = f.store.Set(context.Background(), AccessTokenKey, "tok", time.Hour)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("rec-1", nil)
		f.crm.EXPECT().UploadAttachment(gomock.Any(), "tok", "rec-1", gomock.Any()).DoAndReturn(
			func(context.Context, string, string, entities.Document) error { panic("boom") },
		)

		reg, err := uc.Register(context.Background(), RegistrationCommand{Submission: s})
		if err != nil || reg.FilesUploaded != 0 {
			t.Fatalf("expected success with zero uploads, got %+v err=%v", reg, err)
		}
	})

	t.Run("both emails failing still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, allOptions())

		f.exch.EXPECT().Exchange(gomock.Any()).Return("tok", nil)
		f.crm.EXPECT().FindByEmail(gomock.Any(), "tok", gomock.Any()).Return("", false, nil)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).Return("rec-2", nil)
		f.notifier.EXPECT().SendVendorConfirmation(gomock.Any(), gomock.Any(), "rec-2").Return(errors.New("422"))
		f.notifier.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), "rec-2").Return(errors.New("422"))

		reg, err := uc.Register(context.Background(), RegistrationCommand{Submission: validSubmission(), ClientIP: "1.1.1.1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.ConfirmationEmailSent || reg.AdminAlertSent {
			t.Fatalf("expected both emails to be reported as failed: %+v", reg)
		}
	})

	t.Run("side effects survive caller cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newRegistrationFixture(t, ctrl)
		uc := NewVendorRegistrationUseCase(f.deps, RegistrationOptions{EmailNotifications: true})

		ctx, cancel := context.WithCancel(context.Background())
		_ = f.store.Set(ctx, AccessTokenKey, "tok", time.Hour)
		f.crm.EXPECT().CreateRecord(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
			func(context.Context, string, map[string]any) (string, error) {
				cancel()
				return "rec-3", nil
			},
		)
		f.notifier.EXPECT().SendVendorConfirmation(gomock.Any(), gomock.Any(), "rec-3").DoAndReturn(
			func(c context.Context, _ entities.VendorSubmission, _ string) error { return c.Err() },
		)
		f.notifier.EXPECT().SendAdminAlert(gomock.Any(), gomock.Any(), "rec-3").Return(nil)

		reg, err := uc.Register(ctx, RegistrationCommand{Submission: validSubmission()})
		if err != nil || !reg.ConfirmationEmailSent {
			t.Fatalf("expected detached email dispatch, got %+v err=%v", reg, err)
		}
	})
}

func TestStepStatus_String(t *testing.T) {
	cases := map[StepStatus]string{
		StepOK:                 "ok",
		StepClientError:        "client_error",
		StepServerError:        "server_error",
		StepSkippedDueToOutage: "skipped_due_to_outage",
		StepStatus(42):         "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("status %d: expected %q, got %q", int(status), want, got)
		}
	}
}
