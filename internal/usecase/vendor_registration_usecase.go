package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/domain/mapping"
	"vendor_registration/internal/domain/validation"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateVendor = errors.New("vendor already registered")
	ErrUnexpected      = errors.New("unexpected registration failure")
)

const DefaultCallTimeout = 30 * time.Second

// ValidationError carries every field and file problem of a rejected
// submission so the caller can fix them in one round trip.
type ValidationError struct {
	Fields map[string]string
	Files  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s), %d file error(s)", len(e.Fields), len(e.Files))
}

// RateLimitError is returned when a rate-limit scope denies the request.
type RateLimitError struct {
	Scope      entities.RateScope
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s scope, retry after %ds", e.Scope, e.RetryAfter)
}

// StepStatus is the outcome of one pipeline step.
type StepStatus int

const (
	StepOK StepStatus = iota
	StepClientError
	StepServerError
	StepSkippedDueToOutage
)

func (s StepStatus) String() string {
	switch s {
	case StepOK:
		return "ok"
	case StepClientError:
		return "client_error"
	case StepServerError:
		return "server_error"
	case StepSkippedDueToOutage:
		return "skipped_due_to_outage"
	}
	return "unknown"
}

type stepResult struct {
	Status StepStatus
	Err    error
}

func stepOK() stepResult { return stepResult{Status: StepOK} }

// RegistrationCommand is one inbound submission, already parsed.
type RegistrationCommand struct {
	Submission entities.VendorSubmission
	ClientIP   string
}

// RegistrationOptions are the feature toggles and limits of the flow.
type RegistrationOptions struct {
	RateLimitEnabled   bool
	DuplicateCheck     bool
	EmailNotifications bool
	// CallTimeout bounds every outbound call (CRM, uploads, emails, archive, events).
	CallTimeout time.Duration
}

// RegistrationDeps groups the collaborators of the registration flow.
// Notifier, Archive and Events are optional.
type RegistrationDeps struct {
	Engine   *validation.Engine
	Mapper   *mapping.Mapper
	Limiter  IRateLimiter
	Tokens   ITokenProvider
	CRM      interfaces.ICRMGateway
	Notifier interfaces.INotificationSender
	Archive  interfaces.IDocumentArchive
	Events   interfaces.IEventPublisher
}

// IVendorRegistrationUseCase turns a vendor submission into a CRM record.
//
// Fatal steps: validation, rate limit, authentication, duplicate email, CRM
// record creation. Best-effort steps (attachments, emails, archive, event)
// never fail the request; their outcome is reported in the Registration.
type IVendorRegistrationUseCase interface {
	Register(ctx context.Context, cmd RegistrationCommand) (entities.Registration, error)
}

type VendorRegistrationUseCase struct {
	deps RegistrationDeps
	opts RegistrationOptions
	now  func() time.Time
}

var _ IVendorRegistrationUseCase = (*VendorRegistrationUseCase)(nil)

func NewVendorRegistrationUseCase(deps RegistrationDeps, opts RegistrationOptions) *VendorRegistrationUseCase {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &VendorRegistrationUseCase{deps: deps, opts: opts, now: time.Now}
}

// registrationRun is the state threaded through the steps of one request.
type registrationRun struct {
	cmd         RegistrationCommand
	submission  entities.VendorSubmission
	token       string
	recordID    string
	submittedAt time.Time
}

type pipelineStep struct {
	name string
	fn   func(ctx context.Context, run *registrationRun) stepResult
}

func (u *VendorRegistrationUseCase) Register(ctx context.Context, cmd RegistrationCommand) (reg entities.Registration, err error) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error("[registration][usecase] panic recovered", zap.Any("panic", r), zap.Stack("stack"))
			reg, err = entities.Registration{}, ErrUnexpected
		}
	}()

	run := &registrationRun{cmd: cmd, submission: u.deps.Engine.Sanitize(cmd.Submission)}

	steps := []pipelineStep{
		{name: "validate_fields", fn: u.validateFields},
		{name: "validate_files", fn: u.validateFiles},
		{name: "rate_limit", fn: u.checkRateLimit},
		{name: "authenticate", fn: u.authenticate},
		{name: "duplicate_check", fn: u.checkDuplicate},
		{name: "create_record", fn: u.createRecord},
	}

	for _, st := range steps {
		res := st.fn(ctx, run)
		switch res.Status {
		case StepOK:
		case StepSkippedDueToOutage:
			log.Warn("[registration][usecase] step skipped due to outage",
				zap.String("step", st.name), zap.Error(res.Err))
		case StepClientError:
			log.Info("[registration][usecase] submission rejected",
				zap.String("step", st.name), zap.Error(res.Err))
			return entities.Registration{}, res.Err
		default:
			log.Error("[registration][usecase] step failed",
				zap.String("step", st.name), zap.Error(res.Err))
			return entities.Registration{}, res.Err
		}
	}

	reg = u.runSideEffects(ctx, run)
	log.Info("[registration][usecase] vendor registered",
		zap.String("record_id", reg.RecordID),
		zap.Int("files_uploaded", reg.FilesUploaded),
		zap.Int("files_total", reg.FilesTotal),
		zap.Bool("confirmation_email_sent", reg.ConfirmationEmailSent),
		zap.Bool("admin_alert_sent", reg.AdminAlertSent),
	)
	return reg, nil
}

func (u *VendorRegistrationUseCase) validateFields(_ context.Context, run *registrationRun) stepResult {
	res := u.deps.Engine.Validate(run.submission)
	if !res.Valid {
		return stepResult{Status: StepClientError, Err: &ValidationError{Fields: res.Errors}}
	}
	return stepOK()
}

func (u *VendorRegistrationUseCase) validateFiles(_ context.Context, run *registrationRun) stepResult {
	if len(run.submission.Documents) == 0 {
		return stepOK()
	}
	if errs := u.deps.Engine.ValidateFiles(run.submission.Documents); len(errs) > 0 {
		return stepResult{Status: StepClientError, Err: &ValidationError{Files: errs}}
	}
	return stepOK()
}

func (u *VendorRegistrationUseCase) checkRateLimit(ctx context.Context, run *registrationRun) stepResult {
	if !u.opts.RateLimitEnabled || u.deps.Limiter == nil {
		return stepOK()
	}
	d := u.deps.Limiter.Check(ctx, run.cmd.ClientIP, run.submission.Email)
	if !d.Allowed {
		return stepResult{Status: StepClientError, Err: &RateLimitError{Scope: d.Scope, RetryAfter: d.RetryAfterSeconds}}
	}
	return stepOK()
}

func (u *VendorRegistrationUseCase) authenticate(ctx context.Context, run *registrationRun) stepResult {
	token, err := u.deps.Tokens.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, ErrAuthentication) {
			err = fmt.Errorf("%w: %w", ErrAuthentication, err)
		}
		return stepResult{Status: StepServerError, Err: err}
	}
	run.token = token
	return stepOK()
}

// checkDuplicate treats a failed search as "no duplicate" so a CRM search
// outage never blocks new registrations.
func (u *VendorRegistrationUseCase) checkDuplicate(ctx context.Context, run *registrationRun) stepResult {
	if !u.opts.DuplicateCheck {
		return stepOK()
	}

	cctx, cancel := context.WithTimeout(ctx, u.opts.CallTimeout)
	defer cancel()

	existingID, found, err := u.deps.CRM.FindByEmail(cctx, run.token, run.submission.Email)
	if err != nil {
		return stepResult{Status: StepSkippedDueToOutage, Err: fmt.Errorf("duplicate check: %w", err)}
	}
	if found {
		return stepResult{Status: StepClientError, Err: fmt.Errorf("%w: existing record %s", ErrDuplicateVendor, existingID)}
	}
	return stepOK()
}

func (u *VendorRegistrationUseCase) createRecord(ctx context.Context, run *registrationRun) stepResult {
	fields := u.deps.Mapper.MapToRemoteSchema(run.submission)

	cctx, cancel := context.WithTimeout(ctx, u.opts.CallTimeout)
	defer cancel()

	recordID, err := u.deps.CRM.CreateRecord(cctx, run.token, fields)
	if err != nil {
		return stepResult{Status: StepServerError, Err: fmt.Errorf("create crm record: %w", err)}
	}
	if strings.TrimSpace(recordID) == "" {
		return stepResult{Status: StepServerError, Err: errors.New("create crm record: empty record id")}
	}
	run.recordID = recordID
	run.submittedAt = u.now().UTC()
	return stepOK()
}

// runSideEffects performs the best-effort tasks once the record exists. They
// run detached from the caller's cancellation, each bounded by CallTimeout,
// and their failures only show up in the returned counters.
func (u *VendorRegistrationUseCase) runSideEffects(ctx context.Context, run *registrationRun) entities.Registration {
	log := logger.FromContext(ctx).With(zap.String("record_id", run.recordID))
	detached := context.WithoutCancel(ctx)
	docs := run.submission.Documents

	var (
		g             errgroup.Group
		uploaded      atomic.Int32
		confirmation  bool
		adminAlerted  bool
		notifications = u.opts.EmailNotifications && u.deps.Notifier != nil
	)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			err := u.bounded(detached, func(c context.Context) error {
				return u.deps.CRM.UploadAttachment(c, run.token, run.recordID, doc)
			})
			if err != nil {
				log.Warn("[registration][attachments] upload failed",
					zap.Int("file_index", i+1), zap.String("file_name", doc.Name), zap.Error(err))
				return nil
			}
			uploaded.Add(1)
			return nil
		})

		if u.deps.Archive != nil {
			g.Go(func() error {
				err := u.bounded(detached, func(c context.Context) error {
					return u.deps.Archive.Archive(c, run.recordID, doc)
				})
				if err != nil {
					log.Warn("[registration][archive] archive failed",
						zap.String("file_name", doc.Name), zap.Error(err))
				}
				return nil
			})
		}
	}

	if notifications {
		g.Go(func() error {
			err := u.bounded(detached, func(c context.Context) error {
				return u.deps.Notifier.SendVendorConfirmation(c, run.submission, run.recordID)
			})
			if err != nil {
				log.Warn("[registration][email] vendor confirmation failed", zap.Error(err))
				return nil
			}
			confirmation = true
			return nil
		})
		g.Go(func() error {
			err := u.bounded(detached, func(c context.Context) error {
				return u.deps.Notifier.SendAdminAlert(c, run.submission, run.recordID)
			})
			if err != nil {
				log.Warn("[registration][email] admin alert failed", zap.Error(err))
				return nil
			}
			adminAlerted = true
			return nil
		})
	}

	_ = g.Wait()

	reg := entities.Registration{
		RecordID:              run.recordID,
		SubmittedAt:           run.submittedAt,
		FilesUploaded:         int(uploaded.Load()),
		FilesTotal:            len(docs),
		ConfirmationEmailSent: confirmation,
		AdminAlertSent:        adminAlerted,
	}

	if u.deps.Events != nil {
		ev := entities.RegistrationEvent{
			RecordID:      reg.RecordID,
			CompanyName:   run.submission.CompanyName,
			Email:         run.submission.Email,
			SubmittedAt:   reg.SubmittedAt,
			FilesUploaded: reg.FilesUploaded,
		}
		err := u.bounded(detached, func(c context.Context) error {
			return u.deps.Events.PublishRegistered(c, ev)
		})
		if err != nil {
			log.Warn("[registration][events] publish failed", zap.Error(err))
		}
	}

	return reg
}

// bounded runs fn with the call timeout and turns a panic into an error.
func (u *VendorRegistrationUseCase) bounded(ctx context.Context, fn func(context.Context) error) (err error) {
	cctx, cancel := context.WithTimeout(ctx, u.opts.CallTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(cctx)
}
