package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	request "vendor_registration/internal/adapter/http/dto/request"
	response "vendor_registration/internal/adapter/http/dto/response"
	"vendor_registration/internal/config"
	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg"
	"vendor_registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Multipart part names accepted as document uploads.
var documentFieldNames = []string{"documents", "documents[]", "files", "file"}

var (
	errUnsupportedContentType     = pkg.NewDomainErrorSimple("UNSUPPORTED_CONTENT_TYPE", "Unsupported content type", http.StatusBadRequest)
	errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
)

type VendorRegistrationOptions struct {
	Messages config.Messages
	// ExposeDebug adds internal error detail to 5xx bodies. Off in production.
	ExposeDebug bool
	// MaxBodyBytes caps the request body; zero means unlimited.
	MaxBodyBytes int64
}

type VendorRegistrationHandler struct {
	usecase usecase.IVendorRegistrationUseCase
	opts    VendorRegistrationOptions
}

func NewVendorRegistrationHandler(uc usecase.IVendorRegistrationUseCase, opts VendorRegistrationOptions) *VendorRegistrationHandler {
	return &VendorRegistrationHandler{usecase: uc, opts: opts}
}

// Register godoc
// @Summary      Register a vendor
// @Description  Validates the submission, creates the CRM record and uploads the attached documents.
// @Tags         vendors
// @Accept       json,mpfd
// @Produce      json
// @Param        payload  body      request.VendorRegistrationRequest  true  "Vendor registration"
// @Success      201      {object}  response.VendorRegistrationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/vendor-registration [post]
func (h *VendorRegistrationHandler) Register(c *gin.Context) {
	if h.opts.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBodyBytes)
	}

	submission, appErr := h.parse(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	registration, err := h.usecase.Register(c.Request.Context(), usecase.RegistrationCommand{
		Submission: submission,
		ClientIP:   c.ClientIP(),
	})
	if err != nil {
		appErr := h.mapRegistrationError(err)
		if appErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(appErr.RetryAfter))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegistration(registration))
}

func (h *VendorRegistrationHandler) parse(c *gin.Context) (entities.VendorSubmission, *pkg.AppError) {
	log := logger.FromContext(c.Request.Context())

	switch c.ContentType() {
	case gin.MIMEJSON:
		var payload request.VendorRegistrationRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Info("[registration][handler] invalid json body", zap.Error(err))
			return entities.VendorSubmission{}, errInvalidRegistrationPayload
		}
		return payload.ToEntity(nil), nil

	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			log.Info("[registration][handler] invalid multipart body", zap.Error(err))
			return entities.VendorSubmission{}, errInvalidRegistrationPayload
		}
		docs, err := readDocuments(form)
		if err != nil {
			log.Warn("[registration][handler] reading uploaded files failed", zap.Error(err))
			return entities.VendorSubmission{}, errInvalidRegistrationPayload
		}
		get := func(key string) string {
			if v := form.Value[key]; len(v) > 0 {
				return v[0]
			}
			return ""
		}
		return request.FromFormValues(get).ToEntity(docs), nil
	}

	return entities.VendorSubmission{}, errUnsupportedContentType
}

func readDocuments(form *multipart.Form) ([]entities.Document, error) {
	var docs []entities.Document
	for _, key := range documentFieldNames {
		for _, fh := range form.File[key] {
			doc, err := readDocument(fh)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func readDocument(fh *multipart.FileHeader) (entities.Document, error) {
	f, err := fh.Open()
	if err != nil {
		return entities.Document{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return entities.Document{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return entities.Document{
		Name:     fh.Filename,
		MimeType: detectMimeType(fh),
		Size:     int64(len(content)),
		Content:  content,
	}, nil
}

// detectMimeType prefers the part header and falls back to the file extension.
func detectMimeType(fh *multipart.FileHeader) string {
	raw := fh.Header.Get("Content-Type")
	if raw == "" || raw == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(fh.Filename)); byExt != "" {
			raw = byExt
		}
	}
	if mt, _, err := mime.ParseMediaType(raw); err == nil {
		return mt
	}
	return raw
}

func (h *VendorRegistrationHandler) mapRegistrationError(err error) *pkg.AppError {
	msgs := h.opts.Messages

	var validationErr *usecase.ValidationError
	var rateErr *usecase.RateLimitError
	var crmErr *interfaces.CRMError

	switch {
	case errors.As(err, &validationErr):
		details := make(map[string]any, len(validationErr.Fields)+1)
		for field, msg := range validationErr.Fields {
			details[field] = msg
		}
		if len(validationErr.Files) > 0 {
			details["files"] = validationErr.Files
		}
		return pkg.NewDomainError("VALIDATION_ERROR", msgs.ValidationFailed, err, http.StatusBadRequest).
			WithErrors(details)

	case errors.As(err, &rateErr):
		return pkg.NewDomainError("RATE_LIMITED", msgs.RateLimitTitle, err, http.StatusTooManyRequests).
			WithMessage(msgs.RateLimit).
			WithRetryAfter(rateErr.RetryAfter)

	case errors.Is(err, usecase.ErrDuplicateVendor):
		return pkg.NewDomainError("DUPLICATE_VENDOR", msgs.DuplicateTitle, err, http.StatusConflict).
			WithMessage(msgs.Duplicate)

	case errors.As(err, &crmErr):
		return h.serverError("CRM_ERROR", err).WithUpstream(crmErr.Payload)

	case errors.Is(err, usecase.ErrAuthentication):
		return h.serverError("AUTHENTICATION_ERROR", err)

	default:
		return h.serverError("INTERNAL_ERROR", err)
	}
}

func (h *VendorRegistrationHandler) serverError(code string, err error) *pkg.AppError {
	appErr := pkg.NewDomainError(code, h.opts.Messages.ServerErrorTitle, err, http.StatusInternalServerError).
		WithMessage(h.opts.Messages.ServerError)
	if h.opts.ExposeDebug {
		appErr.WithDebug(err.Error())
	}
	return appErr
}
