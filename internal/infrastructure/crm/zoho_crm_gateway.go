package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
)

const maxResponseBody = 1 << 20

// ZohoCRMGateway talks to the CRM REST API (v2) of a single module.
type ZohoCRMGateway struct {
	apiDomain  string
	module     string
	httpClient *http.Client
}

var _ interfaces.ICRMGateway = (*ZohoCRMGateway)(nil)

// recordResponse is the envelope of insert and attachment responses.
type recordResponse struct {
	Data []struct {
		Code    string `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
	} `json:"data"`
}

type searchResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewZohoCRMGateway(apiDomain, module string, timeout time.Duration) *ZohoCRMGateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ZohoCRMGateway{
		apiDomain:  strings.TrimRight(apiDomain, "/"),
		module:     module,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *ZohoCRMGateway) moduleURL(parts ...string) string {
	u := g.apiDomain + "/crm/v2/" + url.PathEscape(g.module)
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}

// FindByEmail searches the module by email. The API answers 204 when nothing
// matches.
func (g *ZohoCRMGateway) FindByEmail(ctx context.Context, accessToken, email string) (string, bool, error) {
	endpoint := g.moduleURL("search") + "?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}

	status, body, err := g.do(req, accessToken)
	if err != nil {
		return "", false, err
	}
	if status == http.StatusNoContent {
		return "", false, nil
	}
	if status != http.StatusOK {
		return "", false, newCRMError(status, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return "", false, nil
	}

	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", false, fmt.Errorf("failed to parse search response: %w", err)
	}
	if len(res.Data) == 0 {
		return "", false, nil
	}
	return res.Data[0].ID, true, nil
}

// CreateRecord inserts one record and triggers the module workflows.
func (g *ZohoCRMGateway) CreateRecord(ctx context.Context, accessToken string, fields map[string]any) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"data":    []map[string]any{fields},
		"trigger": []string{"workflow"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.moduleURL(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := g.do(req, accessToken)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", newCRMError(status, body)
	}

	var res recordResponse
	if err := json.Unmarshal(body, &res); err != nil || len(res.Data) == 0 {
		return "", &interfaces.CRMError{StatusCode: status, Message: "unexpected insert response", Payload: body}
	}
	first := res.Data[0]
	if !strings.EqualFold(first.Status, "success") || first.Details.ID == "" {
		return "", &interfaces.CRMError{StatusCode: status, Code: first.Code, Message: first.Message, Payload: body}
	}

	logger.FromContext(ctx).Info("[crm][gateway] record created",
		zap.String("module", g.module), zap.String("record_id", first.Details.ID))
	return first.Details.ID, nil
}

// UploadAttachment posts one document to the record's Attachments related list.
func (g *ZohoCRMGateway) UploadAttachment(ctx context.Context, accessToken, recordID string, doc entities.Document) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, doc.Name))
	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(doc.Content); err != nil {
		return fmt.Errorf("failed to write multipart part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.moduleURL(recordID, "Attachments"), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	status, body, err := g.do(req, accessToken)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return newCRMError(status, body)
	}

	var res recordResponse
	if err := json.Unmarshal(body, &res); err == nil && len(res.Data) > 0 && !strings.EqualFold(res.Data[0].Status, "success") {
		return &interfaces.CRMError{StatusCode: status, Code: res.Data[0].Code, Message: res.Data[0].Message, Payload: body}
	}
	return nil
}

func (g *ZohoCRMGateway) do(req *http.Request, accessToken string) (int, []byte, error) {
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func newCRMError(status int, body []byte) *interfaces.CRMError {
	e := &interfaces.CRMError{StatusCode: status, Payload: body}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		e.Code, e.Message = er.Code, er.Message
	}
	if e.Code == "" {
		var rr recordResponse
		if json.Unmarshal(body, &rr) == nil && len(rr.Data) > 0 {
			e.Code, e.Message = rr.Data[0].Code, rr.Data[0].Message
		}
	}
	return e
}
