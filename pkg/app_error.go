package pkg

import (
	"encoding/json"
	"fmt"
)

// AppError is the error shape handlers turn into a JSON response.
//
// Every response built from it carries success=false so callers can rely on a
// single envelope for all failures.
type AppError struct {
	Code       string
	Title      string
	Message    string
	HTTPStatus int
	Err        error

	Errors     any
	Upstream   json.RawMessage
	RetryAfter int
	Debug      string
}

// HTTPError is the wire representation of an AppError.
type HTTPError struct {
	Success    bool            `json:"success"`
	Error      string          `json:"error"`
	Code       string          `json:"code,omitempty"`
	Message    string          `json:"message,omitempty"`
	Errors     any             `json:"errors,omitempty"`
	ZohoError  json.RawMessage `json:"zohoError,omitempty"`
	RetryAfter int             `json:"retryAfter,omitempty"`
	Debug      string          `json:"debug,omitempty"`
}

func NewDomainError(code, title string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Title: title, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, title string, httpStatus int) *AppError {
	return &AppError{Code: code, Title: title, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Title, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Title)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithMessage(msg string) *AppError {
	e.Message = msg
	return e
}

func (e *AppError) WithErrors(details any) *AppError {
	e.Errors = details
	return e
}

// WithUpstream attaches the raw diagnostic payload returned by a remote system.
// Invalid JSON is wrapped as a JSON string so the envelope stays valid.
func (e *AppError) WithUpstream(payload []byte) *AppError {
	if len(payload) == 0 {
		return e
	}
	if json.Valid(payload) {
		e.Upstream = json.RawMessage(payload)
		return e
	}
	b, err := json.Marshal(string(payload))
	if err == nil {
		e.Upstream = b
	}
	return e
}

func (e *AppError) WithRetryAfter(seconds int) *AppError {
	e.RetryAfter = seconds
	return e
}

func (e *AppError) WithDebug(detail string) *AppError {
	e.Debug = detail
	return e
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success:    false,
		Error:      e.Title,
		Code:       e.Code,
		Message:    e.Message,
		Errors:     e.Errors,
		ZohoError:  e.Upstream,
		RetryAfter: e.RetryAfter,
		Debug:      e.Debug,
	}
}
