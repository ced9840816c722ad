package bizerror

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrBackupThrottled = errors.New("backup throttled")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// ErrValidation reports every missing required field in one message.
type ErrValidation struct {
	MissingFields []string
}

func (e *ErrValidation) Error() string {
	return "required fields missing: " + strings.Join(e.MissingFields, ", ")
}
func (e *ErrValidation) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.validation_failed",
		Message: e.Error(), Data: e.MissingFields}
}

type ErrImportFormat struct {
	Cause error
}

func (e *ErrImportFormat) Unwrap() error {
	return e.Cause
}
func (e *ErrImportFormat) Error() string {
	if e.Cause != nil {
		return "invalid project file: " + e.Cause.Error()
	}
	return "invalid project file"
}
func (e *ErrImportFormat) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "projectfile.invalid_format", Message: e.Error(), Data: nil}
}

type ErrExternalIO struct {
	Op    string
	Cause error
}

func (e *ErrExternalIO) Unwrap() error {
	return e.Cause
}
func (e *ErrExternalIO) Error() string {
	if e.Cause != nil {
		return e.Op + ": " + e.Cause.Error()
	}
	return e.Op
}
func (e *ErrExternalIO) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadGateway, Code: "common.external_io_error", Message: e.Error(), Data: nil}
}
