package model

import (
	"errors"
	"fmt"
)

// =====================================================
// PREDEFINED ERRORS
// =====================================================

var (
	ErrAuthMissing        = errors.New("no stored authentication context for platform URL")
	ErrSourceVerification = errors.New("webhook source verification failed")
	ErrUpstreamTransport  = errors.New("provider status fetch failed")
	ErrUnexpectedStatus   = errors.New("unexpected provider status")
	ErrMissingField       = errors.New("required field missing after reconciliation")
	ErrMalformedPayload   = errors.New("malformed webhook payload")
	ErrPlatformCall       = errors.New("platform call failed")
)

// =====================================================
// CUSTOM WEBHOOK ERROR
// =====================================================

// WebhookError carries an internal code so handlers can map failures to the
// HTTP statuses the providers expect. UpstreamStatus is set only for
// transport failures where the provider returned a status code.
type WebhookError struct {
	Code           string
	Message        string
	UpstreamStatus int
	Err            error
}

func (e *WebhookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WebhookError) Unwrap() error {
	return e.Err
}

// NewWebhookError creates a new webhook error
func NewWebhookError(code, message string, err error) *WebhookError {
	return &WebhookError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =====================================================
// ERROR CONSTRUCTORS
// =====================================================

func NewAuthMissingError(platformURL string) *WebhookError {
	return NewWebhookError(
		ErrCodeAuthMissing,
		fmt.Sprintf("Failed fetching auth data for %s, check your platform API URL", platformURL),
		ErrAuthMissing,
	)
}

func NewSourceVerificationError() *WebhookError {
	return NewWebhookError(
		ErrCodeSourceVerification,
		"Source verification failed",
		ErrSourceVerification,
	)
}

// NewUpstreamTransportError wraps a failed provider call. upstreamStatus is
// the provider's HTTP status, or 0 when the call never produced one.
func NewUpstreamTransportError(upstreamStatus int, err error) *WebhookError {
	e := NewWebhookError(
		ErrCodeUpstreamTransport,
		"Provider status fetch failed",
		ErrUpstreamTransport,
	)
	e.UpstreamStatus = upstreamStatus
	if err != nil {
		e.Err = fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}
	return e
}

func NewUnexpectedStatusError(provider, status string) *WebhookError {
	return NewWebhookError(
		ErrCodeUnexpectedStatus,
		fmt.Sprintf("Status %q received from %s is not expected, check the payment flow", status, provider),
		ErrUnexpectedStatus,
	)
}

func NewMissingFieldError(field string) *WebhookError {
	return NewWebhookError(
		ErrCodeMissingField,
		fmt.Sprintf("No value of %s found", field),
		ErrMissingField,
	)
}

func NewMalformedPayloadError(err error) *WebhookError {
	return NewWebhookError(
		ErrCodeMalformedPayload,
		"Deserialization error",
		fmt.Errorf("%w: %w", ErrMalformedPayload, err),
	)
}

func NewPlatformCallError(operation string, err error) *WebhookError {
	return NewWebhookError(
		ErrCodePlatformCall,
		fmt.Sprintf("Platform %s failed", operation),
		fmt.Errorf("%w: %w", ErrPlatformCall, err),
	)
}
