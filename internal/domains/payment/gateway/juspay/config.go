package juspay

import (
	"fmt"
)

// =====================================================
// JUSPAY CONFIGURATION
// =====================================================

type Config struct {
	Username   string // API username (also the expected webhook basic-auth user)
	Password   string // API password / key
	MerchantID string // Merchant identifier (provided by Juspay)
	APIUrl     string // Juspay API base URL
}

// NewConfig creates Juspay configuration
func NewConfig(username, password, merchantID, apiURL string) *Config {
	return &Config{
		Username:   username,
		Password:   password,
		MerchantID: merchantID,
		APIUrl:     apiURL,
	}
}

// Validate validates configuration
func (c *Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("Juspay Username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("Juspay Password is required")
	}
	if c.MerchantID == "" {
		return fmt.Errorf("Juspay MerchantID is required")
	}
	if c.APIUrl == "" {
		return fmt.Errorf("Juspay APIUrl is required")
	}
	return nil
}

// GetOrderStatusURL returns the order status endpoint for an order
func (c *Config) GetOrderStatusURL(orderID string) string {
	return fmt.Sprintf("%s/orders/%s", c.APIUrl, orderID)
}

// =====================================================
// JUSPAY ORDER STATUS VOCABULARY
// =====================================================

const (
	StatusSuccess               = "SUCCESS"
	StatusCharged               = "CHARGED"
	StatusCODInitiated          = "COD_INITIATED"
	StatusAutoRefunded          = "AUTO_REFUNDED"
	StatusAutoRefundRequest     = "AUTO_REFUND_REQUEST"
	StatusAutoRefundFailed      = "AUTO_REFUND_FAILED"
	StatusDeclined              = "DECLINED"
	StatusError                 = "ERROR"
	StatusNotFound              = "NOT_FOUND"
	StatusCaptureFailed         = "CAPTURE_FAILED"
	StatusAuthorizationFailed   = "AUTHORIZATION_FAILED"
	StatusAuthenticationFailed  = "AUTHENTICATION_FAILED"
	StatusJuspayDeclined        = "JUSPAY_DECLINED"
	StatusFailure               = "FAILURE"
	StatusVoidFailed            = "VOID_FAILED"
	StatusPartialCharged        = "PARTIAL_CHARGED"
	StatusAuthorized            = "AUTHORIZED"
	StatusCaptureInitiated      = "CAPTURE_INITIATED"
	StatusVoided                = "VOIDED"
	StatusPendingAuthentication = "PENDING_AUTHENTICATION"
	StatusPendingVBV            = "PENDING_VBV"
	StatusAuthorizing           = "AUTHORIZING"

	// Refund record status that marks a refund as not yet settled
	RefundStatusPending = "PENDING"
)

// =====================================================
// CAPTURE METHOD
// =====================================================

// CaptureMethod is the settlement configuration of an order. Manual capture
// means an authorization is terminal until a follow-up charge.
type CaptureMethod string

const (
	CaptureMethodManual    CaptureMethod = "manual"
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodUnset     CaptureMethod = ""
)

// ParseCaptureMethod normalizes the capture method carried in UDF3.
// Anything other than "manual" or "automatic" is treated as unset.
func ParseCaptureMethod(raw string) CaptureMethod {
	switch CaptureMethod(raw) {
	case CaptureMethodManual:
		return CaptureMethodManual
	case CaptureMethodAutomatic:
		return CaptureMethodAutomatic
	default:
		return CaptureMethodUnset
	}
}
