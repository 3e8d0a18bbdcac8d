package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// JUSPAY WEBHOOK PAYLOAD
// =====================================================

// JuspayWebhookRequest is the notification body Juspay posts to the webhook
// endpoint. Only identifiers and context flags are read from it; the order
// status it carries is never trusted as final (see ReconciliationState).
type JuspayWebhookRequest struct {
	EventName string               `json:"event_name"`
	Content   JuspayWebhookContent `json:"content"`
}

type JuspayWebhookContent struct {
	Order JuspayWebhookOrder `json:"order"`
}

// JuspayWebhookOrder carries the order payload of a Juspay notification.
// UDF1/UDF2 hold the base64-encoded platform transaction id and API URL set
// at order creation; UDF3 holds the configured capture method.
type JuspayWebhookOrder struct {
	OrderID   string           `json:"order_id"`
	Status    string           `json:"status"`
	Amount    decimal.Decimal  `json:"amount"`
	UDF1      string           `json:"udf1"`
	UDF2      string           `json:"udf2"`
	UDF3      string           `json:"udf3"`
	TxnDetail *JuspayTxnDetail `json:"txn_detail,omitempty"`
}

type JuspayTxnDetail struct {
	ErrorMessage string `json:"error_message"`
}

// Validate validates the webhook payload shape
func (r JuspayWebhookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.EventName, validation.Required),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&r.Content.Order,
		validation.Field(&r.Content.Order.OrderID, validation.Required),
		validation.Field(&r.Content.Order.UDF1, validation.Required),
		validation.Field(&r.Content.Order.UDF2, validation.Required),
	)
}

// =====================================================
// JUSPAY WEBHOOK EVENT VOCABULARY
// =====================================================

var juspaySupportedEvents = map[string]bool{
	"ORDER_SUCCEEDED":             true,
	"ORDER_FAILED":                true,
	"ORDER_AUTHORIZED":            true,
	"ORDER_VOIDED":                true,
	"ORDER_VOID_FAILED":           true,
	"ORDER_REFUNDED":              true,
	"ORDER_REFUND_FAILED":         true,
	"AUTO_REFUND_INITIATED":       true,
	"AUTO_REFUND_FAILED":          true,
	"REFUND_MANUAL_REVIEW_NEEDED": true,
}

var juspayRefundEvents = map[string]bool{
	"ORDER_REFUNDED":              true,
	"ORDER_REFUND_FAILED":         true,
	"AUTO_REFUND_INITIATED":       true,
	"AUTO_REFUND_FAILED":          true,
	"REFUND_MANUAL_REVIEW_NEEDED": true,
}

// IsJuspaySupportedEvent reports whether the webhook event is one the engine
// processes. Unsupported events are acknowledged and ignored.
func IsJuspaySupportedEvent(eventName string) bool {
	return juspaySupportedEvents[eventName]
}

// IsJuspayRefundEvent reports whether the webhook event relates to a refund.
func IsJuspayRefundEvent(eventName string) bool {
	return juspayRefundEvents[eventName]
}

// =====================================================
// CANCELATION REQUEST (platform sync webhook)
// =====================================================

// CancelationRequest is the platform's transaction-cancelation-requested
// sync webhook payload, reduced to the fields this engine consumes.
type CancelationRequest struct {
	TransactionID  string `json:"transaction_id"`
	PSPReference   string `json:"psp_reference"`
	ChannelID      string `json:"channel_id"`
	PlatformAPIURL string `json:"platform_api_url"`
}

// Validate validates the cancelation request
func (r CancelationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionID, validation.Required),
		validation.Field(&r.PSPReference, validation.Required),
		validation.Field(&r.ChannelID, validation.Required),
	)
}

// CancelationResponse is the sync response body. Result is empty while the
// provider still reports the cancelation as processing.
type CancelationResponse struct {
	PSPReference string           `json:"pspReference"`
	Result       EventType        `json:"result,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Message      string           `json:"message,omitempty"`
}
