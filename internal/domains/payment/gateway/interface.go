package gateway

import (
	"context"

	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// GATEWAY INTERFACES
// =====================================================

// JuspayGateway interface for Juspay provider integration
type JuspayGateway interface {
	// FetchOrderStatus performs the synchronous reconciliation query and
	// normalizes the provider response
	FetchOrderStatus(ctx context.Context, orderID string) (*model.ReconciliationState, error)
}

// HyperswitchGateway interface for Hyperswitch provider integration
type HyperswitchGateway interface {
	// CancelPayment requests cancelation of a payment
	CancelPayment(ctx context.Context, req CancelPaymentRequest) (*CancelPaymentResponse, error)
}

// =====================================================
// COMMON REQUEST/RESPONSE TYPES
// =====================================================

// CancelPaymentRequest request to cancel a Hyperswitch payment
type CancelPaymentRequest struct {
	PaymentID      string // Provider-side payment identifier
	ChannelID      string // Platform channel the transaction belongs to
	TransactionID  string // Platform transaction identifier
	PlatformAPIURL string // Platform API URL, echoed back as metadata
}

// CancelPaymentResponse normalized response from the cancel call
type CancelPaymentResponse struct {
	PaymentID string // Provider payment identifier
	Status    string // Raw provider status string
	Amount    int64  // Amount in the currency's minor units
	Currency  string // ISO 4217 currency code
}
