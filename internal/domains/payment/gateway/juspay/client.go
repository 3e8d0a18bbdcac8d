package juspay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"ledger-bridge/internal/domains/payment/gateway"
	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// JUSPAY CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates new Juspay client
func NewClient(config *Config) (gateway.JuspayGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: model.OutboundTimeoutSeconds * time.Second,
		},
	}, nil
}

// orderStatusResponse is the raw Juspay order status payload
type orderStatusResponse struct {
	OrderID  string          `json:"order_id"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Refunds  []refundEntry   `json:"refunds"`
}

type refundEntry struct {
	UniqueRequestID string          `json:"unique_request_id"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
}

// =====================================================
// FETCH ORDER STATUS (reconciliation query)
// =====================================================

// FetchOrderStatus retrieves the authoritative order state from Juspay and
// normalizes it. The full refund list is preserved: the correlator needs all
// entries even when only one is relevant to the current webhook.
func (c *Client) FetchOrderStatus(
	ctx context.Context,
	orderID string,
) (*model.ReconciliationState, error) {
	// Step 1: Build request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.GetOrderStatusURL(orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.SetBasicAuth(c.config.Username, c.config.Password)
	httpReq.Header.Set("x-merchantid", c.config.MerchantID)
	httpReq.Header.Set("version", "2023-06-30")

	// Step 2: Call Juspay API
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// No provider status available; the caller falls back to 424
		return nil, model.NewUpstreamTransportError(0, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.NewUpstreamTransportError(0, err)
	}

	// Step 3: Check HTTP status
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, model.NewUpstreamTransportError(
			resp.StatusCode,
			fmt.Errorf("order status call returned %d: %s", resp.StatusCode, string(bodyBytes)),
		)
	}

	// Step 4: Parse response
	var raw orderStatusResponse
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order status response: %w", err)
	}

	if raw.Status == "" {
		return nil, model.NewMissingFieldError("status")
	}

	// Step 5: Normalize
	state := &model.ReconciliationState{
		OrderID:  raw.OrderID,
		Status:   raw.Status,
		Amount:   raw.Amount,
		Currency: raw.Currency,
		Refunds:  make([]model.RefundRecord, 0, len(raw.Refunds)),
	}
	if state.Currency == "" {
		state.Currency = model.DefaultCurrency
	}
	for _, r := range raw.Refunds {
		state.Refunds = append(state.Refunds, model.RefundRecord{
			UniqueRequestID: r.UniqueRequestID,
			Status:          r.Status,
			Amount:          r.Amount,
		})
	}

	return state, nil
}
