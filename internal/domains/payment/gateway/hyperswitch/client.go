package hyperswitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ledger-bridge/internal/domains/payment/gateway"
	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// HYPERSWITCH CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates new Hyperswitch client
func NewClient(config *Config) (gateway.HyperswitchGateway, error) {
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

// paymentResponse is the raw Hyperswitch payment payload
type paymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// =====================================================
// CANCEL PAYMENT
// =====================================================

// CancelPayment requests cancelation of a payment. The platform coordinates
// are attached as metadata so Hyperswitch webhooks can be routed back.
func (c *Client) CancelPayment(
	ctx context.Context,
	req gateway.CancelPaymentRequest,
) (*gateway.CancelPaymentResponse, error) {
	// Step 1: Build request body
	requestBody := map[string]interface{}{
		"cancellation_reason": "requested_by_customer",
		"metadata": map[string]string{
			"channel_id":       req.ChannelID,
			"transaction_id":   req.TransactionID,
			"platform_api_url": req.PlatformAPIURL,
		},
	}

	bodyJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.GetCancelURL(req.PaymentID),
		bytes.NewReader(bodyJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.config.APIKey)

	// Step 2: Call Hyperswitch API
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
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
			fmt.Errorf("cancel call returned %d: %s", resp.StatusCode, string(bodyBytes)),
		)
	}

	// Step 4: Parse response
	var raw paymentResponse
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment response: %w", err)
	}

	if raw.Status == "" {
		return nil, model.NewMissingFieldError("status")
	}

	return &gateway.CancelPaymentResponse{
		PaymentID: raw.PaymentID,
		Status:    raw.Status,
		Amount:    raw.Amount,
		Currency:  raw.Currency,
	}, nil
}
