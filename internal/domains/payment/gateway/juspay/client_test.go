package juspay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-bridge/internal/domains/payment/model"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := NewClient(&Config{
		Username:   "merchant",
		Password:   "s3cret",
		MerchantID: "merchant_id",
		APIUrl:     serverURL,
	})
	require.NoError(t, err)
	return c.(*Client)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{Username: "merchant"})
	assert.Error(t, err)
}

func TestFetchOrderStatus_NormalizesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "merchant", username)
		assert.Equal(t, "s3cret", password)
		assert.Equal(t, "merchant_id", r.Header.Get("x-merchantid"))
		assert.Equal(t, "2023-06-30", r.Header.Get("version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"order_id": "order-123",
			"status": "CHARGED",
			"amount": 149.99,
			"currency": "INR",
			"refunds": [
				{"unique_request_id": "req-1", "status": "PENDING", "amount": 10},
				{"unique_request_id": "req-2", "status": "SUCCESS", "amount": 25.5}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	state, err := client.FetchOrderStatus(context.Background(), "order-123")
	require.NoError(t, err)

	assert.Equal(t, "order-123", state.OrderID)
	assert.Equal(t, StatusCharged, state.Status)
	assert.True(t, state.Amount.Equal(decimal.NewFromFloat(149.99)))
	assert.Equal(t, "INR", state.Currency)

	require.Len(t, state.Refunds, 2)
	assert.Equal(t, "req-1", state.Refunds[0].UniqueRequestID)
	assert.Equal(t, RefundStatusPending, state.Refunds[0].Status)
	assert.Equal(t, "req-2", state.Refunds[1].UniqueRequestID)
	assert.True(t, state.Refunds[1].Amount.Equal(decimal.NewFromFloat(25.5)))
}

func TestFetchOrderStatus_DefaultsCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"order_id": "order-123", "status": "CHARGED", "amount": 100}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	state, err := client.FetchOrderStatus(context.Background(), "order-123")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCurrency, state.Currency)
	assert.Empty(t, state.Refunds)
}

func TestFetchOrderStatus_MissingStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"order_id": "order-123", "amount": 100}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchOrderStatus(context.Background(), "order-123")
	require.Error(t, err)

	var webhookErr *model.WebhookError
	require.True(t, errors.As(err, &webhookErr))
	assert.Equal(t, model.ErrCodeMissingField, webhookErr.Code)
}

func TestFetchOrderStatus_UpstreamErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchOrderStatus(context.Background(), "order-123")
	require.Error(t, err)

	var webhookErr *model.WebhookError
	require.True(t, errors.As(err, &webhookErr))
	assert.Equal(t, model.ErrCodeUpstreamTransport, webhookErr.Code)
	assert.Equal(t, http.StatusUnauthorized, webhookErr.UpstreamStatus)
}

func TestFetchOrderStatus_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(t, server.URL)

	_, err := client.FetchOrderStatus(context.Background(), "order-123")
	require.Error(t, err)

	var webhookErr *model.WebhookError
	require.True(t, errors.As(err, &webhookErr))
	assert.Equal(t, model.ErrCodeUpstreamTransport, webhookErr.Code)
	assert.Zero(t, webhookErr.UpstreamStatus)
}
