package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-bridge/internal/domains/payment/model"
)

func decodeGraphQLRequest(t *testing.T, r *http.Request) (query string, variables map[string]interface{}) {
	t.Helper()
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body.Query, body.Variables
}

func TestGetTransactionByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))

		query, variables := decodeGraphQLRequest(t, r)
		assert.Contains(t, query, "transaction(id: $transactionId)")
		assert.Equal(t, "txn-1", variables["transactionId"])

		_, _ = w.Write([]byte(`{
			"data": {
				"transaction": {
					"id": "txn-1",
					"events": [
						{"type": "AUTHORIZATION_SUCCESS", "pspReference": "order-1"},
						{"type": "REFUND_REQUEST", "pspReference": "req-1"}
					],
					"checkout": {"channel": {"id": "channel-1"}}
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	auth := &AuthData{APIURL: server.URL, Token: "app-token"}

	tx, err := client.GetTransactionByID(context.Background(), auth, "txn-1")
	require.NoError(t, err)

	assert.Equal(t, "txn-1", tx.ID)
	assert.Equal(t, "channel-1", tx.ChannelID)
	require.Len(t, tx.Events, 2)
	assert.Equal(t, model.EventAuthorizationSuccess, tx.Events[0].Type)
	assert.Equal(t, "req-1", tx.Events[1].PSPReference)
}

func TestGetTransactionByID_OrderFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"transaction": {
					"id": "txn-1",
					"events": [],
					"order": {"channel": {"id": "channel-2"}}
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	tx, err := client.GetTransactionByID(context.Background(), &AuthData{APIURL: server.URL}, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "channel-2", tx.ChannelID)
}

func TestGetTransactionByID_NoSourceObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"transaction": {"id": "txn-1", "events": []}}}`))
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.GetTransactionByID(context.Background(), &AuthData{APIURL: server.URL}, "txn-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMissingField)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"transaction": null}}`))
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.GetTransactionByID(context.Background(), &AuthData{APIURL: server.URL}, "txn-missing")
	assert.Error(t, err)
}

func TestGetTransactionByID_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "permission denied"}]}`))
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.GetTransactionByID(context.Background(), &AuthData{APIURL: server.URL}, "txn-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestReportTransactionEvent(t *testing.T) {
	reportTime := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, variables := decodeGraphQLRequest(t, r)
		assert.Contains(t, query, "transactionEventReport(")

		assert.Equal(t, "txn-1", variables["transactionId"])
		assert.Equal(t, "AUTHORIZATION_SUCCESS", variables["type"])
		assert.Equal(t, "order-1", variables["pspReference"])
		assert.Equal(t, "ORDER_AUTHORIZED", variables["message"])
		assert.Equal(t, "2026-08-29T12:00:00Z", variables["time"])
		assert.Equal(t, []interface{}{"CANCEL", "CHARGE"}, variables["availableActions"])

		_, _ = w.Write([]byte(`{"data": {"transactionEventReport": {"alreadyProcessed": false, "errors": []}}}`))
	}))
	defer server.Close()

	client := NewClient()
	err := client.ReportTransactionEvent(context.Background(), &AuthData{APIURL: server.URL}, EventReport{
		TransactionID:    "txn-1",
		Type:             model.EventAuthorizationSuccess,
		PSPReference:     "order-1",
		Amount:           decimal.NewFromInt(100),
		AvailableActions: []model.Action{model.ActionCancel, model.ActionCharge},
		Message:          "ORDER_AUTHORIZED",
		Time:             reportTime,
	})
	require.NoError(t, err)
}

func TestReportTransactionEvent_MutationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"transactionEventReport": {
					"alreadyProcessed": false,
					"errors": [{"message": "invalid psp reference", "code": "INVALID"}]
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	err := client.ReportTransactionEvent(context.Background(), &AuthData{APIURL: server.URL}, EventReport{
		TransactionID: "txn-1",
		Type:          model.EventChargeSuccess,
		PSPReference:  "order-1",
		Amount:        decimal.NewFromInt(100),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid psp reference")
}

func TestReportTransactionEvent_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient()
	err := client.ReportTransactionEvent(context.Background(), &AuthData{APIURL: server.URL}, EventReport{
		TransactionID: "txn-1",
		Type:          model.EventChargeSuccess,
	})
	assert.Error(t, err)
}

func TestStaticAuthStore(t *testing.T) {
	store := NewStaticAuthStore(map[string]string{
		"https://platform.example/graphql/": "token-1",
	})

	auth, ok := store.Get("https://platform.example/graphql/")
	require.True(t, ok)
	assert.Equal(t, "token-1", auth.Token)
	assert.Equal(t, "https://platform.example/graphql/", auth.APIURL)

	_, ok = store.Get("https://unknown.example/")
	assert.False(t, ok)
}
