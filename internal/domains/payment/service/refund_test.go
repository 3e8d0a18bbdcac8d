package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-bridge/internal/domains/payment/gateway/juspay"
	"ledger-bridge/internal/domains/payment/model"
)

func TestCorrelateRefund_FirstSettledMatchWins(t *testing.T) {
	history := []model.TransactionEvent{
		{Type: model.EventChargeSuccess, PSPReference: "order-1"},
		{Type: model.EventRefundRequest, PSPReference: "req-1"},
		{Type: model.EventRefundRequest, PSPReference: "req-2"},
	}
	refunds := []model.RefundRecord{
		{UniqueRequestID: "req-1", Status: juspay.RefundStatusPending, Amount: decimal.NewFromInt(10)},
		{UniqueRequestID: "req-2", Status: "SUCCESS", Amount: decimal.NewFromInt(25)},
	}

	resolution, matched := correlateRefund(history, refunds)
	require.True(t, matched)
	assert.Equal(t, "req-2", resolution.PSPReference)
	assert.Equal(t, "SUCCESS", resolution.Status)
	assert.True(t, resolution.Amount.Equal(decimal.NewFromInt(25)))
}

func TestCorrelateRefund_PendingOnlyNoMatch(t *testing.T) {
	history := []model.TransactionEvent{
		{Type: model.EventRefundRequest, PSPReference: "req-1"},
	}
	refunds := []model.RefundRecord{
		{UniqueRequestID: "req-1", Status: juspay.RefundStatusPending},
	}

	_, matched := correlateRefund(history, refunds)
	assert.False(t, matched)
}

func TestCorrelateRefund_NoRequestEventsNoMatch(t *testing.T) {
	history := []model.TransactionEvent{
		{Type: model.EventChargeSuccess, PSPReference: "req-1"},
	}
	refunds := []model.RefundRecord{
		{UniqueRequestID: "req-1", Status: "SUCCESS"},
	}

	_, matched := correlateRefund(history, refunds)
	assert.False(t, matched)
}

func TestCorrelateRefund_HistoryOrderDecides(t *testing.T) {
	// Both requests have settled refunds; the earlier history entry wins.
	history := []model.TransactionEvent{
		{Type: model.EventRefundRequest, PSPReference: "req-b"},
		{Type: model.EventRefundRequest, PSPReference: "req-a"},
	}
	refunds := []model.RefundRecord{
		{UniqueRequestID: "req-a", Status: "SUCCESS", Amount: decimal.NewFromInt(1)},
		{UniqueRequestID: "req-b", Status: "FAILURE", Amount: decimal.NewFromInt(2)},
	}

	resolution, matched := correlateRefund(history, refunds)
	require.True(t, matched)
	assert.Equal(t, "req-b", resolution.PSPReference)
	assert.Equal(t, "FAILURE", resolution.Status)
}

func TestResolveRefund_AutoRefundedAggregate(t *testing.T) {
	state := &model.ReconciliationState{
		OrderID:  "order-1",
		Status:   juspay.StatusAutoRefunded,
		Amount:   decimal.NewFromInt(100),
		Currency: "INR",
	}

	tests := []struct {
		eventName  string
		wantStatus string
	}{
		{"AUTO_REFUND_INITIATED", juspay.StatusAutoRefundRequest},
		{"REFUND_MANUAL_REVIEW_NEEDED", juspay.StatusAutoRefundRequest},
		{"AUTO_REFUND_FAILED", juspay.StatusAutoRefundFailed},
		{"ORDER_REFUNDED", juspay.StatusAutoRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.eventName, func(t *testing.T) {
			resolution, matched := resolveRefund(tt.eventName, state, nil)
			require.True(t, matched)
			assert.Equal(t, tt.wantStatus, resolution.Status)
			assert.Equal(t, "order-1", resolution.PSPReference)
			assert.True(t, resolution.Amount.Equal(decimal.NewFromInt(100)))
		})
	}
}

func TestResolveRefund_NonAggregateFallsBackToCorrelation(t *testing.T) {
	state := &model.ReconciliationState{
		OrderID: "order-1",
		Status:  juspay.StatusCharged,
		Refunds: []model.RefundRecord{
			{UniqueRequestID: "req-1", Status: "SUCCESS", Amount: decimal.NewFromInt(30)},
		},
	}
	history := []model.TransactionEvent{
		{Type: model.EventRefundRequest, PSPReference: "req-1"},
	}

	resolution, matched := resolveRefund("ORDER_REFUNDED", state, history)
	require.True(t, matched)
	assert.Equal(t, "req-1", resolution.PSPReference)
	assert.Equal(t, "SUCCESS", resolution.Status)
}
