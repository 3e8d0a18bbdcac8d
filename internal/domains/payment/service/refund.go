package service

import (
	"github.com/shopspring/decimal"

	"ledger-bridge/internal/domains/payment/gateway/juspay"
	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// REFUND CORRELATION
// =====================================================

// refundResolution identifies the refund a webhook invocation should report:
// the amount and reference to send, and the provider status to map.
type refundResolution struct {
	Amount       decimal.Decimal
	PSPReference string
	Status       string
	Message      string
}

// correlateRefund matches a refund webhook to the specific provider refund it
// concerns. The scan is ordered: for each REFUND_REQUEST event in the ledger
// history, look for the provider refund whose unique_request_id equals the
// event's pspReference and whose status is no longer PENDING. The first such
// pair wins.
//
// No match means the provider has not yet settled any correlated refund; the
// invocation reports nothing and the provider is expected to redeliver.
func correlateRefund(
	history []model.TransactionEvent,
	refunds []model.RefundRecord,
) (*refundResolution, bool) {
	for _, event := range history {
		if event.Type != model.EventRefundRequest {
			continue
		}
		for _, refund := range refunds {
			if refund.UniqueRequestID == event.PSPReference && refund.Status != juspay.RefundStatusPending {
				return &refundResolution{
					Amount:       refund.Amount,
					PSPReference: refund.UniqueRequestID,
					Status:       refund.Status,
				}, true
			}
		}
	}
	return nil, false
}

// resolveRefund produces the refund to report for a refund webhook.
//
// When the aggregate order status is AUTO_REFUNDED the provider refunded the
// order as a whole (no platform-side refund request to correlate with), so
// the aggregate amount and order reference are reported directly; the status
// to map is derived from the webhook event name, since the aggregate status
// alone cannot distinguish a refund request from a completed or failed one.
func resolveRefund(
	eventName string,
	state *model.ReconciliationState,
	history []model.TransactionEvent,
) (*refundResolution, bool) {
	if state.Status == juspay.StatusAutoRefunded {
		resolution := &refundResolution{
			Amount:       state.Amount,
			PSPReference: state.OrderID,
			Message:      eventName,
		}
		switch eventName {
		case "AUTO_REFUND_INITIATED", "REFUND_MANUAL_REVIEW_NEEDED":
			resolution.Status = juspay.StatusAutoRefundRequest
		case "AUTO_REFUND_FAILED":
			resolution.Status = juspay.StatusAutoRefundFailed
		default:
			resolution.Status = state.Status
		}
		return resolution, true
	}

	return correlateRefund(history, state.Refunds)
}
