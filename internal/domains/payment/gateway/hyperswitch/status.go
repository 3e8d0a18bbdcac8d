package hyperswitch

import (
	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// HYPERSWITCH CANCEL STATUS MAPPING
// =====================================================

// MapCancelStatus translates a Hyperswitch payment status after a cancel call
// into a canonical event type. The outcome is three-way:
//
//   - "cancelled" and "failed" map to terminal cancel events (ok = true)
//   - "processing" yields no event (ok = false): the cancelation is still
//     pending on the provider side and must not be reported as either outcome
//   - any other status is a hard error
func MapCancelStatus(status string) (model.EventType, bool, error) {
	switch status {
	case StatusCancelled:
		return model.EventCancelSuccess, true, nil
	case StatusFailed:
		return model.EventCancelFailure, true, nil
	case StatusProcessing:
		return "", false, nil
	default:
		return "", false, model.NewUnexpectedStatusError(model.ProviderHyperswitch, status)
	}
}
