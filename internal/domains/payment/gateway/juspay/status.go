package juspay

import (
	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// JUSPAY STATUS MAPPING
// =====================================================

// MapOrderStatus translates a Juspay order status into the canonical
// transaction event type. It is a pure function of its inputs:
//
//   - isRefund: the webhook event that triggered reconciliation is a refund
//     event, so terminal statuses describe the refund, not the charge
//   - captureMethod: with manual capture an "authorized" order is terminal
//     and failures before capture are authorization failures
//   - isChargeFlow: an AUTHORIZATION_SUCCESS was already reported, so a later
//     failure belongs to the charge step even under manual capture
//
// A status outside the known vocabulary is a hard error, never a default:
// silently coercing it would corrupt the ledger.
func MapOrderStatus(
	status string,
	isRefund bool,
	captureMethod CaptureMethod,
	isChargeFlow bool,
) (model.EventType, error) {
	switch status {
	case StatusSuccess, StatusCharged, StatusCODInitiated, StatusAutoRefunded:
		if isRefund {
			return model.EventRefundSuccess, nil
		}
		return model.EventChargeSuccess, nil

	case StatusAutoRefundRequest:
		return model.EventRefundRequest, nil

	case StatusAutoRefundFailed:
		return model.EventRefundFailure, nil

	case StatusDeclined, StatusError, StatusNotFound, StatusCaptureFailed,
		StatusAuthorizationFailed, StatusAuthenticationFailed,
		StatusJuspayDeclined, StatusFailure:
		if isRefund {
			return model.EventRefundFailure, nil
		}
		if captureMethod == CaptureMethodManual && !isChargeFlow {
			return model.EventAuthorizationFailure, nil
		}
		return model.EventChargeFailure, nil

	case StatusVoidFailed:
		return model.EventCancelFailure, nil

	case StatusPartialCharged:
		return model.EventChargeSuccess, nil

	case StatusAuthorized, StatusCaptureInitiated:
		return model.EventAuthorizationSuccess, nil

	case StatusVoided:
		return model.EventCancelSuccess, nil

	case StatusPendingAuthentication, StatusPendingVBV, StatusAuthorizing:
		if captureMethod == CaptureMethodManual {
			return model.EventAuthorizationActionRequired, nil
		}
		return model.EventChargeActionRequired, nil

	default:
		return "", model.NewUnexpectedStatusError(model.ProviderJuspay, status)
	}
}
