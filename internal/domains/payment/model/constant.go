package model

// =====================================================
// PAYMENT PROVIDERS
// =====================================================
const (
	ProviderJuspay      = "juspay"
	ProviderHyperswitch = "hyperswitch"
)

var ValidProviders = []string{
	ProviderJuspay,
	ProviderHyperswitch,
}

// =====================================================
// CANONICAL TRANSACTION EVENT TYPES
// =====================================================

// EventType is the platform-neutral transaction event taxonomy.
// Values use the platform's GraphQL enum spelling because they are
// reported verbatim in the transactionEventReport mutation.
type EventType string

const (
	EventAuthorizationSuccess        EventType = "AUTHORIZATION_SUCCESS"
	EventAuthorizationFailure        EventType = "AUTHORIZATION_FAILURE"
	EventAuthorizationActionRequired EventType = "AUTHORIZATION_ACTION_REQUIRED"
	EventChargeSuccess               EventType = "CHARGE_SUCCESS"
	EventChargeFailure               EventType = "CHARGE_FAILURE"
	EventChargeActionRequired        EventType = "CHARGE_ACTION_REQUIRED"
	EventCancelSuccess               EventType = "CANCEL_SUCCESS"
	EventCancelFailure               EventType = "CANCEL_FAILURE"
	EventRefundSuccess               EventType = "REFUND_SUCCESS"
	EventRefundFailure               EventType = "REFUND_FAILURE"
	EventRefundRequest               EventType = "REFUND_REQUEST"
)

// =====================================================
// TRANSACTION ACTIONS
// =====================================================

// Action is a follow-up operation the platform may perform on a transaction.
type Action string

const (
	ActionCancel Action = "CANCEL"
	ActionCharge Action = "CHARGE"
	ActionRefund Action = "REFUND"
)

// AvailableActions derives the actions the platform may take after an event
// of the given type has been reported.
func AvailableActions(eventType EventType) []Action {
	switch eventType {
	case EventAuthorizationSuccess:
		return []Action{ActionCancel, ActionCharge}
	case EventChargeSuccess:
		return []Action{ActionRefund}
	default:
		return []Action{}
	}
}

// =====================================================
// INTERNAL ERROR CODES
// =====================================================
const (
	ErrCodeAuthMissing        = "WBH001" // no stored auth context for platform URL
	ErrCodeSourceVerification = "WBH002" // webhook credentials mismatched
	ErrCodeUpstreamTransport  = "WBH003" // provider status fetch failed
	ErrCodeUnexpectedStatus   = "WBH004" // provider status outside known vocabulary
	ErrCodeMissingField       = "WBH005" // required field absent after reconciliation
	ErrCodeMalformedPayload   = "WBH006" // webhook body failed to parse
	ErrCodePlatformCall       = "WBH007" // platform query/mutation failed
	ErrCodeInternalError      = "WBH008"
)

// =====================================================
// WEBHOOK PROCESSING CONFIGURATION
// =====================================================
const (
	// Timeout for outbound provider and platform calls
	OutboundTimeoutSeconds = 30

	// Default currency reported when the provider omits one
	DefaultCurrency = "INR"
)
