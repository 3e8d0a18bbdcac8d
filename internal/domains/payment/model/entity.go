package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// WEBHOOK ENVELOPE
// =====================================================

// WebhookEnvelope is a raw inbound notification. It lives only for the
// duration of one request; the body is kept as raw bytes so credential
// checks can run before anything is trusted or parsed.
type WebhookEnvelope struct {
	Provider   string
	AuthHeader string
	Body       []byte
}

// =====================================================
// RECONCILIATION STATE
// =====================================================

// ReconciliationState is the authoritative provider-side snapshot fetched by
// the synchronous status query. It is built fresh for every webhook and never
// cached: the webhook body only locates the transaction, the provider's
// current answer is the source of truth.
type ReconciliationState struct {
	OrderID  string
	Status   string
	Amount   decimal.Decimal
	Currency string
	Refunds  []RefundRecord
}

// RefundRecord is one refund attempt known to the provider.
// UniqueRequestID ties it back to a previously reported REFUND_REQUEST event.
type RefundRecord struct {
	UniqueRequestID string
	Status          string
	Amount          decimal.Decimal
}

// =====================================================
// CANONICAL EVENT
// =====================================================

// CanonicalEvent is the engine's sole output per processed webhook.
// Exactly one is reported to the ledger per logical state change; an
// intentionally ignored webhook produces none.
type CanonicalEvent struct {
	Type             EventType
	PSPReference     string
	Amount           decimal.Decimal
	Message          string
	AvailableActions []Action
	Time             time.Time
}

// =====================================================
// TRANSACTION EVENT HISTORY
// =====================================================

// TransactionEvent is a previously reported platform-side event for a
// transaction, as returned by the ledger. Read-only to this engine.
type TransactionEvent struct {
	Type         EventType
	PSPReference string
}

// =====================================================
// WEBHOOK AUDIT LOG
// =====================================================

// WebhookLog is the audit record persisted for every inbound webhook.
// Write-only telemetry: reconciliation decisions never read it back.
type WebhookLog struct {
	ID              uuid.UUID
	Provider        string
	WebhookEvent    string
	TransactionID   *string
	Body            map[string]interface{}
	IsVerified      *bool
	IsProcessed     bool
	ProcessingError *string
	ReceivedAt      time.Time
}
