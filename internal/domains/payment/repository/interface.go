package repository

import (
	"context"

	"github.com/google/uuid"

	"ledger-bridge/internal/domains/payment/model"
)

// WebhookLogRepository persists the audit trail of inbound webhooks.
// Strictly write-only from the engine's point of view: processing decisions
// never read the log, so a failed insert only costs audit coverage.
type WebhookLogRepository interface {
	// Create records a webhook as received
	Create(ctx context.Context, log *model.WebhookLog) error

	// SetVerified records the source verification result for a webhook
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// MarkProcessed marks a webhook as fully processed
	MarkProcessed(ctx context.Context, id uuid.UUID) error

	// MarkProcessingError records a processing failure for a webhook
	MarkProcessingError(ctx context.Context, id uuid.UUID, errMsg string) error
}
