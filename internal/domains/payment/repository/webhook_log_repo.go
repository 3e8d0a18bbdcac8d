package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// WEBHOOK LOG REPOSITORY IMPLEMENTATION
// =====================================================

type webhookLogRepository struct {
	pool *pgxpool.Pool
}

// NewWebhookLogRepository creates the pgx-backed webhook audit repository
func NewWebhookLogRepository(pool *pgxpool.Pool) WebhookLogRepository {
	return &webhookLogRepository{pool: pool}
}

// Create records a webhook immediately on receipt, before processing
func (r *webhookLogRepository) Create(ctx context.Context, log *model.WebhookLog) error {
	query := `
		INSERT INTO webhook_logs (
			id, provider, webhook_event, transaction_id,
			body, is_verified, is_processed, processing_error, received_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	bodyJSON, err := json.Marshal(log.Body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		log.ID,
		log.Provider,
		log.WebhookEvent,
		log.TransactionID,
		bodyJSON,
		log.IsVerified,
		log.IsProcessed,
		log.ProcessingError,
		log.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create webhook log: %w", err)
	}

	return nil
}

// SetVerified records the source verification result
func (r *webhookLogRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `
		UPDATE webhook_logs
		SET is_verified = $2
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, id, verified); err != nil {
		return fmt.Errorf("failed to set webhook verification result: %w", err)
	}
	return nil
}

// MarkProcessed marks a webhook log entry as processed
func (r *webhookLogRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE webhook_logs
		SET is_processed = true, processed_at = NOW()
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark webhook as processed: %w", err)
	}
	return nil
}

// MarkProcessingError records a processing failure on a webhook log entry
func (r *webhookLogRepository) MarkProcessingError(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE webhook_logs
		SET processing_error = $2
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, id, errMsg); err != nil {
		return fmt.Errorf("failed to record webhook processing error: %w", err)
	}
	return nil
}
