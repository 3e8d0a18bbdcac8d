package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ledger-bridge/internal/domains/payment/gateway"
	"ledger-bridge/internal/domains/payment/gateway/juspay"
	"ledger-bridge/internal/domains/payment/model"
	"ledger-bridge/internal/domains/payment/repository"
	"ledger-bridge/internal/infrastructure/platform"
	"ledger-bridge/pkg/logger"
)

// =====================================================
// WEBHOOK SERVICE IMPLEMENTATION
// =====================================================

type webhookService struct {
	juspayGateway gateway.JuspayGateway
	ledger        platform.Ledger
	authStore     platform.AuthStore
	credentials   CredentialStore

	// Optional audit trail; nil disables webhook logging
	webhookLogs repository.WebhookLogRepository
}

func NewWebhookService(
	juspayGateway gateway.JuspayGateway,
	ledger platform.Ledger,
	authStore platform.AuthStore,
	credentials CredentialStore,
	webhookLogs repository.WebhookLogRepository,
) WebhookService {
	return &webhookService{
		juspayGateway: juspayGateway,
		ledger:        ledger,
		authStore:     authStore,
		credentials:   credentials,
		webhookLogs:   webhookLogs,
	}
}

// =====================================================
// PROCESS JUSPAY WEBHOOK
// =====================================================

// ProcessJuspayWebhook handles one Juspay notification end to end.
//
// Business Logic Flow:
//  1. Parse the raw body; unsupported event types are acknowledged and ignored
//  2. Decode the base64 platform identifiers from the user-defined fields
//  3. Resolve the stored auth context for the platform installation
//  4. Fetch the transaction history from the ledger (also yields the channel)
//  5. Verify the webhook source against channel-scoped credentials
//  6. Reconcile: fetch the authoritative order state from Juspay
//  7. For refund events, correlate the concrete refund record
//  8. Map the provider status to the canonical event type
//  9. Report exactly one canonical event to the ledger
//
// The webhook body is used only to locate the transaction and supply context
// flags; the reconciliation response is the status source of truth. Duplicate
// deliveries converge because every invocation re-queries that state.
func (s *webhookService) ProcessJuspayWebhook(
	ctx context.Context,
	envelope model.WebhookEnvelope,
) (*JuspayWebhookOutcome, error) {
	// Step 1: Parse body
	var webhookBody model.JuspayWebhookRequest
	if err := json.Unmarshal(envelope.Body, &webhookBody); err != nil {
		return nil, model.NewMalformedPayloadError(err)
	}

	eventName := webhookBody.EventName
	if !model.IsJuspaySupportedEvent(eventName) {
		logger.Info("Ignoring unsupported Juspay event", map[string]interface{}{
			"event_name": eventName,
		})
		return &JuspayWebhookOutcome{Ignored: true}, nil
	}

	if err := webhookBody.Validate(); err != nil {
		return nil, model.NewMalformedPayloadError(err)
	}

	order := webhookBody.Content.Order

	// Step 2: Decode platform identifiers
	identifiers, err := model.DecodeWebhookIdentifiers(order.UDF1, order.UDF2)
	if err != nil {
		return nil, model.NewMalformedPayloadError(err)
	}

	auditID := s.auditReceived(ctx, envelope, eventName, identifiers.TransactionID)

	// Step 3: Resolve auth context for the installation
	authData, ok := s.authStore.Get(identifiers.PlatformAPIURL)
	if !ok {
		return nil, s.failAudit(ctx, auditID, model.NewAuthMissingError(identifiers.PlatformAPIURL))
	}

	// Step 4: Fetch transaction history from the ledger
	transaction, err := s.ledger.GetTransactionByID(ctx, authData, identifiers.TransactionID)
	if err != nil {
		return nil, s.failAudit(ctx, auditID, model.NewPlatformCallError("transaction query", err))
	}

	isChargeFlow := hasAuthorizationSuccess(transaction.Events)

	// Step 5: Verify webhook source (channel-scoped credentials)
	creds, err := s.credentials.GetJuspayCredentials(ctx, transaction.ChannelID)
	if err != nil {
		return nil, s.failAudit(ctx, auditID, err)
	}
	if !juspay.VerifyWebhookSource(envelope.AuthHeader, creds.Username, creds.Password) {
		verErr := model.NewSourceVerificationError()
		s.auditVerified(ctx, auditID, false)
		return nil, s.failAudit(ctx, auditID, verErr)
	}
	s.auditVerified(ctx, auditID, true)

	// Step 6: Reconciliation query
	state, err := s.juspayGateway.FetchOrderStatus(ctx, order.OrderID)
	if err != nil {
		return nil, s.failAudit(ctx, auditID, err)
	}

	// Step 7: Resolve what to report
	isRefund := model.IsJuspayRefundEvent(eventName)

	resolution := &refundResolution{
		Amount:       state.Amount,
		PSPReference: state.OrderID,
		Status:       state.Status,
	}
	if isRefund {
		refund, matched := resolveRefund(eventName, state, transaction.Events)
		if !matched {
			// No settled refund correlates with this webhook yet; report
			// nothing and wait for the provider to redeliver.
			logger.Info("No correlated refund settled yet, awaiting redelivery", map[string]interface{}{
				"order_id":       order.OrderID,
				"transaction_id": identifiers.TransactionID,
			})
			s.auditProcessed(ctx, auditID)
			return &JuspayWebhookOutcome{Ignored: true}, nil
		}
		resolution = refund
	}

	if resolution.PSPReference == "" {
		return nil, s.failAudit(ctx, auditID, model.NewMissingFieldError("pspReference"))
	}
	if resolution.Status == "" {
		return nil, s.failAudit(ctx, auditID, model.NewMissingFieldError("status"))
	}

	// Step 8: Map provider status to canonical event type
	captureMethod := juspay.ParseCaptureMethod(order.UDF3)
	eventType, err := juspay.MapOrderStatus(resolution.Status, isRefund, captureMethod, isChargeFlow)
	if err != nil {
		return nil, s.failAudit(ctx, auditID, err)
	}

	// Step 9: Build and report the canonical event
	message := eventName
	if order.TxnDetail != nil && order.TxnDetail.ErrorMessage != "" {
		message = order.TxnDetail.ErrorMessage
	}

	event := &model.CanonicalEvent{
		Type:             eventType,
		PSPReference:     resolution.PSPReference,
		Amount:           resolution.Amount,
		Message:          message,
		AvailableActions: model.AvailableActions(eventType),
		Time:             time.Now(),
	}

	err = s.ledger.ReportTransactionEvent(ctx, authData, platform.EventReport{
		TransactionID:    identifiers.TransactionID,
		Type:             event.Type,
		PSPReference:     event.PSPReference,
		Amount:           event.Amount,
		AvailableActions: event.AvailableActions,
		Message:          event.Message,
		Time:             event.Time,
		ExternalURL:      "",
	})
	if err != nil {
		return nil, s.failAudit(ctx, auditID, model.NewPlatformCallError("event report", err))
	}

	logger.Info("Reported canonical event to ledger", map[string]interface{}{
		"transaction_id": identifiers.TransactionID,
		"event_type":     string(event.Type),
		"psp_reference":  event.PSPReference,
	})
	s.auditProcessed(ctx, auditID)

	return &JuspayWebhookOutcome{Event: event}, nil
}

// hasAuthorizationSuccess reports whether an authorization already completed
// for this transaction, which turns a later failure into a charge failure
// even under manual capture.
func hasAuthorizationSuccess(events []model.TransactionEvent) bool {
	for _, event := range events {
		if event.Type == model.EventAuthorizationSuccess {
			return true
		}
	}
	return false
}

// =====================================================
// AUDIT HELPERS
// =====================================================

// auditReceived records the webhook on receipt. Audit failures are logged
// and swallowed; the trail must never interfere with processing.
func (s *webhookService) auditReceived(
	ctx context.Context,
	envelope model.WebhookEnvelope,
	eventName, transactionID string,
) uuid.UUID {
	id := uuid.New()
	if s.webhookLogs == nil {
		return id
	}

	var body map[string]interface{}
	// Body already parsed once; failure here cannot happen for a processed
	// webhook but the audit entry is still written without it.
	_ = json.Unmarshal(envelope.Body, &body)

	entry := &model.WebhookLog{
		ID:            id,
		Provider:      model.ProviderJuspay,
		WebhookEvent:  eventName,
		TransactionID: &transactionID,
		Body:          body,
		ReceivedAt:    time.Now(),
	}
	if err := s.webhookLogs.Create(ctx, entry); err != nil {
		logger.Error("Failed to write webhook audit log", err)
	}
	return id
}

func (s *webhookService) auditVerified(ctx context.Context, id uuid.UUID, verified bool) {
	if s.webhookLogs == nil {
		return
	}
	if err := s.webhookLogs.SetVerified(ctx, id, verified); err != nil {
		logger.Error("Failed to record webhook verification result", err)
	}
}

func (s *webhookService) auditProcessed(ctx context.Context, id uuid.UUID) {
	if s.webhookLogs == nil {
		return
	}
	if err := s.webhookLogs.MarkProcessed(ctx, id); err != nil {
		logger.Error("Failed to mark webhook audit log processed", err)
	}
}

// failAudit records the failure on the audit entry and passes the error back
func (s *webhookService) failAudit(ctx context.Context, id uuid.UUID, cause error) error {
	if s.webhookLogs != nil {
		if err := s.webhookLogs.MarkProcessingError(ctx, id, cause.Error()); err != nil {
			logger.Error("Failed to record webhook audit failure", err)
		}
	}
	return cause
}
