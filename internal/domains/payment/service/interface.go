package service

import (
	"context"

	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// SERVICE INTERFACES
// =====================================================

// WebhookService processes provider webhooks into canonical ledger events.
// Every invocation is an independent, stateless unit of work.
type WebhookService interface {
	// ProcessJuspayWebhook handles an asynchronous Juspay notification:
	// verify source, reconcile against Juspay, map status, report the
	// canonical event to the ledger
	ProcessJuspayWebhook(ctx context.Context, envelope model.WebhookEnvelope) (*JuspayWebhookOutcome, error)
}

// CancelationService handles the platform's synchronous
// transaction-cancelation-requested webhook against Hyperswitch.
type CancelationService interface {
	ProcessCancelationRequested(ctx context.Context, req model.CancelationRequest) (*model.CancelationResponse, error)
}

// JuspayWebhookOutcome is the result of one webhook invocation. Ignored is
// set when the engine intentionally reports nothing: an unsupported event
// type, or a refund webhook whose refund could not yet be correlated.
type JuspayWebhookOutcome struct {
	Ignored bool
	Event   *model.CanonicalEvent
}

// =====================================================
// CREDENTIAL STORE
// =====================================================

// ProviderCredentials is the channel-scoped credential pair a provider uses
// to authenticate its webhooks.
type ProviderCredentials struct {
	Username string
	Password string
}

// CredentialStore resolves provider webhook credentials for a platform
// channel. Credential persistence and its CRUD API live outside this service.
type CredentialStore interface {
	GetJuspayCredentials(ctx context.Context, channelID string) (*ProviderCredentials, error)
}

// StaticCredentialStore is an in-memory CredentialStore populated from
// configuration, with an optional default entry for unmapped channels.
type StaticCredentialStore struct {
	byChannel map[string]ProviderCredentials
	fallback  *ProviderCredentials
}

// NewStaticCredentialStore creates a credential store over a fixed
// channelID -> credentials map
func NewStaticCredentialStore(byChannel map[string]ProviderCredentials, fallback *ProviderCredentials) *StaticCredentialStore {
	return &StaticCredentialStore{byChannel: byChannel, fallback: fallback}
}

func (s *StaticCredentialStore) GetJuspayCredentials(_ context.Context, channelID string) (*ProviderCredentials, error) {
	if creds, ok := s.byChannel[channelID]; ok {
		return &creds, nil
	}
	if s.fallback != nil {
		return s.fallback, nil
	}
	return nil, model.NewWebhookError(
		model.ErrCodeAuthMissing,
		"No provider credentials configured for channel "+channelID,
		model.ErrAuthMissing,
	)
}
