package service

import (
	"context"

	"ledger-bridge/internal/domains/payment/gateway"
	"ledger-bridge/internal/domains/payment/gateway/hyperswitch"
	"ledger-bridge/internal/domains/payment/model"
	"ledger-bridge/pkg/logger"
)

// =====================================================
// CANCELATION SERVICE IMPLEMENTATION
// =====================================================

type cancelationService struct {
	hyperswitchGateway gateway.HyperswitchGateway
}

func NewCancelationService(hyperswitchGateway gateway.HyperswitchGateway) CancelationService {
	return &cancelationService{hyperswitchGateway: hyperswitchGateway}
}

// ProcessCancelationRequested handles the platform's synchronous
// transaction-cancelation-requested webhook.
//
// The cancel call is issued against Hyperswitch and the returned status is
// mapped three ways: a terminal cancel result (success or failure) is
// returned with the converted amount; "processing" returns a pending response
// carrying only the psp reference, so the platform records nothing and the
// provider's own webhook settles the outcome later; anything else is a hard
// failure.
func (s *cancelationService) ProcessCancelationRequested(
	ctx context.Context,
	req model.CancelationRequest,
) (*model.CancelationResponse, error) {
	if s.hyperswitchGateway == nil {
		return nil, model.NewWebhookError(
			model.ErrCodeInternalError,
			"Cancelation flow is not configured",
			nil,
		)
	}

	if err := req.Validate(); err != nil {
		return nil, model.NewMalformedPayloadError(err)
	}

	resp, err := s.hyperswitchGateway.CancelPayment(ctx, gateway.CancelPaymentRequest{
		PaymentID:      req.PSPReference,
		ChannelID:      req.ChannelID,
		TransactionID:  req.TransactionID,
		PlatformAPIURL: req.PlatformAPIURL,
	})
	if err != nil {
		return nil, err
	}

	result, terminal, err := hyperswitch.MapCancelStatus(resp.Status)
	if err != nil {
		return nil, err
	}

	if !terminal {
		logger.Info("Cancelation still processing on provider side", map[string]interface{}{
			"payment_id":     resp.PaymentID,
			"transaction_id": req.TransactionID,
		})
		return &model.CancelationResponse{
			PSPReference: resp.PaymentID,
			Message:      hyperswitch.StatusProcessing,
		}, nil
	}

	amount := hyperswitch.AmountFromMinorUnits(resp.Amount, resp.Currency)

	logger.Info("Cancelation resolved", map[string]interface{}{
		"payment_id": resp.PaymentID,
		"result":     string(result),
	})

	return &model.CancelationResponse{
		PSPReference: resp.PaymentID,
		Result:       result,
		Amount:       &amount,
	}, nil
}
