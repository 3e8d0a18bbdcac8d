package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-bridge/internal/domains/payment/model"
	"ledger-bridge/internal/domains/payment/service"
	res "ledger-bridge/internal/shared/response"
)

type WebhookHandler struct {
	webhookService     service.WebhookService
	cancelationService service.CancelationService
}

// NewWebhookHandler creates new webhook handler
func NewWebhookHandler(
	webhookService service.WebhookService,
	cancelationService service.CancelationService,
) *WebhookHandler {
	return &WebhookHandler{
		webhookService:     webhookService,
		cancelationService: cancelationService,
	}
}

// =====================================================
// PROVIDER WEBHOOK ENDPOINTS
// =====================================================

// JuspayWebhook handles asynchronous Juspay notifications
// POST /api/v1/webhooks/juspay
//
// The body is read raw and handed to the engine unparsed so credential
// verification runs before anything in it is trusted. Response codes follow
// the provider contract: 200 acknowledges processing or an intentionally
// ignored event, 400 rejects a webhook that failed source verification, 401
// signals a missing auth context for the platform installation, 424 (or the
// provider's own status) a failed reconciliation call, 500 a malformed
// payload or unexpected provider status.
func (h *WebhookHandler) JuspayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, "Failed reading request body")
		return
	}

	envelope := model.WebhookEnvelope{
		Provider:   model.ProviderJuspay,
		AuthHeader: c.GetHeader("Authorization"),
		Body:       body,
	}

	// Ignored events and reported events both acknowledge with 200
	if _, err := h.webhookService.ProcessJuspayWebhook(c.Request.Context(), envelope); err != nil {
		statusCode, message := mapWebhookError(err)
		c.JSON(statusCode, message)
		return
	}

	c.JSON(http.StatusOK, "[OK]")
}

// TransactionCancelationRequested handles the platform's synchronous
// cancelation webhook against Hyperswitch
// POST /api/v1/webhooks/platform/transaction-cancelation-requested
func (h *WebhookHandler) TransactionCancelationRequested(c *gin.Context) {
	var req model.CancelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeMalformedPayload, "Invalid request body")
		return
	}

	response, err := h.cancelationService.ProcessCancelationRequested(c.Request.Context(), req)
	if err != nil {
		statusCode, message := mapWebhookError(err)
		res.ErrorResponse(c, statusCode, webhookErrorCode(err), message)
		return
	}

	c.JSON(http.StatusOK, response)
}

// =====================================================
// ERROR MAPPING HELPER
// =====================================================

// mapWebhookError translates engine failures into the HTTP statuses the
// webhook contract specifies.
func mapWebhookError(err error) (statusCode int, message string) {
	statusCode = http.StatusInternalServerError
	message = "Internal error"

	var webhookErr *model.WebhookError
	if !errors.As(err, &webhookErr) {
		return statusCode, message
	}

	message = webhookErr.Message

	switch webhookErr.Code {
	case model.ErrCodeAuthMissing:
		statusCode = http.StatusUnauthorized
	case model.ErrCodeSourceVerification:
		statusCode = http.StatusBadRequest
	case model.ErrCodeUpstreamTransport:
		// Prefer the provider's own status; fall back to failed dependency
		if webhookErr.UpstreamStatus > 0 {
			statusCode = webhookErr.UpstreamStatus
		} else {
			statusCode = http.StatusFailedDependency
		}
	case model.ErrCodeMalformedPayload:
		statusCode = http.StatusInternalServerError
		// Never leak deserialization detail back to the provider
		message = "Deserialization error"
	default:
		statusCode = http.StatusInternalServerError
	}

	return statusCode, message
}

func webhookErrorCode(err error) string {
	var webhookErr *model.WebhookError
	if errors.As(err, &webhookErr) {
		return webhookErr.Code
	}
	return model.ErrCodeInternalError
}
