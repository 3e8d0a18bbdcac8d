package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// PLATFORM LEDGER CLIENT
// =====================================================

// Ledger is the outbound interface to the platform's transaction ledger.
// Idempotent suppression of duplicate event reports happens on the platform
// side, keyed by pspReference and event type; this engine sends every
// resolved event.
type Ledger interface {
	// GetTransactionByID fetches a transaction's event history and channel
	GetTransactionByID(ctx context.Context, auth *AuthData, transactionID string) (*Transaction, error)

	// ReportTransactionEvent reports one canonical event to the ledger
	ReportTransactionEvent(ctx context.Context, auth *AuthData, report EventReport) error
}

type Client struct {
	httpClient *http.Client
}

// NewClient creates new platform ledger client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: model.OutboundTimeoutSeconds * time.Second,
		},
	}
}

const getTransactionByIDQuery = `
query GetTransactionById($transactionId: ID!) {
  transaction(id: $transactionId) {
    id
    events {
      type
      pspReference
    }
    checkout {
      channel {
        id
      }
    }
    order {
      channel {
        id
      }
    }
  }
}`

const transactionEventReportMutation = `
mutation TransactionEventReport(
  $transactionId: ID!
  $amount: PositiveDecimal!
  $availableActions: [TransactionActionEnum!]!
  $externalUrl: String!
  $message: String!
  $pspReference: String!
  $time: DateTime!
  $type: TransactionEventTypeEnum!
) {
  transactionEventReport(
    id: $transactionId
    amount: $amount
    availableActions: $availableActions
    externalUrl: $externalUrl
    message: $message
    pspReference: $pspReference
    time: $time
    type: $type
  ) {
    alreadyProcessed
    errors {
      message
      code
    }
  }
}`

// GetTransactionByID fetches the transaction's reported event history and the
// channel id of its source checkout or order.
func (c *Client) GetTransactionByID(
	ctx context.Context,
	auth *AuthData,
	transactionID string,
) (*Transaction, error) {
	var resp transactionQueryResponse
	err := c.execute(ctx, auth, graphqlRequest{
		Query:     getTransactionByIDQuery,
		Variables: map[string]interface{}{"transactionId": transactionID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("transaction query failed: %s", resp.Errors[0].Message)
	}
	if resp.Data.Transaction == nil {
		return nil, fmt.Errorf("transaction %s not found", transactionID)
	}

	source := resp.Data.Transaction.Checkout
	if source == nil {
		source = resp.Data.Transaction.Order
	}
	if source == nil {
		return nil, model.NewMissingFieldError("source object")
	}

	tx := &Transaction{
		ID:        resp.Data.Transaction.ID,
		ChannelID: source.Channel.ID,
		Events:    make([]model.TransactionEvent, 0, len(resp.Data.Transaction.Events)),
	}
	for _, e := range resp.Data.Transaction.Events {
		tx.Events = append(tx.Events, model.TransactionEvent{
			Type:         model.EventType(e.Type),
			PSPReference: e.PSPReference,
		})
	}

	return tx, nil
}

// ReportTransactionEvent performs the transactionEventReport mutation.
func (c *Client) ReportTransactionEvent(
	ctx context.Context,
	auth *AuthData,
	report EventReport,
) error {
	actions := make([]string, 0, len(report.AvailableActions))
	for _, a := range report.AvailableActions {
		actions = append(actions, string(a))
	}

	var resp eventReportResponse
	err := c.execute(ctx, auth, graphqlRequest{
		Query: transactionEventReportMutation,
		Variables: map[string]interface{}{
			"transactionId":    report.TransactionID,
			"amount":           report.Amount,
			"availableActions": actions,
			"externalUrl":      report.ExternalURL,
			"message":          report.Message,
			"pspReference":     report.PSPReference,
			"time":             report.Time.UTC().Format(time.RFC3339),
			"type":             string(report.Type),
		},
	}, &resp)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("event report failed: %s", resp.Errors[0].Message)
	}
	if r := resp.Data.TransactionEventReport; r != nil && len(r.Errors) > 0 {
		return fmt.Errorf("event report rejected: %s (%s)", r.Errors[0].Message, r.Errors[0].Code)
	}

	return nil
}

// execute posts a GraphQL request and decodes the response
func (c *Client) execute(
	ctx context.Context,
	auth *AuthData,
	req graphqlRequest,
	out interface{},
) error {
	bodyJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, auth.APIURL, bytes.NewReader(bodyJSON))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+auth.Token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call platform API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("platform API returned %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
