package platform

import (
	"time"

	"github.com/shopspring/decimal"

	"ledger-bridge/internal/domains/payment/model"
)

// =====================================================
// PLATFORM TYPES
// =====================================================

// AuthData is the stored authentication context for one platform installation.
type AuthData struct {
	APIURL string
	Token  string
}

// AuthStore resolves the authentication context for a platform API URL.
// Installation storage itself lives outside this service.
type AuthStore interface {
	Get(apiURL string) (*AuthData, bool)
}

// StaticAuthStore is an in-memory AuthStore populated from configuration.
type StaticAuthStore struct {
	tokens map[string]string
}

// NewStaticAuthStore creates an auth store over a fixed apiURL -> token map
func NewStaticAuthStore(tokens map[string]string) *StaticAuthStore {
	return &StaticAuthStore{tokens: tokens}
}

func (s *StaticAuthStore) Get(apiURL string) (*AuthData, bool) {
	token, ok := s.tokens[apiURL]
	if !ok {
		return nil, false
	}
	return &AuthData{APIURL: apiURL, Token: token}, true
}

// =====================================================
// TRANSACTION QUERY TYPES
// =====================================================

// Transaction is the ledger's view of one transaction: its reported event
// history and the channel of the checkout or order it belongs to.
type Transaction struct {
	ID        string
	ChannelID string
	Events    []model.TransactionEvent
}

// =====================================================
// EVENT REPORT TYPES
// =====================================================

// EventReport is the single ledger mutation this engine performs.
type EventReport struct {
	TransactionID    string
	Type             model.EventType
	PSPReference     string
	Amount           decimal.Decimal
	AvailableActions []model.Action
	Message          string
	Time             time.Time
	ExternalURL      string
}

// =====================================================
// GRAPHQL WIRE TYPES
// =====================================================

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type transactionQueryResponse struct {
	Data struct {
		Transaction *struct {
			ID     string `json:"id"`
			Events []struct {
				Type         string `json:"type"`
				PSPReference string `json:"pspReference"`
			} `json:"events"`
			Checkout *sourceObject `json:"checkout"`
			Order    *sourceObject `json:"order"`
		} `json:"transaction"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type sourceObject struct {
	Channel struct {
		ID string `json:"id"`
	} `json:"channel"`
}

type eventReportResponse struct {
	Data struct {
		TransactionEventReport *struct {
			AlreadyProcessed bool `json:"alreadyProcessed"`
			Errors           []struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"errors"`
		} `json:"transactionEventReport"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}
