package model

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodedIdentifiers are the platform coordinates carried base64-encoded in
// the webhook's user-defined fields.
type DecodedIdentifiers struct {
	TransactionID  string
	PlatformAPIURL string
}

// DecodeWebhookIdentifiers decodes the UDF1/UDF2 pair embedded in a Juspay
// webhook. Decode failure is a hard validation error: the webhook cannot be
// routed without these.
func DecodeWebhookIdentifiers(udf1, udf2 string) (*DecodedIdentifiers, error) {
	if udf1 == "" || udf2 == "" {
		return nil, fmt.Errorf("user defined fields not found in webhook")
	}

	transactionID, err := base64.StdEncoding.DecodeString(udf1)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id encoding: %w", err)
	}

	platformAPIURL, err := base64.StdEncoding.DecodeString(udf2)
	if err != nil {
		return nil, fmt.Errorf("invalid platform API URL encoding: %w", err)
	}

	decoded := &DecodedIdentifiers{
		TransactionID:  strings.TrimSpace(string(transactionID)),
		PlatformAPIURL: strings.TrimSpace(string(platformAPIURL)),
	}
	if decoded.TransactionID == "" || decoded.PlatformAPIURL == "" {
		return nil, fmt.Errorf("user defined fields decoded to empty values")
	}

	return decoded, nil
}
