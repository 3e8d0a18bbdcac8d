package hyperswitch

import (
	"fmt"
)

// =====================================================
// HYPERSWITCH CONFIGURATION
// =====================================================

type Config struct {
	APIKey            string // API key (provided by Hyperswitch)
	PublishableKey    string // Publishable key, exposed client-side
	ProfileID         string // Business profile identifier
	PaymentResponseID string // Payment response hash key
	APIUrl            string // Hyperswitch API base URL
}

// NewConfig creates Hyperswitch configuration
func NewConfig(apiKey, publishableKey, profileID, apiURL string) *Config {
	return &Config{
		APIKey:         apiKey,
		PublishableKey: publishableKey,
		ProfileID:      profileID,
		APIUrl:         apiURL,
	}
}

// Validate validates configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("Hyperswitch APIKey is required")
	}
	if c.APIUrl == "" {
		return fmt.Errorf("Hyperswitch APIUrl is required")
	}
	return nil
}

// GetCancelURL returns the payment cancel endpoint for a payment
func (c *Config) GetCancelURL(paymentID string) string {
	return fmt.Sprintf("%s/payments/%s/cancel", c.APIUrl, paymentID)
}

// =====================================================
// HYPERSWITCH PAYMENT STATUS VOCABULARY
// =====================================================

const (
	StatusCancelled  = "cancelled"
	StatusFailed     = "failed"
	StatusProcessing = "processing"
)
