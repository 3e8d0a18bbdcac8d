package juspay

import (
	"encoding/base64"
	"strings"
)

// =====================================================
// WEBHOOK SOURCE VERIFICATION
// =====================================================

// VerifyWebhookSource checks that an inbound webhook carries the configured
// basic-auth credential pair. Both fields must match exactly; a missing or
// garbled Authorization header fails verification.
func VerifyWebhookSource(authHeader, configuredUsername, configuredPassword string) bool {
	username, password, ok := parseBasicAuth(authHeader)
	if !ok {
		return false
	}
	return username == configuredUsername && password == configuredPassword
}

// parseBasicAuth decodes a "Basic <base64>" Authorization header into its
// username/password pair.
func parseBasicAuth(authHeader string) (username, password string, ok bool) {
	if authHeader == "" {
		return "", "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return "", "", false
	}

	return credentials[0], credentials[1], true
}
