package tests

import (
	"os"
	"testing"
)

// Seeded by the database migrations used for the real environment. Each test
// issues codes for its own user so cooldown windows never bleed across tests.
const (
	issueUserEmail  = "issue-user@codegate.io"
	verifyUserEmail = "verify-user@codegate.io"
	unknownEmail    = "nobody@codegate.io"
)

// apiToken returns the bearer token for authenticated endpoints. Integration
// tests are skipped when no token is provided.
func apiToken(t *testing.T) string {
	t.Helper()

	token := os.Getenv("CODEGATE_API_TOKEN")
	if token == "" {
		t.Skip("CODEGATE_API_TOKEN is not set; skipping authenticated endpoints")
	}

	return token
}
