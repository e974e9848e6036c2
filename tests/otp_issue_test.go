package tests

import (
	"net/http"
	"testing"
	"time"
)

type issueData struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func TestOTPIssueUnknownUser(t *testing.T) {
	payload := map[string]string{"email": unknownEmail}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/issue", payload, "")
	if status != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, status)
	}

	env := decodeError(t, body)
	if env.Message != "User not found" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestOTPIssueInvalidEmail(t *testing.T) {
	payload := map[string]string{"email": "not-an-email"}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/issue", payload, "")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, status)
	}

	env := decodeError(t, body)
	if len(env.Error) == 0 {
		t.Fatal("expected field errors in response")
	}
}

func TestOTPIssueAndCooldown(t *testing.T) {
	payload := map[string]string{"email": issueUserEmail}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/issue", payload, "")
	if status != http.StatusOK {
		env := decodeError(t, body)
		t.Fatalf("issue failed: status=%d message=%q", status, env.Message)
	}

	var data issueData
	env := decodeSuccess(t, body, &data)
	if env.Message != "A verification code has been sent to your email." {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	if !data.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected expires_at in the future, got %s", data.ExpiresAt)
	}

	// The code itself is delivered out-of-band and must never appear in the
	// issue response.
	if string(env.Data) != "" && string(env.Data) != "null" {
		var raw map[string]any
		decodeSuccess(t, body, &raw)
		if _, ok := raw["code"]; ok {
			t.Fatal("issue response must not contain the code")
		}
	}

	// A second request inside the cooldown window is rejected.
	status, body = doJSON(t, http.MethodPost, "/api/v1/otp/issue", payload, "")
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, status)
	}

	errEnv := decodeError(t, body)
	if errEnv.Message != "Please wait before requesting a new code" {
		t.Fatalf("unexpected message: %q", errEnv.Message)
	}
}
