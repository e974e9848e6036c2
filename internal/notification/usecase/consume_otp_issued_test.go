package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConsumeOTPIssuedSendsEmail(t *testing.T) {
	post := &fakeRepoMail{}
	uc := newTestUsecase(t, newFakeRepoDB(), newFakeRepoWebhook(), post)

	err := uc.ConsumeOTPIssued(context.Background(), ConsumeOTPIssuedInput{
		UserID:    7,
		Email:     "jane@example.com",
		Code:      "483920",
		ExpiresAt: testNow.Add(5 * time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	if len(post.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(post.sent))
	}

	msg := post.sent[0]
	if len(msg.To) != 1 || msg.To[0] != "jane@example.com" {
		t.Fatalf("unexpected recipients: %v", msg.To)
	}
	if msg.Subject != "Your verification code" {
		t.Fatalf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "483920") {
		t.Fatal("email body must contain the code")
	}
	if !strings.Contains(msg.HTMLBody, "Codegate") {
		t.Fatal("email body must mention the app name")
	}
}

func TestConsumeOTPIssuedDropsMalformedEvent(t *testing.T) {
	post := &fakeRepoMail{}
	uc := newTestUsecase(t, newFakeRepoDB(), newFakeRepoWebhook(), post)

	err := uc.ConsumeOTPIssued(context.Background(), ConsumeOTPIssuedInput{
		UserID:    7,
		Email:     "not-an-email",
		Code:      "12",
		ExpiresAt: testNow.Unix(),
	})
	if err != nil {
		t.Fatalf("malformed events must be dropped, got %v", err)
	}
	if len(post.sent) != 0 {
		t.Fatal("no email should be sent for a malformed event")
	}
}

func TestConsumeOTPIssuedReturnsSendFailure(t *testing.T) {
	post := &fakeRepoMail{err: errors.New("smtp down")}
	uc := newTestUsecase(t, newFakeRepoDB(), newFakeRepoWebhook(), post)

	err := uc.ConsumeOTPIssued(context.Background(), ConsumeOTPIssuedInput{
		UserID:    7,
		Email:     "jane@example.com",
		Code:      "483920",
		ExpiresAt: testNow.Unix(),
	})
	if err == nil {
		t.Fatal("send failures must surface for redelivery")
	}
}
