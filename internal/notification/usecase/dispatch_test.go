package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

func seedIntegration(repo *fakeRepoDB, id uint64, typ entity.Destination, url string, enabled bool) {
	repo.settings[id] = entity.IntegrationSetting{
		ID:         id,
		ProjectID:  1,
		Type:       typ,
		WebhookURL: url,
		Enabled:    enabled,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
}

func TestDispatchInvalidInput(t *testing.T) {
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, newFakeRepoWebhook(), &fakeRepoMail{})

	err := uc.Dispatch(context.Background(), DispatchInput{ProjectID: 1, Title: "", Message: "hi"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDispatchNoEnabledIntegrations(t *testing.T) {
	repo := newFakeRepoDB()
	seedIntegration(repo, 10, entity.DestinationSlack, "https://hooks.slack.com/services/T/B/X", false)
	hooks := newFakeRepoWebhook()
	uc := newTestUsecase(t, repo, hooks, &fakeRepoMail{})

	err := uc.Dispatch(context.Background(), DispatchInput{ProjectID: 1, Title: "Deploy", Message: "done"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(hooks.slack) != 0 || len(hooks.teams) != 0 {
		t.Fatal("disabled integrations must not be called")
	}
}

func TestDispatchFansOutToAllEnabled(t *testing.T) {
	repo := newFakeRepoDB()
	seedIntegration(repo, 10, entity.DestinationSlack, "https://hooks.slack.com/services/T/B/X", true)
	seedIntegration(repo, 11, entity.DestinationTeams, "https://outlook.office.com/webhook/abc", true)
	seedIntegration(repo, 12, entity.DestinationSlack, "https://hooks.slack.com/services/T/B/Y", false)
	hooks := newFakeRepoWebhook()
	uc := newTestUsecase(t, repo, hooks, &fakeRepoMail{})

	in := DispatchInput{
		ProjectID: 1,
		Title:     "Deploy finished",
		Message:   "Service is live.",
		Severity:  "success",
		Fields:    []entity.Field{{Key: "env", Value: "production"}},
	}

	if err := uc.Dispatch(context.Background(), in); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if len(hooks.slack) != 1 || len(hooks.teams) != 1 {
		t.Fatalf("expected one slack and one teams delivery, got %d and %d", len(hooks.slack), len(hooks.teams))
	}

	got := hooks.slack[0].payload
	if got.Title != in.Title || got.Message != in.Message {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Severity != entity.SeveritySuccess {
		t.Fatalf("unexpected severity: %v", got.Severity)
	}
	if len(got.Fields) != 1 || got.Fields[0].Key != "env" {
		t.Fatalf("unexpected fields: %+v", got.Fields)
	}
}

func TestDispatchAttemptsAllBeforeFailing(t *testing.T) {
	repo := newFakeRepoDB()
	seedIntegration(repo, 10, entity.DestinationSlack, "https://hooks.slack.com/services/T/B/X", true)
	seedIntegration(repo, 11, entity.DestinationTeams, "https://outlook.office.com/webhook/abc", true)

	hooks := newFakeRepoWebhook()
	hooks.slackErrs["https://hooks.slack.com/services/T/B/X"] = errors.New("status 500")
	uc := newTestUsecase(t, repo, hooks, &fakeRepoMail{})

	err := uc.Dispatch(context.Background(), DispatchInput{ProjectID: 1, Title: "Deploy", Message: "done"})
	if got := businessMessage(t, err); got != "Failed to deliver notification" {
		t.Fatalf("unexpected message: %q", got)
	}

	// The healthy destination is still attempted.
	if len(hooks.slack) != 1 || len(hooks.teams) != 1 {
		t.Fatalf("expected both destinations attempted, got %d and %d", len(hooks.slack), len(hooks.teams))
	}
}

func TestDispatchListFailure(t *testing.T) {
	repo := newFakeRepoDB()
	repo.listErr = errors.New("db down")
	uc := newTestUsecase(t, repo, newFakeRepoWebhook(), &fakeRepoMail{})

	err := uc.Dispatch(context.Background(), DispatchInput{ProjectID: 1, Title: "Deploy", Message: "done"})
	if err == nil || strings.Contains(err.Error(), "db down") == false {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
