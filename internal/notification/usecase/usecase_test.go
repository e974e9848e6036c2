package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/mail"
	"github.com/codegate-id/codegate/internal/pkg/validator"
)

type fakeRepoDB struct {
	settings map[uint64]entity.IntegrationSetting

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{settings: map[uint64]entity.IntegrationSetting{}}
}

func (f *fakeRepoDB) GetIntegrationByID(_ context.Context, id uint64) (*entity.IntegrationSetting, error) {
	s, ok := f.settings[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &s, nil
}

func (f *fakeRepoDB) ListIntegrations(_ context.Context, projectID uint64) ([]entity.IntegrationSetting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.IntegrationSetting
	for _, s := range f.settings {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeRepoDB) ListEnabledIntegrations(_ context.Context, projectID uint64) ([]entity.IntegrationSetting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.IntegrationSetting
	for _, s := range f.settings {
		if s.ProjectID == projectID && s.Enabled {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeRepoDB) CreateIntegration(_ context.Context, in entity.IntegrationSetting) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, s := range f.settings {
		if s.ProjectID == in.ProjectID && s.Type == in.Type {
			return goerror.ErrConflict
		}
	}
	f.settings[in.ID] = in

	return nil
}

func (f *fakeRepoDB) UpdateIntegration(_ context.Context, in entity.IntegrationSetting) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.settings[in.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	s.WebhookURL = in.WebhookURL
	s.Enabled = in.Enabled
	s.UpdatedAt = in.UpdatedAt
	f.settings[in.ID] = s

	return nil
}

func (f *fakeRepoDB) DeleteIntegration(_ context.Context, id uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.settings[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.settings, id)

	return nil
}

type webhookCall struct {
	url     string
	payload entity.Payload
}

type fakeRepoWebhook struct {
	mu sync.Mutex

	slack     []webhookCall
	teams     []webhookCall
	slackErrs map[string]error
	teamsErrs map[string]error
}

func newFakeRepoWebhook() *fakeRepoWebhook {
	return &fakeRepoWebhook{
		slackErrs: map[string]error{},
		teamsErrs: map[string]error{},
	}
}

func (f *fakeRepoWebhook) SendSlack(_ context.Context, url string, p entity.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.slack = append(f.slack, webhookCall{url: url, payload: p})

	return f.slackErrs[url]
}

func (f *fakeRepoWebhook) SendTeams(_ context.Context, url string, p entity.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.teams = append(f.teams, webhookCall{url: url, payload: p})

	return f.teamsErrs[url]
}

type fakeRepoMail struct {
	sent []mail.Message
	err  error
}

func (f *fakeRepoMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)

	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeUID struct {
	next uint64
}

func (f *fakeUID) Generate() uint64 {
	f.next++

	return f.next
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, repo *fakeRepoDB, hooks *fakeRepoWebhook, post *fakeRepoMail) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: Codegate\n"))
	if err != nil {
		t.Fatalf("build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	return NewNotification(Dependency{
		RepoDB:      repo,
		RepoWebhook: hooks,
		RepoMail:    post,
		Config:      cfg,
		UID:         &fakeUID{},
		Clock:       &fakeClock{now: testNow},
		Validator:   v10,
		Instrument:  instrument.NewNoop(),
	})
}

func businessMessage(t *testing.T, err error) string {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror.Error, got %T: %v", err, err)
	}

	return gerr.Msg()
}
