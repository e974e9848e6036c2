package usecase

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/clock"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/mail"
	"github.com/codegate-id/codegate/internal/pkg/uid"
	"github.com/codegate-id/codegate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetIntegrationByID(ctx context.Context, id uint64) (*entity.IntegrationSetting, error)
	ListIntegrations(ctx context.Context, projectID uint64) ([]entity.IntegrationSetting, error)
	ListEnabledIntegrations(ctx context.Context, projectID uint64) ([]entity.IntegrationSetting, error)

	CreateIntegration(ctx context.Context, in entity.IntegrationSetting) error
	UpdateIntegration(ctx context.Context, in entity.IntegrationSetting) error
	DeleteIntegration(ctx context.Context, id uint64) error
}

type repoWebhook interface {
	SendSlack(ctx context.Context, url string, p entity.Payload) error
	SendTeams(ctx context.Context, url string, p entity.Payload) error
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoDB      repoDB
	repoWebhook repoWebhook
	repoMail    repoMail
	cfg         config.Config
	uid         uid.NumberID
	clock       clock.Clocker
	validator   validator.Validator
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	RepoWebhook repoWebhook
	RepoMail    repoMail
	Config      config.Config
	UID         uid.NumberID
	Clock       clock.Clocker
	Validator   validator.Validator
	Instrument  instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		repoWebhook: dep.RepoWebhook,
		repoMail:    dep.RepoMail,
		cfg:         dep.Config,
		uid:         dep.UID,
		clock:       dep.Clock,
		validator:   dep.Validator,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
