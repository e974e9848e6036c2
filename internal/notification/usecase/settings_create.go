package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type SettingsCreateInput struct {
	ProjectID  uint64 `validate:"required,gt=0"`
	Type       string `validate:"required,oneof=slack teams"`
	WebhookURL string `validate:"required,url,max=2048"`
	Enabled    bool
}

type SettingsCreateOutput struct {
	ID uint64
}

func (s *Usecase) SettingsCreate(ctx context.Context, in SettingsCreateInput) (*SettingsCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "SettingsCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()
	setting := entity.IntegrationSetting{
		ID:         s.uid.Generate(),
		ProjectID:  in.ProjectID,
		Type:       entity.DestinationFromString(in.Type),
		WebhookURL: in.WebhookURL,
		Enabled:    in.Enabled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.repoDB.CreateIntegration(ctx, setting)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Integration already configured for this destination", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create integration", "project_id", in.ProjectID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SettingsCreateOutput{ID: setting.ID}, nil
}
