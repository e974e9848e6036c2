package usecase

import (
	"context"
	"log/slog"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type SettingsListInput struct {
	ProjectID uint64 `validate:"required,gt=0"`
}

type SettingsListOutput struct {
	Settings []entity.IntegrationSetting
}

func (s *Usecase) SettingsList(ctx context.Context, in SettingsListInput) (*SettingsListOutput, error) {
	ctx, span := s.startSpan(ctx, "SettingsList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	settings, err := s.repoDB.ListIntegrations(ctx, in.ProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list integrations", "project_id", in.ProjectID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SettingsListOutput{Settings: settings}, nil
}
