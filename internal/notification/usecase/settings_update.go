package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type SettingsUpdateInput struct {
	ID         uint64 `validate:"required,gt=0"`
	WebhookURL string `validate:"required,url,max=2048"`
	Enabled    bool
}

func (s *Usecase) SettingsUpdate(ctx context.Context, in SettingsUpdateInput) error {
	ctx, span := s.startSpan(ctx, "SettingsUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	setting, err := s.repoDB.GetIntegrationByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Integration not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get integration by id", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	setting.WebhookURL = in.WebhookURL
	setting.Enabled = in.Enabled
	setting.UpdatedAt = s.clock.Now()

	if err := s.repoDB.UpdateIntegration(ctx, *setting); err != nil {
		slog.ErrorContext(ctx, "failed to repo update integration", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
