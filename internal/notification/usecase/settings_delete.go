package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type SettingsDeleteInput struct {
	ID uint64 `validate:"required,gt=0"`
}

func (s *Usecase) SettingsDelete(ctx context.Context, in SettingsDeleteInput) error {
	ctx, span := s.startSpan(ctx, "SettingsDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteIntegration(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Integration not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete integration", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
