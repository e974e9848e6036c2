package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
	"go.uber.org/atomic"
)

type DispatchInput struct {
	ProjectID uint64 `validate:"required,gt=0"`
	Title     string `validate:"required,max=150"`
	Message   string `validate:"required"`
	Severity  string
	Fields    []entity.Field
}

// Dispatch fans the payload out to every enabled destination of the project.
// All destinations are attempted concurrently; failures surface only after
// every delivery has settled.
func (s *Usecase) Dispatch(ctx context.Context, in DispatchInput) error {
	ctx, span := s.startSpan(ctx, "Dispatch")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	settings, err := s.repoDB.ListEnabledIntegrations(ctx, in.ProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list enabled integrations", "project_id", in.ProjectID, "error", err)
		return goerror.NewServer(err)
	}

	if len(settings) == 0 {
		slog.InfoContext(ctx, "no enabled integrations for project", "project_id", in.ProjectID)
		return nil
	}

	payload := entity.Payload{
		Title:    in.Title,
		Message:  in.Message,
		Severity: entity.SeverityFromString(in.Severity),
		Fields:   in.Fields,
	}

	var (
		wg        sync.WaitGroup
		delivered atomic.Int64
		errs      = make([]error, len(settings))
	)

	for i, setting := range settings {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := s.deliver(ctx, setting, payload); err != nil {
				errs[i] = fmt.Errorf("%s (setting %d): %w", setting.Type.String(), setting.ID, err)
				return
			}
			delivered.Inc()
		}()
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		slog.ErrorContext(ctx, "notification dispatch finished with failures",
			"project_id", in.ProjectID, "delivered", delivered.Load(), "total", len(settings), "error", err)
		return goerror.NewServerMsg(err, "Failed to deliver notification")
	}

	slog.InfoContext(ctx, "notification dispatched", "project_id", in.ProjectID, "delivered", delivered.Load())
	return nil
}

func (s *Usecase) deliver(ctx context.Context, setting entity.IntegrationSetting, p entity.Payload) error {
	switch setting.Type {
	case entity.DestinationSlack:
		return s.repoWebhook.SendSlack(ctx, setting.WebhookURL, p)
	case entity.DestinationTeams:
		return s.repoWebhook.SendTeams(ctx, setting.WebhookURL, p)
	default:
		return fmt.Errorf("notification: unsupported destination type %d", setting.Type)
	}
}
