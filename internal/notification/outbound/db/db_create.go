package db

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

const queryCreateIntegration = `
INSERT INTO integration_settings (id, project_id, type, webhook_url, enabled, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (s *DB) CreateIntegration(ctx context.Context, in entity.IntegrationSetting) (err error) {
	ctx, span := s.startSpan(ctx, "CreateIntegration")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateIntegration,
		in.ID,
		in.ProjectID,
		in.Type.String(),
		in.WebhookURL,
		in.Enabled,
		in.CreatedAt,
		in.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}
