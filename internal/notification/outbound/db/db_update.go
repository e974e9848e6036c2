package db

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

const queryUpdateIntegration = `
UPDATE integration_settings
SET webhook_url = $2, enabled = $3, updated_at = $4
WHERE id = $1
RETURNING id
`

func (s *DB) UpdateIntegration(ctx context.Context, in entity.IntegrationSetting) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateIntegration")
	defer func() { s.endSpan(span, err) }()

	var updated uint64
	err = s.mapError(s.conn.QueryRow(ctx, queryUpdateIntegration,
		in.ID,
		in.WebhookURL,
		in.Enabled,
		in.UpdatedAt,
	).Scan(&updated))
	return err
}
