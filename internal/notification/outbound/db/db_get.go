package db

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/jackc/pgx/v5"
)

const queryGetIntegrationByID = `
SELECT id, project_id, type, webhook_url, enabled, created_at, updated_at
FROM integration_settings
WHERE id = $1
`

func (s *DB) GetIntegrationByID(ctx context.Context, id uint64) (setting *entity.IntegrationSetting, err error) {
	ctx, span := s.startSpan(ctx, "GetIntegrationByID")
	defer func() { s.endSpan(span, err) }()

	var (
		rec     entity.IntegrationSetting
		recType string
	)
	err = s.conn.QueryRow(ctx, queryGetIntegrationByID, id).Scan(
		&rec.ID,
		&rec.ProjectID,
		&recType,
		&rec.WebhookURL,
		&rec.Enabled,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	rec.Type = entity.DestinationFromString(recType)
	return &rec, nil
}

const queryListIntegrations = `
SELECT id, project_id, type, webhook_url, enabled, created_at, updated_at
FROM integration_settings
WHERE project_id = $1
ORDER BY created_at
`

func (s *DB) ListIntegrations(ctx context.Context, projectID uint64) (settings []entity.IntegrationSetting, err error) {
	ctx, span := s.startSpan(ctx, "ListIntegrations")
	defer func() { s.endSpan(span, err) }()

	settings, err = s.queryIntegrations(ctx, queryListIntegrations, projectID)
	return settings, err
}

const queryListEnabledIntegrations = `
SELECT id, project_id, type, webhook_url, enabled, created_at, updated_at
FROM integration_settings
WHERE project_id = $1 AND enabled = true
ORDER BY created_at
`

func (s *DB) ListEnabledIntegrations(ctx context.Context, projectID uint64) (settings []entity.IntegrationSetting, err error) {
	ctx, span := s.startSpan(ctx, "ListEnabledIntegrations")
	defer func() { s.endSpan(span, err) }()

	settings, err = s.queryIntegrations(ctx, queryListEnabledIntegrations, projectID)
	return settings, err
}

func (s *DB) queryIntegrations(ctx context.Context, query string, projectID uint64) ([]entity.IntegrationSetting, error) {
	rows, err := s.conn.Query(ctx, query, projectID)
	if err != nil {
		return nil, s.mapError(err)
	}

	settings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.IntegrationSetting, error) {
		var (
			rec     entity.IntegrationSetting
			recType string
		)
		err := row.Scan(
			&rec.ID,
			&rec.ProjectID,
			&recType,
			&rec.WebhookURL,
			&rec.Enabled,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		rec.Type = entity.DestinationFromString(recType)
		return rec, err
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return settings, nil
}
