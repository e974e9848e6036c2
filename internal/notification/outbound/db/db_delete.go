package db

import (
	"context"
)

const queryDeleteIntegration = `
DELETE FROM integration_settings
WHERE id = $1
RETURNING id
`

func (s *DB) DeleteIntegration(ctx context.Context, id uint64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteIntegration")
	defer func() { s.endSpan(span, err) }()

	var deleted uint64
	err = s.mapError(s.conn.QueryRow(ctx, queryDeleteIntegration, id).Scan(&deleted))
	return err
}
