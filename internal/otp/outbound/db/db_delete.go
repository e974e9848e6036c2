package db

import (
	"context"
)

const queryDeleteOTPByUserID = `
DELETE FROM user_otps
WHERE user_id = $1
`

// DeleteOTPByUserID removes every passcode owned by the user. Deleting when
// none exist is not an error.
func (s *DB) DeleteOTPByUserID(ctx context.Context, userID uint64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOTPByUserID")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryDeleteOTPByUserID, userID)
	err = s.mapError(err)
	return err
}
