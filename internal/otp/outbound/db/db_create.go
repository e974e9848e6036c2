package db

import (
	"context"

	"github.com/codegate-id/codegate/internal/otp/entity"
)

const queryCreateOTP = `
INSERT INTO user_otps (id, user_id, email, code, expires_at, attempts, verified, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (s *DB) CreateOTP(ctx context.Context, in entity.OTP) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateOTP,
		in.ID,
		in.UserID,
		in.Email,
		in.Code,
		in.ExpiresAt,
		in.Attempts,
		in.Verified,
		in.CreatedAt,
	)

	err = s.mapError(err)
	return err
}
