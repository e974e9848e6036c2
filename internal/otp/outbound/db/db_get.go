package db

import (
	"context"

	"github.com/codegate-id/codegate/internal/otp/entity"
)

const queryGetUserByEmail = `
SELECT id, email
FROM users
WHERE email = $1
`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).Scan(&user.ID, &user.Email)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetOTPByEmail = `
SELECT id, user_id, email, code, expires_at, attempts, verified, created_at
FROM user_otps
WHERE email = $1
ORDER BY created_at DESC
LIMIT 1
`

func (s *DB) GetOTPByEmail(ctx context.Context, email string) (o *entity.OTP, err error) {
	ctx, span := s.startSpan(ctx, "GetOTPByEmail")
	defer func() { s.endSpan(span, err) }()

	var rec entity.OTP
	err = s.conn.QueryRow(ctx, queryGetOTPByEmail, email).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Email,
		&rec.Code,
		&rec.ExpiresAt,
		&rec.Attempts,
		&rec.Verified,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &rec, nil
}
