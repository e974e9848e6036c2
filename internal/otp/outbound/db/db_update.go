package db

import (
	"context"
)

const queryIncrementOTPAttempts = `
UPDATE user_otps
SET attempts = attempts + 1
WHERE id = $1 AND verified = false AND attempts < $2
RETURNING attempts
`

// IncrementOTPAttempts atomically consumes one attempt. The conditional
// guard makes concurrent verify calls serialize on the row: a call that finds
// the record already verified or at the cap gets goerror.ErrNotFound.
func (s *DB) IncrementOTPAttempts(ctx context.Context, id uint64, maxAttempts int32) (attempts int32, err error) {
	ctx, span := s.startSpan(ctx, "IncrementOTPAttempts")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx, queryIncrementOTPAttempts, id, maxAttempts).Scan(&attempts)
	if err != nil {
		return 0, s.mapError(err)
	}

	return attempts, nil
}

const queryMarkOTPVerified = `
UPDATE user_otps
SET verified = true
WHERE id = $1 AND verified = false
RETURNING id
`

// MarkOTPVerified flips the verified flag exactly once. A second call for the
// same record gets goerror.ErrNotFound.
func (s *DB) MarkOTPVerified(ctx context.Context, id uint64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkOTPVerified")
	defer func() { s.endSpan(span, err) }()

	var updated uint64
	err = s.mapError(s.conn.QueryRow(ctx, queryMarkOTPVerified, id).Scan(&updated))
	return err
}
