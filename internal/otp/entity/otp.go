package entity

import "time"

// MaxAttempts is how many verification attempts a code allows before it is
// permanently refused.
const MaxAttempts int32 = 3

type User struct {
	ID    uint64
	Email string
}

// OTP is a one-time passcode record. At most one live record exists per user;
// issuing a new code deletes the prior one.
type OTP struct {
	ID        uint64
	UserID    uint64
	Email     string
	Code      string
	ExpiresAt time.Time
	Attempts  int32
	Verified  bool
	CreatedAt time.Time
}

// ExpiredAt reports whether the code is past its expiry at the given time.
func (o OTP) ExpiredAt(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Exhausted reports whether the attempt cap has been reached.
func (o OTP) Exhausted() bool {
	return o.Attempts >= MaxAttempts
}
