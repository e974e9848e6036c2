package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codegate-id/codegate/internal/otp/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type VerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,otpcode"`
}

// Verify checks a submitted passcode against the stored record. Every
// evaluation that reaches the comparison consumes one attempt, even when the
// attempt write itself fails.
func (s *Usecase) Verify(ctx context.Context, in VerifyInput) error {
	ctx, span := s.startSpan(ctx, "Verify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	rec, err := s.repoDB.GetOTPByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if rec.Verified {
		return goerror.NewBusiness("OTP already used", goerror.CodeUnauthorized)
	}

	if rec.ExpiredAt(s.clock.Now()) {
		return goerror.NewBusiness("OTP has expired", goerror.CodeUnauthorized)
	}

	if rec.Exhausted() {
		return goerror.NewBusiness("Maximum attempts reached", goerror.CodeTooManyRequest)
	}

	attempts, err := s.repoDB.IncrementOTPAttempts(ctx, rec.ID, entity.MaxAttempts)
	if errors.Is(err, goerror.ErrNotFound) {
		// lost the race: another call verified or exhausted the record first
		return goerror.NewBusiness("Maximum attempts reached", goerror.CodeTooManyRequest)
	}
	if err != nil {
		// never let a failed counter write turn into a free attempt
		slog.ErrorContext(ctx, "failed to repo increment otp attempts", "otp_id", rec.ID, "error", err)
		attempts = rec.Attempts + 1
	}

	if subtle.ConstantTimeCompare([]byte(in.Code), []byte(rec.Code)) != 1 {
		remaining := entity.MaxAttempts - attempts
		if remaining < 0 {
			remaining = 0
		}

		return goerror.NewBusiness(fmt.Sprintf("Invalid OTP. %d attempts remaining", remaining), goerror.CodeUnauthorized)
	}

	if err := s.repoDB.MarkOTPVerified(ctx, rec.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("OTP already used", goerror.CodeUnauthorized)
		}

		slog.ErrorContext(ctx, "failed to repo mark otp verified", "otp_id", rec.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
