package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codegate-id/codegate/internal/otp/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
)

type IssueInput struct {
	Email string `validate:"required,email"`
}

type IssueOutput struct {
	// Code is returned so the caller can deliver it out-of-band. It must
	// never be echoed back over the issuing transport.
	Code      string
	ExpiresAt time.Time
}

// Issue generates a fresh passcode for the user behind email, replacing any
// prior code. The new code reaches the user out-of-band (email), never in the
// issue response.
func (s *Usecase) Issue(ctx context.Context, in IssueInput) (*IssueOutput, error) {
	ctx, span := s.startSpan(ctx, "Issue")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp issue requested for unknown email", "email", in.Email)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	window := s.cfg.GetSecond("modules.otp.issue_cooldown_seconds")
	acquired, err := s.cooldown.Acquire(ctx, "otp_issue:"+in.Email, window)
	if err != nil {
		// the guard is advisory; a cache outage must not block issuance
		slog.WarnContext(ctx, "otp issue cooldown check failed", "email", in.Email, "error", err)
		acquired = true
	}
	if !acquired {
		return nil, goerror.NewBusiness("Please wait before requesting a new code", goerror.CodeTooManyRequest)
	}

	code, err := s.codeGen.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	rec := entity.OTP{
		ID:        s.uid.Generate(),
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: now.Add(s.cfg.GetSecond("modules.otp.code_ttl_seconds")),
		Attempts:  0,
		Verified:  false,
		CreatedAt: now,
	}

	if err := s.repoDB.DeleteOTPByUserID(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete prior otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to generate OTP")
	}

	if err := s.repoDB.CreateOTP(ctx, rec); err != nil {
		// the prior code is already gone at this point; the user must re-issue
		slog.ErrorContext(ctx, "failed to repo create otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to generate OTP")
	}

	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: rec.ExpiresAt,
	}); err != nil {
		// the record is valid either way; delivery can be retried by re-issuing
		slog.ErrorContext(ctx, "failed to publish otp issued event", "user_id", user.ID, "error", err)
	}

	return &IssueOutput{
		Code:      code,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}
