package usecase

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"time"

	"github.com/codegate-id/codegate/internal/pkg/mail"
)

type ConsumeOTPIssuedInput struct {
	UserID    uint64 `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	Code      string `validate:"required,otpcode"`
	ExpiresAt int64  `validate:"required"`
}

const otpEmailSubject = "Your verification code"

const otpEmailBody = `<p>Hello,</p>
<p>Your {{.AppName}} verification code is:</p>
<p style="font-size:24px;letter-spacing:4px;"><strong>{{.Code}}</strong></p>
<p>The code expires at {{.ExpiresAt}}. If you did not request it, you can ignore this email.</p>
<p>— {{.AppName}}</p>`

var otpEmailTemplate = template.Must(template.New("otp_issued").Parse(otpEmailBody))

// ConsumeOTPIssued emails a freshly issued passcode to its owner. Malformed
// events are dropped; delivery failures are returned so the broker can redeliver.
func (s *Usecase) ConsumeOTPIssued(ctx context.Context, in ConsumeOTPIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPIssued")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid otp issued event", "user_id", in.UserID, "error", err)
		return nil
	}

	var buf bytes.Buffer
	if err := otpEmailTemplate.Execute(&buf, map[string]string{
		"AppName":   s.cfg.GetString("app.name"),
		"Code":      in.Code,
		"ExpiresAt": time.Unix(in.ExpiresAt, 0).UTC().Format(time.RFC1123),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to render otp email", "user_id", in.UserID, "error", err)
		return nil
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  otpEmailSubject,
		HTMLBody: buf.String(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
