package usecase

import (
	"context"
	"time"

	"github.com/codegate-id/codegate/internal/otp/entity"
	"github.com/codegate-id/codegate/internal/pkg/clock"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/cooldown"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/otpcode"
	"github.com/codegate-id/codegate/internal/pkg/uid"
	"github.com/codegate-id/codegate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type OTPIssuedEvent struct {
	UserID    uint64
	Email     string
	Code      string
	ExpiresAt time.Time
}

type repoMessaging interface {
	PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetOTPByEmail(ctx context.Context, email string) (*entity.OTP, error)

	CreateOTP(ctx context.Context, in entity.OTP) error
	DeleteOTPByUserID(ctx context.Context, userID uint64) error

	// IncrementOTPAttempts bumps the attempt counter only while the record is
	// unverified and below maxAttempts, returning the new count. It returns
	// goerror.ErrNotFound when the guard does not match.
	IncrementOTPAttempts(ctx context.Context, id uint64, maxAttempts int32) (int32, error)

	// MarkOTPVerified flips the verified flag only if it is still false. It
	// returns goerror.ErrNotFound when the record was already verified.
	MarkOTPVerified(ctx context.Context, id uint64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	cooldown      cooldown.Guard
	validator     validator.Validator
	cfg           config.Config
	codeGen       otpcode.Generator
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Cooldown      cooldown.Guard
	Validator     validator.Validator
	Config        config.Config
	CodeGen       otpcode.Generator
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		cooldown:      dep.Cooldown,
		validator:     dep.Validator,
		cfg:           dep.Config,
		codeGen:       dep.CodeGen,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("otp.usecase").Start(ctx, name)
}
