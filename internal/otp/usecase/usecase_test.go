package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codegate-id/codegate/internal/otp/entity"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/validator"
)

type fakeRepoDB struct {
	user    *entity.User
	userErr error

	otp    *entity.OTP
	otpErr error

	created   []entity.OTP
	createErr error

	deleted   []uint64
	deleteErr error

	incrErr   error
	verifyErr error
	verified  []uint64
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, _ string) (*entity.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil {
		return nil, goerror.ErrNotFound
	}

	return f.user, nil
}

func (f *fakeRepoDB) GetOTPByEmail(_ context.Context, _ string) (*entity.OTP, error) {
	if f.otpErr != nil {
		return nil, f.otpErr
	}
	if f.otp == nil {
		return nil, goerror.ErrNotFound
	}

	cp := *f.otp

	return &cp, nil
}

func (f *fakeRepoDB) CreateOTP(_ context.Context, in entity.OTP) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)

	return nil
}

func (f *fakeRepoDB) DeleteOTPByUserID(_ context.Context, userID uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, userID)

	return nil
}

func (f *fakeRepoDB) IncrementOTPAttempts(_ context.Context, id uint64, maxAttempts int32) (int32, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	if f.otp == nil || f.otp.ID != id || f.otp.Verified || f.otp.Attempts >= maxAttempts {
		return 0, goerror.ErrNotFound
	}
	f.otp.Attempts++

	return f.otp.Attempts, nil
}

func (f *fakeRepoDB) MarkOTPVerified(_ context.Context, id uint64) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if f.otp == nil || f.otp.ID != id || f.otp.Verified {
		return goerror.ErrNotFound
	}
	f.otp.Verified = true
	f.verified = append(f.verified, id)

	return nil
}

type fakeMessaging struct {
	events []OTPIssuedEvent
	err    error
}

func (f *fakeMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, msg)

	return nil
}

type fakeGuard struct {
	held bool
	err  error
	keys []string
}

func (f *fakeGuard) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return false, f.err
	}

	return !f.held, nil
}

func (f *fakeGuard) Release(_ context.Context, _ string) error {
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeCodeGen struct {
	code string
	err  error
}

func (f *fakeCodeGen) Generate() (string, error) {
	return f.code, f.err
}

type fakeUID struct {
	next uint64
}

func (f *fakeUID) Generate() uint64 {
	f.next++

	return f.next
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, repo *fakeRepoDB, msg *fakeMessaging, guard *fakeGuard) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  otp:\n    code_ttl_seconds: 300\n    issue_cooldown_seconds: 60\n"))
	if err != nil {
		t.Fatalf("build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	return New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Cooldown:      guard,
		Validator:     v10,
		Config:        cfg,
		CodeGen:       &fakeCodeGen{code: "483920"},
		UID:           &fakeUID{},
		Clock:         &fakeClock{now: testNow},
		Instrument:    instrument.NewNoop(),
	})
}

func businessMessage(t *testing.T, err error) string {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror.Error, got %T: %v", err, err)
	}

	return gerr.Msg()
}
