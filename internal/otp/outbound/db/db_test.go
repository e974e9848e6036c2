package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codegate-id/codegate/internal/otp/entity"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const schema = `
CREATE TABLE users (
	id    BIGINT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE
);

CREATE TABLE user_otps (
	id         BIGINT PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users (id),
	email      TEXT NOT NULL,
	code       TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	attempts   INT NOT NULL DEFAULT 0,
	verified   BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL
);
`

func setupDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("codegate"),
		tcpostgres.WithUsername("codegate"),
		tcpostgres.WithPassword("codegate"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `INSERT INTO users (id, email) VALUES (7, 'jane@example.com')`); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return NewDB(pool, instrument.NewNoop())
}

func TestDB(t *testing.T) {
	store := setupDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("get user by email", func(t *testing.T) {
		user, err := store.GetUserByEmail(ctx, "jane@example.com")
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if user.ID != 7 || user.Email != "jane@example.com" {
			t.Fatalf("unexpected user: %+v", user)
		}

		if _, err := store.GetUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create and read back", func(t *testing.T) {
		if _, err := store.GetOTPByEmail(ctx, "jane@example.com"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound before insert, got %v", err)
		}

		rec := entity.OTP{
			ID:        100,
			UserID:    7,
			Email:     "jane@example.com",
			Code:      "111111",
			ExpiresAt: now.Add(5 * time.Minute),
			CreatedAt: now.Add(-time.Minute),
		}
		if err := store.CreateOTP(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}

		// A later record wins the read.
		later := rec
		later.ID = 101
		later.Code = "222222"
		later.CreatedAt = now
		if err := store.CreateOTP(ctx, later); err != nil {
			t.Fatalf("create later: %v", err)
		}

		got, err := store.GetOTPByEmail(ctx, "jane@example.com")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != 101 || got.Code != "222222" {
			t.Fatalf("expected latest record, got %+v", got)
		}
		if got.Attempts != 0 || got.Verified {
			t.Fatalf("unexpected flags: %+v", got)
		}
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rec := entity.OTP{
			ID:        100,
			UserID:    7,
			Email:     "jane@example.com",
			Code:      "333333",
			ExpiresAt: now.Add(5 * time.Minute),
			CreatedAt: now,
		}
		if err := store.CreateOTP(ctx, rec); !errors.Is(err, goerror.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("increment honors the cap", func(t *testing.T) {
		for want := int32(1); want <= entity.MaxAttempts; want++ {
			got, err := store.IncrementOTPAttempts(ctx, 101, entity.MaxAttempts)
			if err != nil {
				t.Fatalf("increment %d: %v", want, err)
			}
			if got != want {
				t.Fatalf("expected attempts %d, got %d", want, got)
			}
		}

		if _, err := store.IncrementOTPAttempts(ctx, 101, entity.MaxAttempts); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound at the cap, got %v", err)
		}
	})

	t.Run("mark verified flips once", func(t *testing.T) {
		if err := store.MarkOTPVerified(ctx, 100); err != nil {
			t.Fatalf("mark verified: %v", err)
		}
		if err := store.MarkOTPVerified(ctx, 100); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second mark, got %v", err)
		}

		// Verified records no longer accept attempts.
		if _, err := store.IncrementOTPAttempts(ctx, 100, entity.MaxAttempts); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for verified record, got %v", err)
		}
	})

	t.Run("delete by user removes everything", func(t *testing.T) {
		if err := store.DeleteOTPByUserID(ctx, 7); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := store.GetOTPByEmail(ctx, "jane@example.com"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}

		// Deleting again is not an error.
		if err := store.DeleteOTPByUserID(ctx, 7); err != nil {
			t.Fatalf("second delete: %v", err)
		}
	})
}
