//go:build unit

package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/infra/repository"
	"clinic-agenda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptDB plays back one scripted error per Exec call and records the SQL
// it saw, standing in for a pgx transaction.
type scriptDB struct {
	t     *testing.T
	sqls  []string
	queue []error
}

func (d *scriptDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.t.Helper()
	d.sqls = append(d.sqls, sql)
	if len(d.queue) == 0 {
		d.t.Fatalf("unexpected Exec: %s", sql)
	}
	err := d.queue[0]
	d.queue = d.queue[1:]
	return pgconn.NewCommandTag("UPDATE 0"), err
}

func (d *scriptDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	d.t.Fatal("unexpected Query")
	return nil, nil
}

func (d *scriptDB) QueryRow(context.Context, string, ...any) pgx.Row {
	d.t.Fatal("unexpected QueryRow")
	return nil
}

func activeLock(t *testing.T) *booking.Lock {
	t.Helper()
	start := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)
	expiresAt := time.Date(2026, time.March, 9, 12, 15, 0, 0, time.UTC)
	return booking.NewLock(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		"Ana Souza", "ana@example.com",
		slot, expiresAt,
	)
}

func TestLockRepositoryAcquire(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps due holds before inserting", func(t *testing.T) {
		db := &scriptDB{t: t, queue: []error{nil, nil}}
		repo := repository.NewLockRepository(db)

		err := repo.Acquire(ctx, activeLock(t))
		require.NoError(t, err)

		require.Len(t, db.sqls, 2)
		assert.Contains(t, db.sqls[0], "UPDATE booking_locks")
		assert.Contains(t, db.sqls[0], "expires_at <= now()")
		assert.Contains(t, db.sqls[1], "INSERT INTO booking_locks")
	})

	t.Run("overlap rejection after the sweep surfaces as conflict", func(t *testing.T) {
		// With due holds already lapsed, an exclusion violation means the
		// blocking hold is live.
		db := &scriptDB{t: t, queue: []error{
			nil,
			&pgconn.PgError{Code: "23P01", ConstraintName: "booking_locks_no_overlap"},
		}}
		repo := repository.NewLockRepository(db)

		err := repo.Acquire(ctx, activeLock(t))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		require.Len(t, db.sqls, 2)
	})

	t.Run("sweep failure stops before the insert", func(t *testing.T) {
		db := &scriptDB{t: t, queue: []error{errs.New("connection reset")}}
		repo := repository.NewLockRepository(db)

		err := repo.Acquire(ctx, activeLock(t))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		require.Len(t, db.sqls, 1)
		assert.False(t, strings.Contains(db.sqls[0], "INSERT"))
	})

	t.Run("duplicate key keeps its own kind", func(t *testing.T) {
		db := &scriptDB{t: t, queue: []error{
			nil,
			&pgconn.PgError{Code: "23505", ConstraintName: "booking_locks_pkey"},
		}}
		repo := repository.NewLockRepository(db)

		err := repo.Acquire(ctx, activeLock(t))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
