package repository

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LockRepository struct {
	db DBTX
}

func NewLockRepository(db DBTX) *LockRepository {
	return &LockRepository{db: db}
}

const insertLockSQL = `
INSERT INTO booking_locks (
    id, tenant_id, service_id, professional_id, patient_id,
    customer_name, customer_email, start_at, end_at, expires_at, token, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const sweepDueLocksSQL = `
UPDATE booking_locks SET status = 'expired'
WHERE professional_id = $1
  AND status = 'active'
  AND expires_at <= now()
  AND tstzrange(start_at, end_at) && tstzrange($2, $3)`

// Acquire lapses already-due holds on the range, then inserts. The sweep has
// to run before the insert: a constraint rejection would abort the enclosing
// transaction and poison any statement after it. With due holds gone first,
// an overlap rejection means the blocking hold is genuinely live and
// surfaces as KindConflict.
func (r *LockRepository) Acquire(ctx context.Context, l *booking.Lock) error {
	_, err := r.db.Exec(ctx, sweepDueLocksSQL,
		l.ProfessionalID(), l.Slot().Start(), l.Slot().End(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to sweep expired locks", err)
	}
	return r.insert(ctx, l)
}

func (r *LockRepository) insert(ctx context.Context, l *booking.Lock) error {
	_, err := r.db.Exec(ctx, insertLockSQL,
		l.ID(), l.TenantID(), l.ServiceID(), l.ProfessionalID(), l.PatientID(),
		l.CustomerName(), l.CustomerEmail(),
		l.Slot().Start(), l.Slot().End(), l.ExpiresAt(), l.Token(), string(l.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to acquire lock", err)
	}
	return nil
}

const selectLockSQL = `
SELECT id, tenant_id, service_id, professional_id, patient_id,
       customer_name, customer_email, start_at, end_at, expires_at, token, status
FROM booking_locks`

func (r *LockRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Lock, error) {
	return r.findOne(ctx, selectLockSQL+" WHERE id = $1", id)
}

func (r *LockRepository) FindByToken(ctx context.Context, token uuid.UUID) (*booking.Lock, error) {
	return r.findOne(ctx, selectLockSQL+" WHERE token = $1", token)
}

func (r *LockRepository) findOne(ctx context.Context, sql string, arg any) (*booking.Lock, error) {
	var (
		id, tenantID, serviceID     uuid.UUID
		professionalID, patientID   uuid.UUID
		customerName, customerEmail string
		startAt, endAt, expiresAt   time.Time
		token                       uuid.UUID
		status                      string
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&id, &tenantID, &serviceID, &professionalID, &patientID,
		&customerName, &customerEmail, &startAt, &endAt, &expiresAt, &token, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lock not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lock", err)
	}

	slot, err := booking.NewTimeSlot(startAt, endAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt lock range", err)
	}
	return booking.ReconstructLock(
		id, tenantID, serviceID, professionalID, patientID,
		customerName, customerEmail, slot, expiresAt,
		token, booking.LockStatus(status),
	), nil
}

func (r *LockRepository) MarkConverted(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE booking_locks SET status = 'converted' WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to convert lock", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LockRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE booking_locks SET status = 'expired' WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to expire lock", err)
	}
	return nil
}

func (r *LockRepository) ExpireDueForProfessional(ctx context.Context, professionalID uuid.UUID, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE booking_locks SET status = 'expired'
		WHERE professional_id = $1 AND status = 'active' AND expires_at <= $2`,
		professionalID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to expire due locks", err)
	}
	return nil
}

func (r *LockRepository) ExpireAllDue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE booking_locks SET status = 'expired' WHERE status = 'active' AND expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire due locks", err)
	}
	return tag.RowsAffected(), nil
}

func (r *LockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM booking_locks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lock", err)
	}
	return nil
}
