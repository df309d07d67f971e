package repository

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/domain/schedule"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/pgconv"
	"clinic-agenda/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommandReads struct {
	db DBTX
}

func NewCommandReads(db DBTX) *CommandReads {
	return &CommandReads{db: db}
}

const selectServiceContextSQL = `
SELECT bl.id, bl.tenant_id, bl.service_id, bl.professional_id,
       s.name, p.full_name, s.duration_min, s.price_cents, s.currency,
       s.requires_payment, s.payment_mode, s.deposit_cents, s.min_advance_hours,
       t.timezone, (bl.active AND s.active)
FROM booking_links bl
JOIN services s ON s.id = bl.service_id
JOIN professionals p ON p.id = bl.professional_id
JOIN tenants t ON t.id = bl.tenant_id`

func (r *CommandReads) LinkByToken(ctx context.Context, token string) (*shared.ServiceContext, error) {
	return r.scanServiceContext(ctx, selectServiceContextSQL+" WHERE bl.token = $1", token)
}

// ServiceContextByServiceID resolves through the service's booking link so
// rescheduling validates against the same settings checkout saw.
func (r *CommandReads) ServiceContextByServiceID(ctx context.Context, serviceID uuid.UUID) (*shared.ServiceContext, error) {
	return r.scanServiceContext(ctx,
		selectServiceContextSQL+" WHERE bl.service_id = $1 ORDER BY bl.created_at LIMIT 1", serviceID)
}

func (r *CommandReads) scanServiceContext(ctx context.Context, sql string, arg any) (*shared.ServiceContext, error) {
	var (
		sc           shared.ServiceContext
		paymentMode  string
		depositCents pgtype.Int8
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&sc.LinkID, &sc.TenantID, &sc.ServiceID, &sc.ProfessionalID,
		&sc.ServiceName, &sc.ProfessionalName, &sc.DurationMin, &sc.PriceCents, &sc.Currency,
		&sc.RequiresPayment, &paymentMode, &depositCents, &sc.MinAdvanceHours,
		&sc.Timezone, &sc.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve booking link", err)
	}
	sc.PaymentMode = shared.PaymentMode(paymentMode)
	sc.DepositCents = pgconv.Int64PtrFromPgtype(depositCents)
	return &sc, nil
}

func (r *CommandReads) RulesForProfessional(ctx context.Context, professionalID uuid.UUID) ([]schedule.Rule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, professional_id, service_id, weekday, start_minute, end_minute, timezone
		FROM availability_rules
		WHERE professional_id = $1
		ORDER BY weekday, start_minute`,
		professionalID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability rules", err)
	}
	defer rows.Close()

	var rules []schedule.Rule
	for rows.Next() {
		var (
			rule      schedule.Rule
			serviceID pgtype.UUID
			weekday   int16
			start     int32
			end       int32
			tz        pgtype.Text
		)
		if err := rows.Scan(&rule.ID, &rule.ProfessionalID, &serviceID, &weekday, &start, &end, &tz); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		rule.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
		rule.Weekday = time.Weekday(weekday)
		rule.Start = schedule.LocalTime(start)
		rule.End = schedule.LocalTime(end)
		if tz.Valid {
			rule.Timezone = tz.String
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rules", err)
	}
	return rules, nil
}

func (r *CommandReads) ExceptionsBetween(ctx context.Context, professionalID uuid.UUID, from, to schedule.Date) ([]schedule.Exception, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, professional_id, service_id, date, start_minute, end_minute, available
		FROM availability_exceptions
		WHERE professional_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`,
		professionalID, civilToTime(from), civilToTime(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability exceptions", err)
	}
	defer rows.Close()

	var exceptions []schedule.Exception
	for rows.Next() {
		var (
			ex         schedule.Exception
			serviceID  pgtype.UUID
			date       pgtype.Date
			start, end pgtype.Int4
		)
		if err := rows.Scan(&ex.ID, &ex.ProfessionalID, &serviceID, &date, &start, &end, &ex.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability exception", err)
		}
		ex.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
		ex.Date = schedule.DateOf(date.Time)
		ex.Start = localTimePtr(start)
		ex.End = localTimePtr(end)
		exceptions = append(exceptions, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability exceptions", err)
	}
	return exceptions, nil
}

func (r *CommandReads) ConfirmedBookingsOverlapping(ctx context.Context, professionalID uuid.UUID, start, end time.Time) ([]schedule.Interval, error) {
	return r.queryIntervals(ctx, `
		SELECT start_at, end_at FROM bookings
		WHERE professional_id = $1 AND status = 'confirmed'
		  AND start_at < $3 AND end_at > $2`,
		professionalID, start, end,
	)
}

func (r *CommandReads) ActiveLocksOverlapping(ctx context.Context, professionalID uuid.UUID, start, end, now time.Time) ([]schedule.Interval, error) {
	return r.queryIntervals(ctx, `
		SELECT start_at, end_at FROM booking_locks
		WHERE professional_id = $1 AND status = 'active' AND expires_at > $4
		  AND start_at < $3 AND end_at > $2`,
		professionalID, start, end, now,
	)
}

func (r *CommandReads) queryIntervals(ctx context.Context, sql string, args ...any) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.StartAt, &iv.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied intervals", err)
	}
	return intervals, nil
}

func (r *CommandReads) PaymentByIdempotencyKey(ctx context.Context, tenantID, key uuid.UUID) (*payment.Payment, error) {
	return r.onePayment(ctx, selectPaymentSQL+" WHERE tenant_id = $1 AND idempotency_key = $2", tenantID, key)
}

func (r *CommandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return r.onePayment(ctx, selectPaymentSQL+" WHERE id = $1", id)
}

func (r *CommandReads) onePayment(ctx context.Context, sql string, args ...any) (*payment.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return p, nil
}

func (r *CommandReads) PendingPaymentsBefore(ctx context.Context, cutoff time.Time, limit int32) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		selectPaymentSQL+` WHERE status = 'pending' AND created_at < $1 ORDER BY created_at LIMIT $2`,
		cutoff, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pending payments", err)
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending payment", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending payments", err)
	}
	return payments, nil
}

func (r *CommandReads) LockByToken(ctx context.Context, token uuid.UUID) (*booking.Lock, error) {
	return NewLockRepository(r.db).FindByToken(ctx, token)
}

func (r *CommandReads) LockByID(ctx context.Context, id uuid.UUID) (*booking.Lock, error) {
	return NewLockRepository(r.db).FindByID(ctx, id)
}

const selectBookingSnapshotSQL = `
SELECT b.id, b.tenant_id, b.service_id, s.name, b.professional_id,
       b.patient_id, pt.full_name, pt.email,
       b.start_at, b.end_at, b.status, b.payment_id, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN patients pt ON pt.id = b.patient_id`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.scanBookingSnapshot(ctx, selectBookingSnapshotSQL+" WHERE b.id = $1", id)
}

func (r *CommandReads) BookingByIdempotencyKey(ctx context.Context, tenantID, key uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.scanBookingSnapshot(ctx,
		selectBookingSnapshotSQL+" WHERE b.tenant_id = $1 AND b.idempotency_key = $2", tenantID, key)
}

func (r *CommandReads) scanBookingSnapshot(ctx context.Context, sql string, args ...any) (*shared.BookingSnapshot, error) {
	var (
		snap      shared.BookingSnapshot
		paymentID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&snap.ID, &snap.TenantID, &snap.ServiceID, &snap.ServiceName, &snap.ProfessionalID,
		&snap.PatientID, &snap.CustomerName, &snap.CustomerEmail,
		&snap.StartAt, &snap.EndAt, &snap.Status, &paymentID, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.PaymentID = pgconv.UUIDPtrFromPgtype(paymentID)
	return &snap, nil
}

func (r *CommandReads) ActionTokenByHash(ctx context.Context, hash string) (*actiontoken.Token, error) {
	var (
		id, bookingID uuid.UUID
		tokenHash     string
		expiresAt     time.Time
		usedAt        pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, booking_id, token_hash, expires_at, used_at
		FROM action_tokens WHERE token_hash = $1`,
		hash,
	).Scan(&id, &bookingID, &tokenHash, &expiresAt, &usedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("action token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find action token", err)
	}
	return actiontoken.Reconstruct(id, bookingID, tokenHash, expiresAt, pgconv.TimePtrFromPgtype(usedAt)), nil
}

func civilToTime(d schedule.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func localTimePtr(n pgtype.Int4) *schedule.LocalTime {
	if !n.Valid {
		return nil
	}
	lt := schedule.LocalTime(n.Int32)
	return &lt
}
