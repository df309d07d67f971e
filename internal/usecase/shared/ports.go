package shared

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/domain/schedule"

	"github.com/google/uuid"
)

// UnitOfWork owns transactional boundaries. All cross-row coordination is
// expressed through store-level constraints inside Within; there are no
// in-process locks anywhere in the usecase layer.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Reads() CommandReads
}

type Tx interface {
	Locks() LockRepository
	Payments() PaymentRepository
	Bookings() BookingRepository
	Patients() PatientRepository
	ActionTokens() ActionTokenRepository
}

// CommandReads are the non-transactional lookups commands and queries need.
type CommandReads interface {
	LinkByToken(ctx context.Context, token string) (*ServiceContext, error)
	ServiceContextByServiceID(ctx context.Context, serviceID uuid.UUID) (*ServiceContext, error)
	RulesForProfessional(ctx context.Context, professionalID uuid.UUID) ([]schedule.Rule, error)
	ExceptionsBetween(ctx context.Context, professionalID uuid.UUID, from, to schedule.Date) ([]schedule.Exception, error)
	ConfirmedBookingsOverlapping(ctx context.Context, professionalID uuid.UUID, start, end time.Time) ([]schedule.Interval, error)
	ActiveLocksOverlapping(ctx context.Context, professionalID uuid.UUID, start, end, now time.Time) ([]schedule.Interval, error)
	PaymentByIdempotencyKey(ctx context.Context, tenantID, key uuid.UUID) (*payment.Payment, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	PendingPaymentsBefore(ctx context.Context, cutoff time.Time, limit int32) ([]*payment.Payment, error)
	LockByToken(ctx context.Context, token uuid.UUID) (*booking.Lock, error)
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Lock, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingByIdempotencyKey(ctx context.Context, tenantID, key uuid.UUID) (*BookingSnapshot, error)
	ActionTokenByHash(ctx context.Context, hash string) (*actiontoken.Token, error)
}

// LockRepository is the transactional store of exclusive holds. Acquire
// relies on the store's exclusion constraint: a violation surfaces as a
// conflict-kind repository error, which is the mutual-exclusion signal.
type LockRepository interface {
	// Acquire inserts the lock. On an overlap rejection it deletes
	// already-expired overlapping rows and retries once before failing.
	Acquire(ctx context.Context, l *booking.Lock) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Lock, error)
	FindByToken(ctx context.Context, token uuid.UUID) (*booking.Lock, error)
	// MarkConverted transitions active -> converted, reporting whether this
	// call won the transition.
	MarkConverted(ctx context.Context, id uuid.UUID) (bool, error)
	MarkExpired(ctx context.Context, id uuid.UUID) error
	ExpireDueForProfessional(ctx context.Context, professionalID uuid.UUID, now time.Time) error
	ExpireAllDue(ctx context.Context, now time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	AttachSession(ctx context.Context, id uuid.UUID, providerRef, checkoutURL string) error
	// MarkPaid transitions pending -> paid, reporting whether this call won
	// the transition. Promotion of a lock into a booking happens only on a
	// won transition.
	MarkPaid(ctx context.Context, id uuid.UUID, providerRef string, rawPayload []byte) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, rawPayload []byte) error
	MarkRefunded(ctx context.Context, id uuid.UUID, rawPayload []byte) error
	LinkBooking(ctx context.Context, id, bookingID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	// CreateConfirmed inserts a confirmed booking; an overlap with another
	// confirmed booking surfaces as a conflict-kind repository error.
	CreateConfirmed(ctx context.Context, b *booking.Booking, idempotencyKey *uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	UpdateSlot(ctx context.Context, id uuid.UUID, slot booking.TimeSlot) error
}

type PatientRepository interface {
	// Upsert merges the draft by (tenant, document number) and returns the
	// patient id.
	Upsert(ctx context.Context, draft PatientDraft) (uuid.UUID, error)
}

type ActionTokenRepository interface {
	Insert(ctx context.Context, t *actiontoken.Token) error
	// Consume sets used-at once; a second call reports false.
	Consume(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
}
