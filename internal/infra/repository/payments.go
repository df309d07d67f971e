package repository

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (
			id, tenant_id, provider, idempotency_key, amount_cents, currency,
			status, provider_ref, checkout_url, lock_id, booking_id, raw_payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID(), p.TenantID(), p.Provider(), p.IdempotencyKey(),
		p.AmountCents(), p.Currency(), string(p.Status()),
		pgconv.StringPtrToPgtype(p.ProviderRef()), pgconv.StringPtrToPgtype(p.CheckoutURL()),
		pgconv.UUIDPtrToPgtype(p.LockID()), pgconv.UUIDPtrToPgtype(p.BookingID()),
		p.RawPayload(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) AttachSession(ctx context.Context, id uuid.UUID, providerRef, checkoutURL string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE payments SET provider_ref = $2, checkout_url = $3, updated_at = now()
		WHERE id = $1`,
		id, providerRef, checkoutURL,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to attach session", err)
	}
	return nil
}

// MarkPaid is the guarded pending -> paid transition. The WHERE clause is
// what makes concurrent webhook deliveries collapse to a single winner.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, providerRef string, rawPayload []byte) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = 'paid', provider_ref = $2, raw_payload = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending'`,
		id, providerRef, rawPayload,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment paid", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id uuid.UUID, rawPayload []byte) error {
	_, err := r.db.Exec(ctx, `
		UPDATE payments SET status = 'failed', raw_payload = $2, updated_at = now()
		WHERE id = $1 AND status <> 'paid'`,
		id, rawPayload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment failed", err)
	}
	return nil
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, id uuid.UUID, rawPayload []byte) error {
	_, err := r.db.Exec(ctx, `
		UPDATE payments SET status = 'refunded', raw_payload = COALESCE($2, raw_payload), updated_at = now()
		WHERE id = $1 AND status = 'paid'`,
		id, rawPayload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment refunded", err)
	}
	return nil
}

func (r *PaymentRepository) LinkBooking(ctx context.Context, id, bookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE payments SET booking_id = $2, updated_at = now() WHERE id = $1`, id, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to link booking", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	return nil
}

func (r *PaymentRepository) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET status = 'expired', updated_at = now()
		WHERE status = 'pending' AND created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending payments", err)
	}
	return tag.RowsAffected(), nil
}

const selectPaymentSQL = `
SELECT id, tenant_id, provider, idempotency_key, amount_cents, currency,
       status, provider_ref, checkout_url, lock_id, booking_id, raw_payload,
       created_at, updated_at
FROM payments`

func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var (
		id, tenantID             uuid.UUID
		provider                 string
		idempotencyKey           uuid.UUID
		amountCents              int64
		currency, status         string
		providerRef, checkoutURL pgtype.Text
		lockID, bookingID        pgtype.UUID
		rawPayload               []byte
		createdAt, updatedAt     time.Time
	)
	err := row.Scan(
		&id, &tenantID, &provider, &idempotencyKey, &amountCents, &currency,
		&status, &providerRef, &checkoutURL, &lockID, &bookingID, &rawPayload,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return payment.Reconstruct(
		id, tenantID, provider, idempotencyKey, amountCents, currency,
		payment.Status(status),
		pgconv.StringPtrFromPgtype(providerRef), pgconv.StringPtrFromPgtype(checkoutURL),
		pgconv.UUIDPtrFromPgtype(lockID), pgconv.UUIDPtrFromPgtype(bookingID),
		rawPayload, createdAt, updatedAt,
	), nil
}
