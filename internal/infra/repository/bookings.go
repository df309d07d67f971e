package repository

import (
	"context"

	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateConfirmed(ctx context.Context, b *booking.Booking, idempotencyKey *uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, tenant_id, service_id, professional_id, patient_id,
			start_at, end_at, status, payment_id, idempotency_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID(), b.TenantID(), b.ServiceID(), b.ProfessionalID(), b.PatientID(),
		b.Slot().Start(), b.Slot().End(), string(b.Status()),
		pgconv.UUIDPtrToPgtype(b.PaymentID()), pgconv.UUIDPtrToPgtype(idempotencyKey),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'confirmed'`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not cancellable", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateSlot(ctx context.Context, id uuid.UUID, slot booking.TimeSlot) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET start_at = $2, end_at = $3, updated_at = now()
		WHERE id = $1 AND status = 'confirmed'`,
		id, slot.Start(), slot.End(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not reschedulable", nil, infra.KindNotFound)
	}
	return nil
}
