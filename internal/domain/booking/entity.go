package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking is a durable confirmed reservation. No two confirmed bookings for
// the same professional may overlap; the store's exclusion constraint is the
// authority on that, mirroring the lock table.
type Booking struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	serviceID      uuid.UUID
	professionalID uuid.UUID
	patientID      uuid.UUID
	slot           TimeSlot
	status         Status
	paymentID      *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

// NewConfirmed builds a booking in confirmed state, either directly for
// no-payment services or from a converted lock's captured fields.
func NewConfirmed(
	tenantID, serviceID, professionalID, patientID uuid.UUID,
	slot TimeSlot,
	paymentID *uuid.UUID,
) *Booking {
	return &Booking{
		id:             uuid.New(),
		tenantID:       tenantID,
		serviceID:      serviceID,
		professionalID: professionalID,
		patientID:      patientID,
		slot:           slot,
		status:         StatusConfirmed,
		paymentID:      paymentID,
	}
}

// FromLock captures the lock's fields into a confirmed booking. The caller
// must convert the lock in the same transaction.
func FromLock(l *Lock, paymentID uuid.UUID) *Booking {
	id := paymentID
	return NewConfirmed(l.TenantID(), l.ServiceID(), l.ProfessionalID(), l.PatientID(), l.Slot(), &id)
}

func ReconstructBooking(
	id, tenantID, serviceID, professionalID, patientID uuid.UUID,
	slot TimeSlot,
	status Status,
	paymentID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		tenantID:       tenantID,
		serviceID:      serviceID,
		professionalID: professionalID,
		patientID:      patientID,
		slot:           slot,
		status:         status,
		paymentID:      paymentID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) TenantID() uuid.UUID       { return b.tenantID }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) ProfessionalID() uuid.UUID { return b.professionalID }
func (b *Booking) PatientID() uuid.UUID      { return b.patientID }
func (b *Booking) Slot() TimeSlot            { return b.slot }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) PaymentID() *uuid.UUID     { return b.paymentID }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

// Reschedule moves a confirmed booking to a new slot. Conflict checking
// against the professional's agenda is the caller's responsibility, inside
// the same transactional guard used at checkout.
func (b *Booking) Reschedule(slot TimeSlot) error {
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	b.slot = slot
	return nil
}
