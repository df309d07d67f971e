package booking

import (
	"time"

	"github.com/google/uuid"
)

type LockStatus string

const (
	LockStatusActive    LockStatus = "active"
	LockStatusExpired   LockStatus = "expired"
	LockStatusConverted LockStatus = "converted"
)

func (s LockStatus) IsValid() bool {
	switch s {
	case LockStatusActive, LockStatusExpired, LockStatusConverted:
		return true
	default:
		return false
	}
}

// Lock is a short-lived exclusive hold on a professional's time range taken
// for the duration of a checkout. At most one active unexpired lock may
// cover any instant of a professional's agenda; the store's exclusion
// constraint enforces that, not this type.
type Lock struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	serviceID      uuid.UUID
	professionalID uuid.UUID
	patientID      uuid.UUID
	customerName   string
	customerEmail  string
	slot           TimeSlot
	expiresAt      time.Time
	token          uuid.UUID
	status         LockStatus
}

func NewLock(
	tenantID, serviceID, professionalID, patientID uuid.UUID,
	customerName, customerEmail string,
	slot TimeSlot,
	expiresAt time.Time,
) *Lock {
	return &Lock{
		id:             uuid.New(),
		tenantID:       tenantID,
		serviceID:      serviceID,
		professionalID: professionalID,
		patientID:      patientID,
		customerName:   customerName,
		customerEmail:  customerEmail,
		slot:           slot,
		expiresAt:      expiresAt,
		token:          uuid.New(),
		status:         LockStatusActive,
	}
}

func ReconstructLock(
	id, tenantID, serviceID, professionalID, patientID uuid.UUID,
	customerName, customerEmail string,
	slot TimeSlot,
	expiresAt time.Time,
	token uuid.UUID,
	status LockStatus,
) *Lock {
	return &Lock{
		id:             id,
		tenantID:       tenantID,
		serviceID:      serviceID,
		professionalID: professionalID,
		patientID:      patientID,
		customerName:   customerName,
		customerEmail:  customerEmail,
		slot:           slot,
		expiresAt:      expiresAt,
		token:          token,
		status:         status,
	}
}

func (l *Lock) ID() uuid.UUID             { return l.id }
func (l *Lock) TenantID() uuid.UUID       { return l.tenantID }
func (l *Lock) ServiceID() uuid.UUID      { return l.serviceID }
func (l *Lock) ProfessionalID() uuid.UUID { return l.professionalID }
func (l *Lock) PatientID() uuid.UUID      { return l.patientID }
func (l *Lock) CustomerName() string      { return l.customerName }
func (l *Lock) CustomerEmail() string     { return l.customerEmail }
func (l *Lock) Slot() TimeSlot            { return l.slot }
func (l *Lock) ExpiresAt() time.Time      { return l.expiresAt }
func (l *Lock) Token() uuid.UUID          { return l.token }
func (l *Lock) Status() LockStatus        { return l.status }

func (l *Lock) IsActive(now time.Time) bool {
	return l.status == LockStatusActive && now.Before(l.expiresAt)
}

// Convert finalizes the lock exactly once. A lock already expired or
// converted rejects a second conversion so promotion can never double-book.
func (l *Lock) Convert(now time.Time) error {
	if l.status != LockStatusActive {
		return ErrAlreadyFinalized
	}
	if !now.Before(l.expiresAt) {
		return ErrLockExpired
	}
	l.status = LockStatusConverted
	return nil
}

// Release marks the hold expired ahead of its TTL, freeing the range
// immediately after a failed or rejected payment.
func (l *Lock) Release() error {
	if l.status == LockStatusConverted {
		return ErrAlreadyFinalized
	}
	l.status = LockStatusExpired
	return nil
}
