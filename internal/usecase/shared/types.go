package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

// ServiceContext is the read-only configuration a public booking link
// resolves to: the service, its owner and the tenant settings the core
// needs. Tenant, membership and branding management live elsewhere.
type ServiceContext struct {
	LinkID           uuid.UUID
	TenantID         uuid.UUID
	ServiceID        uuid.UUID
	ProfessionalID   uuid.UUID
	ServiceName      string
	ProfessionalName string
	DurationMin      int32
	PriceCents       int64
	Currency         string
	RequiresPayment  bool
	PaymentMode      PaymentMode
	DepositCents     *int64
	MinAdvanceHours  int32
	Timezone         string
	Active           bool
}

type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "full"
	PaymentModeDeposit PaymentMode = "deposit"
)

// ChargeCents is the amount sent to the gateway for this service: the
// deposit when configured, the full price otherwise.
func (c *ServiceContext) ChargeCents() int64 {
	if c.PaymentMode == PaymentModeDeposit && c.DepositCents != nil {
		return *c.DepositCents
	}
	return c.PriceCents
}

func (c *ServiceContext) Duration() time.Duration {
	return time.Duration(c.DurationMin) * time.Minute
}

func (c *ServiceContext) MinAdvance() time.Duration {
	return time.Duration(c.MinAdvanceHours) * time.Hour
}

// PatientDraft carries the customer-entered patient fields from checkout.
// All nine are required at the API boundary.
type PatientDraft struct {
	TenantID       uuid.UUID
	FullName       string
	Email          string
	Phone          string
	DocumentNumber string
	BirthDate      time.Time
	Gender         string
	AddressLine    string
	City           string
	State          string
}

type BookingSnapshot struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ServiceID      uuid.UUID
	ServiceName    string
	ProfessionalID uuid.UUID
	PatientID      uuid.UUID
	CustomerName   string
	CustomerEmail  string
	StartAt        time.Time
	EndAt          time.Time
	Status         string
	PaymentID      *uuid.UUID
	CreatedAt      time.Time
}
