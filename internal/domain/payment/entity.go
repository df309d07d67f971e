package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrImmutableOncePaid = errors.New("payment is immutable once paid")
	ErrAmountMismatch    = errors.New("gateway amount does not match stored amount")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusExpired  Status = "expired"
	StatusRefunded Status = "refunded"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusExpired, StatusRefunded:
		return true
	default:
		return false
	}
}

// Payment tracks one gateway charge attempt. The (tenant, idempotency key)
// pair is unique: replaying a checkout with the same key always resolves to
// the same row, which is what makes client retries safe.
type Payment struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	provider       string
	idempotencyKey uuid.UUID
	amountCents    int64
	currency       string
	status         Status
	providerRef    *string
	checkoutURL    *string
	lockID         *uuid.UUID
	bookingID      *uuid.UUID
	rawPayload     []byte
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPending(
	tenantID uuid.UUID,
	provider string,
	idempotencyKey uuid.UUID,
	amountCents int64,
	currency string,
	lockID *uuid.UUID,
) *Payment {
	return &Payment{
		id:             uuid.New(),
		tenantID:       tenantID,
		provider:       provider,
		idempotencyKey: idempotencyKey,
		amountCents:    amountCents,
		currency:       currency,
		status:         StatusPending,
		lockID:         lockID,
	}
}

func Reconstruct(
	id, tenantID uuid.UUID,
	provider string,
	idempotencyKey uuid.UUID,
	amountCents int64,
	currency string,
	status Status,
	providerRef, checkoutURL *string,
	lockID, bookingID *uuid.UUID,
	rawPayload []byte,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		tenantID:       tenantID,
		provider:       provider,
		idempotencyKey: idempotencyKey,
		amountCents:    amountCents,
		currency:       currency,
		status:         status,
		providerRef:    providerRef,
		checkoutURL:    checkoutURL,
		lockID:         lockID,
		bookingID:      bookingID,
		rawPayload:     rawPayload,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) TenantID() uuid.UUID       { return p.tenantID }
func (p *Payment) Provider() string          { return p.provider }
func (p *Payment) IdempotencyKey() uuid.UUID { return p.idempotencyKey }
func (p *Payment) AmountCents() int64        { return p.amountCents }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) ProviderRef() *string      { return p.providerRef }
func (p *Payment) CheckoutURL() *string      { return p.checkoutURL }
func (p *Payment) LockID() *uuid.UUID        { return p.lockID }
func (p *Payment) BookingID() *uuid.UUID     { return p.bookingID }
func (p *Payment) RawPayload() []byte        { return p.rawPayload }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time      { return p.updatedAt }

func (p *Payment) IsPaid() bool {
	return p.status == StatusPaid
}

// VerifyAmount rejects a gateway-reported amount that disagrees with the
// stored one. Security-relevant: never auto-corrected, never tolerant.
func (p *Payment) VerifyAmount(gatewayCents int64) error {
	if gatewayCents != p.amountCents {
		return ErrAmountMismatch
	}
	return nil
}

func (p *Payment) AttachSession(providerRef, checkoutURL string) {
	p.providerRef = &providerRef
	p.checkoutURL = &checkoutURL
}

func (p *Payment) MarkPaid(providerRef string, rawPayload []byte) error {
	if p.status == StatusPaid {
		return ErrImmutableOncePaid
	}
	if p.status != StatusPending {
		return ErrInvalidStatus
	}
	p.status = StatusPaid
	p.providerRef = &providerRef
	p.rawPayload = rawPayload
	return nil
}

func (p *Payment) MarkFailed(rawPayload []byte) error {
	if p.status == StatusPaid {
		return ErrImmutableOncePaid
	}
	p.status = StatusFailed
	p.rawPayload = rawPayload
	return nil
}

func (p *Payment) MarkExpired() error {
	if p.status != StatusPending {
		return ErrInvalidStatus
	}
	p.status = StatusExpired
	return nil
}

func (p *Payment) MarkRefunded(rawPayload []byte) error {
	if p.status != StatusPaid {
		return ErrInvalidStatus
	}
	p.status = StatusRefunded
	p.rawPayload = rawPayload
	return nil
}

func (p *Payment) LinkBooking(bookingID uuid.UUID) {
	p.bookingID = &bookingID
}
