package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentGateway is the outbound port to the payment provider. Calls are
// bounded by ordinary request timeouts; failures surface as errors, never
// retried internally.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	// FetchPayment loads the authoritative payment object by the provider's
	// own id. Webhook payload fields are never trusted directly.
	FetchPayment(ctx context.Context, providerRef string) (*GatewayPayment, error)
	// FindByReference searches by our external reference, for the
	// reconciliation sweep.
	FindByReference(ctx context.Context, externalRef string) (*GatewayPayment, error)
}

type CheckoutSessionParams struct {
	// ExternalReference ties the session back to our payment row.
	ExternalReference string
	Title             string
	AmountCents       int64
	Currency          string
	PayerEmail        string
	ReturnURL         string
}

type CheckoutSession struct {
	ProviderRef string
	RedirectURL string
}

type GatewayStatus string

const (
	GatewayStatusApproved   GatewayStatus = "approved"
	GatewayStatusPending    GatewayStatus = "pending"
	GatewayStatusInProcess  GatewayStatus = "in_process"
	GatewayStatusRejected   GatewayStatus = "rejected"
	GatewayStatusCancelled  GatewayStatus = "cancelled"
	GatewayStatusRefunded   GatewayStatus = "refunded"
	GatewayStatusChargeback GatewayStatus = "charged_back"
)

// Terminal failure statuses release the hold immediately instead of waiting
// for the lock TTL.
func (s GatewayStatus) IsFailure() bool {
	switch s {
	case GatewayStatusRejected, GatewayStatusCancelled, GatewayStatusRefunded, GatewayStatusChargeback:
		return true
	default:
		return false
	}
}

// GatewayPayment is the authoritative payment object re-fetched from the
// provider.
type GatewayPayment struct {
	ProviderRef       string
	Status            GatewayStatus
	AmountCents       int64
	Currency          string
	ExternalReference string
	Raw               []byte
}

// Notifier is the outbound notification port. Fire-and-forget: the
// implementation logs failures and never propagates them, so a dead mail
// relay can never roll back a confirmed booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, n BookingNotification)
	BookingCancelled(ctx context.Context, n BookingNotification)
}

type BookingNotification struct {
	BookingID     uuid.UUID
	TenantID      uuid.UUID
	ServiceName   string
	CustomerName  string
	CustomerEmail string
	StartAt       time.Time
	EndAt         time.Time
	// ActionToken is the plaintext manage token, present only on
	// confirmation.
	ActionToken string
}
