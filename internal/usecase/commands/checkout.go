package commands

import (
	"context"
	"log/slog"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/errs"
	"clinic-agenda/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLinkNotFound            = errs.New("booking link not found")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrDurationMismatch        = errs.New("time slot does not match service duration")
	ErrInsufficientLeadTime    = errs.New("insufficient lead time")
	ErrSlotConflict            = errs.New("slot already held or booked")
	ErrUpstreamGateway         = errs.New("payment gateway request failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutStatus string

const (
	CheckoutStatusConfirmed      CheckoutStatus = "confirmed"
	CheckoutStatusPendingPayment CheckoutStatus = "pending_payment"
)

type CreateCheckoutParams struct {
	LinkToken      string
	StartAt        time.Time
	EndAt          time.Time
	CustomerName   string
	CustomerEmail  string
	Patient        shared.PatientDraft
	IdempotencyKey uuid.UUID
	ReturnURL      *string
}

type CheckoutResult struct {
	Status      CheckoutStatus
	BookingID   *uuid.UUID
	PaymentID   *uuid.UUID
	LockToken   *uuid.UUID
	RedirectURL *string
	ExpiresAt   *time.Time
	IsReplayed  bool
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, params CreateCheckoutParams) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow        shared.UnitOfWork
	gateway    PaymentGateway
	notifier   Notifier
	clock      clock.Clock
	bookingCfg config.BookingConfig
	gatewayCfg config.GatewayConfig
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier Notifier,
	clk clock.Clock,
	bookingCfg config.BookingConfig,
	gatewayCfg config.GatewayConfig,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:        uow,
		gateway:    gateway,
		notifier:   notifier,
		clock:      clk,
		bookingCfg: bookingCfg,
		gatewayCfg: gatewayCfg,
	}
}

func (c *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, params CreateCheckoutParams) (*CheckoutResult, error) {
	svc, err := c.resolveLink(ctx, params.LinkToken)
	if err != nil {
		return nil, err
	}

	slot, err := c.validateSlot(svc, params.StartAt, params.EndAt)
	if err != nil {
		return nil, err
	}

	// Idempotency replay is checked before any side effect: retrying with
	// the same key is always safe and returns the original outcome.
	if replay, err := c.findReplay(ctx, svc, params.IdempotencyKey); err != nil {
		return nil, err
	} else if replay != nil {
		return replay, nil
	}

	if err := c.rejectOccupied(ctx, svc, slot); err != nil {
		return nil, err
	}

	if !svc.RequiresPayment {
		return c.createDirectBooking(ctx, svc, slot, params)
	}
	return c.createPaymentCheckout(ctx, svc, slot, params)
}

func (c *checkoutUseCaseImpl) resolveLink(ctx context.Context, token string) (*shared.ServiceContext, error) {
	svc, err := c.uow.Reads().LinkByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !svc.Active {
		return nil, ErrLinkNotFound
	}
	return svc, nil
}

func (c *checkoutUseCaseImpl) validateSlot(svc *shared.ServiceContext, startAt, endAt time.Time) (booking.TimeSlot, error) {
	slot, err := booking.NewTimeSlot(startAt, endAt)
	if err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if err := slot.ValidateExactDuration(svc.Duration()); err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrDurationMismatch)
	}
	if err := slot.ValidateLeadTimeAt(c.clock.Now(), svc.MinAdvance()); err != nil {
		return booking.TimeSlot{}, errs.Mark(err, ErrInsufficientLeadTime)
	}
	return slot, nil
}

func (c *checkoutUseCaseImpl) findReplay(ctx context.Context, svc *shared.ServiceContext, key uuid.UUID) (*CheckoutResult, error) {
	reads := c.uow.Reads()

	if svc.RequiresPayment {
		pay, err := reads.PaymentByIdempotencyKey(ctx, svc.TenantID, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return c.replayFromPayment(ctx, pay)
	}

	b, err := reads.BookingByIdempotencyKey(ctx, svc.TenantID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	bookingID := b.ID
	return &CheckoutResult{
		Status:     CheckoutStatusConfirmed,
		BookingID:  &bookingID,
		IsReplayed: true,
	}, nil
}

func (c *checkoutUseCaseImpl) replayFromPayment(ctx context.Context, pay *payment.Payment) (*CheckoutResult, error) {
	paymentID := pay.ID()
	result := &CheckoutResult{
		PaymentID:   &paymentID,
		RedirectURL: pay.CheckoutURL(),
		IsReplayed:  true,
	}

	if pay.IsPaid() {
		result.Status = CheckoutStatusConfirmed
		result.BookingID = pay.BookingID()
		return result, nil
	}

	result.Status = CheckoutStatusPendingPayment
	if pay.LockID() != nil {
		lock, err := c.uow.Reads().LockByID(ctx, *pay.LockID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		token := lock.Token()
		expiresAt := lock.ExpiresAt()
		result.LockToken = &token
		result.ExpiresAt = &expiresAt
	}
	return result, nil
}

// rejectOccupied is an advisory precheck; the store's exclusion constraint
// remains the real guard under concurrency.
func (c *checkoutUseCaseImpl) rejectOccupied(ctx context.Context, svc *shared.ServiceContext, slot booking.TimeSlot) error {
	reads := c.uow.Reads()
	now := c.clock.Now()

	bookings, err := reads.ConfirmedBookingsOverlapping(ctx, svc.ProfessionalID, slot.Start(), slot.End())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(bookings) > 0 {
		return ErrSlotConflict
	}

	locks, err := reads.ActiveLocksOverlapping(ctx, svc.ProfessionalID, slot.Start(), slot.End(), now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(locks) > 0 {
		return ErrSlotConflict
	}
	return nil
}

func (c *checkoutUseCaseImpl) createDirectBooking(
	ctx context.Context,
	svc *shared.ServiceContext,
	slot booking.TimeSlot,
	params CreateCheckoutParams,
) (*CheckoutResult, error) {
	var (
		created     *booking.Booking
		actionPlain string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().ExpireDueForProfessional(ctx, svc.ProfessionalID, c.clock.Now()); err != nil {
			return err
		}

		patientID, err := tx.Patients().Upsert(ctx, c.draftFor(svc, params))
		if err != nil {
			return err
		}

		created = booking.NewConfirmed(svc.TenantID, svc.ServiceID, svc.ProfessionalID, patientID, slot, nil)
		key := params.IdempotencyKey
		if err := tx.Bookings().CreateConfirmed(ctx, created, &key); err != nil {
			return err
		}

		token, plaintext, err := actiontoken.Issue(created.ID(), c.clock.Now(), c.bookingCfg.ActionTokenTTL)
		if err != nil {
			return err
		}
		actionPlain = plaintext
		return tx.ActionTokens().Insert(ctx, token)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.notifier.BookingConfirmed(ctx, BookingNotification{
		BookingID:     created.ID(),
		TenantID:      svc.TenantID,
		ServiceName:   svc.ServiceName,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		StartAt:       slot.Start(),
		EndAt:         slot.End(),
		ActionToken:   actionPlain,
	})

	bookingID := created.ID()
	return &CheckoutResult{
		Status:    CheckoutStatusConfirmed,
		BookingID: &bookingID,
	}, nil
}

func (c *checkoutUseCaseImpl) createPaymentCheckout(
	ctx context.Context,
	svc *shared.ServiceContext,
	slot booking.TimeSlot,
	params CreateCheckoutParams,
) (*CheckoutResult, error) {
	var (
		lock *booking.Lock
		pay  *payment.Payment
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		if err := tx.Locks().ExpireDueForProfessional(ctx, svc.ProfessionalID, now); err != nil {
			return err
		}

		patientID, err := tx.Patients().Upsert(ctx, c.draftFor(svc, params))
		if err != nil {
			return err
		}

		lock = booking.NewLock(
			svc.TenantID, svc.ServiceID, svc.ProfessionalID, patientID,
			params.CustomerName, params.CustomerEmail,
			slot, now.Add(c.bookingCfg.LockTTL),
		)
		if err := tx.Locks().Acquire(ctx, lock); err != nil {
			return err
		}

		lockID := lock.ID()
		pay = payment.NewPending(
			svc.TenantID, c.gatewayCfg.Provider, params.IdempotencyKey,
			svc.ChargeCents(), svc.Currency, &lockID,
		)
		return tx.Payments().Create(ctx, pay)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Raced a concurrent retry with the same key: the winner's row
			// is authoritative.
			return c.findReplay(ctx, svc, params.IdempotencyKey)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	session, err := c.gateway.CreateCheckoutSession(ctx, CheckoutSessionParams{
		ExternalReference: pay.ID().String(),
		Title:             svc.ServiceName,
		AmountCents:       svc.ChargeCents(),
		Currency:          svc.Currency,
		PayerEmail:        params.CustomerEmail,
		ReturnURL:         c.returnURL(params),
	})
	if err != nil {
		// No orphaned holds survive a failed checkout creation: compensate
		// synchronously before surfacing the gateway error.
		c.compensate(ctx, lock.ID(), pay.ID())
		return nil, errs.Mark(err, ErrUpstreamGateway)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().AttachSession(ctx, pay.ID(), session.ProviderRef, session.RedirectURL)
	})
	if err != nil {
		c.compensate(ctx, lock.ID(), pay.ID())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	paymentID := pay.ID()
	lockToken := lock.Token()
	expiresAt := lock.ExpiresAt()
	redirectURL := session.RedirectURL
	return &CheckoutResult{
		Status:      CheckoutStatusPendingPayment,
		PaymentID:   &paymentID,
		LockToken:   &lockToken,
		RedirectURL: &redirectURL,
		ExpiresAt:   &expiresAt,
	}, nil
}

func (c *checkoutUseCaseImpl) compensate(ctx context.Context, lockID, paymentID uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Delete(ctx, paymentID); err != nil {
			return err
		}
		return tx.Locks().Delete(ctx, lockID)
	})
	if err != nil {
		// The reaper reclaims whatever compensation could not; nothing more
		// to do synchronously.
		slog.WarnContext(ctx, "checkout compensation failed",
			"lock_id", lockID, "payment_id", paymentID, "error", err)
	}
}

func (c *checkoutUseCaseImpl) draftFor(svc *shared.ServiceContext, params CreateCheckoutParams) shared.PatientDraft {
	draft := params.Patient
	draft.TenantID = svc.TenantID
	return draft
}

func (c *checkoutUseCaseImpl) returnURL(params CreateCheckoutParams) string {
	if params.ReturnURL != nil && *params.ReturnURL != "" {
		return *params.ReturnURL
	}
	return c.gatewayCfg.ReturnURL
}
