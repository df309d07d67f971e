package commands

import (
	"context"
	"log/slog"

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
	ErrPaymentNotFound = errs.New("payment not found")
	ErrAmountMismatch  = errs.New("gateway amount mismatch")
)

// ConfirmationCommands is the single promotion path. Webhook delivery and
// the reconciliation sweep both funnel through ApplyGatewayStatus, so the
// at-most-one-booking guarantee has exactly one implementation.
type ConfirmationCommands interface {
	// ApplyGatewayStatus folds an authoritative gateway payment object into
	// local state. Safe to call any number of times with the same input.
	ApplyGatewayStatus(ctx context.Context, gp *GatewayPayment) error
}

type confirmationUseCaseImpl struct {
	uow        shared.UnitOfWork
	notifier   Notifier
	clock      clock.Clock
	bookingCfg config.BookingConfig
}

func NewConfirmationCommands(
	uow shared.UnitOfWork,
	notifier Notifier,
	clk clock.Clock,
	bookingCfg config.BookingConfig,
) ConfirmationCommands {
	return &confirmationUseCaseImpl{
		uow:        uow,
		notifier:   notifier,
		clock:      clk,
		bookingCfg: bookingCfg,
	}
}

func (c *confirmationUseCaseImpl) ApplyGatewayStatus(ctx context.Context, gp *GatewayPayment) error {
	pay, err := c.resolvePayment(ctx, gp.ExternalReference)
	if err != nil {
		return err
	}

	switch {
	case gp.Status == GatewayStatusApproved:
		return c.applyApproved(ctx, pay, gp)
	case gp.Status.IsFailure():
		return c.applyFailure(ctx, pay, gp)
	default:
		// pending / in_process: nothing to fold in yet.
		return nil
	}
}

func (c *confirmationUseCaseImpl) resolvePayment(ctx context.Context, externalRef string) (*payment.Payment, error) {
	id, err := uuid.Parse(externalRef)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotFound)
	}
	pay, err := c.uow.Reads().PaymentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return pay, nil
}

func (c *confirmationUseCaseImpl) applyApproved(ctx context.Context, pay *payment.Payment, gp *GatewayPayment) error {
	if pay.IsPaid() {
		// Duplicate delivery of an already-folded approval.
		return nil
	}
	// An amount mismatch never mutates anything; the operator investigates
	// the raw event instead.
	if err := pay.VerifyAmount(gp.AmountCents); err != nil {
		return errs.Mark(err, ErrAmountMismatch)
	}

	var (
		promoted    *booking.Booking
		actionPlain string
		notifyName  string
		notifyEmail string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.Payments().MarkPaid(ctx, pay.ID(), gp.ProviderRef, gp.Raw)
		if err != nil {
			return err
		}
		if !won {
			// A concurrent delivery won the pending -> paid transition and
			// owns the promotion.
			return nil
		}

		if pay.LockID() == nil {
			return nil
		}
		lock, err := tx.Locks().FindByID(ctx, *pay.LockID())
		if err != nil {
			return err
		}
		// A lapsed lock does not forfeit a payment the customer completed;
		// the booking insert below is still guarded by the exclusion
		// constraint.
		if _, err := tx.Locks().MarkConverted(ctx, lock.ID()); err != nil {
			return err
		}

		promoted = booking.FromLock(lock, pay.ID())
		if err := tx.Bookings().CreateConfirmed(ctx, promoted, nil); err != nil {
			return err
		}
		if err := tx.Payments().LinkBooking(ctx, pay.ID(), promoted.ID()); err != nil {
			return err
		}

		token, plaintext, err := actiontoken.Issue(promoted.ID(), c.clock.Now(), c.bookingCfg.ActionTokenTTL)
		if err != nil {
			return err
		}
		actionPlain = plaintext
		notifyName = lock.CustomerName()
		notifyEmail = lock.CustomerEmail()
		return tx.ActionTokens().Insert(ctx, token)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return c.flagForRefund(ctx, pay, gp)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if promoted != nil {
		c.notifier.BookingConfirmed(ctx, BookingNotification{
			BookingID:     promoted.ID(),
			TenantID:      promoted.TenantID(),
			CustomerName:  notifyName,
			CustomerEmail: notifyEmail,
			StartAt:       promoted.Slot().Start(),
			EndAt:         promoted.Slot().End(),
			ActionToken:   actionPlain,
		})
	}
	return nil
}

// flagForRefund records an approved payment whose reserved range got taken
// before promotion, so the money trail stays honest while the slot stays
// with whoever holds it.
func (c *confirmationUseCaseImpl) flagForRefund(ctx context.Context, pay *payment.Payment, gp *GatewayPayment) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.Payments().MarkPaid(ctx, pay.ID(), gp.ProviderRef, gp.Raw)
		if err != nil {
			return err
		}
		if !won {
			return nil
		}
		if err := tx.Payments().MarkRefunded(ctx, pay.ID(), gp.Raw); err != nil {
			return err
		}
		if pay.LockID() != nil {
			return tx.Locks().MarkExpired(ctx, *pay.LockID())
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slog.WarnContext(ctx, "approved payment lost its slot, flagged for refund",
		"payment_id", pay.ID())
	return nil
}

func (c *confirmationUseCaseImpl) applyFailure(ctx context.Context, pay *payment.Payment, gp *GatewayPayment) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if pay.IsPaid() {
			// Refund or chargeback after promotion. Status only; releasing
			// the booking itself is an operator decision.
			return tx.Payments().MarkRefunded(ctx, pay.ID(), gp.Raw)
		}
		if err := tx.Payments().MarkFailed(ctx, pay.ID(), gp.Raw); err != nil {
			return err
		}
		// Free the reserved range right away instead of waiting out the TTL.
		if pay.LockID() != nil {
			return tx.Locks().MarkExpired(ctx, *pay.LockID())
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
