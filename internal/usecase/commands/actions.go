package commands

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/errs"
	"clinic-agenda/internal/usecase/shared"
)

var (
	ErrActionTokenInvalid = errs.New("action token invalid")
	ErrActionTokenUsed    = errs.New("action token already used")
	ErrActionTokenExpired = errs.New("action token expired")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrNotReschedulable   = errs.New("booking cannot be rescheduled")
)

type RescheduleParams struct {
	Token   string
	StartAt time.Time
	EndAt   time.Time
}

type RescheduleResult struct {
	Booking *shared.BookingSnapshot
	// NewToken replaces the consumed one so the customer keeps a handle on
	// the moved booking.
	NewToken string
}

// ActionCommands are the customer self-service operations reached through a
// one-time manage token from the confirmation notification.
type ActionCommands interface {
	Inspect(ctx context.Context, token string) (*shared.BookingSnapshot, error)
	Cancel(ctx context.Context, token string) (*shared.BookingSnapshot, error)
	Reschedule(ctx context.Context, params RescheduleParams) (*RescheduleResult, error)
}

type actionUseCaseImpl struct {
	uow        shared.UnitOfWork
	notifier   Notifier
	clock      clock.Clock
	bookingCfg config.BookingConfig
}

func NewActionCommands(
	uow shared.UnitOfWork,
	notifier Notifier,
	clk clock.Clock,
	bookingCfg config.BookingConfig,
) ActionCommands {
	return &actionUseCaseImpl{
		uow:        uow,
		notifier:   notifier,
		clock:      clk,
		bookingCfg: bookingCfg,
	}
}

func (a *actionUseCaseImpl) Inspect(ctx context.Context, token string) (*shared.BookingSnapshot, error) {
	t, err := a.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return a.snapshot(ctx, t)
}

func (a *actionUseCaseImpl) Cancel(ctx context.Context, token string) (*shared.BookingSnapshot, error) {
	t, err := a.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	snap, err := a.snapshot(ctx, t)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.ActionTokens().Consume(ctx, t.ID(), a.clock.Now())
		if err != nil {
			return err
		}
		if !won {
			return ErrActionTokenUsed
		}
		if err := tx.Bookings().Cancel(ctx, snap.ID); err != nil {
			return err
		}
		// A paid booking cancelled by the customer is flagged for refund;
		// issuing the refund at the gateway stays with the operator.
		if snap.PaymentID != nil {
			pay, err := a.uow.Reads().PaymentByID(ctx, *snap.PaymentID)
			if err != nil {
				return err
			}
			if pay.IsPaid() {
				return tx.Payments().MarkRefunded(ctx, pay.ID(), nil)
			}
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrActionTokenUsed) {
			return nil, ErrActionTokenUsed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.notifier.BookingCancelled(ctx, BookingNotification{
		BookingID:     snap.ID,
		TenantID:      snap.TenantID,
		ServiceName:   snap.ServiceName,
		CustomerName:  snap.CustomerName,
		CustomerEmail: snap.CustomerEmail,
		StartAt:       snap.StartAt,
		EndAt:         snap.EndAt,
	})
	return snap, nil
}

func (a *actionUseCaseImpl) Reschedule(ctx context.Context, params RescheduleParams) (*RescheduleResult, error) {
	t, err := a.resolveToken(ctx, params.Token)
	if err != nil {
		return nil, err
	}
	snap, err := a.snapshot(ctx, t)
	if err != nil {
		return nil, err
	}
	if snap.Status != booking.StatusConfirmed.String() {
		return nil, ErrNotReschedulable
	}

	svc, err := a.uow.Reads().ServiceContextByServiceID(ctx, snap.ServiceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slot, err := booking.NewTimeSlot(params.StartAt, params.EndAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if err := slot.ValidateExactDuration(svc.Duration()); err != nil {
		return nil, errs.Mark(err, ErrDurationMismatch)
	}
	if err := slot.ValidateLeadTimeAt(a.clock.Now(), svc.MinAdvance()); err != nil {
		return nil, errs.Mark(err, ErrInsufficientLeadTime)
	}

	var newPlain string
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.ActionTokens().Consume(ctx, t.ID(), a.clock.Now())
		if err != nil {
			return err
		}
		if !won {
			return ErrActionTokenUsed
		}
		if err := tx.Locks().ExpireDueForProfessional(ctx, snap.ProfessionalID, a.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateSlot(ctx, snap.ID, slot); err != nil {
			return err
		}
		replacement, plaintext, err := actiontoken.Issue(snap.ID, a.clock.Now(), a.bookingCfg.ActionTokenTTL)
		if err != nil {
			return err
		}
		newPlain = plaintext
		return tx.ActionTokens().Insert(ctx, replacement)
	})
	if err != nil {
		if errs.Is(err, ErrActionTokenUsed) {
			return nil, ErrActionTokenUsed
		}
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap.StartAt = slot.Start()
	snap.EndAt = slot.End()
	a.notifier.BookingConfirmed(ctx, BookingNotification{
		BookingID:     snap.ID,
		TenantID:      snap.TenantID,
		ServiceName:   snap.ServiceName,
		CustomerName:  snap.CustomerName,
		CustomerEmail: snap.CustomerEmail,
		StartAt:       snap.StartAt,
		EndAt:         snap.EndAt,
		ActionToken:   newPlain,
	})
	return &RescheduleResult{Booking: snap, NewToken: newPlain}, nil
}

func (a *actionUseCaseImpl) resolveToken(ctx context.Context, plaintext string) (*actiontoken.Token, error) {
	t, err := a.uow.Reads().ActionTokenByHash(ctx, actiontoken.Hash(plaintext))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActionTokenInvalid
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := t.Validate(a.clock.Now()); err != nil {
		switch {
		case errs.Is(err, actiontoken.ErrAlreadyUsed):
			return nil, ErrActionTokenUsed
		default:
			return nil, ErrActionTokenExpired
		}
	}
	return t, nil
}

func (a *actionUseCaseImpl) snapshot(ctx context.Context, t *actiontoken.Token) (*shared.BookingSnapshot, error) {
	snap, err := a.uow.Reads().BookingByID(ctx, t.BookingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}
