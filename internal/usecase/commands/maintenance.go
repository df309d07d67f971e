package commands

import (
	"context"
	"log/slog"
	"time"

	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/errs"
	"clinic-agenda/internal/usecase/shared"
)

// MaintenanceCommands are the periodic jobs: reclaiming lapsed holds and
// reconciling payments whose webhook never arrived.
type MaintenanceCommands interface {
	// ReapExpired marks due locks expired and times out their pending
	// payments. Returns counts for the job log.
	ReapExpired(ctx context.Context) (ReapResult, error)
	// ReconcilePending polls the gateway for stale pending payments and
	// folds each answer through the same promotion path webhooks use.
	ReconcilePending(ctx context.Context) (SweepResult, error)
}

type ReapResult struct {
	LocksExpired    int64
	PaymentsExpired int64
}

type SweepResult struct {
	Checked  int
	Resolved int
	Failed   int
}

type maintenanceUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	confirm ConfirmationCommands
	clock   clock.Clock
	jobsCfg config.JobsConfig
	lockTTL time.Duration
}

func NewMaintenanceCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	confirm ConfirmationCommands,
	clk clock.Clock,
	jobsCfg config.JobsConfig,
	bookingCfg config.BookingConfig,
) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		confirm: confirm,
		clock:   clk,
		jobsCfg: jobsCfg,
		lockTTL: bookingCfg.LockTTL,
	}
}

func (m *maintenanceUseCaseImpl) ReapExpired(ctx context.Context) (ReapResult, error) {
	var result ReapResult
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := m.clock.Now()
		locks, err := tx.Locks().ExpireAllDue(ctx, now)
		if err != nil {
			return err
		}
		// Pending payments are only timed out once their lock is also past
		// due, so a customer mid-checkout never loses the session early.
		payments, err := tx.Payments().ExpirePendingBefore(ctx, now.Add(-m.lockTTL))
		if err != nil {
			return err
		}
		result = ReapResult{LocksExpired: locks, PaymentsExpired: payments}
		return nil
	})
	if err != nil {
		return ReapResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

func (m *maintenanceUseCaseImpl) ReconcilePending(ctx context.Context) (SweepResult, error) {
	cutoff := m.clock.Now().Add(-m.lockTTL)
	pending, err := m.uow.Reads().PendingPaymentsBefore(ctx, cutoff, m.jobsCfg.SweepBatchSize)
	if err != nil {
		return SweepResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var result SweepResult
	for _, pay := range pending {
		result.Checked++
		gp, err := m.gateway.FindByReference(ctx, pay.ID().String())
		if err != nil {
			// One unreachable lookup must not starve the rest of the batch.
			slog.WarnContext(ctx, "reconciliation lookup failed",
				"payment_id", pay.ID(), "error", err)
			result.Failed++
			continue
		}
		if gp == nil {
			// The provider has no record at all; the reaper times it out.
			continue
		}
		if err := m.confirm.ApplyGatewayStatus(ctx, gp); err != nil {
			slog.WarnContext(ctx, "reconciliation apply failed",
				"payment_id", pay.ID(), "error", err)
			result.Failed++
			continue
		}
		result.Resolved++
	}
	return result, nil
}
