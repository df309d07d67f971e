// Package jobs runs the periodic maintenance work: the lock reaper and the
// payment reconciliation sweep.
package jobs

import (
	"context"
	"log/slog"

	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron        *cron.Cron
	maintenance commands.MaintenanceCommands
	cfg         config.JobsConfig
}

func NewScheduler(maintenance commands.MaintenanceCommands, cfg config.JobsConfig) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		maintenance: maintenance,
		cfg:         cfg,
	}
}

func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(s.cfg.ReapSchedule, s.runReap); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.runSweep); err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("maintenance scheduler started",
		"reap_schedule", s.cfg.ReapSchedule,
		"sweep_schedule", s.cfg.SweepSchedule,
	)
}

// Stop waits for any in-flight run so a mid-transaction job is never cut
// off by shutdown.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("maintenance scheduler stopped")
}

func (s *Scheduler) runReap() {
	ctx := context.Background()
	result, err := s.maintenance.ReapExpired(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "lock reaper run failed", "error", err)
		return
	}
	if result.LocksExpired > 0 || result.PaymentsExpired > 0 {
		slog.InfoContext(ctx, "lock reaper run completed",
			"locks_expired", result.LocksExpired,
			"payments_expired", result.PaymentsExpired,
		)
	}
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	result, err := s.maintenance.ReconcilePending(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "reconciliation sweep failed", "error", err)
		return
	}
	if result.Checked > 0 {
		slog.InfoContext(ctx, "reconciliation sweep completed",
			"checked", result.Checked,
			"resolved", result.Resolved,
			"failed", result.Failed,
		)
	}
}
