package bootstrap

import (
	"context"

	"clinic-agenda/internal/jobs"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewScheduler(maintenance commands.MaintenanceCommands, cfg config.Config) *jobs.Scheduler {
	return jobs.NewScheduler(maintenance, cfg.Jobs)
}

func StartScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler) error {
	if err := scheduler.Register(); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
	return nil
}
