package components

import (
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"
	"clinic-agenda/internal/usecase/queries"
	"clinic-agenda/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
	func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(reads shared.CommandReads, clk clock.Clock, cfg config.BookingConfig) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(reads, clk, cfg)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
		commands.NewConfirmationCommands,
		commands.NewActionCommands,
		commands.NewMaintenanceCommands,
	),
)
