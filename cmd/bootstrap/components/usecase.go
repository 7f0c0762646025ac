package components

import (
	"letterdesk/internal/pkg/clock"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/usecase/commands"
	"letterdesk/internal/usecase/queries"
	"letterdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		shared.NewTokenValidator,
	),
	fx.Provide(
		commands.NewDispatchCommand,
		commands.NewProcessCommand,
		commands.NewCleanupCommand,
		commands.NewNotificationCommands,
		commands.NewAuthCommand,
	),
	fx.Provide(
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)
