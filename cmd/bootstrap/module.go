package bootstrap

import (
	"letterdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
