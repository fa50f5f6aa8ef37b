package bootstrap

import (
	"equiplend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CollaboratorModule,
	components.UseCaseModule,
	components.HandlerModule,
)
