package bootstrap

import (
	"resort-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	BookingAPIModule,
	SealBoxModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
