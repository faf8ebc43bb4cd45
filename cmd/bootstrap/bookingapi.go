package bootstrap

import (
	"log/slog"

	"resort-checkout/internal/infra/bookingapi"
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var BookingAPIModule = fx.Module("bookingapi",
	fx.Provide(
		fx.Annotate(
			NewBookingAPIClient,
			fx.As(new(shared.AvailabilityGateway)),
			fx.As(new(shared.ServiceCatalogGateway)),
			fx.As(new(shared.ReservationGateway)),
		),
	),
)

func NewBookingAPIClient(cfg config.Config, logger *slog.Logger) *bookingapi.Client {
	return bookingapi.NewClient(cfg.BookingAPI, logger)
}
