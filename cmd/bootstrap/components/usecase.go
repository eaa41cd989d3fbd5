package components

import (
	"aqualux-api/internal/pkg/clock"
	"aqualux-api/internal/pkg/config"
	"aqualux-api/internal/usecase/commands"
	"aqualux-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)

func NewBookingCommands(
	bookingRepo commands.BookingRepository,
	bookingReader commands.BookingReader,
	serviceReader commands.ServiceReader,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(bookingRepo, bookingReader, serviceReader, clk, cfg.Booking.AutoConfirm)
}
