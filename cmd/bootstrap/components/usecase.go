package components

import (
	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewDefaultHasher,
	func(cfg config.Config) *datefmt.Formatter {
		return datefmt.MustNew(cfg.Booking.DatePattern)
	},
	func(cfg config.Config) calendar.StayLimit {
		return calendar.StayLimit(cfg.Booking.MaxStayDays)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewHotelCommands,
		commands.NewRoomCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHotelQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewReportQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
