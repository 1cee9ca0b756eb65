package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) *cookie.Jar {
			return cookie.NewJar(cfg.Cookie)
		},
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewUserHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	User        *api.UserHandler
	Report      *api.ReportHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Hotel:       p.Hotel,
		Room:        p.Room,
		Reservation: p.Reservation,
		User:        p.User,
		Report:      p.Report,
	}
}
