package components

import (
	"aqualux-api/internal/handler"
	"aqualux-api/internal/handler/api"
	"aqualux-api/internal/handler/middleware"
	"aqualux-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Catalog: catalog,
		Admin:   admin,
	}
}
