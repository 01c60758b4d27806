package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	healthH *handler.HealthHandler,
	authH *handler.AuthHandler,
	itemH *handler.ItemHandler,
	cartH *handler.CartHandler,
) {
	healthH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	itemH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, cfg)
}
