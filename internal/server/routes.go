package server

import (
	"keebshop/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	authH *handler.AuthHandler,
	shopH *handler.ShopHandler,
	builderH *handler.BuilderHandler,
) {
	shopH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	builderH.RegisterRoutes(e)
}
