package server

import (
	"keebshop/internal/handler"
	"keebshop/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// New はechoを組み立てる。起動はしない。
func New(
	log *zap.Logger,
	sessions *middleware.SessionManager,
	authH *handler.AuthHandler,
	shopH *handler.ShopHandler,
	builderH *handler.BuilderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(log))
	e.Use(sessions.Middleware())

	RegisterRoutes(e, authH, shopH, builderH)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
