package httpv1

import (
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(services *service.Services, mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(mw...)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	ConfigureLogRoutes(v1, services.Log)
	ConfigureEndpointRoutes(v1, services.Endpoint)

	return e
}
