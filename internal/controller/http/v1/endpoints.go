package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/EndpointLog/internal/controller/common/logging"
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type createEndpointInput struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

type endpointRoutes struct {
	endpointService service.Endpoint
}

func ConfigureEndpointRoutes(g *echo.Group, es service.Endpoint) {
	r := &endpointRoutes{endpointService: es}

	g.POST("/endpoints", r.create)
	g.GET("/endpoints/:id", r.get)
	g.DELETE("/endpoints/:id", r.delete)
}

func (r *endpointRoutes) create(c echo.Context) error {
	var input createEndpointInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := r.endpointService.CreateEndpoint(c.Request().Context(), input.Name, input.UserID)
	if err != nil {
		return endpointError(err, "CreateEndpoint", log.Fields{"name": input.Name, "user_id": input.UserID})
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (r *endpointRoutes) get(c echo.Context) error {
	id := c.Param("id")

	ep, err := r.endpointService.GetEndpoint(c.Request().Context(), id)
	if err != nil {
		return endpointError(err, "GetEndpoint", log.Fields{"id": id})
	}

	return c.JSON(http.StatusOK, ep)
}

func (r *endpointRoutes) delete(c echo.Context) error {
	id := c.Param("id")

	if err := r.endpointService.DeleteEndpoint(c.Request().Context(), id); err != nil {
		return endpointError(err, "DeleteEndpoint", log.Fields{"id": id})
	}
	return c.NoContent(http.StatusNoContent)
}

func endpointError(err error, method string, fields log.Fields) error {
	switch {
	case errors.Is(err, service.ErrEmptyEndpointName), errors.Is(err, service.ErrEmptyUserID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEndpointNotFound):
		return echo.NewHTTPError(http.StatusNotFound, service.ErrEndpointNotFound.Error())
	case errors.Is(err, service.ErrEndpointExists):
		return echo.NewHTTPError(http.StatusConflict, service.ErrEndpointExists.Error())
	default:
		logginghelper.LogError(transport, method, fields, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
