package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/EndpointLog/internal/controller/common/logging"
	"github.com/Egor213/EndpointLog/internal/controller/grpc/validators"
	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const transport = "http"

type createLogInput struct {
	Type       string `json:"type"`
	PostType   string `json:"postType"`
	Message    string `json:"message"`
	EndpointID string `json:"endpointId"`
}

type logRoutes struct {
	logService service.Log
}

func ConfigureLogRoutes(g *echo.Group, ls service.Log) {
	r := &logRoutes{logService: ls}

	g.POST("/logs", r.create)
	g.GET("/users/:user_id/logs", r.list)
	g.DELETE("/logs/:id", r.delete)
}

func (r *logRoutes) create(c echo.Context) error {
	const method = "CreateLog"

	var input createLogInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := validators.CreateLog{
		Type:       domain.LogType(input.Type),
		PostType:   domain.PostType(input.PostType),
		Message:    input.Message,
		EndpointID: input.EndpointID,
	}
	fields := log.Fields{"type": input.Type, "post_type": input.PostType, "endpoint_id": input.EndpointID}

	if err := validators.ValidateCreateLog(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := r.logService.CreateLog(c.Request().Context(), in.Type, in.PostType, in.Message, in.EndpointID)
	if err != nil {
		logginghelper.LogError(transport, method, fields, err)
		if errors.Is(err, service.ErrEndpointNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, service.ErrEndpointNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (r *logRoutes) list(c echo.Context) error {
	userID := c.Param("user_id")
	if err := validators.ValidateUserID(userID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := r.logService.GetLogs(c.Request().Context(), userID)
	if err != nil {
		logginghelper.LogError(transport, "GetLogs", log.Fields{"user_id": userID}, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, rows)
}

// delete answers 500 with the failure text in the body when storage fails.
func (r *logRoutes) delete(c echo.Context) error {
	id := c.Param("id")

	if res := r.logService.DeleteLog(c.Request().Context(), id); res != nil {
		return c.JSON(http.StatusInternalServerError, res)
	}
	return c.NoContent(http.StatusNoContent)
}
