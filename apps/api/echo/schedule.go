package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

func registerScheduleAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, svc *schedule.Service, validate *validator.Validate) {
	api := scheduleApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/schedule/:groupID", api.week)

	g.POST("/schedule/pairs", api.addPairs, auth, adminOnly)
	g.PATCH("/schedule/pairs", api.editDay, auth, adminOnly)
	g.DELETE("/schedule/pairs/:id", api.destroySlot, auth, adminOnly)
	g.DELETE("/schedule/:groupID/:weekday", api.destroyDay, auth, adminOnly)
}

func (api *scheduleApi) week(ctx echo.Context) error {
	groupID, err := pathID(ctx, "groupID")
	if err != nil {
		return err
	}
	week, err := api.svc.Week(ctx.Request().Context(), groupID)
	if err != nil {
		return errors.Wrap(err, "querying week")
	}
	return ctx.JSON(http.StatusOK, week)
}

func (api *scheduleApi) addPairs(ctx echo.Context) error {
	var data schedule.NewDay
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDay")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	week, err := api.svc.AddPairs(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding pairs")
	}
	return ctx.JSON(http.StatusCreated, week)
}

func (api *scheduleApi) editDay(ctx echo.Context) error {
	var data schedule.Day
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Day")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	week, err := api.svc.EditDay(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "editing day")
	}
	return ctx.JSON(http.StatusOK, week)
}

func (api *scheduleApi) destroyDay(ctx echo.Context) error {
	groupID, err := pathID(ctx, "groupID")
	if err != nil {
		return err
	}
	weekday, err := strconv.Atoi(ctx.Param("weekday"))
	if err != nil {
		return errHttpNotFound
	}
	if err = api.svc.DeleteDay(ctx.Request().Context(), groupID, weekday); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting day")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) destroySlot(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.DeleteSlot(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting slot")
	}
	return ctx.NoContent(http.StatusNoContent)
}
