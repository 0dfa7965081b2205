package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/schedulechange"
)

type scheduleChangeApi struct {
	svc      *schedulechange.Service
	validate *validator.Validate
}

func registerScheduleChangeAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, svc *schedulechange.Service, validate *validator.Validate) {
	api := scheduleChangeApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/schedule-changes/:groupID", api.list)

	g.POST("/schedule-changes", api.bulkAdd, auth, adminOnly)
	g.PATCH("/schedule-changes", api.edit, auth, adminOnly)
	g.DELETE("/schedule-changes", api.bulkDelete, auth, adminOnly)
}

func (api *scheduleChangeApi) list(ctx echo.Context) error {
	groupID, err := pathID(ctx, "groupID")
	if err != nil {
		return err
	}
	changes, err := api.svc.List(ctx.Request().Context(), groupID)
	if err != nil {
		return errors.Wrap(err, "listing changes")
	}
	return ctx.JSON(http.StatusOK, changes)
}

// bulkAdd takes a bare list of changes; each one carries its own group.
func (api *scheduleChangeApi) bulkAdd(ctx echo.Context) error {
	var data []schedulechange.Change
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to []Change")
	}
	if len(data) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one change is required")
	}
	for i := range data {
		if err := data[i].Validate(api.validate); err != nil {
			return err
		}
	}

	changes, err := api.svc.BulkAdd(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding changes")
	}
	return ctx.JSON(http.StatusCreated, changes)
}

func (api *scheduleChangeApi) edit(ctx echo.Context) error {
	var data schedulechange.Change
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Change")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	change, err := api.svc.Edit(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == schedulechange.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "editing change")
	}
	return ctx.JSON(http.StatusOK, change)
}

// bulkDelete takes a bare list of slot ids.
func (api *scheduleChangeApi) bulkDelete(ctx echo.Context) error {
	var ids []int64
	if err := ctx.Bind(&ids); err != nil {
		return errors.Wrap(err, "binding to id list")
	}
	if len(ids) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one schedule id is required")
	}

	if err := api.svc.BulkDelete(ctx.Request().Context(), ids); err != nil {
		if errors.Cause(err) == schedulechange.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting changes")
	}
	return ctx.NoContent(http.StatusNoContent)
}
