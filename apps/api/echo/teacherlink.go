package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/teacherlink"
)

type teacherLinkApi struct {
	svc      *teacherlink.Service
	validate *validator.Validate
}

func registerTeacherLinkAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, svc *teacherlink.Service, validate *validator.Validate) {
	api := teacherLinkApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/teacher-links/:groupID", api.queryByGroup)

	g.POST("/teacher-links", api.create, auth, adminOnly)
	g.DELETE("/teacher-links", api.destroy, auth, adminOnly)
}

func (api *teacherLinkApi) queryByGroup(ctx echo.Context) error {
	groupID, err := pathID(ctx, "groupID")
	if err != nil {
		return err
	}
	links, err := api.svc.QueryByGroup(ctx.Request().Context(), groupID)
	if err != nil {
		return errors.Wrap(err, "querying links")
	}
	return ctx.JSON(http.StatusOK, links)
}

func (api *teacherLinkApi) create(ctx echo.Context) error {
	var data teacherlink.TeacherLink
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherLink")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	link, err := api.svc.Add(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating link")
	}
	return ctx.JSON(http.StatusCreated, link)
}

func (api *teacherLinkApi) destroy(ctx echo.Context) error {
	var data teacherlink.TeacherLink
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherLink")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.Delete(ctx.Request().Context(), data); err != nil {
		if errors.Cause(err) == teacherlink.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting link")
	}
	return ctx.NoContent(http.StatusNoContent)
}
