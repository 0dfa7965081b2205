package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/subject"
)

type subjectApi struct {
	svc      *subject.Service
	validate *validator.Validate
}

func registerSubjectAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, svc *subject.Service, validate *validator.Validate) {
	api := subjectApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/subjects/group/:groupID", api.queryByGroup)

	g.POST("/subjects", api.create, auth, adminOnly)
	g.PATCH("/subjects/:id", api.rename, auth, adminOnly)
	g.DELETE("/subjects/:id", api.destroy, auth, adminOnly)
}

func (api *subjectApi) queryByGroup(ctx echo.Context) error {
	groupID, err := pathID(ctx, "groupID")
	if err != nil {
		return err
	}
	subjects, err := api.svc.QueryByGroup(ctx.Request().Context(), groupID)
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *subjectApi) rename(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data subject.EditSubject
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EditSubject")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Rename(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == subject.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "renaming subject")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *subjectApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == subject.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting subject")
	}
	return ctx.NoContent(http.StatusNoContent)
}
