package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/teacher"
)

type teacherApi struct {
	svc      *teacher.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, svc *teacher.Service, validate *validator.Validate) {
	api := teacherApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/teachers", api.query)

	g.POST("/teachers", api.create, auth, adminOnly)
	g.GET("/teachers/:id", api.retrieve, auth, adminOnly)
	g.DELETE("/teachers/:id", api.destroy, auth, adminOnly)
	g.PATCH("/teachers/:id/login", api.updateLogin, auth, adminOnly)
	g.PATCH("/teachers/:id/password", api.updatePassword, auth, adminOnly)
	g.PATCH("/teachers/:id/name", api.updateFullName, auth, adminOnly)
}

func (api *teacherApi) query(ctx echo.Context) error {
	teachers, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	t, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	t, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) updateLogin(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data teacher.EditLogin
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EditLogin")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.UpdateLogin(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating login")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) updatePassword(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data teacher.EditPassword
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EditPassword")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.UpdatePassword(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating password")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) updateFullName(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data teacher.EditFullName
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EditFullName")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.UpdateFullName(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating full name")
	}
	return ctx.JSON(http.StatusOK, t)
}

// pathID parses an int64 path param; a garbled value reads as a missing resource.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}
