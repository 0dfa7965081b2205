package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/session"
	"github.com/studyline/studyline/core/teacher"
)

type authApi struct {
	sessions session.Store
	svc      *teacher.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, sessions session.Store, svc *teacher.Service, validate *validator.Validate) {
	api := authApi{
		sessions: sessions,
		svc:      svc,
		validate: validate,
	}

	g.POST("/login", api.login)
	g.POST("/logout", api.logout)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.GetByLogin(ctx.Request().Context(), data.Login)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "getting teacher by login")
	}
	if err = t.CheckPassword(data.Password); err != nil {
		return errAuthenticationFailed
	}

	token, err := api.sessions.Create(ctx.Request().Context(), t.ID)
	if err != nil {
		return errors.Wrap(err, "creating session")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Role: t.Role, ID: t.ID})
}

func (api *authApi) logout(ctx echo.Context) error {
	var data LogoutRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LogoutRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	// revoking an unknown token is a no-op
	if err := api.sessions.Revoke(ctx.Request().Context(), data.Token); err != nil {
		return errors.Wrap(err, "revoking session")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "logged out"})
}

type (
	LoginRequest struct {
		Login    string `json:"login" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		ID    int64  `json:"id"`
	}

	LogoutRequest struct {
		Token string `json:"token" validate:"required"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Login = core.CleanString(lr.Login, true /* lower */)
	return validate.Struct(lr)
}

func (lr *LogoutRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(lr)
}
