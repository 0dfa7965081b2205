package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
)

type notificationApi struct {
	notifier core.Notifier
	logger   core.Logger
	validate *validator.Validate
}

func registerNotificationAPI(g *echo.Group, auth, adminOnly echo.MiddlewareFunc, notifier core.Notifier, logger core.Logger, validate *validator.Validate) {
	api := notificationApi{
		notifier: notifier,
		logger:   logger,
		validate: validate,
	}

	g.POST("/notifications/group", api.notifyGroup, auth, adminOnly)
	g.POST("/notifications/teachers", api.notifyTeachers, auth, adminOnly)
}

// notifyGroup pushes to a single group topic; a delivery failure is the
// caller's problem and comes back as a 400.
func (api *notificationApi) notifyGroup(ctx echo.Context) error {
	var data GroupNotificationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GroupNotificationRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	if err := api.notifier.SendToGroup(ctx.Request().Context(), data.GroupID); err != nil {
		return core.NewValidationError(errors.Wrap(err, "sending group notification"))
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "notification sent"})
}

// notifyTeachers pushes to each teacher topic in turn. Individual failures
// are logged and skipped; the response is a 200 regardless.
func (api *notificationApi) notifyTeachers(ctx echo.Context) error {
	var data TeacherNotificationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherNotificationRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	for _, teacherID := range data.TeacherIDs {
		if err := api.notifier.SendToTeacher(ctx.Request().Context(), teacherID); err != nil {
			api.logger.Error(fmt.Sprintf("sending notification to teacher %d", teacherID), err)
		}
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "notifications sent"})
}

type (
	GroupNotificationRequest struct {
		GroupID int64 `json:"group_id" validate:"required"`
	}

	TeacherNotificationRequest struct {
		TeacherIDs []int64 `json:"teacher_ids" validate:"required,min=1"`
	}
)
