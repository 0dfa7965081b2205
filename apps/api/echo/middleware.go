package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/teacher"
)

// requireRole loads the authenticated teacher and checks it against the
// policy. A session pointing at a missing teacher row is a store
// inconsistency, not a client error, and surfaces as a 500.
func requireRole(svc *teacher.Service, policy teacher.RolePolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			teacherID, err := getContextTeacherID(ctx)
			if err != nil {
				return errUnauthorized
			}
			t, err := svc.GetByID(ctx.Request().Context(), teacherID)
			if err != nil {
				return errors.Wrap(err, "loading authenticated teacher")
			}
			if !policy.Permits(t.Role) {
				return errHttpForbidden
			}
			ctx.Set(ctxTeacherKey, t)
			return next(ctx)
		}
	}
}
