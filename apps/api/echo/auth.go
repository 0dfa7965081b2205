package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/session"
	"github.com/studyline/studyline/core/teacher"
)

const (
	ctxTeacherIDKey = "teacherID"
	ctxTeacherKey   = "teacher"
)

var (
	errTeacherIDNotInCtx = errors.New("teacher id not found in echo.Context")
	errTeacherNotInCtx   = errors.New("teacher object not found in echo.Context")
)

// bearerToken extracts the token from the Authorization header.
// Absence or a malformed header is an authentication failure, reported
// before any store is consulted.
func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errUnauthorized
	}
	return parts[1], nil
}

// sessionAuthMiddleware resolves the bearer token to a teacher id and puts
// the id in the request context. It does not touch the teachers table.
func sessionAuthMiddleware(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := bearerToken(ctx)
			if err != nil {
				return err
			}
			teacherID, err := store.Resolve(ctx.Request().Context(), token)
			if err != nil {
				if errors.Cause(err) == session.ErrNotFound {
					return errUnauthorized
				}
				return errors.Wrap(err, "resolving session")
			}
			ctx.Set(ctxTeacherIDKey, teacherID)
			return next(ctx)
		}
	}
}

func getContextTeacherID(ctx echo.Context) (int64, error) {
	id, ok := ctx.Get(ctxTeacherIDKey).(int64)
	if !ok {
		return 0, errTeacherIDNotInCtx
	}
	return id, nil
}

func getContextTeacher(ctx echo.Context) (teacher.Teacher, error) {
	t, ok := ctx.Get(ctxTeacherKey).(teacher.Teacher)
	if !ok {
		return teacher.Teacher{}, errTeacherNotInCtx
	}
	return t, nil
}
