package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/teacher"
)

// addTeacher creates a teacher, or updates the existing one with that login.
func (cli *commandLine) addTeacher(login, name, pwd string, isAdmin bool) error {
	ctx := context.Background()
	login = core.CleanString(login, true /* lower */)
	name = core.CleanString(name)

	t, err := cli.teacherSvc.GetByLogin(ctx, login)
	if err != nil {
		if errors.Cause(err) != teacher.ErrNotFound {
			return err
		}
		t, err = cli.teacherSvc.Create(ctx, teacher.NewTeacher{
			Login:    login,
			Password: pwd,
			FullName: name,
		})
		if err != nil {
			return err
		}
	} else {
		if t, err = cli.teacherSvc.UpdateFullName(ctx, t.ID, teacher.EditFullName{FullName: name}); err != nil {
			return err
		}
		if t, err = cli.teacherSvc.UpdatePassword(ctx, t.ID, teacher.EditPassword{Password: pwd}); err != nil {
			return err
		}
	}

	if isAdmin && t.Role != teacher.RoleAdmin {
		query := `UPDATE teachers SET role = $1 WHERE id = $2`
		if _, err = cli.db.ExecContext(ctx, query, teacher.RoleAdmin, t.ID); err != nil {
			return errors.Wrap(err, "granting admin role")
		}
	}

	logger.Printf("teacher %q (id %d) saved", login, t.ID)
	return nil
}
