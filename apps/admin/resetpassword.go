package main

import (
	"context"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/teacher"
)

func (cli *commandLine) resetPassword(login, pwd string) error {
	ctx := context.Background()

	t, err := cli.teacherSvc.GetByLogin(ctx, core.CleanString(login, true /* lower */))
	if err != nil {
		return err
	}
	if _, err = cli.teacherSvc.UpdatePassword(ctx, t.ID, teacher.EditPassword{Password: pwd}); err != nil {
		return err
	}

	logger.Printf("password reset for teacher %q (id %d)", t.Login, t.ID)
	return nil
}
