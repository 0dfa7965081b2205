package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/schedulechange"
)

type scheduleChangeRepository struct {
	db *sqlx.DB
}

func NewScheduleChangeRepository(db *sqlx.DB) schedulechange.Repository {
	return &scheduleChangeRepository{db: db}
}

func (repo *scheduleChangeRepository) QueryChangesByGroup(ctx context.Context, groupID int64) ([]schedulechange.Change, error) {
	changes := make([]schedulechange.Change, 0)
	query := `
SELECT schedule_id, group_id, new_subject_id, new_teacher_id, date, new_start_time, new_end_time, cabinet, is_canceled
FROM schedule_changes
WHERE group_id = $1
ORDER BY date`
	if err := repo.db.SelectContext(ctx, &changes, query, groupID); err != nil {
		return nil, errors.Wrap(err, "querying changes")
	}
	return changes, nil
}

func (repo *scheduleChangeRepository) CreateChange(ctx context.Context, c schedulechange.Change) error {
	query := `
INSERT INTO schedule_changes (schedule_id, group_id, new_subject_id, new_teacher_id, date, new_start_time, new_end_time, cabinet, is_canceled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := repo.db.ExecContext(ctx, query,
		c.ScheduleID, c.GroupID, c.NewSubjectID, c.NewTeacherID, c.Date, c.NewStartTime, c.NewEndTime, c.Cabinet, c.IsCanceled,
	); err != nil {
		return errors.Wrap(err, "inserting change")
	}
	return nil
}

func (repo *scheduleChangeRepository) UpdateChangeByScheduleID(ctx context.Context, c schedulechange.Change) error {
	query := `
UPDATE schedule_changes
SET group_id = $1, new_subject_id = $2, new_teacher_id = $3, date = $4, new_start_time = $5, new_end_time = $6, cabinet = $7, is_canceled = $8
WHERE schedule_id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		c.GroupID, c.NewSubjectID, c.NewTeacherID, c.Date, c.NewStartTime, c.NewEndTime, c.Cabinet, c.IsCanceled, c.ScheduleID,
	)
	if err != nil {
		return errors.Wrap(err, "updating change")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return schedulechange.ErrNotFound
	}
	return nil
}

func (repo *scheduleChangeRepository) DeleteChangeByScheduleID(ctx context.Context, scheduleID int64) error {
	res, err := repo.db.ExecContext(ctx,
		`DELETE FROM schedule_changes WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return errors.Wrap(err, "deleting change")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return schedulechange.ErrNotFound
	}
	return nil
}

func (repo *scheduleChangeRepository) GetChangeByScheduleID(ctx context.Context, scheduleID int64) (schedulechange.Change, error) {
	var c schedulechange.Change
	query := `
SELECT schedule_id, group_id, new_subject_id, new_teacher_id, date, new_start_time, new_end_time, cabinet, is_canceled
FROM schedule_changes
WHERE schedule_id = $1`
	if err := repo.db.GetContext(ctx, &c, query, scheduleID); err != nil {
		if err == sql.ErrNoRows {
			return schedulechange.Change{}, schedulechange.ErrNotFound
		}
		return schedulechange.Change{}, errors.Wrap(err, "getting change")
	}
	return c, nil
}
