package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/schedule"
)

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) QuerySlotsByGroup(ctx context.Context, groupID int64) ([]schedule.Slot, error) {
	slots := make([]schedule.Slot, 0)
	query := `
SELECT id, pair_number, group_id, subject_id, teacher_id, weekday, start_time, end_time, cabinet
FROM schedule
WHERE group_id = $1
ORDER BY weekday, pair_number`
	if err := repo.db.SelectContext(ctx, &slots, query, groupID); err != nil {
		return nil, errors.Wrap(err, "querying slots")
	}
	return slots, nil
}

func (repo *scheduleRepository) CreateSlot(ctx context.Context, s schedule.Slot) error {
	query := `
INSERT INTO schedule (pair_number, group_id, subject_id, teacher_id, weekday, start_time, end_time, cabinet)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := repo.db.ExecContext(ctx, query,
		s.PairNumber, s.GroupID, s.SubjectID, s.TeacherID, s.Weekday, s.StartTime, s.EndTime, s.Cabinet,
	); err != nil {
		return errors.Wrap(err, "inserting slot")
	}
	return nil
}

func (repo *scheduleRepository) UpdateSlot(ctx context.Context, s schedule.Slot) error {
	query := `
UPDATE schedule
SET pair_number = $1, subject_id = $2, teacher_id = $3, weekday = $4, start_time = $5, end_time = $6, cabinet = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		s.PairNumber, s.SubjectID, s.TeacherID, s.Weekday, s.StartTime, s.EndTime, s.Cabinet, s.ID,
	)
	if err != nil {
		return errors.Wrap(err, "updating slot")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (repo *scheduleRepository) DeleteDay(ctx context.Context, groupID int64, weekday int) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM schedule WHERE group_id = $1 AND weekday = $2`, groupID, weekday)
	if err != nil {
		return errors.Wrap(err, "deleting day")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (repo *scheduleRepository) DeleteSlotByID(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM schedule WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting slot")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
