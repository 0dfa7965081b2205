package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/teacherlink"
)

type teacherLinkRepository struct {
	db *sqlx.DB
}

func NewTeacherLinkRepository(db *sqlx.DB) teacherlink.Repository {
	return &teacherLinkRepository{db: db}
}

func (repo *teacherLinkRepository) CreateLink(ctx context.Context, l teacherlink.TeacherLink) (teacherlink.TeacherLink, error) {
	query := `INSERT INTO teacher_links (teacher_id, group_id, subject_id) VALUES ($1, $2, $3)`
	if _, err := repo.db.ExecContext(ctx, query, l.TeacherID, l.GroupID, l.SubjectID); err != nil {
		return teacherlink.TeacherLink{}, errors.Wrap(err, "inserting link")
	}
	return l, nil
}

func (repo *teacherLinkRepository) QueryLinksByGroup(ctx context.Context, groupID int64) ([]teacherlink.TeacherLink, error) {
	links := make([]teacherlink.TeacherLink, 0)
	query := `SELECT teacher_id, group_id, subject_id FROM teacher_links WHERE group_id = $1 ORDER BY teacher_id, subject_id`
	if err := repo.db.SelectContext(ctx, &links, query, groupID); err != nil {
		return nil, errors.Wrap(err, "querying links")
	}
	return links, nil
}

func (repo *teacherLinkRepository) DeleteLink(ctx context.Context, l teacherlink.TeacherLink) error {
	query := `DELETE FROM teacher_links WHERE teacher_id = $1 AND group_id = $2 AND subject_id = $3`
	res, err := repo.db.ExecContext(ctx, query, l.TeacherID, l.GroupID, l.SubjectID)
	if err != nil {
		return errors.Wrap(err, "deleting link")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return teacherlink.ErrNotFound
	}
	return nil
}
