package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/subject"
)

type subjectRepository struct {
	db *sqlx.DB
}

func NewSubjectRepository(db *sqlx.DB) subject.Repository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, name string, groupID int64) (subject.Subject, error) {
	s := subject.Subject{Name: name, GroupID: groupID}
	query := `INSERT INTO subjects (name, group_id) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, query, name, groupID).Scan(&s.ID); err != nil {
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return s, nil
}

func (repo *subjectRepository) RenameSubject(ctx context.Context, id int64, name string) (subject.Subject, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE subjects SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "renaming subject")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return subject.Subject{}, subject.ErrNotFound
	}
	return repo.GetSubjectByID(ctx, id)
}

func (repo *subjectRepository) DeleteSubjectByID(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return subject.ErrNotFound
	}
	return nil
}

func (repo *subjectRepository) GetSubjectByID(ctx context.Context, id int64) (subject.Subject, error) {
	var s subject.Subject
	query := `SELECT id, name, group_id FROM subjects WHERE id = $1`
	if err := repo.db.GetContext(ctx, &s, query, id); err != nil {
		if err == sql.ErrNoRows {
			return subject.Subject{}, subject.ErrNotFound
		}
		return subject.Subject{}, errors.Wrap(err, "getting subject")
	}
	return s, nil
}

func (repo *subjectRepository) QuerySubjectsByGroup(ctx context.Context, groupID int64) ([]subject.Subject, error) {
	subjects := make([]subject.Subject, 0)
	query := `SELECT id, name, group_id FROM subjects WHERE group_id = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &subjects, query, groupID); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	return subjects, nil
}
