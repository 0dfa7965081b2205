package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/teacher"
)

type teacherRepository struct {
	db *sqlx.DB
}

func NewTeacherRepository(db *sqlx.DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) CheckLoginUniqueness(ctx context.Context, login string, excluded ...teacher.Teacher) error {
	query := `SELECT COUNT(*) FROM teachers WHERE login = $1`
	args := []interface{}{login}
	if len(excluded) > 0 {
		ids := make([]int64, 0, len(excluded))
		for _, t := range excluded {
			ids = append(ids, t.ID)
		}
		var err error
		query, args, err = sqlx.In(`SELECT COUNT(*) FROM teachers WHERE login = ? AND id NOT IN (?)`, login, ids)
		if err != nil {
			return errors.Wrap(err, "building uniqueness query")
		}
		query = repo.db.Rebind(query)
	}

	var count int
	if err := repo.db.GetContext(ctx, &count, query, args...); err != nil {
		return errors.Wrap(err, "checking login uniqueness")
	}
	if count > 0 {
		return teacher.ErrLoginExists
	}
	return nil
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	query := `
INSERT INTO teachers (login, full_name, role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, query, t.Login, t.FullName, t.Role, t.PasswordHash).Scan(&t.ID); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "inserting teacher")
	}
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers(ctx context.Context) ([]teacher.Public, error) {
	teachers := make([]teacher.Public, 0)
	query := `SELECT id, full_name, role FROM teachers ORDER BY id`
	if err := repo.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	return teachers, nil
}

func (repo *teacherRepository) GetTeacherByID(ctx context.Context, id int64) (teacher.Teacher, error) {
	var t teacher.Teacher
	query := `SELECT id, login, full_name, role, password_hash FROM teachers WHERE id = $1`
	if err := repo.db.GetContext(ctx, &t, query, id); err != nil {
		if err == sql.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrNotFound
		}
		return teacher.Teacher{}, errors.Wrap(err, "getting teacher")
	}
	return t, nil
}

func (repo *teacherRepository) GetTeacherByLogin(ctx context.Context, login string) (teacher.Teacher, error) {
	var t teacher.Teacher
	query := `SELECT id, login, full_name, role, password_hash FROM teachers WHERE login = $1`
	if err := repo.db.GetContext(ctx, &t, query, login); err != nil {
		if err == sql.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrNotFound
		}
		return teacher.Teacher{}, errors.Wrap(err, "getting teacher by login")
	}
	return t, nil
}

func (repo *teacherRepository) UpdateTeacherLogin(ctx context.Context, id int64, login string) (teacher.Teacher, error) {
	query := `UPDATE teachers SET login = $1 WHERE id = $2`
	if err := repo.exec(ctx, query, login, id); err != nil {
		return teacher.Teacher{}, err
	}
	return repo.GetTeacherByID(ctx, id)
}

func (repo *teacherRepository) UpdateTeacherPasswordHash(ctx context.Context, id int64, hash []byte) (teacher.Teacher, error) {
	query := `UPDATE teachers SET password_hash = $1 WHERE id = $2`
	if err := repo.exec(ctx, query, hash, id); err != nil {
		return teacher.Teacher{}, err
	}
	return repo.GetTeacherByID(ctx, id)
}

func (repo *teacherRepository) UpdateTeacherFullName(ctx context.Context, id int64, fullName string) (teacher.Teacher, error) {
	query := `UPDATE teachers SET full_name = $1 WHERE id = $2`
	if err := repo.exec(ctx, query, fullName, id); err != nil {
		return teacher.Teacher{}, err
	}
	return repo.GetTeacherByID(ctx, id)
}

func (repo *teacherRepository) DeleteTeacherByID(ctx context.Context, id int64) error {
	return repo.exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
}

// exec runs a statement expected to touch exactly one teacher row.
func (repo *teacherRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "executing statement")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return teacher.ErrNotFound
	}
	return nil
}
