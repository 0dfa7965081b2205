package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core/group"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) group.Repository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) CreateGroup(ctx context.Context, name string, shift int) (group.Group, error) {
	g := group.Group{Name: name, Shift: shift}
	query := `INSERT INTO groups (name, shift) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowxContext(ctx, query, name, shift).Scan(&g.ID); err != nil {
		return group.Group{}, errors.Wrap(err, "inserting group")
	}
	return g, nil
}

func (repo *groupRepository) QueryAllGroups(ctx context.Context) ([]group.Group, error) {
	groups := make([]group.Group, 0)
	query := `SELECT id, name, shift FROM groups ORDER BY id`
	if err := repo.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, errors.Wrap(err, "querying groups")
	}
	return groups, nil
}

func (repo *groupRepository) GetGroupByID(ctx context.Context, id int64) (group.Group, error) {
	var g group.Group
	query := `SELECT id, name, shift FROM groups WHERE id = $1`
	if err := repo.db.GetContext(ctx, &g, query, id); err != nil {
		if err == sql.ErrNoRows {
			return group.Group{}, group.ErrNotFound
		}
		return group.Group{}, errors.Wrap(err, "getting group")
	}
	return g, nil
}

func (repo *groupRepository) UpdateGroup(ctx context.Context, id int64, name string, shift int) (group.Group, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE groups SET name = $1, shift = $2 WHERE id = $3`, name, shift, id)
	if err != nil {
		return group.Group{}, errors.Wrap(err, "updating group")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return group.Group{}, errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return group.Group{}, group.ErrNotFound
	}
	return group.Group{ID: id, Name: name, Shift: shift}, nil
}

func (repo *groupRepository) DeleteGroupByID(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting group")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "checking affected rows")
	}
	if n == 0 {
		return group.ErrNotFound
	}
	return nil
}
