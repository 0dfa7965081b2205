package inmemdb

import (
	"context"
	"sort"

	"github.com/studyline/studyline/core/group"
)

type groupRepository struct {
	db *groupTable
}

func NewGroupRepository(db *DB) group.Repository {
	return &groupRepository{db: db.group}
}

func (repo *groupRepository) CreateGroup(_ context.Context, name string, shift int) (group.Group, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	g := group.Group{ID: repo.db.pkCount, Name: name, Shift: shift}
	repo.db.table[g.ID] = &g
	return g, nil
}

func (repo *groupRepository) QueryAllGroups(_ context.Context) ([]group.Group, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	groups := make([]group.Group, 0, len(repo.db.table))
	for _, g := range repo.db.table {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (repo *groupRepository) GetGroupByID(_ context.Context, id int64) (group.Group, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if g, ok := repo.db.table[id]; ok {
		return *g, nil
	}
	return group.Group{}, group.ErrNotFound
}

func (repo *groupRepository) UpdateGroup(_ context.Context, id int64, name string, shift int) (group.Group, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	g, ok := repo.db.table[id]
	if !ok {
		return group.Group{}, group.ErrNotFound
	}
	g.Name = name
	g.Shift = shift
	return *g, nil
}

func (repo *groupRepository) DeleteGroupByID(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return group.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
