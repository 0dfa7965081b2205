package inmemdb

import (
	"context"
	"sort"

	"github.com/studyline/studyline/core/schedulechange"
)

type scheduleChangeRepository struct {
	db *scheduleChangeTable
}

func NewScheduleChangeRepository(db *DB) schedulechange.Repository {
	return &scheduleChangeRepository{db: db.scheduleChange}
}

func (repo *scheduleChangeRepository) QueryChangesByGroup(_ context.Context, groupID int64) ([]schedulechange.Change, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	changes := make([]schedulechange.Change, 0)
	for _, c := range repo.db.rows {
		if c.GroupID == groupID {
			changes = append(changes, c)
		}
	}
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Date.Before(changes[j].Date) })
	return changes, nil
}

func (repo *scheduleChangeRepository) CreateChange(_ context.Context, c schedulechange.Change) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, c)
	return nil
}

func (repo *scheduleChangeRepository) UpdateChangeByScheduleID(_ context.Context, c schedulechange.Change) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var updated bool
	for i := range repo.db.rows {
		if repo.db.rows[i].ScheduleID == c.ScheduleID {
			repo.db.rows[i] = c
			updated = true
		}
	}
	if !updated {
		return schedulechange.ErrNotFound
	}
	return nil
}

func (repo *scheduleChangeRepository) DeleteChangeByScheduleID(_ context.Context, scheduleID int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	kept := repo.db.rows[:0]
	var deleted bool
	for _, c := range repo.db.rows {
		if c.ScheduleID == scheduleID {
			deleted = true
			continue
		}
		kept = append(kept, c)
	}
	repo.db.rows = kept
	if !deleted {
		return schedulechange.ErrNotFound
	}
	return nil
}

func (repo *scheduleChangeRepository) GetChangeByScheduleID(_ context.Context, scheduleID int64) (schedulechange.Change, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, c := range repo.db.rows {
		if c.ScheduleID == scheduleID {
			return c, nil
		}
	}
	return schedulechange.Change{}, schedulechange.ErrNotFound
}
