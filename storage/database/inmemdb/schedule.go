package inmemdb

import (
	"context"
	"sort"

	"github.com/studyline/studyline/core/schedule"
)

type scheduleRepository struct {
	db *scheduleTable
}

func NewScheduleRepository(db *DB) schedule.Repository {
	return &scheduleRepository{db: db.schedule}
}

func (repo *scheduleRepository) QuerySlotsByGroup(_ context.Context, groupID int64) ([]schedule.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slots := make([]schedule.Slot, 0)
	for _, s := range repo.db.table {
		if s.GroupID == groupID {
			slots = append(slots, *s)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		return slots[i].PairNumber < slots[j].PairNumber
	})
	return slots, nil
}

func (repo *scheduleRepository) CreateSlot(_ context.Context, s schedule.Slot) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	s.ID = repo.db.pkCount
	repo.db.table[s.ID] = &s
	return nil
}

func (repo *scheduleRepository) UpdateSlot(_ context.Context, s schedule.Slot) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.table[s.ID]
	if !ok {
		return schedule.ErrNotFound
	}
	s.GroupID = orig.GroupID
	repo.db.table[s.ID] = &s
	return nil
}

func (repo *scheduleRepository) DeleteDay(_ context.Context, groupID int64, weekday int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var deleted bool
	for id, s := range repo.db.table {
		if s.GroupID == groupID && s.Weekday == weekday {
			delete(repo.db.table, id)
			deleted = true
		}
	}
	if !deleted {
		return schedule.ErrNotFound
	}
	return nil
}

func (repo *scheduleRepository) DeleteSlotByID(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
