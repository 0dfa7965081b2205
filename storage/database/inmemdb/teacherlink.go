package inmemdb

import (
	"context"

	"github.com/studyline/studyline/core/teacherlink"
)

type teacherLinkRepository struct {
	db *teacherLinkTable
}

func NewTeacherLinkRepository(db *DB) teacherlink.Repository {
	return &teacherLinkRepository{db: db.teacherLink}
}

func (repo *teacherLinkRepository) CreateLink(_ context.Context, l teacherlink.TeacherLink) (teacherlink.TeacherLink, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, l)
	return l, nil
}

func (repo *teacherLinkRepository) QueryLinksByGroup(_ context.Context, groupID int64) ([]teacherlink.TeacherLink, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	links := make([]teacherlink.TeacherLink, 0)
	for _, l := range repo.db.rows {
		if l.GroupID == groupID {
			links = append(links, l)
		}
	}
	return links, nil
}

func (repo *teacherLinkRepository) DeleteLink(_ context.Context, l teacherlink.TeacherLink) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	kept := repo.db.rows[:0]
	var deleted bool
	for _, row := range repo.db.rows {
		if row == l {
			deleted = true
			continue
		}
		kept = append(kept, row)
	}
	repo.db.rows = kept
	if !deleted {
		return teacherlink.ErrNotFound
	}
	return nil
}
