package inmemdb

import (
	"context"
	"sort"

	"github.com/studyline/studyline/core/subject"
)

type subjectRepository struct {
	db *subjectTable
}

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db.subject}
}

func (repo *subjectRepository) CreateSubject(_ context.Context, name string, groupID int64) (subject.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	s := subject.Subject{ID: repo.db.pkCount, Name: name, GroupID: groupID}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *subjectRepository) RenameSubject(_ context.Context, id int64, name string) (subject.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	s, ok := repo.db.table[id]
	if !ok {
		return subject.Subject{}, subject.ErrNotFound
	}
	s.Name = name
	return *s, nil
}

func (repo *subjectRepository) DeleteSubjectByID(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return subject.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *subjectRepository) GetSubjectByID(_ context.Context, id int64) (subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) QuerySubjectsByGroup(_ context.Context, groupID int64) ([]subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	subjects := make([]subject.Subject, 0)
	for _, s := range repo.db.table {
		if s.GroupID == groupID {
			subjects = append(subjects, *s)
		}
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}
