package inmemdb

import (
	"context"
	"sort"

	"github.com/studyline/studyline/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		teachers = append(teachers, *t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers
}

func (repo *teacherRepository) CheckLoginUniqueness(_ context.Context, login string, excluded ...teacher.Teacher) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.query() {
		if t.Login != login {
			continue
		}
		var skip bool
		for _, ex := range excluded {
			if ex.ID == t.ID {
				skip = true
				break
			}
		}
		if !skip {
			return teacher.ErrLoginExists
		}
	}
	return nil
}

func (repo *teacherRepository) CreateTeacher(_ context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	t.ID = repo.db.pkCount
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers(_ context.Context) ([]teacher.Public, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	teachers := repo.query()
	public := make([]teacher.Public, 0, len(teachers))
	for _, t := range teachers {
		public = append(public, teacher.Public{ID: t.ID, FullName: t.FullName, Role: t.Role})
	}
	return public, nil
}

func (repo *teacherRepository) GetTeacherByID(_ context.Context, id int64) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) GetTeacherByLogin(_ context.Context, login string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.query() {
		if t.Login == login {
			return t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacherLogin(_ context.Context, id int64, login string) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.table[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	t.Login = login
	return *t, nil
}

func (repo *teacherRepository) UpdateTeacherPasswordHash(_ context.Context, id int64, hash []byte) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.table[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	t.PasswordHash = hash
	return *t, nil
}

func (repo *teacherRepository) UpdateTeacherFullName(_ context.Context, id int64, fullName string) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.table[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	t.FullName = fullName
	return *t, nil
}

func (repo *teacherRepository) DeleteTeacherByID(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return teacher.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
