package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
)

var (
	ErrNotFound    = errors.New("teacher not found")
	ErrLoginExists = errors.New("a teacher with this login already exists")
)

type (
	Repository interface {
		CheckLoginUniqueness(ctx context.Context, login string, excluded ...Teacher) error
		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		QueryAllTeachers(ctx context.Context) ([]Public, error)
		GetTeacherByID(ctx context.Context, id int64) (Teacher, error)
		GetTeacherByLogin(ctx context.Context, login string) (Teacher, error)
		UpdateTeacherLogin(ctx context.Context, id int64, login string) (Teacher, error)
		UpdateTeacherPasswordHash(ctx context.Context, id int64, hash []byte) (Teacher, error)
		UpdateTeacherFullName(ctx context.Context, id int64, fullName string) (Teacher, error)
		DeleteTeacherByID(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckLoginUniqueness(login string, excluded ...Teacher) error {
	if err := svc.repo.CheckLoginUniqueness(context.Background(), login, excluded...); err != nil {
		if errors.Cause(err) == ErrLoginExists {
			return core.NewValidationError(err, core.FieldError{Field: "login", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	t := Teacher{
		Login:    nt.Login,
		FullName: nt.FullName,
		Role:     RoleDefault,
	}
	if err := t.SetPassword(nt.Password); err != nil {
		return Teacher{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateTeacher(ctx, t)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Public, error) {
	return svc.repo.QueryAllTeachers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, id)
}

func (svc *Service) GetByLogin(ctx context.Context, login string) (Teacher, error) {
	return svc.repo.GetTeacherByLogin(ctx, core.CleanString(login, true /* lower */))
}

func (svc *Service) UpdateLogin(ctx context.Context, id int64, e EditLogin) (Teacher, error) {
	if err := svc.CheckLoginUniqueness(e.Login, Teacher{ID: id}); err != nil {
		return Teacher{}, err
	}
	return svc.repo.UpdateTeacherLogin(ctx, id, e.Login)
}

func (svc *Service) UpdatePassword(ctx context.Context, id int64, e EditPassword) (Teacher, error) {
	var t Teacher
	if err := t.SetPassword(e.Password); err != nil {
		return Teacher{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.UpdateTeacherPasswordHash(ctx, id, t.PasswordHash)
}

func (svc *Service) UpdateFullName(ctx context.Context, id int64, e EditFullName) (Teacher, error) {
	return svc.repo.UpdateTeacherFullName(ctx, id, e.FullName)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteTeacherByID(ctx, id)
}
