package teacherlink

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("teacher link not found")

// TeacherLink ties a teacher to the subject they give in a group.
// The triple is the identity; there is no surrogate key.
type TeacherLink struct {
	TeacherID int64 `json:"teacher_id" db:"teacher_id" validate:"required"`
	GroupID   int64 `json:"group_id" db:"group_id" validate:"required"`
	SubjectID int64 `json:"subject_id" db:"subject_id" validate:"required"`
}

func (l *TeacherLink) Validate(validate *validator.Validate) error {
	return validate.Struct(l)
}

type (
	Repository interface {
		CreateLink(ctx context.Context, l TeacherLink) (TeacherLink, error)
		QueryLinksByGroup(ctx context.Context, groupID int64) ([]TeacherLink, error)
		DeleteLink(ctx context.Context, l TeacherLink) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Add(ctx context.Context, l TeacherLink) (TeacherLink, error) {
	return svc.repo.CreateLink(ctx, l)
}

func (svc *Service) QueryByGroup(ctx context.Context, groupID int64) ([]TeacherLink, error) {
	return svc.repo.QueryLinksByGroup(ctx, groupID)
}

func (svc *Service) Delete(ctx context.Context, l TeacherLink) error {
	return svc.repo.DeleteLink(ctx, l)
}
