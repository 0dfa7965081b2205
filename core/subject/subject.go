package subject

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
)

var ErrNotFound = errors.New("subject not found")

type Subject struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	GroupID int64  `json:"group_id" db:"group_id"`
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name    string `json:"name" validate:"required"`
	GroupID int64  `json:"group_id" validate:"required"`
}

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	return validate.Struct(ns)
}

// EditSubject renames an existing Subject.
type EditSubject struct {
	Name string `json:"name" validate:"required"`
}

func (es *EditSubject) Validate(validate *validator.Validate) error {
	es.Name = core.CleanString(es.Name)
	return validate.Struct(es)
}

type (
	Repository interface {
		CreateSubject(ctx context.Context, name string, groupID int64) (Subject, error)
		RenameSubject(ctx context.Context, id int64, name string) (Subject, error)
		DeleteSubjectByID(ctx context.Context, id int64) error
		GetSubjectByID(ctx context.Context, id int64) (Subject, error)
		QuerySubjectsByGroup(ctx context.Context, groupID int64) ([]Subject, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	return svc.repo.CreateSubject(ctx, ns.Name, ns.GroupID)
}

func (svc *Service) Rename(ctx context.Context, id int64, es EditSubject) (Subject, error) {
	return svc.repo.RenameSubject(ctx, id, es.Name)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteSubjectByID(ctx, id)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) QueryByGroup(ctx context.Context, groupID int64) ([]Subject, error) {
	return svc.repo.QuerySubjectsByGroup(ctx, groupID)
}
