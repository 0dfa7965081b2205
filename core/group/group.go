package group

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/studyline/studyline/core"
)

var ErrNotFound = errors.New("group not found")

type Group struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Shift int    `json:"shift" db:"shift"`
}

// NewGroup contains information needed to create a new Group.
type NewGroup struct {
	Name  string `json:"name" validate:"required"`
	Shift int    `json:"shift" validate:"required,min=1"`
}

func (ng *NewGroup) Validate(validate *validator.Validate) error {
	ng.Name = core.CleanString(ng.Name)
	return validate.Struct(ng)
}

type (
	Repository interface {
		CreateGroup(ctx context.Context, name string, shift int) (Group, error)
		QueryAllGroups(ctx context.Context) ([]Group, error)
		GetGroupByID(ctx context.Context, id int64) (Group, error)
		UpdateGroup(ctx context.Context, id int64, name string, shift int) (Group, error)
		DeleteGroupByID(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ng NewGroup) (Group, error) {
	return svc.repo.CreateGroup(ctx, ng.Name, ng.Shift)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Group, error) {
	return svc.repo.QueryAllGroups(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Group, error) {
	return svc.repo.GetGroupByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int64, ng NewGroup) (Group, error) {
	return svc.repo.UpdateGroup(ctx, id, ng.Name, ng.Shift)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteGroupByID(ctx, id)
}
