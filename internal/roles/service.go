package roles

import (
	"context"

	"github.com/angelmondragon/shopadmin-backend/internal/crud"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

const Entity = "role"

// Service exposes role management. Name and acronym are each unique among
// live roles.
type Service interface {
	Create(ctx context.Context, input RoleInput) (uint64, error)
	Update(ctx context.Context, id uint64, input RoleInput) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (RoleDTO, error)
	List(ctx context.Context) ([]RoleDTO, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[RoleDTO], error)
}

type service struct {
	*crud.Service[models.Role, RoleDTO]
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "role repo is required")
	}
	return &service{Service: crud.New[models.Role, RoleDTO](Entity, repo, FromModel)}, nil
}

func (s *service) Create(ctx context.Context, input RoleInput) (uint64, error) {
	return s.Insert(ctx, input.ToModel())
}

func (s *service) Update(ctx context.Context, id uint64, input RoleInput) error {
	return s.Patch(ctx, id, input.fields())
}
