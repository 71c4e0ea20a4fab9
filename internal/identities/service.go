package identities

import (
	"context"

	"github.com/angelmondragon/shopadmin-backend/internal/crud"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

const Entity = "identity"

// Service manages identities. Email and telephone are each unique among live
// identities.
type Service interface {
	Create(ctx context.Context, input IdentityInput) (uint64, error)
	Update(ctx context.Context, id uint64, input IdentityInput) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (IdentityDTO, error)
	List(ctx context.Context) ([]IdentityDTO, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[IdentityDTO], error)
}

type service struct {
	*crud.Service[models.Identity, IdentityDTO]
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "identity repo is required")
	}
	return &service{Service: crud.New[models.Identity, IdentityDTO](Entity, repo, FromModel)}, nil
}

func (s *service) Create(ctx context.Context, input IdentityInput) (uint64, error) {
	return s.Insert(ctx, input.ToModel())
}

func (s *service) Update(ctx context.Context, id uint64, input IdentityInput) error {
	return s.Patch(ctx, id, input.fields())
}
