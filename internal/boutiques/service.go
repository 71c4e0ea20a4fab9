package boutiques

import (
	"context"

	"github.com/angelmondragon/shopadmin-backend/internal/crud"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

const Entity = "boutique"

// Service manages boutiques. Names are unique among live boutiques.
type Service interface {
	Create(ctx context.Context, input BoutiqueInput) (uint64, error)
	Update(ctx context.Context, id uint64, input BoutiqueInput) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (BoutiqueDTO, error)
	List(ctx context.Context) ([]BoutiqueDTO, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[BoutiqueDTO], error)
}

type service struct {
	*crud.Service[models.Boutique, BoutiqueDTO]
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "boutique repo is required")
	}
	return &service{Service: crud.New[models.Boutique, BoutiqueDTO](Entity, repo, FromModel)}, nil
}

func (s *service) Create(ctx context.Context, input BoutiqueInput) (uint64, error) {
	return s.Insert(ctx, input.ToModel())
}

func (s *service) Update(ctx context.Context, id uint64, input BoutiqueInput) error {
	return s.Patch(ctx, id, input.fields())
}
