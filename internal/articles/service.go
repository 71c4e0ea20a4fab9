package articles

import (
	"context"

	"github.com/angelmondragon/shopadmin-backend/internal/crud"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

const Entity = "article"

type Service interface {
	Create(ctx context.Context, input ArticleInput) (uint64, error)
	Update(ctx context.Context, id uint64, input ArticleInput) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (ArticleDTO, error)
	List(ctx context.Context) ([]ArticleDTO, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[ArticleDTO], error)
}

type service struct {
	*crud.Service[models.Article, ArticleDTO]
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "article repo is required")
	}
	return &service{Service: crud.New[models.Article, ArticleDTO](Entity, repo, FromModel)}, nil
}

func (s *service) Create(ctx context.Context, input ArticleInput) (uint64, error) {
	return s.Insert(ctx, input.ToModel())
}

func (s *service) Update(ctx context.Context, id uint64, input ArticleInput) error {
	return s.Patch(ctx, id, input.fields())
}
