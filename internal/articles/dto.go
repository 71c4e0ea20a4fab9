package articles

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ArticleInput carries article fields. Price and stock are pointers so an
// explicit zero passes the presence check while an omitted field does not.
type ArticleInput struct {
	Name        string           `json:"nom_articles" validate:"required"`
	Description string           `json:"description_articles" validate:"required"`
	Price       *decimal.Decimal `json:"prix_articles" validate:"required"`
	Stock       *int             `json:"stock_articles" validate:"required"`
}

func (in *ArticleInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Price != nil {
		rounded := in.Price.Round(2)
		in.Price = &rounded
	}
}

func (in ArticleInput) ToModel() *models.Article {
	return &models.Article{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.price(),
		Stock:       in.stock(),
	}
}

func (in ArticleInput) fields() map[string]any {
	return map[string]any{
		string(FieldName):      in.Name,
		"description_articles": in.Description,
		"prix_articles":        in.price(),
		"stock_articles":       in.stock(),
	}
}

func (in ArticleInput) price() decimal.Decimal {
	if in.Price == nil {
		return decimal.Zero
	}
	return *in.Price
}

func (in ArticleInput) stock() int {
	if in.Stock == nil {
		return 0
	}
	return *in.Stock
}

type ArticleDTO struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"nom_articles"`
	Description string          `json:"description_articles"`
	Price       decimal.Decimal `json:"prix_articles"`
	Stock       int             `json:"stock_articles"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromModel(a *models.Article) ArticleDTO {
	return ArticleDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Stock:       a.Stock,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
