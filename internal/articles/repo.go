package articles

import (
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"gorm.io/gorm"
)

const FieldName softdelete.Field = "nom_articles"

type Repository struct {
	*softdelete.Repository[models.Article]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: softdelete.New[models.Article](db, FieldName)}
}
