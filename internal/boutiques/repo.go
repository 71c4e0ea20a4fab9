package boutiques

import (
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"gorm.io/gorm"
)

const FieldName softdelete.Field = "nom_boutique"

type Repository struct {
	*softdelete.Repository[models.Boutique]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: softdelete.New[models.Boutique](db, FieldName)}
}
