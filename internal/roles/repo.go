package roles

import (
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"gorm.io/gorm"
)

const (
	FieldName    softdelete.Field = "nom_role"
	FieldAcronym softdelete.Field = "acronyme_role"
)

// Repository persists roles in the admin database.
type Repository struct {
	*softdelete.Repository[models.Role]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: softdelete.New[models.Role](db, FieldName, FieldAcronym)}
}
