package identities

import (
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"gorm.io/gorm"
)

const (
	FieldLastName softdelete.Field = "nom_admin"
	FieldEmail    softdelete.Field = "email_admin"
	FieldPhone    softdelete.Field = "telephone_admin"
)

// Repository persists identities in the users database.
type Repository struct {
	*softdelete.Repository[models.Identity]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: softdelete.New[models.Identity](db, FieldLastName, FieldEmail, FieldPhone)}
}
