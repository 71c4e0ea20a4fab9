package identities

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
)

// IdentityInput holds the personal details of an administrator.
type IdentityInput struct {
	LastName  string `json:"nom_admin" validate:"required"`
	FirstName string `json:"prenom_admin" validate:"required"`
	Email     string `json:"email_admin" validate:"required"`
	Phone     string `json:"telephone_admin" validate:"required"`
}

// Normalize trims every field and lower-cases the email so uniqueness is
// case-insensitive.
func (in *IdentityInput) Normalize() {
	in.LastName = strings.TrimSpace(in.LastName)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in IdentityInput) ToModel() *models.Identity {
	return &models.Identity{
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
}

func (in IdentityInput) fields() map[string]any {
	return map[string]any{
		string(FieldLastName): in.LastName,
		"prenom_admin":        in.FirstName,
		string(FieldEmail):    in.Email,
		string(FieldPhone):    in.Phone,
	}
}

type IdentityDTO struct {
	ID        uint64    `json:"id"`
	LastName  string    `json:"nom_admin"`
	FirstName string    `json:"prenom_admin"`
	Email     string    `json:"email_admin"`
	Phone     string    `json:"telephone_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(i *models.Identity) IdentityDTO {
	return IdentityDTO{
		ID:        i.ID,
		LastName:  i.LastName,
		FirstName: i.FirstName,
		Email:     i.Email,
		Phone:     i.Phone,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
