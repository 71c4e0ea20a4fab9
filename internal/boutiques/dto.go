package boutiques

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
)

type BoutiqueInput struct {
	Name    string `json:"nom_boutique" validate:"required"`
	Address string `json:"adresse_boutique" validate:"required"`
	Phone   string `json:"telephone_boutique" validate:"required"`
}

func (in *BoutiqueInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in BoutiqueInput) ToModel() *models.Boutique {
	return &models.Boutique{Name: in.Name, Address: in.Address, Phone: in.Phone}
}

func (in BoutiqueInput) fields() map[string]any {
	return map[string]any{
		string(FieldName):    in.Name,
		"adresse_boutique":   in.Address,
		"telephone_boutique": in.Phone,
	}
}

type BoutiqueDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"nom_boutique"`
	Address   string    `json:"adresse_boutique"`
	Phone     string    `json:"telephone_boutique"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(b *models.Boutique) BoutiqueDTO {
	return BoutiqueDTO{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
