package roles

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
)

// RoleInput is the body of role create and update requests.
type RoleInput struct {
	Name    string `json:"nom_role" validate:"required"`
	Acronym string `json:"acronyme_role" validate:"required"`
}

func (in *RoleInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Acronym = strings.TrimSpace(in.Acronym)
}

func (in RoleInput) ToModel() *models.Role {
	return &models.Role{Name: in.Name, Acronym: in.Acronym}
}

func (in RoleInput) fields() map[string]any {
	return map[string]any{
		string(FieldName):    in.Name,
		string(FieldAcronym): in.Acronym,
	}
}

// RoleDTO is the transport shape of a live role.
type RoleDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"nom_role"`
	Acronym   string    `json:"acronyme_role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(r *models.Role) RoleDTO {
	return RoleDTO{
		ID:        r.ID,
		Name:      r.Name,
		Acronym:   r.Acronym,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
