package adminusers

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
)

// AdminUserInput is the body of user create and update requests. The
// identity reference is required but its existence is not checked.
type AdminUserInput struct {
	Username   string `json:"username_admin" validate:"required"`
	Password   string `json:"password_admin" validate:"required"`
	IdentityID uint64 `json:"identity_ididentity" validate:"required"`
}

func (in *AdminUserInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
}

// AdminUserDTO is the transport shape that omits the password digest.
type AdminUserDTO struct {
	ID         uint64    `json:"id"`
	Username   string    `json:"username_admin"`
	IdentityID uint64    `json:"identity_ididentity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModel(u *models.AdminUser) AdminUserDTO {
	return AdminUserDTO{
		ID:         u.ID,
		Username:   u.Username,
		IdentityID: u.IdentityID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
