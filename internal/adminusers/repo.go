package adminusers

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"gorm.io/gorm"
)

const (
	FieldUsername softdelete.Field = "username_admin"
	FieldIdentity softdelete.Field = "identity_ididentity"

	columnPassword = "password_admin"
)

// ParseField resolves a client supplied column name against the allowlist.
func ParseField(raw string) (softdelete.Field, error) {
	switch f := softdelete.Field(raw); f {
	case FieldUsername, FieldIdentity:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", softdelete.ErrUnknownField, raw)
}

// Repository persists admin users in the users database.
type Repository struct {
	*softdelete.Repository[models.AdminUser]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: softdelete.New[models.AdminUser](db, FieldUsername, FieldIdentity)}
}

// FindByUsername returns the live user with username, or nil.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return r.FirstBy(ctx, FieldUsername, username)
}

// SetPassword stores digest on the live user with id.
func (r *Repository) SetPassword(ctx context.Context, id uint64, digest string) (int64, error) {
	return r.Update(ctx, id, map[string]any{columnPassword: digest})
}

// SetPasswordByUsername stores digest on the live user named username.
func (r *Repository) SetPasswordByUsername(ctx context.Context, username, digest string) (int64, error) {
	return r.UpdateBy(ctx, FieldUsername, username, map[string]any{columnPassword: digest})
}
