package adminusers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/angelmondragon/shopadmin-backend/internal/crud"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
	"github.com/angelmondragon/shopadmin-backend/pkg/security"
)

const Entity = "user"

// Service manages admin accounts. Passwords are hashed before they reach the
// repository and digests never leave it.
type Service interface {
	Create(ctx context.Context, input AdminUserInput) (uint64, error)
	Update(ctx context.Context, id uint64, input AdminUserInput) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (AdminUserDTO, error)
	List(ctx context.Context) ([]AdminUserDTO, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[AdminUserDTO], error)

	GetByUsername(ctx context.Context, username string) (AdminUserDTO, error)
	Exists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int64, error)
	ListByIdentity(ctx context.Context, identityID uint64) ([]AdminUserDTO, error)
	Search(ctx context.Context, field, value string) ([]AdminUserDTO, error)
}

type service struct {
	*crud.Service[models.AdminUser, AdminUserDTO]
	repo     *Repository
	password config.PasswordConfig
}

func NewService(repo *Repository, password config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repo is required")
	}
	return &service{
		Service:  crud.New[models.AdminUser, AdminUserDTO](Entity, repo, FromModel),
		repo:     repo,
		password: password,
	}, nil
}

func (s *service) Create(ctx context.Context, input AdminUserInput) (uint64, error) {
	digest, err := s.hash(input.Password)
	if err != nil {
		return 0, err
	}
	return s.Insert(ctx, &models.AdminUser{
		Username:     input.Username,
		PasswordHash: digest,
		IdentityID:   input.IdentityID,
	})
}

func (s *service) Update(ctx context.Context, id uint64, input AdminUserInput) error {
	digest, err := s.hash(input.Password)
	if err != nil {
		return err
	}
	return s.Patch(ctx, id, map[string]any{
		string(FieldUsername): input.Username,
		columnPassword:        digest,
		string(FieldIdentity): input.IdentityID,
	})
}

func (s *service) GetByUsername(ctx context.Context, username string) (AdminUserDTO, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return AdminUserDTO{}, s.MapError(err, "load")
	}
	if user == nil {
		return AdminUserDTO{}, pkgerrors.NotFound(Entity)
	}
	return FromModel(user), nil
}

func (s *service) Exists(ctx context.Context, username string) (bool, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, s.MapError(err, "load")
	}
	return user != nil, nil
}

func (s *service) ListByIdentity(ctx context.Context, identityID uint64) ([]AdminUserDTO, error) {
	rows, err := s.repo.FindBy(ctx, FieldIdentity, identityID)
	if err != nil {
		return nil, s.MapError(err, "list")
	}
	return s.ToDTOs(rows), nil
}

// Search filters live users on one allowlisted column.
func (s *service) Search(ctx context.Context, field, value string) ([]AdminUserDTO, error) {
	f, err := ParseField(strings.TrimSpace(field))
	if err != nil {
		return nil, s.MapError(err, "search")
	}
	value = strings.TrimSpace(value)

	var arg any = value
	if f == FieldIdentity {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "value must be a numeric identity id")
		}
		arg = id
	}

	rows, err := s.repo.FindBy(ctx, f, arg)
	if err != nil {
		return nil, s.MapError(err, "search")
	}
	return s.ToDTOs(rows), nil
}

func (s *service) hash(password string) (string, error) {
	digest, err := security.HashPassword(password, s.password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "password is too long")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	return digest, nil
}
