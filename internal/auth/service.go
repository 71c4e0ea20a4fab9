package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	pkgAuth "github.com/angelmondragon/shopadmin-backend/pkg/auth"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/security"
	"github.com/google/uuid"
)

const (
	invalidCredentialsMessage = "invalid credentials"
	tempPasswordLength        = 12
)

// Service defines the credential operations used by the auth controller.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, id uint64, newPassword string) error
	// ResetPassword returns the generated password when newPassword is empty.
	ResetPassword(ctx context.Context, username, newPassword string) (string, error)
	Logout(ctx context.Context, tokenID string) error
}

type credentialStore interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	SetPassword(ctx context.Context, id uint64, digest string) (int64, error)
	SetPasswordByUsername(ctx context.Context, username, digest string) (int64, error)
}

type sessionManager interface {
	Start(ctx context.Context, accessID string, adminID uint64) error
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
// Sessions is optional; without it issued tokens cannot be revoked early.
type ServiceParams struct {
	Users     credentialStore
	Sessions  sessionManager
	JWTConfig config.JWTConfig
	Password  config.PasswordConfig
	Now       func() time.Time
}

type service struct {
	users    credentialStore
	sessions sessionManager
	jwtCfg   config.JWTConfig
	password config.PasswordConfig
	now      func() time.Time
}

// NewService constructs a credential service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:    params.Users,
		sessions: params.Sessions,
		jwtCfg:   params.JWTConfig,
		password: params.Password,
		now:      now,
	}, nil
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	input := strings.TrimSpace(username)
	if input == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	user, err := s.users.FindByUsername(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	if user == nil {
		return nil, pkgerrors.NotFound(adminusers.Entity)
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	result := &AuthResult{User: adminusers.FromModel(user)}
	if !s.jwtCfg.Enabled() {
		return result, nil
	}

	now := s.now().UTC()
	accessID := uuid.NewString()
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		AdminID:    user.ID,
		Username:   user.Username,
		IdentityID: user.IdentityID,
		JTI:        accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	if s.sessions != nil {
		if err := s.sessions.Start(ctx, accessID, user.ID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
		}
	}

	expires := now.Add(s.jwtCfg.TTL())
	result.Token = token
	result.ExpiresAt = &expires
	return result, nil
}

func (s *service) ChangePassword(ctx context.Context, id uint64, newPassword string) error {
	digest, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	affected, err := s.users.SetPassword(ctx, id, digest)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	if affected == 0 {
		return pkgerrors.NotFound(adminusers.Entity)
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, username, newPassword string) (string, error) {
	generated := ""
	if newPassword == "" {
		temp, err := security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate password")
		}
		newPassword, generated = temp, temp
	}

	digest, err := s.hash(newPassword)
	if err != nil {
		return "", err
	}
	affected, err := s.users.SetPasswordByUsername(ctx, strings.TrimSpace(username), digest)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reset password")
	}
	if affected == 0 {
		return "", pkgerrors.NotFound(adminusers.Entity)
	}
	return generated, nil
}

// Logout revokes the session behind tokenID. Without a session store there is
// nothing to revoke and the call succeeds.
func (s *service) Logout(ctx context.Context, tokenID string) error {
	if s.sessions == nil || strings.TrimSpace(tokenID) == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
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
