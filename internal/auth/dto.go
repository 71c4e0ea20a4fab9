package auth

import (
	"strings"
	"time"

	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username_admin" validate:"required"`
	Password string `json:"password_admin" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// ChangePasswordRequest sets a new password on a known account.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

// ResetPasswordRequest resets the password of the named account. An empty
// NewPassword asks the server to generate a temporary one.
type ResetPasswordRequest struct {
	Username    string `json:"username_admin" validate:"required"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// AuthResult is returned by a successful authentication. Token is empty when
// token minting is not configured.
type AuthResult struct {
	User      adminusers.AdminUserDTO `json:"user"`
	Token     string                  `json:"token,omitempty"`
	ExpiresAt *time.Time              `json:"expires_at,omitempty"`
}
