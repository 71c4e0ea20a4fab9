package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	AdminID    uint64
	Username   string
	IdentityID uint64
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to admin users.
type AccessTokenClaims struct {
	AdminID    uint64 `json:"admin_id"`
	Username   string `json:"username"`
	IdentityID uint64 `json:"identity_id,omitempty"`
	jwt.RegisteredClaims
}
