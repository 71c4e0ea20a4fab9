package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

var tempPasswordCharset = []rune("ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789")

var (
	// ErrInvalidHash signals a digest bcrypt cannot parse.
	ErrInvalidHash = errors.New("invalid bcrypt hash")
	// ErrPasswordTooLong is returned for inputs beyond bcrypt's 72 byte limit.
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// HashPassword returns a salted bcrypt digest of password. Each call draws a
// fresh salt, so equal inputs produce different digests.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), costFromConfig(cfg))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// maxPasswordBytes is the longest input bcrypt reads; later bytes are ignored.
const maxPasswordBytes = 72

// VerifyPassword reports whether password matches the digest. A mismatch is
// false with a nil error; a malformed digest is an error. Inputs longer than
// bcrypt reads can never have been hashed, so they never match.
func VerifyPassword(password, digest string) (bool, error) {
	if len(password) > maxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}

// Cost returns the work factor embedded in a digest.
func Cost(digest string) (int, error) {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return cost, nil
}

func costFromConfig(cfg config.PasswordConfig) int {
	if cfg.BcryptCost == 0 {
		return DefaultCost
	}
	return clampInt(cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// GenerateTempPassword produces a random string suitable for temporary credentials.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	limit := big.NewInt(int64(len(tempPasswordCharset)))
	result := make([]rune, length)
	for i := range result {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		result[i] = tempPasswordCharset[idx.Int64()]
	}
	return string(result), nil
}
