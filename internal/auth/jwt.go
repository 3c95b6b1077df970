package auth

import (
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Username string          `json:"sub_username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// SupabaseClaims covers the subset of a Supabase access token we care about.
// Supabase signs with its own HS256 secret and puts the user's email in the
// token; the email local-part doubles as our username for provisioned users.
type SupabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User, expiry time.Duration) (string, error) {
	claims := &Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates an HS256 token against the given secret.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// ParseSupabaseToken validates a Supabase-issued token and maps it onto a
// username (email local-part).
func ParseSupabaseToken(secret, tokenStr string) (*SupabaseClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SupabaseClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SupabaseClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
