package auth

import (
	"strings"

	"github.com/santoshmvhs/purebornmvp/internal/config"
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
	CtxUserRoleKey = "user_role"

	cookieName = "access_token"
)

func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	// cookie fallback: browsers get the token as an httpOnly cookie
	return c.Cookies(cookieName)
}

// JWTMiddleware validates the session token and loads the user. Tokens signed
// with the app secret are tried first, then Supabase-issued tokens when a
// Supabase secret is configured.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		var username string
		if claims, err := ParseToken(cfg.JWTSecret, tokenStr); err == nil {
			username = claims.Username
		} else if cfg.SupabaseJWTSecret != "" {
			sbClaims, sbErr := ParseSupabaseToken(cfg.SupabaseJWTSecret, tokenStr)
			if sbErr != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
			}
			username = usernameFromEmail(sbClaims.Email)
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		if username == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		var user models.User
		if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "inactive user")
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUsernameKey, user.Username)
		c.Locals(CtxUserRoleKey, user.Role)

		return c.Next()
	}
}

// RequireAdmin gates admin-only routes; JWTMiddleware must run first.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok || role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "not enough permissions")
		}
		return c.Next()
	}
}

func usernameFromEmail(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
