package auth

import (
	"strings"
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/config"
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/logging"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin cashier"`
}

// bcrypt rejects inputs over 72 bytes; truncate like the legacy clients expect.
func clampPassword(p string) []byte {
	b := []byte(p)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		body.Username = strings.TrimSpace(body.Username)

		var user models.User
		if err := database.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "incorrect username or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), clampPassword(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "incorrect username or password")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "inactive user account")
		}

		expiry := time.Duration(cfg.TokenExpiryMin) * time.Minute
		token, err := GenerateToken(cfg.JWTSecret, &user, expiry)
		if err != nil {
			logging.Error("auth", "login", err, logrus.Fields{"username": user.Username})
			return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
		}

		// httpOnly cookie for browsers, token in body for API clients
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    token,
			MaxAge:   cfg.TokenExpiryMin * 60,
			HTTPOnly: true,
			Secure:   cfg.Environment == "production",
			SameSite: cookieSameSite(cfg),
			Path:     "/",
		})

		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

func cookieSameSite(cfg *config.Config) string {
	// frontend and backend live on different domains in production
	if cfg.Environment == "production" {
		return "None"
	}
	return "Lax"
}

func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    "",
			MaxAge:   -1,
			HTTPOnly: true,
			Path:     "/",
		})
		return c.JSON(fiber.Map{"message": "logged out"})
	}
}

// RegisterHandler creates a user, admin only.
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		return createUser(c, body, false)
	}
}

// SignupHandler provisions a local row for a user who signed up through
// Supabase Auth. Public; the stored password is a placeholder because such
// users authenticate with Supabase tokens.
func SignupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Password == "" {
			body.Password = "supabase-managed"
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		// public signups never get admin
		if body.Role != string(models.RoleAdmin) {
			body.Role = string(models.RoleCashier)
		}
		return createUser(c, body, true)
	}
}

func createUser(c *fiber.Ctx, body RegisterRequest, forceCashierDefault bool) error {
	username := strings.TrimSpace(body.Username)

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "username already registered")
	}

	role := models.UserRole(body.Role)
	if role != models.RoleAdmin && role != models.RoleCashier {
		if forceCashierDefault {
			role = models.RoleCashier
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "role must be 'admin' or 'cashier'")
		}
	}

	hash, err := bcrypt.GenerateFromPassword(clampPassword(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
	}

	user := models.User{
		Username:       username,
		HashedPassword: string(hash),
		Role:           role,
		IsActive:       true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		logging.Error("auth", "createUser", err, logrus.Fields{"username": username})
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(CtxUserIDKey).(uint)

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
		}
		return c.JSON(user)
	}
}

// ListUsersHandler returns all users, admin only.
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("username").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list users")
		}
		return c.JSON(users)
	}
}

type UpdateUserRequest struct {
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin cashier"`
}

// UpdateUserHandler toggles activation or role, admin only.
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}

		if body.IsActive != nil {
			user.IsActive = *body.IsActive
		}
		if body.Role != nil {
			user.Role = models.UserRole(*body.Role)
		}
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update user")
		}
		return c.JSON(user)
	}
}
