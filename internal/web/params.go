// Package web holds small request-parsing helpers shared by all handlers.
package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

var validate = validator.New()

// ValidateStruct runs validator tags on a request body and converts the first
// failure into a 400.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return fiber.NewError(fiber.StatusBadRequest, "invalid field '"+f.Field()+"' (rule: "+f.Tag()+")")
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}

// Pagination reads page/limit query params with the defaults used across the
// API: page >= 1, limit 1..1000 (default 50).
func Pagination(c *fiber.Ctx) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}
	return page, limit, (page - 1) * limit
}

// DateQuery parses an optional YYYY-MM-DD query param. Empty means absent.
func DateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be YYYY-MM-DD")
	}
	return &t, nil
}

// ParseDate parses a required YYYY-MM-DD value from a body field.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, field+" must be YYYY-MM-DD")
	}
	return t, nil
}
