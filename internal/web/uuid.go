package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UUIDParam parses a UUID path parameter.
func UUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a valid UUID")
	}
	return id, nil
}

// UUIDQuery parses an optional UUID query parameter. Empty means absent.
func UUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a valid UUID")
	}
	return &id, nil
}
