package catalog

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		category := models.ProductCategory{Name: body.Name}
		if err := database.DB.Create(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create category")
		}
		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.ProductCategory
		if err := database.DB.Order("name").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list categories")
		}
		return c.JSON(categories)
	}
}

func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var category models.ProductCategory
		if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		category.Name = body.Name
		if err := database.DB.Save(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update category")
		}
		return c.JSON(category)
	}
}

func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var category models.ProductCategory
		if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}

		var inUse int64
		database.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&inUse)
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "category has products assigned")
		}

		if err := database.DB.Delete(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete category")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
