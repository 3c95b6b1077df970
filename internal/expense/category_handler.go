package expense

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type SubcategoryRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
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

		category := models.ExpenseCategory{Name: body.Name, Description: body.Description}
		if err := database.DB.Create(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create expense category")
		}
		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.ExpenseCategory
		if err := database.DB.Preload("Subcategories").Order("name").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list expense categories")
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

		var category models.ExpenseCategory
		if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "expense category not found")
		}
		category.Name = body.Name
		category.Description = body.Description
		if err := database.DB.Save(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update expense category")
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
		var category models.ExpenseCategory
		if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "expense category not found")
		}

		var inUse int64
		database.DB.Model(&models.Expense{}).Where("expense_category_id = ?", id).Count(&inUse)
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "category has expenses recorded against it")
		}

		if err := database.DB.Delete(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete expense category")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreateSubcategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SubcategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.ExpenseCategory{}).Where("id = ?", body.CategoryID).Count(&count)
		if count == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "expense category not found")
		}

		sub := models.ExpenseSubcategory{
			CategoryID:  body.CategoryID,
			Name:        body.Name,
			Description: body.Description,
		}
		if err := database.DB.Create(&sub).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create expense subcategory")
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

func ListSubcategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.ExpenseSubcategory{})
		categoryID, err := web.UUIDQuery(c, "category_id")
		if err != nil {
			return err
		}
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}

		var subs []models.ExpenseSubcategory
		if err := q.Order("name").Find(&subs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list expense subcategories")
		}
		return c.JSON(subs)
	}
}

func DeleteSubcategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}

		var inUse int64
		database.DB.Model(&models.Expense{}).Where("expense_subcategory_id = ?", id).Count(&inUse)
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "subcategory has expenses recorded against it")
		}

		res := database.DB.Delete(&models.ExpenseSubcategory{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete expense subcategory")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "expense subcategory not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
