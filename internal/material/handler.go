package material

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateRawMaterialRequest struct {
	Name         string           `json:"name" validate:"required"`
	Unit         string           `json:"unit" validate:"required"`
	HSNCode      string           `json:"hsn_code"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
}

type UpdateRawMaterialRequest struct {
	Name         *string          `json:"name"`
	Unit         *string          `json:"unit"`
	HSNCode      *string          `json:"hsn_code"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
	IsActive     *bool            `json:"is_active"`
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRawMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		rm := models.RawMaterial{
			Name:         body.Name,
			Unit:         body.Unit,
			HSNCode:      body.HSNCode,
			ReorderLevel: body.ReorderLevel,
			IsActive:     true,
		}
		if err := database.DB.Create(&rm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create raw material")
		}
		return c.Status(fiber.StatusCreated).JSON(rm)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.RawMaterial{})
		if c.QueryBool("active_only", true) {
			q = q.Where("is_active = ?", true)
		}
		if search := c.Query("search"); search != "" {
			q = q.Where("name ILIKE ?", "%"+search+"%")
		}

		var materials []models.RawMaterial
		if err := q.Order("name").Offset(offset).Limit(limit).Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list raw materials")
		}
		return c.JSON(materials)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var rm models.RawMaterial
		if err := database.DB.First(&rm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "raw material not found")
		}
		return c.JSON(rm)
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body UpdateRawMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var rm models.RawMaterial
		if err := database.DB.First(&rm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "raw material not found")
		}

		if body.Name != nil {
			rm.Name = *body.Name
		}
		if body.Unit != nil {
			rm.Unit = *body.Unit
		}
		if body.HSNCode != nil {
			rm.HSNCode = *body.HSNCode
		}
		if body.ReorderLevel != nil {
			rm.ReorderLevel = body.ReorderLevel
		}
		if body.IsActive != nil {
			rm.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&rm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update raw material")
		}
		return c.JSON(rm)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var rm models.RawMaterial
		if err := database.DB.First(&rm, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "raw material not found")
		}

		rm.IsActive = false
		if err := database.DB.Save(&rm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete raw material")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
