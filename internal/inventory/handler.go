package inventory

import (
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListHandler pages through the movement ledger, newest first.
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.InventoryMovement{})
		if itemType := c.Query("item_type"); itemType != "" {
			if itemType != models.ItemTypeRawMaterial && itemType != models.ItemTypeProductVariant {
				return fiber.NewError(fiber.StatusBadRequest, "invalid item_type")
			}
			q = q.Where("item_type = ?", itemType)
		}
		itemID, err := web.UUIDQuery(c, "item_id")
		if err != nil {
			return err
		}
		if itemID != nil {
			q = q.Where("item_id = ?", *itemID)
		}
		if refType := c.Query("reference_type"); refType != "" {
			q = q.Where("reference_type = ?", refType)
		}
		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		if from != nil {
			q = q.Where("date_time >= ?", *from)
		}
		if to != nil {
			q = q.Where("date_time < ?", to.AddDate(0, 0, 1))
		}

		var movements []models.InventoryMovement
		if err := q.Order("date_time DESC, created_at DESC").Offset(offset).Limit(limit).Find(&movements).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list inventory movements")
		}
		return c.JSON(movements)
	}
}

type AdjustmentRequest struct {
	ItemType       string          `json:"item_type" validate:"required,oneof=raw_material product_variant"`
	ItemID         uuid.UUID       `json:"item_id" validate:"required"`
	QuantityChange decimal.Decimal `json:"quantity_change" validate:"required"`
	Unit           string          `json:"unit" validate:"required"`
	Reason         string          `json:"reason"`
}

// AdjustHandler records a manual stock correction. Wastage, spillage and
// count corrections go through here; signed quantity, negative for shrinkage.
func AdjustHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		if body.QuantityChange.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "quantity_change must not be zero")
		}

		switch body.ItemType {
		case models.ItemTypeRawMaterial:
			var count int64
			database.DB.Model(&models.RawMaterial{}).Where("id = ?", body.ItemID).Count(&count)
			if count == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "raw material not found")
			}
		case models.ItemTypeProductVariant:
			var count int64
			database.DB.Model(&models.ProductVariant{}).Where("id = ?", body.ItemID).Count(&count)
			if count == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "product variant not found")
			}
		}

		mv := models.InventoryMovement{
			DateTime:       time.Now().UTC(),
			ItemType:       body.ItemType,
			ItemID:         body.ItemID,
			QuantityChange: body.QuantityChange,
			Unit:           body.Unit,
			ReferenceType:  models.RefTypeAdjustment,
		}
		if err := database.DB.Create(&mv).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not record adjustment")
		}
		return c.Status(fiber.StatusCreated).JSON(mv)
	}
}
