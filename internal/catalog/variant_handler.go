package catalog

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateVariantRequest struct {
	ProductID    uuid.UUID        `json:"product_id" validate:"required"`
	VariantName  string           `json:"variant_name" validate:"required"`
	Multiplier   decimal.Decimal  `json:"multiplier" validate:"required"`
	SKU          string           `json:"sku" validate:"required"`
	Barcode      string           `json:"barcode"`
	MRP          *decimal.Decimal `json:"mrp"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	Channel      string           `json:"channel" validate:"omitempty,oneof=store online both"`
}

type UpdateVariantRequest struct {
	VariantName  *string          `json:"variant_name"`
	Multiplier   *decimal.Decimal `json:"multiplier"`
	SKU          *string          `json:"sku"`
	Barcode      *string          `json:"barcode"`
	MRP          *decimal.Decimal `json:"mrp"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	Channel      *string          `json:"channel" validate:"omitempty,oneof=store online both"`
	IsActive     *bool            `json:"is_active"`
}

func CreateVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVariantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		if !body.Multiplier.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "multiplier must be positive")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "product not found")
		}

		var dup int64
		database.DB.Model(&models.ProductVariant{}).Where("sku = ?", body.SKU).Count(&dup)
		if dup > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "sku already exists")
		}

		variant := models.ProductVariant{
			ProductID:    body.ProductID,
			VariantName:  body.VariantName,
			Multiplier:   body.Multiplier,
			SKU:          body.SKU,
			Barcode:      body.Barcode,
			MRP:          body.MRP,
			SellingPrice: body.SellingPrice,
			CostPrice:    body.CostPrice,
			Channel:      body.Channel,
			IsActive:     true,
		}
		if err := database.DB.Create(&variant).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create variant")
		}
		return c.Status(fiber.StatusCreated).JSON(variant)
	}
}

func ListVariantsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.ProductVariant{}).Preload("Product")
		if c.QueryBool("active_only", true) {
			q = q.Where("is_active = ?", true)
		}
		productID, err := web.UUIDQuery(c, "product_id")
		if err != nil {
			return err
		}
		if productID != nil {
			q = q.Where("product_id = ?", *productID)
		}
		if search := c.Query("search"); search != "" {
			q = q.Where("variant_name ILIKE ? OR sku ILIKE ?", "%"+search+"%", "%"+search+"%")
		}

		var variants []models.ProductVariant
		if err := q.Order("sku").Offset(offset).Limit(limit).Find(&variants).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list variants")
		}
		return c.JSON(variants)
	}
}

func GetVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var variant models.ProductVariant
		if err := database.DB.Preload("Product").First(&variant, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "variant not found")
		}
		return c.JSON(variant)
	}
}

func UpdateVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body UpdateVariantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var variant models.ProductVariant
		if err := database.DB.First(&variant, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "variant not found")
		}

		if body.VariantName != nil {
			variant.VariantName = *body.VariantName
		}
		if body.Multiplier != nil {
			if !body.Multiplier.IsPositive() {
				return fiber.NewError(fiber.StatusBadRequest, "multiplier must be positive")
			}
			variant.Multiplier = *body.Multiplier
		}
		if body.SKU != nil && *body.SKU != variant.SKU {
			var dup int64
			database.DB.Model(&models.ProductVariant{}).Where("sku = ? AND id <> ?", *body.SKU, id).Count(&dup)
			if dup > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "sku already exists")
			}
			variant.SKU = *body.SKU
		}
		if body.Barcode != nil {
			variant.Barcode = *body.Barcode
		}
		if body.MRP != nil {
			variant.MRP = body.MRP
		}
		if body.SellingPrice != nil {
			variant.SellingPrice = body.SellingPrice
		}
		if body.CostPrice != nil {
			variant.CostPrice = body.CostPrice
		}
		if body.Channel != nil {
			variant.Channel = *body.Channel
		}
		if body.IsActive != nil {
			variant.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&variant).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update variant")
		}
		return c.JSON(variant)
	}
}

func DeleteVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var variant models.ProductVariant
		if err := database.DB.First(&variant, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "variant not found")
		}

		variant.IsActive = false
		if err := database.DB.Save(&variant).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete variant")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
