package catalog

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required"`
	ProductCode string     `json:"product_code" validate:"required"`
	CategoryID  *uuid.UUID `json:"category_id"`
	BaseUnit    string     `json:"base_unit" validate:"required,oneof=L kg Unit"`
	HSNCode     string     `json:"hsn_code" validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string    `json:"name"`
	ProductCode *string    `json:"product_code"`
	CategoryID  *uuid.UUID `json:"category_id"`
	BaseUnit    *string    `json:"base_unit" validate:"omitempty,oneof=L kg Unit"`
	HSNCode     *string    `json:"hsn_code"`
	IsActive    *bool      `json:"is_active"`
}

func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		if body.CategoryID != nil {
			var count int64
			database.DB.Model(&models.ProductCategory{}).Where("id = ?", *body.CategoryID).Count(&count)
			if count == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "category not found")
			}
		}

		var dup int64
		database.DB.Model(&models.Product{}).Where("product_code = ?", body.ProductCode).Count(&dup)
		if dup > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_code already exists")
		}

		product := models.Product{
			Name:        body.Name,
			ProductCode: body.ProductCode,
			CategoryID:  body.CategoryID,
			BaseUnit:    body.BaseUnit,
			HSNCode:     body.HSNCode,
			IsActive:    true,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create product")
		}
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.Product{}).Preload("Category").Preload("Variants")
		if c.QueryBool("active_only", true) {
			q = q.Where("is_active = ?", true)
		}
		if search := c.Query("search"); search != "" {
			q = q.Where("name ILIKE ? OR product_code ILIKE ?", "%"+search+"%", "%"+search+"%")
		}
		categoryID, err := web.UUIDQuery(c, "category_id")
		if err != nil {
			return err
		}
		if categoryID != nil {
			q = q.Where("category_id = ?", *categoryID)
		}

		var products []models.Product
		if err := q.Order("name").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list products")
		}
		return c.JSON(products)
	}
}

func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var product models.Product
		if err := database.DB.Preload("Category").Preload("Variants").First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return c.JSON(product)
	}
}

func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}

		if body.Name != nil {
			product.Name = *body.Name
		}
		if body.ProductCode != nil && *body.ProductCode != product.ProductCode {
			var dup int64
			database.DB.Model(&models.Product{}).Where("product_code = ? AND id <> ?", *body.ProductCode, id).Count(&dup)
			if dup > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "product_code already exists")
			}
			product.ProductCode = *body.ProductCode
		}
		if body.CategoryID != nil {
			product.CategoryID = body.CategoryID
		}
		if body.BaseUnit != nil {
			product.BaseUnit = *body.BaseUnit
		}
		if body.HSNCode != nil {
			product.HSNCode = *body.HSNCode
		}
		if body.IsActive != nil {
			product.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update product")
		}
		return c.JSON(product)
	}
}

// DeleteProductHandler soft-deletes the product and its variants together so a
// deactivated product never sells through a still-active variant.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}

		if c.QueryBool("hard_delete", false) {
			err := database.DB.Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
					return err
				}
				return tx.Delete(&product).Error
			})
			if err != nil {
				return fiber.NewError(fiber.StatusConflict, "product is referenced by other records")
			}
		} else {
			err := database.DB.Transaction(func(tx *gorm.DB) error {
				if err := tx.Model(&models.ProductVariant{}).Where("product_id = ?", id).
					Update("is_active", false).Error; err != nil {
					return err
				}
				return tx.Model(&product).Update("is_active", false).Error
			})
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not delete product")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
