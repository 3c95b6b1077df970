package purchase

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/gst"
	"github.com/santoshmvhs/purebornmvp/internal/logging"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ItemRequest struct {
	RawMaterialID *uuid.UUID       `json:"raw_material_id"`
	Description   string           `json:"description"`
	Quantity      decimal.Decimal  `json:"quantity" validate:"required"`
	Unit          string           `json:"unit" validate:"required"`
	PricePerUnit  decimal.Decimal  `json:"price_per_unit" validate:"required"`
	GSTRate       *decimal.Decimal `json:"gst_rate"`
}

type PurchaseRequest struct {
	InvoiceNumber    string          `json:"invoice_number"`
	InvoiceDate      string          `json:"invoice_date" validate:"required"`
	VendorID         uuid.UUID       `json:"vendor_id" validate:"required"`
	PurchaseCategory string          `json:"purchase_category" validate:"omitempty,oneof=raw_material packing service other"`
	Items            []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	AmountCash       decimal.Decimal `json:"amount_cash"`
	AmountUPI        decimal.Decimal `json:"amount_upi"`
	AmountCard       decimal.Decimal `json:"amount_card"`
	AmountCredit     decimal.Decimal `json:"amount_credit"`
	Notes            string          `json:"notes"`
}

// buildItems resolves GST rates and derives line totals. Rates left out of the
// payload come from the raw material's HSN code.
func buildItems(tx *gorm.DB, reqs []ItemRequest) ([]models.PurchaseItem, decimal.Decimal, error) {
	items := make([]models.PurchaseItem, 0, len(reqs))
	total := decimal.Zero

	for _, in := range reqs {
		if !in.Quantity.IsPositive() {
			return nil, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "item quantity must be positive")
		}
		if in.PricePerUnit.IsNegative() {
			return nil, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "item price must not be negative")
		}

		var rate decimal.Decimal
		if in.GSTRate != nil {
			rate = *in.GSTRate
		} else if in.RawMaterialID != nil {
			var rm models.RawMaterial
			if err := tx.First(&rm, "id = ?", *in.RawMaterialID).Error; err != nil {
				return nil, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "raw material not found")
			}
			if rm.HSNCode != "" {
				rate = gst.RateForHSN(rm.HSNCode)
			}
		}

		lt := ComputeLine(in.Quantity, in.PricePerUnit, rate)
		items = append(items, models.PurchaseItem{
			RawMaterialID: in.RawMaterialID,
			Description:   in.Description,
			Quantity:      in.Quantity,
			Unit:          in.Unit,
			PricePerUnit:  in.PricePerUnit,
			LineTotal:     lt.LineTotal,
			GSTRate:       rate,
			GSTAmount:     lt.GSTAmount,
			TaxableValue:  lt.TaxableValue,
		})
		total = total.Add(lt.LineTotal)
	}
	return items, total, nil
}

// recordMovements writes one +IN stock movement per raw-material line.
func recordMovements(tx *gorm.DB, p *models.Purchase) error {
	for i := range p.Items {
		item := &p.Items[i]
		if item.RawMaterialID == nil {
			continue
		}
		mv := models.InventoryMovement{
			DateTime:       p.InvoiceDate,
			ItemType:       models.ItemTypeRawMaterial,
			ItemID:         *item.RawMaterialID,
			QuantityChange: item.Quantity,
			Unit:           item.Unit,
			CostPerUnit:    &item.PricePerUnit,
			TotalCost:      &item.LineTotal,
			ReferenceType:  models.RefTypePurchase,
			ReferenceID:    &p.ID,
		}
		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
	}
	return nil
}

func clearMovements(tx *gorm.DB, purchaseID uuid.UUID) error {
	return tx.Where("reference_type = ? AND reference_id = ?", models.RefTypePurchase, purchaseID).
		Delete(&models.InventoryMovement{}).Error
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		invoiceDate, err := web.ParseDate("invoice_date", body.InvoiceDate)
		if err != nil {
			return err
		}

		var purchase models.Purchase
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var vendor models.Vendor
			if err := tx.First(&vendor, "id = ?", body.VendorID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
			}

			items, total, err := buildItems(tx, body.Items)
			if err != nil {
				return err
			}
			paid, balance := ComputePayment(total, body.AmountCash, body.AmountUPI, body.AmountCard, body.AmountCredit)

			purchase = models.Purchase{
				InvoiceNumber:    body.InvoiceNumber,
				InvoiceDate:      invoiceDate,
				VendorID:         body.VendorID,
				PurchaseCategory: body.PurchaseCategory,
				TotalAmount:      total,
				AmountCash:       body.AmountCash,
				AmountUPI:        body.AmountUPI,
				AmountCard:       body.AmountCard,
				AmountCredit:     body.AmountCredit,
				TotalPaid:        paid,
				BalanceDue:       balance,
				Notes:            body.Notes,
				Items:            items,
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}
			return recordMovements(tx, &purchase)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("purchase", "create", err, logrus.Fields{"vendor_id": body.VendorID})
			return fiber.NewError(fiber.StatusInternalServerError, "could not create purchase")
		}
		return c.Status(fiber.StatusCreated).JSON(purchase)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.Purchase{}).Preload("Vendor").Preload("Items").Preload("Items.RawMaterial")

		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		if from != nil {
			q = q.Where("invoice_date >= ?", *from)
		}
		if to != nil {
			q = q.Where("invoice_date <= ?", *to)
		}
		vendorID, err := web.UUIDQuery(c, "vendor_id")
		if err != nil {
			return err
		}
		if vendorID != nil {
			q = q.Where("vendor_id = ?", *vendorID)
		}
		if cat := c.Query("purchase_category"); cat != "" {
			q = q.Where("purchase_category = ?", cat)
		}

		var purchases []models.Purchase
		if err := q.Order("invoice_date DESC, created_at DESC").Offset(offset).Limit(limit).Find(&purchases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list purchases")
		}
		return c.JSON(purchases)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var purchase models.Purchase
		if err := database.DB.Preload("Vendor").Preload("Items").Preload("Items.RawMaterial").
			First(&purchase, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "purchase not found")
		}
		return c.JSON(purchase)
	}
}

// UpdateHandler replaces the invoice wholesale: old items and their stock
// movements go, the new payload is applied as if created fresh.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body PurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		invoiceDate, err := web.ParseDate("invoice_date", body.InvoiceDate)
		if err != nil {
			return err
		}

		var purchase models.Purchase
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&purchase, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "purchase not found")
			}
			if err := clearMovements(tx, purchase.ID); err != nil {
				return err
			}
			if err := tx.Where("purchase_id = ?", purchase.ID).Delete(&models.PurchaseItem{}).Error; err != nil {
				return err
			}

			items, total, err := buildItems(tx, body.Items)
			if err != nil {
				return err
			}
			paid, balance := ComputePayment(total, body.AmountCash, body.AmountUPI, body.AmountCard, body.AmountCredit)

			purchase.InvoiceNumber = body.InvoiceNumber
			purchase.InvoiceDate = invoiceDate
			purchase.VendorID = body.VendorID
			purchase.PurchaseCategory = body.PurchaseCategory
			purchase.TotalAmount = total
			purchase.AmountCash = body.AmountCash
			purchase.AmountUPI = body.AmountUPI
			purchase.AmountCard = body.AmountCard
			purchase.AmountCredit = body.AmountCredit
			purchase.TotalPaid = paid
			purchase.BalanceDue = balance
			purchase.Notes = body.Notes
			purchase.Items = items

			if err := tx.Save(&purchase).Error; err != nil {
				return err
			}
			return recordMovements(tx, &purchase)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("purchase", "update", err, logrus.Fields{"purchase_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not update purchase")
		}
		return c.JSON(purchase)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var purchase models.Purchase
			if err := tx.First(&purchase, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "purchase not found")
			}
			if err := clearMovements(tx, purchase.ID); err != nil {
				return err
			}
			if err := tx.Where("purchase_id = ?", purchase.ID).Delete(&models.PurchaseItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&purchase).Error
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("purchase", "delete", err, logrus.Fields{"purchase_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete purchase")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
