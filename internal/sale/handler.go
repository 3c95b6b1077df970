package sale

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
	ProductVariantID uuid.UUID        `json:"product_variant_id" validate:"required"`
	Quantity         decimal.Decimal  `json:"quantity" validate:"required"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
}

type SaleRequest struct {
	InvoiceNumber    string          `json:"invoice_number"`
	InvoiceDate      string          `json:"invoice_date" validate:"required"`
	InvoiceTime      string          `json:"invoice_time"`
	CustomerID       *uuid.UUID      `json:"customer_id"`
	Channel          string          `json:"channel" validate:"omitempty,oneof=store online"`
	Employee         string          `json:"employee"`
	PartnerRefID     string          `json:"partner_ref_id"`
	Items            []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	Charges          decimal.Decimal `json:"charges"`
	ChargesDiscount  decimal.Decimal `json:"charges_discount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	RoundOff         decimal.Decimal `json:"round_off"`
	Interstate       bool            `json:"interstate"`
	AmountCash       decimal.Decimal `json:"amount_cash"`
	AmountUPI        decimal.Decimal `json:"amount_upi"`
	AmountCard       decimal.Decimal `json:"amount_card"`
	AmountCredit     decimal.Decimal `json:"amount_credit"`
	PaymentRefMode   string          `json:"payment_ref_mode"`
	TransactionRefID string          `json:"transaction_ref_id"`
	Status           string          `json:"status"`
	Remarks          string          `json:"remarks"`
}

// buildItems validates variants, resolves prices and computes per-line GST
// from the parent product's HSN code.
func buildItems(tx *gorm.DB, reqs []ItemRequest) (items []models.SaleItem, subtotal, tax decimal.Decimal, err error) {
	subtotal, tax = decimal.Zero, decimal.Zero
	for _, in := range reqs {
		if !in.Quantity.IsPositive() {
			return nil, decimal.Zero, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "item quantity must be positive")
		}

		var variant models.ProductVariant
		if err := tx.Preload("Product").First(&variant, "id = ?", in.ProductVariantID).Error; err != nil {
			return nil, decimal.Zero, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, "product variant not found")
		}

		price, err := ResolvePrice(&variant, in.UnitPrice)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fiber.NewError(fiber.StatusBadRequest, variant.SKU+": "+err.Error())
		}

		rate := decimal.Zero
		if variant.Product != nil && variant.Product.HSNCode != "" {
			rate = gst.RateForHSN(variant.Product.HSNCode)
		}

		lt := ComputeLine(in.Quantity, price, rate)
		items = append(items, models.SaleItem{
			ProductVariantID: in.ProductVariantID,
			Quantity:         in.Quantity,
			UnitPrice:        price,
			LineTotal:        lt.LineTotal,
			GSTRate:          rate,
			GSTAmount:        lt.GSTAmount,
			TaxableValue:     lt.TaxableValue,
		})
		// the invoice subtotal stays pre-tax; line totals carry the tax
		subtotal = subtotal.Add(lt.TaxableValue)
		tax = tax.Add(lt.GSTAmount)
	}
	return items, subtotal, tax, nil
}

// recordMovements writes one -OUT stock movement per line.
func recordMovements(tx *gorm.DB, s *models.Sale) error {
	for i := range s.Items {
		item := &s.Items[i]
		mv := models.InventoryMovement{
			DateTime:       s.InvoiceDate,
			ItemType:       models.ItemTypeProductVariant,
			ItemID:         item.ProductVariantID,
			QuantityChange: item.Quantity.Neg(),
			Unit:           "Unit",
			ReferenceType:  models.RefTypeSale,
			ReferenceID:    &s.ID,
		}
		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
	}
	return nil
}

func clearMovements(tx *gorm.DB, saleID uuid.UUID) error {
	return tx.Where("reference_type = ? AND reference_id = ?", models.RefTypeSale, saleID).
		Delete(&models.InventoryMovement{}).Error
}

func applyTotals(s *models.Sale, body *SaleRequest, subtotal, tax decimal.Decimal) {
	split := gst.Split(decimal.Zero, tax, body.Interstate)
	net := ComputeNet(subtotal, body.Charges, body.ChargesDiscount, body.DiscountAmount, tax, body.RoundOff)
	paid, balance := ComputePayment(net, body.AmountCash, body.AmountUPI, body.AmountCard)

	s.TotalAmount = subtotal
	s.Charges = body.Charges
	s.ChargesDiscount = body.ChargesDiscount
	s.DiscountAmount = body.DiscountAmount
	s.CGSTAmount = split.CGST
	s.SGSTAmount = split.SGST
	s.IGSTAmount = split.IGST
	s.TaxAmount = tax
	s.RoundOff = body.RoundOff
	s.NetAmount = net
	s.AmountCash = body.AmountCash
	s.AmountUPI = body.AmountUPI
	s.AmountCard = body.AmountCard
	s.AmountCredit = body.AmountCredit
	s.TotalPaid = paid
	s.BalanceDue = balance
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaleRequest
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

		var sale models.Sale
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if body.CustomerID != nil {
				var count int64
				tx.Model(&models.Customer{}).Where("id = ?", *body.CustomerID).Count(&count)
				if count == 0 {
					return fiber.NewError(fiber.StatusBadRequest, "customer not found")
				}
			}

			items, subtotal, tax, err := buildItems(tx, body.Items)
			if err != nil {
				return err
			}

			status := body.Status
			if status == "" {
				status = "Sales"
			}
			sale = models.Sale{
				InvoiceNumber:    body.InvoiceNumber,
				InvoiceDate:      invoiceDate,
				InvoiceTime:      body.InvoiceTime,
				CustomerID:       body.CustomerID,
				Channel:          body.Channel,
				Employee:         body.Employee,
				PartnerRefID:     body.PartnerRefID,
				PaymentRefMode:   body.PaymentRefMode,
				TransactionRefID: body.TransactionRefID,
				Status:           status,
				Remarks:          body.Remarks,
				Items:            items,
			}
			applyTotals(&sale, &body, subtotal, tax)

			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			return recordMovements(tx, &sale)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("sale", "create", err, logrus.Fields{"invoice": body.InvoiceNumber})
			return fiber.NewError(fiber.StatusInternalServerError, "could not create sale")
		}
		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.Sale{}).Preload("Customer").Preload("Items").Preload("Items.ProductVariant")

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
		customerID, err := web.UUIDQuery(c, "customer_id")
		if err != nil {
			return err
		}
		if customerID != nil {
			q = q.Where("customer_id = ?", *customerID)
		}
		if channel := c.Query("channel"); channel != "" {
			q = q.Where("channel = ?", channel)
		}
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var sales []models.Sale
		if err := q.Order("invoice_date DESC, created_at DESC").Offset(offset).Limit(limit).Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list sales")
		}
		return c.JSON(sales)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var sale models.Sale
		if err := database.DB.Preload("Customer").Preload("Items").Preload("Items.ProductVariant").
			First(&sale, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "sale not found")
		}
		return c.JSON(sale)
	}
}

// UpdateHandler replaces the invoice wholesale, the same contract as purchase
// updates: old lines and stock movements are dropped and rebuilt.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body SaleRequest
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

		var sale models.Sale
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&sale, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "sale not found")
			}
			if err := clearMovements(tx, sale.ID); err != nil {
				return err
			}
			if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
				return err
			}

			items, subtotal, tax, err := buildItems(tx, body.Items)
			if err != nil {
				return err
			}

			sale.InvoiceNumber = body.InvoiceNumber
			sale.InvoiceDate = invoiceDate
			sale.InvoiceTime = body.InvoiceTime
			sale.CustomerID = body.CustomerID
			sale.Channel = body.Channel
			sale.Employee = body.Employee
			sale.PartnerRefID = body.PartnerRefID
			sale.PaymentRefMode = body.PaymentRefMode
			sale.TransactionRefID = body.TransactionRefID
			if body.Status != "" {
				sale.Status = body.Status
			}
			sale.Remarks = body.Remarks
			sale.Items = items
			applyTotals(&sale, &body, subtotal, tax)

			if err := tx.Save(&sale).Error; err != nil {
				return err
			}
			return recordMovements(tx, &sale)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("sale", "update", err, logrus.Fields{"sale_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not update sale")
		}
		return c.JSON(sale)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var sale models.Sale
			if err := tx.First(&sale, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "sale not found")
			}
			if err := clearMovements(tx, sale.ID); err != nil {
				return err
			}
			if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&sale).Error
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("sale", "delete", err, logrus.Fields{"sale_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete sale")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
