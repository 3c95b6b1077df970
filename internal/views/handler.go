// Package views exposes read-only aggregations: current stock, party
// balances and GST summaries. Each endpoint computes over the base tables so
// the figures are always live.
package views

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type rawMaterialStock struct {
	RawMaterialID uuid.UUID        `json:"raw_material_id"`
	Name          string           `json:"name"`
	Unit          string           `json:"unit"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level"`
	BelowReorder  bool             `json:"below_reorder"`
}

// RawMaterialStockHandler sums the movement ledger per raw material.
func RawMaterialStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []rawMaterialStock
		err := database.DB.Model(&models.RawMaterial{}).
			Select(`raw_materials.id AS raw_material_id,
				raw_materials.name,
				raw_materials.unit,
				raw_materials.reorder_level,
				COALESCE(SUM(m.quantity_change), 0) AS current_stock`).
			Joins(`LEFT JOIN inventory_movements m
				ON m.item_type = ? AND m.item_id = raw_materials.id`, models.ItemTypeRawMaterial).
			Where("raw_materials.is_active = ?", true).
			Group("raw_materials.id, raw_materials.name, raw_materials.unit, raw_materials.reorder_level").
			Order("raw_materials.name").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not compute raw material stock")
		}
		for i := range rows {
			r := &rows[i]
			r.BelowReorder = r.ReorderLevel != nil && r.CurrentStock.LessThan(*r.ReorderLevel)
		}
		return c.JSON(rows)
	}
}

type variantStock struct {
	ProductVariantID uuid.UUID       `json:"product_variant_id"`
	ProductName      string          `json:"product_name"`
	VariantName      string          `json:"variant_name"`
	SKU              string          `json:"sku"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
}

// VariantStockHandler sums the movement ledger per product variant.
func VariantStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []variantStock
		err := database.DB.Model(&models.ProductVariant{}).
			Select(`product_variants.id AS product_variant_id,
				products.name AS product_name,
				product_variants.variant_name,
				product_variants.sku,
				COALESCE(SUM(m.quantity_change), 0) AS current_stock`).
			Joins("JOIN products ON products.id = product_variants.product_id").
			Joins(`LEFT JOIN inventory_movements m
				ON m.item_type = ? AND m.item_id = product_variants.id`, models.ItemTypeProductVariant).
			Where("product_variants.is_active = ?", true).
			Group("product_variants.id, products.name, product_variants.variant_name, product_variants.sku").
			Order("product_variants.sku").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not compute variant stock")
		}
		return c.JSON(rows)
	}
}

type vendorBalance struct {
	VendorID        uuid.UUID       `json:"vendor_id"`
	Name            string          `json:"name"`
	PurchaseBalance decimal.Decimal `json:"purchase_balance"`
	ExpenseBalance  decimal.Decimal `json:"expense_balance"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
}

// VendorBalancesHandler lists what the business still owes each vendor, from
// both unpaid purchase invoices and credit expenses.
func VendorBalancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []vendorBalance
		err := database.DB.Model(&models.Vendor{}).
			Select(`vendors.id AS vendor_id,
				vendors.name,
				COALESCE((SELECT SUM(p.balance_due) FROM purchases p WHERE p.vendor_id = vendors.id), 0) AS purchase_balance,
				COALESCE((SELECT SUM(e.balance_due) FROM expenses e WHERE e.vendor_id = vendors.id), 0) AS expense_balance`).
			Where("vendors.is_active = ?", true).
			Order("vendors.name").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not compute vendor balances")
		}
		out := rows[:0]
		for _, r := range rows {
			r.TotalPayable = r.PurchaseBalance.Add(r.ExpenseBalance)
			if c.QueryBool("nonzero_only", true) && r.TotalPayable.IsZero() {
				continue
			}
			out = append(out, r)
		}
		return c.JSON(out)
	}
}

type customerBalance struct {
	CustomerID      uuid.UUID       `json:"customer_id"`
	Name            string          `json:"name"`
	SalesBalance    decimal.Decimal `json:"sales_balance"`
	OilCakeUnpaid   decimal.Decimal `json:"oil_cake_unpaid"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
}

// CustomerBalancesHandler lists what each customer owes, from credit invoices
// and unpaid oil cake lots.
func CustomerBalancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []customerBalance
		err := database.DB.Model(&models.Customer{}).
			Select(`customers.id AS customer_id,
				customers.name,
				COALESCE((SELECT SUM(s.balance_due) FROM sales s WHERE s.customer_id = customers.id), 0) AS sales_balance,
				COALESCE((SELECT SUM(o.total) FROM oil_cake_sales o WHERE o.customer_id = customers.id AND o.is_paid = false), 0) AS oil_cake_unpaid`).
			Where("customers.is_active = ?", true).
			Order("customers.name").
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not compute customer balances")
		}
		out := rows[:0]
		for _, r := range rows {
			r.TotalReceivable = r.SalesBalance.Add(r.OilCakeUnpaid)
			if c.QueryBool("nonzero_only", true) && r.TotalReceivable.IsZero() {
				continue
			}
			out = append(out, r)
		}
		return c.JSON(out)
	}
}

type gstSummaryRow struct {
	GSTRate      decimal.Decimal `json:"gst_rate"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
}

func gstSummary(c *fiber.Ctx, base func() *gorm.DB, rateCol, taxableCol, taxCol string) error {
	var rows []gstSummaryRow
	err := base().
		Select(rateCol + ` AS gst_rate,
			COALESCE(SUM(` + taxableCol + `), 0) AS taxable_value,
			COALESCE(SUM(` + taxCol + `), 0) AS tax_amount`).
		Group(rateCol).Order(rateCol).Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not compute GST summary")
	}
	return c.JSON(rows)
}

// SalesGSTHandler groups sale lines by rate over an optional date window.
func SalesGSTHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		base := func() *gorm.DB {
			q := database.DB.Model(&models.SaleItem{}).
				Joins("JOIN sales ON sales.id = sale_items.sale_id")
			if from != nil {
				q = q.Where("sales.invoice_date >= ?", *from)
			}
			if to != nil {
				q = q.Where("sales.invoice_date <= ?", *to)
			}
			return q
		}
		return gstSummary(c, base, "sale_items.gst_rate", "sale_items.taxable_value", "sale_items.gst_amount")
	}
}

// PurchasesGSTHandler groups purchase lines by rate over an optional window.
func PurchasesGSTHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		base := func() *gorm.DB {
			q := database.DB.Model(&models.PurchaseItem{}).
				Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id")
			if from != nil {
				q = q.Where("purchases.invoice_date >= ?", *from)
			}
			if to != nil {
				q = q.Where("purchases.invoice_date <= ?", *to)
			}
			return q
		}
		return gstSummary(c, base, "purchase_items.gst_rate", "purchase_items.taxable_value", "purchase_items.gst_amount")
	}
}
