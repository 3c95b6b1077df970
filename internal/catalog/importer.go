package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/logging"
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Spreadsheets come from several store systems, so header names are matched
// loosely: "Product Name", "product", "item name" all map to the same field.
var headerAliases = map[string]string{
	"product_name": "product_name",
	"product":      "product_name",
	"item_name":    "product_name",
	"name":         "product_name",

	"product_code": "product_code",
	"code":         "product_code",
	"item_code":    "product_code",

	"category":      "category",
	"category_name": "category",

	"base_unit": "base_unit",
	"uom":       "base_unit",
	"unit":      "base_unit",

	"hsn":      "hsn_code",
	"hsn_code": "hsn_code",

	"variant_name": "variant_name",
	"variant":      "variant_name",
	"size":         "variant_name",
	"pack_size":    "variant_name",

	"sku":      "sku",
	"sku_code": "sku",

	"barcode": "barcode",
	"ean":     "barcode",

	"mrp": "mrp",

	"selling_price": "selling_price",
	"sale_price":    "selling_price",
	"price":         "selling_price",

	"cost_price":     "cost_price",
	"purchase_price": "cost_price",

	"channel": "channel",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_", ".", "").Replace(h)
	return h
}

// NormalizeUnit maps the unit spellings seen in vendor sheets onto the three
// base units used by the catalog.
func NormalizeUnit(u string) string {
	switch strings.ToLower(strings.TrimSpace(u)) {
	case "ml", "l", "ltr", "litre", "liter", "lt":
		return "L"
	case "g", "gm", "gram", "grams", "kg", "kgs", "kilogram":
		return "kg"
	case "pc", "pcs", "piece", "pieces", "btl", "bottle", "unit", "units", "nos", "no":
		return "Unit"
	default:
		return "Unit"
	}
}

var quantityRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(ml|ltr|litre|liter|lt|l|kg|kgs|gm|g|gram|grams|pcs|pc|piece|btl|unit)?`)

// ExtractMultiplier derives the base-unit multiplier from a variant name such
// as "500 ml" or "1 L". Gram and millilitre quantities are scaled down when
// the base unit is kg or L. Returns 1 when nothing usable is found.
func ExtractMultiplier(variantName, baseUnit string) decimal.Decimal {
	m := quantityRe.FindStringSubmatch(variantName)
	if m == nil || m[1] == "" {
		return decimal.NewFromInt(1)
	}
	qty, err := decimal.NewFromString(m[1])
	if err != nil || !qty.IsPositive() {
		return decimal.NewFromInt(1)
	}

	unit := strings.ToLower(m[2])
	thousand := decimal.NewFromInt(1000)
	switch baseUnit {
	case "L":
		if unit == "ml" {
			return qty.Div(thousand)
		}
	case "kg":
		if unit == "g" || unit == "gm" || unit == "gram" || unit == "grams" {
			return qty.Div(thousand)
		}
	}
	return qty
}

type importRow struct {
	ProductName  string
	ProductCode  string
	Category     string
	BaseUnit     string
	HSNCode      string
	VariantName  string
	SKU          string
	Barcode      string
	MRP          *decimal.Decimal
	SellingPrice *decimal.Decimal
	CostPrice    *decimal.Decimal
	Channel      string
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportSummary struct {
	RowsProcessed   int              `json:"rows_processed"`
	ProductsCreated int              `json:"products_created"`
	ProductsUpdated int              `json:"products_updated"`
	VariantsCreated int              `json:"variants_created"`
	VariantsUpdated int              `json:"variants_updated"`
	Errors          []ImportRowError `json:"errors"`
}

func parseRow(header map[int]string, cells []string) importRow {
	var row importRow
	get := func(field string) string {
		for idx, f := range header {
			if f == field && idx < len(cells) {
				return strings.TrimSpace(cells[idx])
			}
		}
		return ""
	}
	parseDec := func(field string) *decimal.Decimal {
		s := strings.TrimSpace(strings.TrimPrefix(get(field), "₹"))
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		return &d
	}

	row.ProductName = get("product_name")
	row.ProductCode = get("product_code")
	row.Category = get("category")
	row.BaseUnit = get("base_unit")
	row.HSNCode = get("hsn_code")
	row.VariantName = get("variant_name")
	row.SKU = get("sku")
	row.Barcode = get("barcode")
	row.MRP = parseDec("mrp")
	row.SellingPrice = parseDec("selling_price")
	row.CostPrice = parseDec("cost_price")
	row.Channel = get("channel")
	return row
}

// ImportProductsHandler loads a product/variant sheet (xlsx) and upserts the
// catalog: products keyed by product_code, variants keyed by sku. Bad rows are
// reported individually instead of failing the whole upload.
func ImportProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}
		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not open uploaded file")
		}
		defer f.Close()

		wb, err := excelize.OpenReader(f)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file must be a valid xlsx workbook")
		}
		defer wb.Close()

		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "workbook has no sheets")
		}
		rows, err := wb.GetRows(sheets[0])
		if err != nil || len(rows) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "sheet has no data rows")
		}

		header := make(map[int]string)
		for i, cell := range rows[0] {
			if field, ok := headerAliases[normalizeHeader(cell)]; ok {
				header[i] = field
			}
		}
		if len(header) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no recognizable columns in header row")
		}

		summary := ImportSummary{Errors: []ImportRowError{}}
		for i, cells := range rows[1:] {
			rowNum := i + 2 // 1-based, after the header
			row := parseRow(header, cells)
			if row.ProductName == "" && row.SKU == "" {
				continue // blank row
			}
			summary.RowsProcessed++

			if err := importOne(row, &summary); err != nil {
				summary.Errors = append(summary.Errors, ImportRowError{Row: rowNum, Message: err.Error()})
			}
		}

		logging.L().WithFields(logrus.Fields{
			"rows":     summary.RowsProcessed,
			"errors":   len(summary.Errors),
			"products": summary.ProductsCreated,
			"variants": summary.VariantsCreated,
		}).Info("product import finished")

		return c.JSON(summary)
	}
}

func importOne(row importRow, summary *ImportSummary) error {
	if row.ProductName == "" {
		return fmt.Errorf("missing product name")
	}
	if row.ProductCode == "" {
		row.ProductCode = strings.ToUpper(strings.NewReplacer(" ", "-").Replace(row.ProductName))
	}
	baseUnit := NormalizeUnit(row.BaseUnit)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var categoryID *uuid.UUID
		if row.Category != "" {
			var cat models.ProductCategory
			err := tx.Where("name = ?", row.Category).First(&cat).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cat = models.ProductCategory{Name: row.Category}
				if err := tx.Create(&cat).Error; err != nil {
					return fmt.Errorf("could not create category %q", row.Category)
				}
			} else if err != nil {
				return err
			}
			categoryID = &cat.ID
		}

		var product models.Product
		err := tx.Where("product_code = ?", row.ProductCode).First(&product).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			product = models.Product{
				Name:        row.ProductName,
				ProductCode: row.ProductCode,
				CategoryID:  categoryID,
				BaseUnit:    baseUnit,
				HSNCode:     row.HSNCode,
				IsActive:    true,
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("could not create product %q", row.ProductCode)
			}
			summary.ProductsCreated++
		case err != nil:
			return err
		default:
			product.Name = row.ProductName
			if categoryID != nil {
				product.CategoryID = categoryID
			}
			if row.HSNCode != "" {
				product.HSNCode = row.HSNCode
			}
			if err := tx.Save(&product).Error; err != nil {
				return fmt.Errorf("could not update product %q", row.ProductCode)
			}
			summary.ProductsUpdated++
		}

		variantName := row.VariantName
		if variantName == "" {
			variantName = "Default"
		}
		sku := row.SKU
		if sku == "" {
			sku = product.ProductCode + "-" + strings.ToUpper(strings.NewReplacer(" ", "").Replace(variantName))
		}
		multiplier := ExtractMultiplier(variantName, baseUnit)

		var variant models.ProductVariant
		err = tx.Where("sku = ?", sku).First(&variant).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			variant = models.ProductVariant{
				ProductID:    product.ID,
				VariantName:  variantName,
				Multiplier:   multiplier,
				SKU:          sku,
				Barcode:      row.Barcode,
				MRP:          row.MRP,
				SellingPrice: row.SellingPrice,
				CostPrice:    row.CostPrice,
				Channel:      row.Channel,
				IsActive:     true,
			}
			if err := tx.Create(&variant).Error; err != nil {
				return fmt.Errorf("could not create variant %q", sku)
			}
			summary.VariantsCreated++
		case err != nil:
			return err
		default:
			variant.VariantName = variantName
			variant.Multiplier = multiplier
			if row.Barcode != "" {
				variant.Barcode = row.Barcode
			}
			if row.MRP != nil {
				variant.MRP = row.MRP
			}
			if row.SellingPrice != nil {
				variant.SellingPrice = row.SellingPrice
			}
			if row.CostPrice != nil {
				variant.CostPrice = row.CostPrice
			}
			if row.Channel != "" {
				variant.Channel = row.Channel
			}
			if err := tx.Save(&variant).Error; err != nil {
				return fmt.Errorf("could not update variant %q", sku)
			}
			summary.VariantsUpdated++
		}
		return nil
	})
}
