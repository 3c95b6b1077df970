package report

import (
	"strconv"
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func sum(q *gorm.DB, expr string) decimal.Decimal {
	var out decimal.NullDecimal
	q.Select("COALESCE(SUM(" + expr + "), 0)").Scan(&out)
	if !out.Valid {
		return decimal.Zero
	}
	return out.Decimal
}

// DailyHandler summarizes one trading day: sales, purchases, expenses, oil
// cake and the drawer reconciliation if it was posted.
func DailyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		datePtr, err := web.DateQuery(c, "date")
		if err != nil {
			return err
		}
		date := time.Now().UTC().Truncate(24 * time.Hour)
		if datePtr != nil {
			date = *datePtr
		}

		db := database.DB
		sales := func() *gorm.DB { return db.Model(&models.Sale{}).Where("invoice_date = ?", date) }

		var salesCount int64
		sales().Count(&salesCount)

		var counter *models.DayCounter
		var dc models.DayCounter
		if err := db.Where("date = ?", date).First(&dc).Error; err == nil {
			counter = &dc
		}

		return c.JSON(fiber.Map{
			"date": date.Format(web.DateLayout),
			"sales": fiber.Map{
				"count":       salesCount,
				"net_amount":  sum(sales(), "net_amount"),
				"tax_amount":  sum(sales(), "tax_amount"),
				"cash":        sum(sales(), "amount_cash"),
				"upi":         sum(sales(), "amount_upi"),
				"card":        sum(sales(), "amount_card"),
				"credit":      sum(sales(), "amount_credit"),
				"balance_due": sum(sales(), "balance_due"),
			},
			"oil_cake_sales": sum(db.Model(&models.OilCakeSale{}).Where("date = ?", date), "total"),
			"purchases":      sum(db.Model(&models.Purchase{}).Where("invoice_date = ?", date), "total_amount"),
			"expenses":       sum(db.Model(&models.Expense{}).Where("date = ?", date), "total_amount"),
			"day_counter":    counter,
		})
	}
}

type dailyPoint struct {
	Day   time.Time       `json:"-"`
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// monthRange resolves year/month query params (defaulting to the current
// month) into [first day, first day of next month).
func monthRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// MonthlyHandler returns the month's totals plus a per-day sales series.
func MonthlyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := monthRange(c)
		if err != nil {
			return err
		}

		db := database.DB
		inMonth := func(model interface{}, col string) *gorm.DB {
			return db.Model(model).Where(col+" >= ? AND "+col+" < ?", start, end)
		}

		var series []dailyPoint
		if err := inMonth(&models.Sale{}, "invoice_date").
			Select("invoice_date AS day, COALESCE(SUM(net_amount), 0) AS total, COUNT(*) AS count").
			Group("invoice_date").Order("invoice_date").Scan(&series).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not build monthly report")
		}
		for i := range series {
			series[i].Date = series[i].Day.Format(web.DateLayout)
		}

		return c.JSON(fiber.Map{
			"from_date":      start.Format(web.DateLayout),
			"to_date":        end.AddDate(0, 0, -1).Format(web.DateLayout),
			"sales_total":    sum(inMonth(&models.Sale{}, "invoice_date"), "net_amount"),
			"tax_total":      sum(inMonth(&models.Sale{}, "invoice_date"), "tax_amount"),
			"oil_cake_total": sum(inMonth(&models.OilCakeSale{}, "date"), "total"),
			"purchase_total": sum(inMonth(&models.Purchase{}, "invoice_date"), "total_amount"),
			"expense_total":  sum(inMonth(&models.Expense{}, "date"), "total_amount"),
			"daily_sales":    series,
		})
	}
}

type rateBucket struct {
	GSTRate      decimal.Decimal `json:"gst_rate"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
}

// GSTR1Handler groups outward supplies (sales) by GST rate for the filing
// period. Per-invoice CGST/SGST/IGST splits are apportioned over the line
// buckets by the invoice's interstate flag, which the schema encodes as IGST
// being non-zero.
func GSTR1Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := monthRange(c)
		if err != nil {
			return err
		}

		var buckets []rateBucket
		err = database.DB.Model(&models.SaleItem{}).
			Joins("JOIN sales ON sales.id = sale_items.sale_id").
			Where("sales.invoice_date >= ? AND sales.invoice_date < ?", start, end).
			Select(`sale_items.gst_rate AS gst_rate,
				COALESCE(SUM(sale_items.taxable_value), 0) AS taxable_value,
				COALESCE(SUM(CASE WHEN sales.igst_amount = 0 THEN sale_items.gst_amount / 2 ELSE 0 END), 0) AS cgst,
				COALESCE(SUM(CASE WHEN sales.igst_amount = 0 THEN sale_items.gst_amount / 2 ELSE 0 END), 0) AS sgst,
				COALESCE(SUM(CASE WHEN sales.igst_amount <> 0 THEN sale_items.gst_amount ELSE 0 END), 0) AS igst,
				COALESCE(SUM(sale_items.gst_amount), 0) AS tax_amount`).
			Group("sale_items.gst_rate").Order("sale_items.gst_rate").Scan(&buckets).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not build GSTR-1 report")
		}

		totalTaxable, totalTax := decimal.Zero, decimal.Zero
		for _, b := range buckets {
			totalTaxable = totalTaxable.Add(b.TaxableValue)
			totalTax = totalTax.Add(b.TaxAmount)
		}

		return c.JSON(fiber.Map{
			"period":        start.Format("2006-01"),
			"rate_buckets":  buckets,
			"total_taxable": totalTaxable,
			"total_tax":     totalTax,
		})
	}
}

// GSTR3BHandler summarizes the period: outward tax collected on sales against
// inward tax paid on purchases (input credit).
func GSTR3BHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := monthRange(c)
		if err != nil {
			return err
		}

		db := database.DB
		sales := func() *gorm.DB {
			return db.Model(&models.Sale{}).Where("invoice_date >= ? AND invoice_date < ?", start, end)
		}
		purchaseItems := func() *gorm.DB {
			return db.Model(&models.PurchaseItem{}).
				Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
				Where("purchases.invoice_date >= ? AND purchases.invoice_date < ?", start, end)
		}

		outwardTaxable := sum(sales(), "total_amount")
		outwardTax := sum(sales(), "tax_amount")
		inwardTaxable := sum(purchaseItems(), "purchase_items.taxable_value")
		inwardTax := sum(purchaseItems(), "purchase_items.gst_amount")

		return c.JSON(fiber.Map{
			"period": start.Format("2006-01"),
			"outward_supplies": fiber.Map{
				"taxable_value": outwardTaxable,
				"cgst":          sum(sales(), "cgst_amount"),
				"sgst":          sum(sales(), "sgst_amount"),
				"igst":          sum(sales(), "igst_amount"),
				"tax_amount":    outwardTax,
			},
			"inward_supplies": fiber.Map{
				"taxable_value": inwardTaxable,
				"tax_amount":    inwardTax,
			},
			"net_tax_payable": outwardTax.Sub(inwardTax),
		})
	}
}
