package dashboard

import (
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func sumColumn(q *gorm.DB, expr string) decimal.Decimal {
	var out decimal.NullDecimal
	q.Select("COALESCE(SUM(" + expr + "), 0)").Scan(&out)
	if !out.Valid {
		return decimal.Zero
	}
	return out.Decimal
}

// KPIHandler answers GET /dashboard/kpis?from_date&to_date. The period
// defaults to the current calendar month; growth compares against the
// preceding period of equal length.
func KPIHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if from == nil {
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			from = &monthStart
		}
		if to == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			to = &today
		}
		if to.Before(*from) {
			return fiber.NewError(fiber.StatusBadRequest, "to_date must not precede from_date")
		}

		db := database.DB
		sales := func() *gorm.DB {
			return db.Model(&models.Sale{}).Where("invoice_date BETWEEN ? AND ?", *from, *to)
		}

		var a Aggregates
		a.SalesTotal = sumColumn(sales(), "net_amount")
		sales().Count(&a.SalesCount)
		a.DiscountTotal = sumColumn(sales(), "discount_amount + charges_discount")
		a.CreditSales = sumColumn(sales(), "amount_credit")
		a.CashCollected = sumColumn(sales(), "amount_cash")
		a.UPICollected = sumColumn(sales(), "amount_upi")
		a.CardCollected = sumColumn(sales(), "amount_card")

		a.OilCakeRevenue = sumColumn(
			db.Model(&models.OilCakeSale{}).Where("date BETWEEN ? AND ?", *from, *to), "total")
		a.PurchaseTotal = sumColumn(
			db.Model(&models.Purchase{}).Where("invoice_date BETWEEN ? AND ?", *from, *to), "total_amount")
		a.ExpenseTotal = sumColumn(
			db.Model(&models.Expense{}).Where("date BETWEEN ? AND ?", *from, *to), "total_amount")
		a.PurchasePaid = sumColumn(
			db.Model(&models.Purchase{}).Where("invoice_date BETWEEN ? AND ?", *from, *to),
			"amount_cash + amount_upi + amount_card")
		a.ExpensePaid = sumColumn(
			db.Model(&models.Expense{}).Where("date BETWEEN ? AND ?", *from, *to),
			"amount_cash + amount_upi + amount_card")

		// COGS from recorded cost prices; fall back to the rough 70%-of-purchases
		// estimate when no costs are on file
		a.COGS = sumColumn(
			db.Model(&models.SaleItem{}).
				Joins("JOIN sales ON sales.id = sale_items.sale_id").
				Joins("JOIN product_variants ON product_variants.id = sale_items.product_variant_id").
				Where("sales.invoice_date BETWEEN ? AND ?", *from, *to),
			"sale_items.quantity * COALESCE(product_variants.cost_price, 0)")
		if a.COGS.IsZero() {
			a.COGS = a.PurchaseTotal.Mul(decimal.NewFromFloat(0.7)).Round(2)
		}

		// outstanding balances are point-in-time, not period-bound
		a.Receivables = sumColumn(db.Model(&models.Sale{}).Where("balance_due > 0"), "balance_due")
		a.Payables = sumColumn(db.Model(&models.Purchase{}).Where("balance_due > 0"), "balance_due").
			Add(sumColumn(db.Model(&models.Expense{}).Where("balance_due > 0"), "balance_due"))

		// preceding period of the same length, ending the day before from_date
		days := int(to.Sub(*from).Hours()/24) + 1
		prevFrom := from.AddDate(0, 0, -days)
		prevTo := from.AddDate(0, 0, -1)
		salesBetween := func(f, t time.Time) decimal.Decimal {
			return sumColumn(db.Model(&models.Sale{}).Where("invoice_date BETWEEN ? AND ?", f, t), "net_amount")
		}
		a.PrevSalesTotal = salesBetween(prevFrom, prevTo)

		// calendar-anchored growth windows (week starts Monday)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		yesterday := today.AddDate(0, 0, -1)
		weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		a.SalesToday = salesBetween(today, today)
		a.SalesYesterday = salesBetween(yesterday, yesterday)
		a.SalesThisWeek = salesBetween(weekStart, today)
		a.SalesLastWeek = salesBetween(weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1))
		a.SalesThisMonth = salesBetween(monthStart, today)
		a.SalesLastMonth = salesBetween(monthStart.AddDate(0, -1, 0), monthStart.AddDate(0, 0, -1))

		k := Compute(a)

		// drawer accuracy from today's counter, when it has been posted
		var cashAccuracy fiber.Map
		var dc models.DayCounter
		if err := db.Where("date = ?", today).First(&dc).Error; err == nil {
			cashAccuracy = fiber.Map{
				"date":                today.Format(web.DateLayout),
				"system_closing_cash": dc.SystemClosingCash,
				"actual_closing_cash": dc.ActualClosingCash,
				"difference":          dc.Difference,
			}
		}

		return c.JSON(fiber.Map{
			"from_date":     from.Format(web.DateLayout),
			"to_date":       to.Format(web.DateLayout),
			"kpis":          k,
			"cash_accuracy": cashAccuracy,
		})
	}
}
