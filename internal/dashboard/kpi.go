package dashboard

import "github.com/shopspring/decimal"

// Aggregates are the raw sums pulled from the database for a period.
type Aggregates struct {
	SalesTotal     decimal.Decimal `json:"sales_total"`
	SalesCount     int64           `json:"sales_count"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
	CreditSales    decimal.Decimal `json:"credit_sales"`
	OilCakeRevenue decimal.Decimal `json:"oil_cake_revenue"`
	PurchaseTotal  decimal.Decimal `json:"purchase_total"`
	ExpenseTotal   decimal.Decimal `json:"expense_total"`
	COGS           decimal.Decimal `json:"cogs"`
	PurchasePaid   decimal.Decimal `json:"purchase_paid"`
	ExpensePaid    decimal.Decimal `json:"expense_paid"`
	Receivables    decimal.Decimal `json:"receivables"`
	Payables       decimal.Decimal `json:"payables"`
	CashCollected  decimal.Decimal `json:"cash_collected"`
	UPICollected   decimal.Decimal `json:"upi_collected"`
	CardCollected  decimal.Decimal `json:"card_collected"`

	// PrevSalesTotal covers the preceding period of equal length, for growth.
	PrevSalesTotal decimal.Decimal `json:"prev_sales_total"`

	// calendar-anchored windows for the growth triple, independent of the
	// selected period
	SalesToday     decimal.Decimal `json:"sales_today"`
	SalesYesterday decimal.Decimal `json:"sales_yesterday"`
	SalesThisWeek  decimal.Decimal `json:"sales_this_week"`
	SalesLastWeek  decimal.Decimal `json:"sales_last_week"`
	SalesThisMonth decimal.Decimal `json:"sales_this_month"`
	SalesLastMonth decimal.Decimal `json:"sales_last_month"`
}

// KPIs are the headline figures derived from the aggregates.
type KPIs struct {
	Aggregates

	Revenue         decimal.Decimal `json:"revenue"` // sales + oil cake
	AvgInvoiceValue decimal.Decimal `json:"avg_invoice_value"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`  // sales - cogs
	NetProfit       decimal.Decimal `json:"net_profit"`    // revenue - purchases - expenses
	NetCashFlow     decimal.Decimal `json:"net_cash_flow"` // cash in - cash out
	// ratio KPIs are presentation values, float precision is fine
	GrossMarginPct    float64  `json:"gross_margin_pct"`
	ExpenseToSalesPct float64  `json:"expense_to_sales_pct"`
	SalesGrowthPct    *float64 `json:"sales_growth_pct"` // nil when no prior-period sales
	SalesGrowthDoDPct *float64 `json:"sales_growth_dod_pct"`
	SalesGrowthWoWPct *float64 `json:"sales_growth_wow_pct"`
	SalesGrowthMoMPct *float64 `json:"sales_growth_mom_pct"`
	DiscountPct       float64  `json:"discount_pct"`
	CreditRatioPct    float64  `json:"credit_ratio_pct"`
	CashSharePct      float64  `json:"cash_share_pct"`
	UPISharePct       float64  `json:"upi_share_pct"`
	CardSharePct      float64  `json:"card_share_pct"`
}

func pct(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole).Round(1).InexactFloat64()
}

// growth returns the percent change from prev to current, nil when there is
// no positive baseline to compare against.
func growth(current, prev decimal.Decimal) *float64 {
	if !prev.IsPositive() {
		return nil
	}
	g := current.Sub(prev).Mul(decimal.NewFromInt(100)).Div(prev).Round(1).InexactFloat64()
	return &g
}

func Compute(a Aggregates) KPIs {
	k := KPIs{Aggregates: a}

	k.Revenue = a.SalesTotal.Add(a.OilCakeRevenue)
	k.GrossProfit = a.SalesTotal.Sub(a.COGS)
	k.NetProfit = k.Revenue.Sub(a.PurchaseTotal).Sub(a.ExpenseTotal)

	collected := a.CashCollected.Add(a.UPICollected).Add(a.CardCollected)
	k.NetCashFlow = collected.Sub(a.PurchasePaid).Sub(a.ExpensePaid)

	if a.SalesCount > 0 {
		k.AvgInvoiceValue = a.SalesTotal.Div(decimal.NewFromInt(a.SalesCount)).Round(2)
	}

	k.GrossMarginPct = pct(k.GrossProfit, a.SalesTotal)
	k.ExpenseToSalesPct = pct(a.ExpenseTotal, a.SalesTotal)

	k.SalesGrowthPct = growth(a.SalesTotal, a.PrevSalesTotal)
	k.SalesGrowthDoDPct = growth(a.SalesToday, a.SalesYesterday)
	k.SalesGrowthWoWPct = growth(a.SalesThisWeek, a.SalesLastWeek)
	k.SalesGrowthMoMPct = growth(a.SalesThisMonth, a.SalesLastMonth)

	k.DiscountPct = pct(a.DiscountTotal, a.SalesTotal.Add(a.DiscountTotal))
	k.CreditRatioPct = pct(a.CreditSales, a.SalesTotal)

	k.CashSharePct = pct(a.CashCollected, collected)
	k.UPISharePct = pct(a.UPICollected, collected)
	k.CardSharePct = pct(a.CardCollected, collected)
	return k
}
