package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	k := Compute(Aggregates{
		SalesTotal:     dec("90000"),
		SalesCount:     45,
		DiscountTotal:  dec("10000"),
		CreditSales:    dec("9000"),
		OilCakeRevenue: dec("10000"),
		PurchaseTotal:  dec("40000"),
		ExpenseTotal:   dec("15000"),
		COGS:           dec("54000"),
		PurchasePaid:   dec("35000"),
		ExpensePaid:    dec("15000"),
		CashCollected:  dec("50000"),
		UPICollected:   dec("30000"),
		CardCollected:  dec("20000"),
		PrevSalesTotal: dec("75000"),
	})

	if !k.Revenue.Equal(dec("100000")) {
		t.Errorf("revenue = %s, want 100000", k.Revenue)
	}
	if !k.GrossProfit.Equal(dec("36000")) {
		t.Errorf("gross profit = %s, want 36000", k.GrossProfit)
	}
	if k.GrossMarginPct != 40.0 {
		t.Errorf("gross margin = %v, want 40.0", k.GrossMarginPct)
	}
	if !k.NetProfit.Equal(dec("45000")) {
		t.Errorf("net profit = %s, want 45000", k.NetProfit)
	}
	if !k.NetCashFlow.Equal(dec("50000")) {
		t.Errorf("net cash flow = %s, want 50000", k.NetCashFlow)
	}
	if !k.AvgInvoiceValue.Equal(dec("2000")) {
		t.Errorf("avg invoice = %s, want 2000", k.AvgInvoiceValue)
	}
	if k.ExpenseToSalesPct != 16.7 {
		t.Errorf("expense to sales = %v, want 16.7", k.ExpenseToSalesPct)
	}
	if k.SalesGrowthPct == nil || *k.SalesGrowthPct != 20.0 {
		t.Errorf("growth = %v, want 20.0", k.SalesGrowthPct)
	}
	if k.DiscountPct != 10.0 {
		t.Errorf("discount pct = %v, want 10.0", k.DiscountPct)
	}
	if k.CreditRatioPct != 10.0 {
		t.Errorf("credit ratio = %v, want 10.0", k.CreditRatioPct)
	}
	if k.CashSharePct != 50.0 || k.UPISharePct != 30.0 || k.CardSharePct != 20.0 {
		t.Errorf("payment mix = %v/%v/%v, want 50/30/20", k.CashSharePct, k.UPISharePct, k.CardSharePct)
	}
}

func TestComputeGrowthWindows(t *testing.T) {
	k := Compute(Aggregates{
		SalesToday:     dec("1200"),
		SalesYesterday: dec("1000"),
		SalesThisWeek:  dec("7000"),
		SalesLastWeek:  dec("8000"),
		SalesThisMonth: dec("30000"),
		SalesLastMonth: dec("24000"),
	})

	if k.SalesGrowthDoDPct == nil || *k.SalesGrowthDoDPct != 20.0 {
		t.Errorf("dod = %v, want 20.0", k.SalesGrowthDoDPct)
	}
	if k.SalesGrowthWoWPct == nil || *k.SalesGrowthWoWPct != -12.5 {
		t.Errorf("wow = %v, want -12.5", k.SalesGrowthWoWPct)
	}
	if k.SalesGrowthMoMPct == nil || *k.SalesGrowthMoMPct != 25.0 {
		t.Errorf("mom = %v, want 25.0", k.SalesGrowthMoMPct)
	}
}

func TestComputeEmptyPeriod(t *testing.T) {
	k := Compute(Aggregates{})

	if !k.AvgInvoiceValue.IsZero() {
		t.Errorf("avg invoice on zero sales should stay zero, got %s", k.AvgInvoiceValue)
	}
	if k.SalesGrowthPct != nil {
		t.Errorf("growth should be nil without a prior period, got %v", *k.SalesGrowthPct)
	}
	if k.SalesGrowthDoDPct != nil || k.SalesGrowthWoWPct != nil || k.SalesGrowthMoMPct != nil {
		t.Errorf("growth triple should be nil without baselines")
	}
	if k.GrossMarginPct != 0 || k.ExpenseToSalesPct != 0 {
		t.Errorf("ratios on zero sales should stay zero")
	}
	if k.CashSharePct != 0 || k.UPISharePct != 0 || k.CardSharePct != 0 {
		t.Errorf("payment mix on zero collections should stay zero")
	}
	if !k.NetCashFlow.IsZero() {
		t.Errorf("net cash flow = %s, want 0", k.NetCashFlow)
	}
}

func TestComputeNegativeGrowth(t *testing.T) {
	k := Compute(Aggregates{
		SalesTotal:     dec("1000"),
		SalesCount:     3,
		COGS:           dec("1500"),
		PurchaseTotal:  dec("5000"),
		PurchasePaid:   dec("5000"),
		PrevSalesTotal: dec("2000"),
	})
	if !k.NetProfit.Equal(dec("-4000")) {
		t.Errorf("net profit = %s, want -4000", k.NetProfit)
	}
	if !k.NetCashFlow.Equal(dec("-5000")) {
		t.Errorf("net cash flow = %s, want -5000", k.NetCashFlow)
	}
	if !k.GrossProfit.Equal(dec("-500")) {
		t.Errorf("gross profit = %s, want -500", k.GrossProfit)
	}
	if k.GrossMarginPct != -50.0 {
		t.Errorf("gross margin = %v, want -50.0", k.GrossMarginPct)
	}
	if !k.AvgInvoiceValue.Equal(dec("333.33")) {
		t.Errorf("avg invoice = %s, want 333.33", k.AvgInvoiceValue)
	}
	if k.SalesGrowthPct == nil || *k.SalesGrowthPct != -50.0 {
		t.Errorf("growth = %v, want -50.0", k.SalesGrowthPct)
	}
}
