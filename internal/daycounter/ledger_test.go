package daycounter

import (
	"testing"

	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDerive(t *testing.T) {
	cases := []struct {
		name       string
		in         models.DayCounter
		wantTotal  string
		wantSystem string
		wantDiff   string
	}{
		{
			name: "balanced day",
			in: models.DayCounter{
				OpeningCashBalance: dec("2000"),
				SalesCash:          dec("15000"),
				SalesUPI:           dec("8000"),
				SalesCard:          dec("1000"),
				SalesCredit:        dec("500"),
				TotalExpensesCash:  dec("3000"),
				CashHandOver:       dec("10000"),
				ActualClosingCash:  dec("4000"),
			},
			wantTotal:  "24500",
			wantSystem: "4000",
			wantDiff:   "0",
		},
		{
			name: "drawer short",
			in: models.DayCounter{
				OpeningCashBalance: dec("1000"),
				SalesCash:          dec("5000"),
				TotalExpensesCash:  dec("500"),
				ActualClosingCash:  dec("5400"),
			},
			wantTotal:  "5000",
			wantSystem: "5500",
			wantDiff:   "-100",
		},
		{
			name: "drawer over",
			in: models.DayCounter{
				OpeningCashBalance: dec("1000"),
				SalesCash:          dec("5000"),
				ActualClosingCash:  dec("6050.50"),
			},
			wantTotal:  "5000",
			wantSystem: "6000",
			wantDiff:   "50.50",
		},
		{
			name:       "empty day",
			in:         models.DayCounter{},
			wantTotal:  "0",
			wantSystem: "0",
			wantDiff:   "0",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dc := tc.in
			Derive(&dc)
			if !dc.TotalSales.Equal(dec(tc.wantTotal)) {
				t.Errorf("total sales = %s, want %s", dc.TotalSales, tc.wantTotal)
			}
			if !dc.SystemClosingCash.Equal(dec(tc.wantSystem)) {
				t.Errorf("system closing = %s, want %s", dc.SystemClosingCash, tc.wantSystem)
			}
			if !dc.Difference.Equal(dec(tc.wantDiff)) {
				t.Errorf("difference = %s, want %s", dc.Difference, tc.wantDiff)
			}
		})
	}
}

func TestBalanced(t *testing.T) {
	dc := models.DayCounter{
		OpeningCashBalance: dec("100"),
		SalesCash:          dec("900"),
		ActualClosingCash:  dec("1000"),
	}
	Derive(&dc)
	if !Balanced(&dc) {
		t.Errorf("expected a balanced drawer, difference = %s", dc.Difference)
	}

	dc.ActualClosingCash = dec("990")
	Derive(&dc)
	if Balanced(&dc) {
		t.Errorf("expected an unbalanced drawer")
	}
}
