package daycounter

import (
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/shopspring/decimal"
)

// Derive recomputes the dependent columns of a day counter row from the
// entered figures. The drawer maths:
//
//	total_sales         = cash + upi + card + credit sales
//	system_closing_cash = opening + cash sales - cash expenses - handover
//	difference          = actual closing - system closing
//
// A positive difference means excess cash in the drawer, negative means short.
func Derive(dc *models.DayCounter) {
	dc.TotalSales = dc.SalesCash.Add(dc.SalesUPI).Add(dc.SalesCard).Add(dc.SalesCredit)
	dc.SystemClosingCash = dc.OpeningCashBalance.
		Add(dc.SalesCash).
		Sub(dc.TotalExpensesCash).
		Sub(dc.CashHandOver)
	dc.Difference = dc.ActualClosingCash.Sub(dc.SystemClosingCash)
}

// Balanced reports whether the drawer reconciled exactly.
func Balanced(dc *models.DayCounter) bool {
	return dc.Difference.Equal(decimal.Zero)
}
