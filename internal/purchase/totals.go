package purchase

import (
	"github.com/santoshmvhs/purebornmvp/internal/gst"

	"github.com/shopspring/decimal"
)

// LineTotals holds the derived amounts for one invoice line. Vendor invoices
// quote GST-inclusive prices, so the taxable value is extracted from the line
// total rather than added on top.
type LineTotals struct {
	LineTotal    decimal.Decimal
	TaxableValue decimal.Decimal
	GSTAmount    decimal.Decimal
}

func ComputeLine(quantity, pricePerUnit, gstRate decimal.Decimal) LineTotals {
	lineTotal := quantity.Mul(pricePerUnit).Round(2)
	taxable, tax := gst.TaxFromInclusive(lineTotal, gstRate)
	return LineTotals{LineTotal: lineTotal, TaxableValue: taxable, GSTAmount: tax}
}

// ComputePayment derives paid and outstanding amounts from the payment split.
func ComputePayment(total, cash, upi, card, credit decimal.Decimal) (paid, balance decimal.Decimal) {
	paid = cash.Add(upi).Add(card)
	balance = total.Sub(paid).Add(credit)
	return paid, balance
}
