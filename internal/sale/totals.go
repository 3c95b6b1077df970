package sale

import (
	"errors"

	"github.com/santoshmvhs/purebornmvp/internal/gst"
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrVariantInactive = errors.New("product variant is inactive")
	ErrNoPrice         = errors.New("product variant has no usable price")
)

// ResolvePrice picks the unit price for a variant: explicit price from the
// request wins, then the selling price, then the MRP. A variant with neither
// price set cannot be sold.
func ResolvePrice(variant *models.ProductVariant, requested *decimal.Decimal) (decimal.Decimal, error) {
	if !variant.IsActive {
		return decimal.Zero, ErrVariantInactive
	}
	if requested != nil && requested.IsPositive() {
		return *requested, nil
	}
	if variant.SellingPrice != nil && variant.SellingPrice.IsPositive() {
		return *variant.SellingPrice, nil
	}
	if variant.MRP != nil && variant.MRP.IsPositive() {
		return *variant.MRP, nil
	}
	return decimal.Zero, ErrNoPrice
}

// LineTotals holds derived amounts for one sale line. Retail prices are quoted
// before tax, so GST goes on top of the taxable value and the stored line
// total is tax-inclusive.
type LineTotals struct {
	LineTotal    decimal.Decimal
	TaxableValue decimal.Decimal
	GSTAmount    decimal.Decimal
}

func ComputeLine(quantity, unitPrice, gstRate decimal.Decimal) LineTotals {
	taxable := quantity.Mul(unitPrice).Round(2)
	tax := gst.TaxOnExclusive(taxable, gstRate)
	return LineTotals{
		LineTotal:    taxable.Add(tax),
		TaxableValue: taxable,
		GSTAmount:    tax,
	}
}

// ComputeNet derives the invoice grand total.
func ComputeNet(subtotal, charges, chargesDiscount, discount, tax, roundOff decimal.Decimal) decimal.Decimal {
	return subtotal.Add(charges).Sub(chargesDiscount).Add(tax).Sub(discount).Add(roundOff)
}

// ComputePayment derives paid and outstanding amounts from the payment split.
func ComputePayment(net, cash, upi, card decimal.Decimal) (paid, balance decimal.Decimal) {
	paid = cash.Add(upi).Add(card)
	balance = net.Sub(paid)
	return paid, balance
}
