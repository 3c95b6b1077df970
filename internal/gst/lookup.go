// Package gst resolves GST rates from HSN codes and splits tax between the
// intrastate (CGST+SGST) and interstate (IGST) components.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRate applies when an HSN code matches nothing in the tables.
var DefaultRate = decimal.NewFromFloat(18.0)

// hsnRates carries the codes the business actually trades in. Exact match
// first, then the 4-digit heading.
var hsnRates = map[string]decimal.Decimal{
	// edible oils
	"15081000": decimal.NewFromFloat(5.0),
	"15089091": decimal.NewFromFloat(5.0),
	"15131100": decimal.NewFromFloat(5.0),
	"15141110": decimal.NewFromFloat(5.0),
	"15159010": decimal.NewFromFloat(5.0),
	"1508":     decimal.NewFromFloat(5.0),
	"1509":     decimal.NewFromFloat(5.0),
	"1512":     decimal.NewFromFloat(5.0),
	"1513":     decimal.NewFromFloat(5.0),
	"1514":     decimal.NewFromFloat(5.0),
	"1515":     decimal.NewFromFloat(5.0),

	// oil cake and residues
	"2304": decimal.NewFromFloat(5.0),
	"2305": decimal.NewFromFloat(5.0),
	"2306": decimal.NewFromFloat(5.0),

	// packing
	"3923": decimal.NewFromFloat(18.0),
	"4819": decimal.NewFromFloat(12.0),
	"7010": decimal.NewFromFloat(18.0),
}

// chapterRates is the 2-digit fallback by HSN chapter.
var chapterRates = map[string]decimal.Decimal{
	"15": decimal.NewFromFloat(5.0),  // fats and oils
	"23": decimal.NewFromFloat(5.0),  // residues, prepared animal fodder
	"39": decimal.NewFromFloat(18.0), // plastics
	"48": decimal.NewFromFloat(12.0), // paper
	"70": decimal.NewFromFloat(18.0), // glass
}

// RateForHSN resolves the GST rate for an HSN code: exact code, then the
// 4-digit heading, then the 2-digit chapter, then DefaultRate.
func RateForHSN(hsn string) decimal.Decimal {
	hsn = strings.TrimSpace(hsn)
	if rate, ok := hsnRates[hsn]; ok {
		return rate
	}
	if len(hsn) >= 4 {
		if rate, ok := hsnRates[hsn[:4]]; ok {
			return rate
		}
	}
	if len(hsn) >= 2 {
		if rate, ok := chapterRates[hsn[:2]]; ok {
			return rate
		}
	}
	return DefaultRate
}

// Breakdown is a tax amount split across the GST components.
type Breakdown struct {
	Rate decimal.Decimal `json:"rate"`
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
}

// Split divides a tax amount between CGST/SGST (intrastate) or IGST
// (interstate).
func Split(rate, taxAmount decimal.Decimal, interstate bool) Breakdown {
	b := Breakdown{Rate: rate, CGST: decimal.Zero, SGST: decimal.Zero, IGST: decimal.Zero}
	if interstate {
		b.IGST = taxAmount
		return b
	}
	half := taxAmount.Div(decimal.NewFromInt(2)).Round(2)
	b.CGST = half
	// SGST absorbs the rounding remainder so the halves always sum exactly
	b.SGST = taxAmount.Sub(half)
	return b
}

// TaxFromInclusive extracts the taxable value and tax amount from a
// GST-inclusive total. Purchase invoices from small vendors quote inclusive
// prices.
func TaxFromInclusive(grossTotal, rate decimal.Decimal) (taxable, tax decimal.Decimal) {
	divisor := decimal.NewFromInt(1).Add(rate.Div(decimal.NewFromInt(100)))
	taxable = grossTotal.Div(divisor).Round(2)
	tax = grossTotal.Sub(taxable)
	return taxable, tax
}

// TaxOnExclusive computes tax on top of a GST-exclusive value. Sales invoices
// add tax over the line total.
func TaxOnExclusive(taxable, rate decimal.Decimal) decimal.Decimal {
	return taxable.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}
