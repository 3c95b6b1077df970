package gst

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRateForHSN(t *testing.T) {
	cases := []struct {
		name string
		hsn  string
		want string
	}{
		{"exact 8-digit oil code", "15081000", "5"},
		{"4-digit heading fallback", "15129099", "5"},
		{"chapter fallback", "23099090", "5"},
		{"packing plastic heading", "39231090", "18"},
		{"paper cartons", "48191010", "12"},
		{"unknown code gets default", "99999999", "18"},
		{"empty code gets default", "", "18"},
		{"short unknown code", "77", "18"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RateForHSN(tc.hsn); !got.Equal(dec(tc.want)) {
				t.Errorf("RateForHSN(%q) = %s, want %s", tc.hsn, got, tc.want)
			}
		})
	}
}

func TestSplitIntrastate(t *testing.T) {
	b := Split(dec("5"), dec("10.01"), false)
	if !b.IGST.IsZero() {
		t.Errorf("intrastate split leaked into IGST: %s", b.IGST)
	}
	if !b.CGST.Add(b.SGST).Equal(dec("10.01")) {
		t.Errorf("CGST %s + SGST %s != 10.01", b.CGST, b.SGST)
	}
	if !b.CGST.Equal(dec("5.01")) && !b.CGST.Equal(dec("5.00")) {
		t.Errorf("CGST = %s, want a rounded half", b.CGST)
	}
}

func TestSplitInterstate(t *testing.T) {
	b := Split(dec("18"), dec("36"), true)
	if !b.IGST.Equal(dec("36")) || !b.CGST.IsZero() || !b.SGST.IsZero() {
		t.Errorf("interstate split wrong: %+v", b)
	}
}

func TestTaxFromInclusive(t *testing.T) {
	// 105 gross at 5% -> 100 taxable, 5 tax
	taxable, tax := TaxFromInclusive(dec("105"), dec("5"))
	if !taxable.Equal(dec("100")) {
		t.Errorf("taxable = %s, want 100", taxable)
	}
	if !tax.Equal(dec("5")) {
		t.Errorf("tax = %s, want 5", tax)
	}
	if !taxable.Add(tax).Equal(dec("105")) {
		t.Errorf("taxable + tax != gross")
	}
}

func TestTaxFromInclusiveZeroRate(t *testing.T) {
	taxable, tax := TaxFromInclusive(dec("250"), decimal.Zero)
	if !taxable.Equal(dec("250")) || !tax.IsZero() {
		t.Errorf("zero rate should pass the gross through, got taxable=%s tax=%s", taxable, tax)
	}
}

func TestTaxOnExclusive(t *testing.T) {
	if got := TaxOnExclusive(dec("200"), dec("18")); !got.Equal(dec("36")) {
		t.Errorf("TaxOnExclusive(200, 18) = %s, want 36", got)
	}
	if got := TaxOnExclusive(dec("99.99"), dec("5")); !got.Equal(dec("5.00")) {
		t.Errorf("TaxOnExclusive(99.99, 5) = %s, want 5.00", got)
	}
}
