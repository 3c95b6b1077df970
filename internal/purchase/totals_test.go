package purchase

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeLineExtractsInclusiveGST(t *testing.T) {
	// 10 kg at 10.50/kg inclusive of 5% GST
	lt := ComputeLine(dec("10"), dec("10.50"), dec("5"))

	if !lt.LineTotal.Equal(dec("105.00")) {
		t.Fatalf("line total = %s, want 105.00", lt.LineTotal)
	}
	if !lt.TaxableValue.Equal(dec("100.00")) {
		t.Errorf("taxable = %s, want 100.00", lt.TaxableValue)
	}
	if !lt.GSTAmount.Equal(dec("5.00")) {
		t.Errorf("gst = %s, want 5.00", lt.GSTAmount)
	}
	if !lt.TaxableValue.Add(lt.GSTAmount).Equal(lt.LineTotal) {
		t.Errorf("taxable + gst must reconstruct the line total")
	}
}

func TestComputeLineZeroRate(t *testing.T) {
	lt := ComputeLine(dec("3"), dec("40"), decimal.Zero)
	if !lt.TaxableValue.Equal(dec("120.00")) || !lt.GSTAmount.IsZero() {
		t.Errorf("zero-rate line should be fully taxable: %+v", lt)
	}
}

func TestComputeLineFractionalQuantity(t *testing.T) {
	lt := ComputeLine(dec("2.5"), dec("99.99"), dec("18"))
	if !lt.LineTotal.Equal(dec("249.98")) {
		t.Fatalf("line total = %s, want 249.98", lt.LineTotal)
	}
	if !lt.TaxableValue.Add(lt.GSTAmount).Equal(lt.LineTotal) {
		t.Errorf("taxable %s + gst %s != %s", lt.TaxableValue, lt.GSTAmount, lt.LineTotal)
	}
}

func TestComputePayment(t *testing.T) {
	cases := []struct {
		name        string
		total       string
		cash        string
		upi         string
		card        string
		credit      string
		wantPaid    string
		wantBalance string
	}{
		{"fully paid in cash", "500", "500", "0", "0", "0", "500", "0"},
		{"split payment", "1000", "400", "300", "300", "0", "1000", "0"},
		{"partially paid", "1000", "600", "0", "0", "0", "600", "400"},
		{"credit adds to outstanding", "1000", "600", "0", "0", "200", "600", "600"},
		{"overpaid", "100", "150", "0", "0", "0", "150", "-50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			paid, balance := ComputePayment(dec(tc.total), dec(tc.cash), dec(tc.upi), dec(tc.card), dec(tc.credit))
			if !paid.Equal(dec(tc.wantPaid)) {
				t.Errorf("paid = %s, want %s", paid, tc.wantPaid)
			}
			if !balance.Equal(dec(tc.wantBalance)) {
				t.Errorf("balance = %s, want %s", balance, tc.wantBalance)
			}
		})
	}
}
