package sale

import (
	"errors"
	"testing"

	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestResolvePrice(t *testing.T) {
	active := func(selling, mrp *decimal.Decimal) *models.ProductVariant {
		return &models.ProductVariant{IsActive: true, SellingPrice: selling, MRP: mrp}
	}

	t.Run("explicit price wins", func(t *testing.T) {
		p, err := ResolvePrice(active(decPtr("150"), decPtr("180")), decPtr("140"))
		if err != nil || !p.Equal(dec("140")) {
			t.Fatalf("got %s, %v", p, err)
		}
	})

	t.Run("selling price before mrp", func(t *testing.T) {
		p, err := ResolvePrice(active(decPtr("150"), decPtr("180")), nil)
		if err != nil || !p.Equal(dec("150")) {
			t.Fatalf("got %s, %v", p, err)
		}
	})

	t.Run("mrp fallback", func(t *testing.T) {
		p, err := ResolvePrice(active(nil, decPtr("180")), nil)
		if err != nil || !p.Equal(dec("180")) {
			t.Fatalf("got %s, %v", p, err)
		}
	})

	t.Run("zero selling price falls through to mrp", func(t *testing.T) {
		p, err := ResolvePrice(active(decPtr("0"), decPtr("180")), nil)
		if err != nil || !p.Equal(dec("180")) {
			t.Fatalf("got %s, %v", p, err)
		}
	})

	t.Run("no usable price", func(t *testing.T) {
		_, err := ResolvePrice(active(nil, nil), nil)
		if !errors.Is(err, ErrNoPrice) {
			t.Fatalf("want ErrNoPrice, got %v", err)
		}
	})

	t.Run("inactive variant", func(t *testing.T) {
		v := &models.ProductVariant{IsActive: false, SellingPrice: decPtr("150")}
		_, err := ResolvePrice(v, nil)
		if !errors.Is(err, ErrVariantInactive) {
			t.Fatalf("want ErrVariantInactive, got %v", err)
		}
	})
}

func TestComputeLineAddsGSTOnTop(t *testing.T) {
	lt := ComputeLine(dec("2"), dec("165.50"), dec("5"))
	if !lt.TaxableValue.Equal(dec("331.00")) {
		t.Fatalf("taxable = %s, want 331.00", lt.TaxableValue)
	}
	if !lt.GSTAmount.Equal(dec("16.55")) {
		t.Errorf("gst = %s, want 16.55", lt.GSTAmount)
	}
	// the stored line total carries the tax
	if !lt.LineTotal.Equal(dec("347.55")) {
		t.Errorf("line total = %s, want 347.55", lt.LineTotal)
	}
	if !lt.LineTotal.Equal(lt.TaxableValue.Add(lt.GSTAmount)) {
		t.Errorf("line total must equal taxable plus gst")
	}
}

func TestComputeLineZeroRate(t *testing.T) {
	lt := ComputeLine(dec("3"), dec("100"), dec("0"))
	if !lt.LineTotal.Equal(dec("300")) || !lt.TaxableValue.Equal(dec("300")) || !lt.GSTAmount.IsZero() {
		t.Errorf("got %s/%s/%s, want 300/300/0", lt.LineTotal, lt.TaxableValue, lt.GSTAmount)
	}
}

func TestComputeNet(t *testing.T) {
	// subtotal 1000, delivery 50, charges discount 10, tax 50, item discount 25, round-off -0.50
	net := ComputeNet(dec("1000"), dec("50"), dec("10"), dec("25"), dec("50"), dec("-0.50"))
	if !net.Equal(dec("1064.50")) {
		t.Errorf("net = %s, want 1064.50", net)
	}
}

func TestComputePayment(t *testing.T) {
	paid, balance := ComputePayment(dec("1064.50"), dec("1000"), dec("64.50"), dec("0"))
	if !paid.Equal(dec("1064.50")) || !balance.IsZero() {
		t.Errorf("paid = %s, balance = %s", paid, balance)
	}

	paid, balance = ComputePayment(dec("500"), dec("200"), dec("0"), dec("0"))
	if !paid.Equal(dec("200")) || !balance.Equal(dec("300")) {
		t.Errorf("partial payment: paid = %s, balance = %s", paid, balance)
	}
}
