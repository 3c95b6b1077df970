package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ml", "L"},
		{"Litre", "L"},
		{"LTR", "L"},
		{"g", "kg"},
		{"Gram", "kg"},
		{"KG", "kg"},
		{"pcs", "Unit"},
		{"Bottle", "Unit"},
		{"btl", "Unit"},
		{"", "Unit"},
		{"whatever", "Unit"},
	}
	for _, tc := range cases {
		if got := NormalizeUnit(tc.in); got != tc.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractMultiplier(t *testing.T) {
	cases := []struct {
		name     string
		variant  string
		baseUnit string
		want     string
	}{
		{"ml against litre base", "500 ml", "L", "0.5"},
		{"litre against litre base", "1 L", "L", "1"},
		{"five litre can", "5 Ltr", "L", "5"},
		{"grams against kg base", "250 g", "kg", "0.25"},
		{"kg against kg base", "2 kg", "kg", "2"},
		{"count pack", "6 pcs", "Unit", "6"},
		{"no quantity in name", "Family Pack", "Unit", "1"},
		{"decimal quantity", "1.5 L", "L", "1.5"},
		{"no space before unit", "500ml", "L", "0.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tc.want)
			got := ExtractMultiplier(tc.variant, tc.baseUnit)
			if !got.Equal(want) {
				t.Errorf("ExtractMultiplier(%q, %q) = %s, want %s", tc.variant, tc.baseUnit, got, want)
			}
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Product Name", "product_name"},
		{" SKU ", "sku"},
		{"Selling-Price", "selling_price"},
		{"H.S.N", "hsn"},
	}
	for _, tc := range cases {
		if got := normalizeHeader(tc.in); got != tc.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRowMapsAliasedColumns(t *testing.T) {
	header := map[int]string{
		0: "product_name",
		1: "product_code",
		2: "base_unit",
		3: "variant_name",
		4: "sku",
		5: "mrp",
		6: "selling_price",
	}
	row := parseRow(header, []string{"Groundnut Oil", "GNO", "ltr", "500 ml", "GNO-500ML", "₹180", "165.50"})

	if row.ProductName != "Groundnut Oil" || row.ProductCode != "GNO" {
		t.Fatalf("product fields not mapped: %+v", row)
	}
	if row.SKU != "GNO-500ML" {
		t.Errorf("sku = %q", row.SKU)
	}
	if row.MRP == nil || !row.MRP.Equal(decimal.NewFromInt(180)) {
		t.Errorf("mrp = %v, want 180 (currency prefix stripped)", row.MRP)
	}
	if row.SellingPrice == nil || !row.SellingPrice.Equal(decimal.RequireFromString("165.50")) {
		t.Errorf("selling_price = %v", row.SellingPrice)
	}
}

func TestParseRowMissingCellsAndBadNumbers(t *testing.T) {
	header := map[int]string{0: "product_name", 5: "mrp"}
	row := parseRow(header, []string{"Sesame Oil"})

	if row.ProductName != "Sesame Oil" {
		t.Fatalf("product name not mapped")
	}
	if row.MRP != nil {
		t.Errorf("mrp should be nil for a missing cell, got %v", row.MRP)
	}

	row = parseRow(header, []string{"Sesame Oil", "", "", "", "", "n/a"})
	if row.MRP != nil {
		t.Errorf("mrp should be nil for a non-numeric cell, got %v", row.MRP)
	}
}
