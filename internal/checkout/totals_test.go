package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
)

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{UnitPrice: decimal.NewFromInt(100), Quantity: 2},
	}
	shipping := decimal.NewFromInt(50)
	taxRate := decimal.NewFromFloat(0.05)

	totals := ComputeTotals(items, shipping, taxRate)

	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("subtotal = %s, want 200", totals.Subtotal)
	}
	if !totals.Tax.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("tax = %s, want 10", totals.Tax)
	}
	if !totals.Total.Equal(decimal.NewFromInt(260)) {
		t.Fatalf("total = %s, want 260", totals.Total)
	}
}

func TestComputeTotalsRoundsTax(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{UnitPrice: decimal.RequireFromString("33.33"), Quantity: 1},
	}
	totals := ComputeTotals(items, decimal.Zero, decimal.NewFromFloat(0.05))

	// 33.33 * 0.05 = 1.6665, rounds to 1.67.
	if !totals.Tax.Equal(decimal.RequireFromString("1.67")) {
		t.Fatalf("tax = %s, want 1.67", totals.Tax)
	}
	if !totals.Total.Equal(decimal.RequireFromString("35.00")) {
		t.Fatalf("total = %s, want 35.00", totals.Total)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil, decimal.NewFromInt(50), decimal.NewFromFloat(0.05))

	if !totals.Subtotal.Equal(decimal.Zero) {
		t.Fatalf("subtotal = %s, want 0", totals.Subtotal)
	}
	if !totals.Total.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("total = %s, want 50", totals.Total)
	}
}

func TestLineItemsFromSnapshotsCartLines(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{ProductName: "Ashwagandha Capsules", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 4},
	}

	lines := lineItemsFrom(items)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ProductName != "Ashwagandha Capsules" {
		t.Fatalf("unexpected name %q", lines[0].ProductName)
	}
	if !lines[0].LineTotal.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("line total = %s, want 50.00", lines[0].LineTotal)
	}
}
