package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
)

// Totals is the frozen price breakdown for an order.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeTotals sums the cart lines and applies the flat shipping fee and
// the tax rate on the subtotal. Tax is rounded to two decimal places.
func ComputeTotals(items []models.CartItem, shippingFee, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Tax:         tax,
		Total:       subtotal.Add(shippingFee).Add(tax),
	}
}
