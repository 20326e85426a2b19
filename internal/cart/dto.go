package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
)

// ItemDTO is one cart line as served to clients.
type ItemDTO struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// DTO is the full cart view with derived totals.
type DTO struct {
	Items         []ItemDTO       `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalQuantity int             `json:"total_quantity"`
}

// ToDTO maps a cart model into the client view, computing totals.
func ToDTO(cart *models.Cart) DTO {
	items := make([]ItemDTO, 0, len(cart.Items))
	subtotal := decimal.Zero
	totalQty := 0

	for _, item := range cart.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		totalQty += item.Quantity
		items = append(items, ItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
	}

	return DTO{
		Items:         items,
		Subtotal:      subtotal,
		TotalQuantity: totalQty,
	}
}
