package checkout

import (
	"github.com/google/uuid"

	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// PlaceOrderRequest carries the checkout form payload.
type PlaceOrderRequest struct {
	ContactPhone  string        `json:"contact_phone" validate:"required,max=20"`
	Address       types.Address `json:"address" validate:"required"`
	PaymentMethod string        `json:"payment_method" validate:"required"`
}

// PlaceOrderResult is returned after a successful placement.
type PlaceOrderResult struct {
	OrderID       uuid.UUID           `json:"order_id"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Totals        Totals              `json:"totals"`
}
