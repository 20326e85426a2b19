package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// Order is one placed checkout with its price breakdown frozen at placement.
type Order struct {
	ID            uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID            `gorm:"column:user_id;type:uuid;not null;index"`
	Status        enums.OrderStatus    `gorm:"column:status;type:order_status;not null;default:'processing'"`
	PaymentMethod enums.PaymentMethod  `gorm:"column:payment_method;type:payment_method;not null"`
	ContactPhone  string               `gorm:"column:contact_phone;not null"`
	Address       types.Address        `gorm:"column:address;type:jsonb;serializer:json"`
	Subtotal      decimal.Decimal      `gorm:"column:subtotal;type:numeric(12,2);not null"`
	ShippingFee   decimal.Decimal      `gorm:"column:shipping_fee;type:numeric(12,2);not null"`
	Tax           decimal.Decimal      `gorm:"column:tax;type:numeric(12,2);not null"`
	Total         decimal.Decimal      `gorm:"column:total;type:numeric(12,2);not null"`
	Tracking      *types.OrderTracking `gorm:"column:tracking;type:jsonb;serializer:json"`
	LineItems     []OrderLineItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CancelledAt   *time.Time           `gorm:"column:cancelled_at"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderLineItem snapshots one cart line at checkout time.
type OrderLineItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	ProductName string          `gorm:"column:product_name;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	LineTotal   decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
