package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayurnest/ayurnest-backend/internal/cart"
	"github.com/ayurnest/ayurnest-backend/internal/notifications"
	"github.com/ayurnest/ayurnest-backend/internal/orders"
	"github.com/ayurnest/ayurnest-backend/pkg/config"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service places orders from the authenticated user's cart.
type Service interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*PlaceOrderResult, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	tx            txRunner
	cartRepo      cart.Repository
	orderRepo     orders.Repository
	notifications notifications.Repository
	cfg           config.CheckoutConfig
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	TxRunner         txRunner
	CartRepo         cart.Repository
	OrderRepo        orders.Repository
	NotificationRepo notifications.Repository
	CheckoutConfig   config.CheckoutConfig
}

// NewService constructs a checkout service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.NotificationRepo == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	return &service{
		tx:            params.TxRunner,
		cartRepo:      params.CartRepo,
		orderRepo:     params.OrderRepo,
		notifications: params.NotificationRepo,
		cfg:           params.CheckoutConfig,
	}, nil
}

// PlaceOrder freezes the cart into an order, clears the cart, and queues
// the placement notification. Everything happens in one transaction so a
// failure leaves no orphaned order rows or half-cleared carts.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if req.Address.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address is required")
	}
	method, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	ownerKey := cart.OwnerKeyForUser(userID)

	var result *PlaceOrderResult
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		notificationRepo := s.notifications.WithTx(tx)

		userCart, err := cartRepo.FindByOwnerKey(ctx, ownerKey)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		if len(userCart.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		totals := ComputeTotals(userCart.Items, s.cfg.ShippingFeeAmount(), s.cfg.TaxRate())

		order := &models.Order{
			UserID:        userID,
			Status:        enums.OrderStatusProcessing,
			PaymentMethod: method,
			ContactPhone:  req.ContactPhone,
			Address:       req.Address,
			Subtotal:      totals.Subtotal,
			ShippingFee:   totals.ShippingFee,
			Tax:           totals.Tax,
			Total:         totals.Total,
			LineItems:     lineItemsFrom(userCart.Items),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		if err := cartRepo.Clear(ctx, userCart.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		notification := &models.Notification{
			UserID:  userID,
			Type:    enums.NotificationTypeOrderUpdate,
			Title:   "Order placed",
			Body:    fmt.Sprintf("Your order for %d item(s) is being processed.", len(order.LineItems)),
			OrderID: &order.ID,
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order notification")
		}

		result = &PlaceOrderResult{
			OrderID:       order.ID,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			Totals:        totals,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func lineItemsFrom(items []models.CartItem) []models.OrderLineItem {
	out := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderLineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return out
}
