package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ayurnest/ayurnest-backend/internal/cart"
	"github.com/ayurnest/ayurnest-backend/internal/notifications"
	"github.com/ayurnest/ayurnest-backend/internal/orders"
	"github.com/ayurnest/ayurnest-backend/pkg/config"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/pagination"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubCartRepo struct {
	cart    *models.Cart
	findErr error
	cleared []uuid.UUID
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) cart.Repository { return s }
func (s *stubCartRepo) GetOrCreate(ctx context.Context, ownerKey string, userID *uuid.UUID) (*models.Cart, error) {
	return s.cart, s.findErr
}
func (s *stubCartRepo) FindByOwnerKey(ctx context.Context, ownerKey string) (*models.Cart, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.cart, nil
}
func (s *stubCartRepo) AddItem(ctx context.Context, item *models.CartItem) error { return nil }
func (s *stubCartRepo) SetQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error) {
	return false, nil
}
func (s *stubCartRepo) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return nil
}
func (s *stubCartRepo) Clear(ctx context.Context, cartID uuid.UUID) error {
	s.cleared = append(s.cleared, cartID)
	return nil
}

type stubOrderRepo struct {
	created *models.Order
}

func (s *stubOrderRepo) WithTx(tx *gorm.DB) orders.Repository { return s }
func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = uuid.New()
	s.created = order
	return nil
}
func (s *stubOrderRepo) FindByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubOrderRepo) List(ctx context.Context, params orders.ListQuery) ([]models.Order, *pagination.Cursor, error) {
	return nil, nil, nil
}
func (s *stubOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.OrderStatus, now time.Time) (bool, error) {
	return false, nil
}
func (s *stubOrderRepo) UpdateTracking(ctx context.Context, orderID uuid.UUID, tracking *types.OrderTracking) error {
	return nil
}
func (s *stubOrderRepo) ListByStatus(ctx context.Context, status enums.OrderStatus, before time.Time, limit int) ([]models.Order, error) {
	return nil, nil
}

// stubNotificationRepo embeds the interface; only the methods checkout
// actually calls are overridden.
type stubNotificationRepo struct {
	notifications.Repository
	created []*models.Notification
}

func (s *stubNotificationRepo) WithTx(tx *gorm.DB) notifications.Repository { return s }
func (s *stubNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	s.created = append(s.created, notification)
	return nil
}

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{ShippingFee: "50", TaxPercent: "5"}
}

func newTestService(t *testing.T, cartRepo cart.Repository, orderRepo orders.Repository, noteRepo notifications.Repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		TxRunner:         stubTxRunner{},
		CartRepo:         cartRepo,
		OrderRepo:        orderRepo,
		NotificationRepo: noteRepo,
		CheckoutConfig:   testCheckoutConfig(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func testAddress() types.Address {
	return types.Address{Line1: "12 Temple Road", City: "Pune", State: "MH", PostalCode: "411001", Country: "IN"}
}

func TestPlaceOrderRequiresAuth(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubOrderRepo{}, &stubNotificationRepo{})

	_, err := svc.PlaceOrder(context.Background(), uuid.Nil, PlaceOrderRequest{
		Address: testAddress(), PaymentMethod: "cod",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderRequiresAddress(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubOrderRepo{}, &stubNotificationRepo{})

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderRequest{PaymentMethod: "cod"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubOrderRepo{}, &stubNotificationRepo{})

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderRequest{
		Address: testAddress(), PaymentMethod: "wire",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	cartRepo := &stubCartRepo{cart: &models.Cart{ID: uuid.New()}}
	svc := newTestService(t, cartRepo, &stubOrderRepo{}, &stubNotificationRepo{})

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderRequest{
		Address: testAddress(), PaymentMethod: "cod",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderMissingCart(t *testing.T) {
	t.Parallel()

	cartRepo := &stubCartRepo{findErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, cartRepo, &stubOrderRepo{}, &stubNotificationRepo{})

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderRequest{
		Address: testAddress(), PaymentMethod: "cod",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cartID := uuid.New()
	cartRepo := &stubCartRepo{cart: &models.Cart{
		ID:       cartID,
		OwnerKey: cart.OwnerKeyForUser(userID),
		Items: []models.CartItem{
			{ProductID: uuid.New(), ProductName: "Triphala Powder", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		},
	}}
	orderRepo := &stubOrderRepo{}
	noteRepo := &stubNotificationRepo{}
	svc := newTestService(t, cartRepo, orderRepo, noteRepo)

	result, err := svc.PlaceOrder(context.Background(), userID, PlaceOrderRequest{
		ContactPhone:  "+911234567890",
		Address:       testAddress(),
		PaymentMethod: "cod",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != enums.OrderStatusProcessing {
		t.Fatalf("status = %s, want processing", result.Status)
	}
	if result.PaymentMethod != enums.PaymentMethodCOD {
		t.Fatalf("payment method = %s, want cod", result.PaymentMethod)
	}
	if !result.Totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("subtotal = %s, want 200", result.Totals.Subtotal)
	}
	if !result.Totals.Total.Equal(decimal.NewFromInt(260)) {
		t.Fatalf("total = %s, want 260", result.Totals.Total)
	}

	if orderRepo.created == nil || len(orderRepo.created.LineItems) != 1 {
		t.Fatalf("order not created with line items: %+v", orderRepo.created)
	}
	if len(cartRepo.cleared) != 1 || cartRepo.cleared[0] != cartID {
		t.Fatalf("cart not cleared: %v", cartRepo.cleared)
	}
	if len(noteRepo.created) != 1 {
		t.Fatalf("expected placement notification, got %d", len(noteRepo.created))
	}
	note := noteRepo.created[0]
	if note.Type != enums.NotificationTypeOrderUpdate || note.OrderID == nil || *note.OrderID != result.OrderID {
		t.Fatalf("unexpected notification: %+v", note)
	}
}
