package orders

import (
	"context"
	"testing"
	"time"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/pagination"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	findFn         func(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	listFn         func(ctx context.Context, params ListQuery) ([]models.Order, *pagination.Cursor, error)
	updateStatusFn func(ctx context.Context, orderID uuid.UUID, from, to enums.OrderStatus, now time.Time) (bool, error)
}

func (f *fakeOrderRepo) WithTx(tx *gorm.DB) Repository                     { return f }
func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error { return nil }
func (f *fakeOrderRepo) FindByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	return f.findFn(ctx, userID, orderID)
}
func (f *fakeOrderRepo) List(ctx context.Context, params ListQuery) ([]models.Order, *pagination.Cursor, error) {
	return f.listFn(ctx, params)
}
func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.OrderStatus, now time.Time) (bool, error) {
	return f.updateStatusFn(ctx, orderID, from, to, now)
}
func (f *fakeOrderRepo) UpdateTracking(ctx context.Context, orderID uuid.UUID, tracking *types.OrderTracking) error {
	return nil
}
func (f *fakeOrderRepo) ListByStatus(ctx context.Context, status enums.OrderStatus, before time.Time, limit int) ([]models.Order, error) {
	return nil, nil
}

func newServiceWithRepo(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestListRequiresUser(t *testing.T) {
	t.Parallel()

	svc := newServiceWithRepo(t, &fakeOrderRepo{})

	_, err := svc.List(context.Background(), ListParams{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListInvalidCursor(t *testing.T) {
	t.Parallel()

	svc := newServiceWithRepo(t, &fakeOrderRepo{})

	_, err := svc.List(context.Background(), ListParams{UserID: uuid.New(), Cursor: "???"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetByIDScopedToOwner(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepo{
		findFn: func(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newServiceWithRepo(t, repo)

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelProcessingOrder(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	orderID := uuid.New()
	status := enums.OrderStatusProcessing

	repo := &fakeOrderRepo{
		findFn: func(ctx context.Context, uid, oid uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: orderID, UserID: userID, Status: status}, nil
		},
		updateStatusFn: func(ctx context.Context, oid uuid.UUID, from, to enums.OrderStatus, now time.Time) (bool, error) {
			if from != enums.OrderStatusProcessing || to != enums.OrderStatusCancelled {
				t.Fatalf("unexpected transition %s -> %s", from, to)
			}
			status = enums.OrderStatusCancelled
			return true, nil
		},
	}
	svc := newServiceWithRepo(t, repo)

	order, err := svc.Cancel(context.Background(), userID, orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != enums.OrderStatusCancelled {
		t.Fatalf("status = %s, want cancelled", order.Status)
	}
}

func TestCancelShippedOrderConflicts(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepo{
		findFn: func(ctx context.Context, uid, oid uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: oid, UserID: uid, Status: enums.OrderStatusShipped}, nil
		},
	}
	svc := newServiceWithRepo(t, repo)

	_, err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelLosesRaceConflicts(t *testing.T) {
	t.Parallel()

	repo := &fakeOrderRepo{
		findFn: func(ctx context.Context, uid, oid uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: oid, UserID: uid, Status: enums.OrderStatusProcessing}, nil
		},
		updateStatusFn: func(ctx context.Context, oid uuid.UUID, from, to enums.OrderStatus, now time.Time) (bool, error) {
			return false, nil
		},
	}
	svc := newServiceWithRepo(t, repo)

	_, err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTrackingSynthesizesTimeline(t *testing.T) {
	t.Parallel()

	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeOrderRepo{
		findFn: func(ctx context.Context, uid, oid uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: oid, UserID: uid, Status: enums.OrderStatusShipped, CreatedAt: placed}, nil
		},
	}
	svc := newServiceWithRepo(t, repo)
	svc.(*service).now = func() time.Time { return placed.Add(30 * time.Hour) }

	tracking, err := svc.Tracking(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracking.Status != "Shipped" {
		t.Fatalf("status = %q", tracking.Status)
	}
	if !tracking.Stages[2].Completed || !tracking.Stages[2].Current {
		t.Fatalf("shipped stage should be completed and current: %+v", tracking.Stages[2])
	}
}
