package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/pagination"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParams configures the order history listing.
type ListParams struct {
	UserID uuid.UUID
	Limit  int
	Cursor string
}

// ListResult wraps an order history page and the cursor for the next page.
type ListResult struct {
	Items  []models.Order `json:"items"`
	Cursor string         `json:"cursor"`
}

// Service exposes order history, tracking, and cancellation.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	Tracking(ctx context.Context, userID, orderID uuid.UUID) (types.OrderTracking, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	query := ListQuery{UserID: params.UserID, Limit: params.Limit}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	items, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{Items: items, Cursor: cursor}, nil
}

// GetByID loads an order scoped to its owner; foreign ids read as missing.
func (s *service) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	order, err := s.repo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

// Tracking returns the stored or synthesized delivery timeline.
func (s *service) Tracking(ctx context.Context, userID, orderID uuid.UUID) (types.OrderTracking, error) {
	order, err := s.GetByID(ctx, userID, orderID)
	if err != nil {
		return types.OrderTracking{}, err
	}
	return Timeline(order, s.now()), nil
}

// Cancel refuses anything past processing.
func (s *service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != enums.OrderStatusProcessing {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order can no longer be cancelled")
	}

	updated, err := s.repo.UpdateStatus(ctx, order.ID, enums.OrderStatusProcessing, enums.OrderStatusCancelled, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel order")
	}
	if !updated {
		// Lost the race against a status advance.
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order can no longer be cancelled")
	}

	return s.GetByID(ctx, userID, orderID)
}
