package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayurnest/ayurnest-backend/internal/products"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerKeyForUser builds the cart owner key for an authenticated user.
func OwnerKeyForUser(userID uuid.UUID) string {
	return "user:" + userID.String()
}

// OwnerKeyForToken builds the cart owner key for an anonymous cart token.
func OwnerKeyForToken(token string) string {
	return "anon:" + strings.TrimSpace(token)
}

// Service exposes cart operations keyed by owner.
type Service interface {
	Get(ctx context.Context, ownerKey string) (DTO, error)
	AddItem(ctx context.Context, ownerKey string, userID *uuid.UUID, productID uuid.UUID, quantity int) (DTO, error)
	SetQuantity(ctx context.Context, ownerKey string, productID uuid.UUID, quantity int) (DTO, error)
	RemoveItem(ctx context.Context, ownerKey string, productID uuid.UUID) (DTO, error)
	Clear(ctx context.Context, ownerKey string) error
}

type service struct {
	repo     Repository
	products products.Repository
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo    Repository
	ProductRepo products.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{repo: params.CartRepo, products: params.ProductRepo}, nil
}

// Get returns the cart with derived totals; an unknown owner gets an empty cart.
func (s *service) Get(ctx context.Context, ownerKey string) (DTO, error) {
	if err := validateOwnerKey(ownerKey); err != nil {
		return DTO{}, err
	}
	cart, err := s.repo.FindByOwnerKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToDTO(&models.Cart{}), nil
		}
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return ToDTO(cart), nil
}

// AddItem snapshots the product and merges the line by product id.
func (s *service) AddItem(ctx context.Context, ownerKey string, userID *uuid.UUID, productID uuid.UUID, quantity int) (DTO, error) {
	if err := validateOwnerKey(ownerKey); err != nil {
		return DTO{}, err
	}
	if productID == uuid.Nil {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	cart, err := s.repo.GetOrCreate(ctx, ownerKey, userID)
	if err != nil {
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	item := &models.CartItem{
		CartID:      cart.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}

	return s.Get(ctx, ownerKey)
}

// SetQuantity updates a line; zero or negative quantity removes it.
func (s *service) SetQuantity(ctx context.Context, ownerKey string, productID uuid.UUID, quantity int) (DTO, error) {
	if err := validateOwnerKey(ownerKey); err != nil {
		return DTO{}, err
	}
	if productID == uuid.Nil {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	cart, err := s.mustFind(ctx, ownerKey)
	if err != nil {
		return DTO{}, err
	}

	found, err := s.repo.SetQuantity(ctx, cart.ID, productID, quantity)
	if err != nil {
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set cart quantity")
	}
	if !found && quantity > 0 {
		return DTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	return s.Get(ctx, ownerKey)
}

// RemoveItem drops the line regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, ownerKey string, productID uuid.UUID) (DTO, error) {
	if err := validateOwnerKey(ownerKey); err != nil {
		return DTO{}, err
	}
	cart, err := s.mustFind(ctx, ownerKey)
	if err != nil {
		return DTO{}, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return DTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return s.Get(ctx, ownerKey)
}

// Clear empties the cart; clearing a cart that never existed is a no-op.
func (s *service) Clear(ctx context.Context, ownerKey string) error {
	if err := validateOwnerKey(ownerKey); err != nil {
		return err
	}
	cart, err := s.repo.FindByOwnerKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if err := s.repo.Clear(ctx, cart.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) mustFind(ctx context.Context, ownerKey string) (*models.Cart, error) {
	cart, err := s.repo.FindByOwnerKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart is empty")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

func validateOwnerKey(ownerKey string) error {
	trimmed := strings.TrimSpace(ownerKey)
	if trimmed == "" || trimmed == "user:" || trimmed == "anon:" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart owner is required")
	}
	return nil
}
