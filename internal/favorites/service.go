package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayurnest/ayurnest-backend/internal/products"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	FavoritesRepo *Repository
	ProductRepo   products.Repository
}

// Service exposes business rules for the favorites set.
type Service interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListProducts(ctx context.Context, userID uuid.UUID) ([]models.Product, error)
}

type service struct {
	repo     *Repository
	products products.Repository
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.FavoritesRepo == nil {
		return nil, fmt.Errorf("favorites repository is required")
	}
	if params.ProductRepo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{repo: params.FavoritesRepo, products: params.ProductRepo}, nil
}

// Add ensures the product exists and records the favorite; re-adding is a no-op.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add favorite")
	}
	return nil
}

// Remove drops the favorite regardless of prior state.
func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove favorite")
	}
	return nil
}

// ListProductIDs returns the favorited product-id set.
func (s *service) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	ids, err := s.repo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	return ids, nil
}

// ListProducts hydrates the favorited ids into full catalog rows.
func (s *service) ListProducts(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	ids, err := s.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load favorite products")
	}
	return items, nil
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return nil
}
