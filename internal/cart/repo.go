package cart

import (
	"context"
	"errors"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes persistence helpers for carts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetOrCreate(ctx context.Context, ownerKey string, userID *uuid.UUID) (*models.Cart, error)
	FindByOwnerKey(ctx context.Context, ownerKey string) (*models.Cart, error)
	AddItem(ctx context.Context, item *models.CartItem) error
	SetQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error)
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error
	Clear(ctx context.Context, cartID uuid.UUID) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a cart repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) GetOrCreate(ctx context.Context, ownerKey string, userID *uuid.UUID) (*models.Cart, error) {
	cart, err := r.FindByOwnerKey(ctx, ownerKey)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &models.Cart{OwnerKey: ownerKey, UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_key"}},
			DoNothing: true,
		}).
		Create(fresh).Error; err != nil {
		return nil, err
	}
	// Re-read so a concurrent create still resolves to the winning row.
	return r.FindByOwnerKey(ctx, ownerKey)
}

func (r *repositoryImpl) FindByOwnerKey(ctx context.Context, ownerKey string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&cart, "owner_key = ?", ownerKey).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem inserts the line or folds the quantity into the existing one.
func (r *repositoryImpl) AddItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(item).Error
}

// SetQuantity updates the line quantity; zero or below deletes the line.
// Returns false when no line existed for the product.
func (r *repositoryImpl) SetQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		result := r.db.WithContext(ctx).
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			Delete(&models.CartItem{})
		return result.RowsAffected > 0, result.Error
	}

	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumn("quantity", quantity)
	return result.RowsAffected > 0, result.Error
}

func (r *repositoryImpl) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *repositoryImpl) Clear(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
