package products

import (
	"context"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for the product catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, params ListQuery) ([]models.Product, *pagination.Cursor, error)
	Upsert(ctx context.Context, product *models.Product) error
}

// ListQuery filters and paginates the catalog listing.
type ListQuery struct {
	Category *enums.ProductCategory
	Limit    int
	Cursor   *pagination.Cursor
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a product repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ? AND is_active", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ? AND is_active", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repositoryImpl) List(ctx context.Context, params ListQuery) ([]models.Product, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active")
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var products []models.Product
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, nil, err
	}

	if len(products) > normalized {
		next := products[normalized]
		products = products[:normalized]
		return products, &pagination.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return products, nil, nil
}

// Upsert inserts a product or refreshes an existing row by name, used by
// the catalog seeder.
func (r *repositoryImpl) Upsert(ctx context.Context, product *models.Product) error {
	var existing models.Product
	err := r.db.WithContext(ctx).First(&existing, "name = ?", product.Name).Error
	switch {
	case err == nil:
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(product).Error
	case err == gorm.ErrRecordNotFound:
		return r.db.WithContext(ctx).Create(product).Error
	default:
		return err
	}
}
