package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the (user, product) membership row behind the favorites set.
type Favorite struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
