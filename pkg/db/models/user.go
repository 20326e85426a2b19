package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// User represents the canonical identity entity. Constitution is nil until
// the user saves a quiz result or picks a type on their profile.
type User struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email         string              `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash  string              `gorm:"column:password_hash;not null"`
	DisplayName   string              `gorm:"column:display_name;not null"`
	Phone         *string             `gorm:"column:phone"`
	Constitution  *enums.Constitution `gorm:"column:constitution;type:constitution"`
	Address       *types.Address      `gorm:"column:address;type:jsonb;serializer:json"`
	AvatarDataURI *string             `gorm:"column:avatar_data_uri;type:text"`
	Preferences   types.Preferences   `gorm:"column:preferences;type:jsonb;serializer:json"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true"`
	LastLoginAt   *time.Time          `gorm:"column:last_login_at"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
