package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// ProfileDTO is the user profile as served to clients. Preferences are
// always default-filled so the client never sees missing flags.
type ProfileDTO struct {
	ID            uuid.UUID           `json:"id"`
	Email         string              `json:"email"`
	DisplayName   string              `json:"display_name"`
	Phone         *string             `json:"phone,omitempty"`
	Constitution  *enums.Constitution `json:"constitution,omitempty"`
	Address       *types.Address      `json:"address,omitempty"`
	AvatarDataURI *string             `json:"avatar_data_uri,omitempty"`
	Preferences   types.Preferences   `json:"preferences"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ToProfileDTO maps the persistence model to the client-facing profile.
func ToProfileDTO(user *models.User) ProfileDTO {
	return ProfileDTO{
		ID:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		Phone:         user.Phone,
		Constitution:  user.Constitution,
		Address:       user.Address,
		AvatarDataURI: user.AvatarDataURI,
		Preferences:   user.Preferences.Normalize(),
		CreatedAt:     user.CreatedAt,
	}
}
