package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProfileRequest is a partial update; nil fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName   *string            `json:"display_name,omitempty" validate:"omitempty,min=2,max=80"`
	Phone         *string            `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address       *types.Address     `json:"address,omitempty"`
	AvatarDataURI *string            `json:"avatar_data_uri,omitempty"`
	Preferences   *types.Preferences `json:"preferences,omitempty"`
}

// Service exposes profile management for the authenticated user.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (ProfileDTO, error)
	SaveConstitution(ctx context.Context, userID uuid.UUID, constitution enums.Constitution) (ProfileDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a profile service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (ProfileDTO, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return ProfileDTO{}, err
	}
	return ToProfileDTO(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (ProfileDTO, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return ProfileDTO{}, err
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return ProfileDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "display name cannot be empty")
		}
		user.DisplayName = name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			user.Phone = nil
		} else {
			user.Phone = &phone
		}
	}
	if req.Address != nil {
		if req.Address.IsZero() {
			user.Address = nil
		} else {
			addr := *req.Address
			user.Address = &addr
		}
	}
	if req.AvatarDataURI != nil {
		uri := strings.TrimSpace(*req.AvatarDataURI)
		switch {
		case uri == "":
			user.AvatarDataURI = nil
		case !strings.HasPrefix(uri, "data:image/"):
			return ProfileDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "avatar must be an inline image data URI")
		default:
			user.AvatarDataURI = &uri
		}
	}
	if req.Preferences != nil {
		user.Preferences = user.Preferences.Merge(*req.Preferences)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return ProfileDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	return ToProfileDTO(user), nil
}

func (s *service) SaveConstitution(ctx context.Context, userID uuid.UUID, constitution enums.Constitution) (ProfileDTO, error) {
	if !constitution.IsValid() {
		return ProfileDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown constitution")
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return ProfileDTO{}, err
	}

	user.Constitution = &constitution
	if err := s.repo.Update(ctx, user); err != nil {
		return ProfileDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save constitution")
	}
	return ToProfileDTO(user), nil
}

func (s *service) load(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	return user, nil
}
