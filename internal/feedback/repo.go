package feedback

import (
	"context"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates feedback and support-request persistence. Both
// tables are append-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a feedback repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *Repository) ListFeedback(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) CreateSupportRequest(ctx context.Context, request *models.SupportRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *Repository) ListSupportRequests(ctx context.Context, userID uuid.UUID) ([]models.SupportRequest, error) {
	var rows []models.SupportRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
