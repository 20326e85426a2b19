package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/google/uuid"
)

// SubmitFeedbackRequest carries an app rating submission.
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required,max=2000"`
}

// SubmitSupportRequest carries a help desk submission.
type SubmitSupportRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}

// Service exposes feedback and support submissions for authenticated users.
type Service interface {
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req SubmitFeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error)
	SubmitSupportRequest(ctx context.Context, userID uuid.UUID, req SubmitSupportRequest) (*models.SupportRequest, error)
	ListSupportRequests(ctx context.Context, userID uuid.UUID) ([]models.SupportRequest, error)
}

type service struct {
	repo *Repository
}

// NewService builds a feedback service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("feedback repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) SubmitFeedback(ctx context.Context, userID uuid.UUID, req SubmitFeedbackRequest) (*models.Feedback, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	row := &models.Feedback{
		UserID:  userID,
		Rating:  req.Rating,
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.repo.CreateFeedback(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create feedback")
	}
	return row, nil
}

func (s *service) ListFeedback(ctx context.Context, userID uuid.UUID) ([]models.Feedback, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListFeedback(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list feedback")
	}
	return rows, nil
}

func (s *service) SubmitSupportRequest(ctx context.Context, userID uuid.UUID, req SubmitSupportRequest) (*models.SupportRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	row := &models.SupportRequest{
		UserID:  userID,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if row.Subject == "" || row.Message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject and message are required")
	}
	if err := s.repo.CreateSupportRequest(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create support request")
	}
	return row, nil
}

func (s *service) ListSupportRequests(ctx context.Context, userID uuid.UUID) ([]models.SupportRequest, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListSupportRequests(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list support requests")
	}
	return rows, nil
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return nil
}
