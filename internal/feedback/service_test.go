package feedback

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
)

func setupFeedbackTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE IF NOT EXISTS feedbacks (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  user_id TEXT NOT NULL,
  rating INTEGER NOT NULL,
  message TEXT NOT NULL,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS support_requests (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  user_id TEXT NOT NULL,
  subject TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at DATETIME
);`}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newTestFeedbackService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupFeedbackTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestSubmitFeedbackRequiresAuth(t *testing.T) {
	svc := newTestFeedbackService(t)

	_, err := svc.SubmitFeedback(context.Background(), uuid.Nil, SubmitFeedbackRequest{Rating: 5, Message: "great"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestSubmitFeedbackRatingRange(t *testing.T) {
	svc := newTestFeedbackService(t)
	userID := uuid.New()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitFeedback(context.Background(), userID, SubmitFeedbackRequest{Rating: rating, Message: "x"})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, "rating %d", rating)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code(), "rating %d", rating)
	}
}

func TestSubmitAndListFeedback(t *testing.T) {
	svc := newTestFeedbackService(t)
	userID := uuid.New()

	row, err := svc.SubmitFeedback(context.Background(), userID, SubmitFeedbackRequest{
		Rating:  4,
		Message: "  love the routines  ",
	})
	require.NoError(t, err)
	require.Equal(t, "love the routines", row.Message)

	rows, err := svc.ListFeedback(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 4, rows[0].Rating)

	// Another user's listing stays empty.
	other, err := svc.ListFeedback(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestSubmitSupportRequestRequiresContent(t *testing.T) {
	svc := newTestFeedbackService(t)

	_, err := svc.SubmitSupportRequest(context.Background(), uuid.New(), SubmitSupportRequest{Subject: "  ", Message: "help"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSubmitAndListSupportRequests(t *testing.T) {
	svc := newTestFeedbackService(t)
	userID := uuid.New()

	_, err := svc.SubmitSupportRequest(context.Background(), userID, SubmitSupportRequest{
		Subject: "Order delayed",
		Message: "My order has been processing for a week.",
	})
	require.NoError(t, err)

	rows, err := svc.ListSupportRequests(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Order delayed", rows[0].Subject)
}
