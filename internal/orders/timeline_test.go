package orders

import (
	"testing"
	"time"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

func TestTimelineProcessing(t *testing.T) {
	t.Parallel()

	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := placed.Add(12 * time.Hour)
	order := &models.Order{Status: enums.OrderStatusProcessing, CreatedAt: placed}

	tracking := Timeline(order, now)

	if tracking.Status != "Processing" {
		t.Fatalf("status = %q", tracking.Status)
	}
	if len(tracking.Stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(tracking.Stages))
	}
	// Placed and confirmed are reached, shipping onward is pending.
	if !tracking.Stages[0].Completed || !tracking.Stages[1].Completed {
		t.Fatalf("first two stages should be completed: %+v", tracking.Stages)
	}
	if tracking.Stages[2].Completed {
		t.Fatal("shipped stage should not be completed yet")
	}
	if !tracking.Stages[1].Current {
		t.Fatal("confirmed stage should be current")
	}
	if tracking.EstimatedDelivery == nil || !tracking.EstimatedDelivery.Equal(placed.Add(96*time.Hour)) {
		t.Fatalf("unexpected eta: %v", tracking.EstimatedDelivery)
	}
	if tracking.Stages[1].At == nil || !tracking.Stages[1].At.Equal(placed.Add(2*time.Hour)) {
		t.Fatalf("confirmed timestamp = %v", tracking.Stages[1].At)
	}
}

func TestTimelineStageTimesCappedAtNow(t *testing.T) {
	t.Parallel()

	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := placed.Add(30 * time.Minute)
	order := &models.Order{Status: enums.OrderStatusProcessing, CreatedAt: placed}

	tracking := Timeline(order, now)

	// The confirmed offset lies in the future, so the timestamp clamps to now.
	if tracking.Stages[1].At == nil || !tracking.Stages[1].At.Equal(now) {
		t.Fatalf("confirmed timestamp = %v, want %v", tracking.Stages[1].At, now)
	}
}

func TestTimelineDelivered(t *testing.T) {
	t.Parallel()

	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &models.Order{Status: enums.OrderStatusDelivered, CreatedAt: placed}

	tracking := Timeline(order, placed.Add(200*time.Hour))

	for i, stage := range tracking.Stages {
		if !stage.Completed {
			t.Fatalf("stage %d should be completed", i)
		}
		if stage.Current {
			t.Fatalf("delivered orders have no current stage, stage %d is current", i)
		}
	}
	if tracking.EstimatedDelivery != nil {
		t.Fatal("terminal orders should not advertise an eta")
	}
}

func TestTimelineCancelled(t *testing.T) {
	t.Parallel()

	placed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cancelled := placed.Add(5 * time.Hour)
	order := &models.Order{
		Status:      enums.OrderStatusCancelled,
		CreatedAt:   placed,
		CancelledAt: &cancelled,
	}

	tracking := Timeline(order, placed.Add(10*time.Hour))

	if tracking.Status != "Cancelled" {
		t.Fatalf("status = %q", tracking.Status)
	}
	if !tracking.LastUpdate.Equal(cancelled) {
		t.Fatalf("last update = %v, want cancellation time", tracking.LastUpdate)
	}
	if tracking.EstimatedDelivery != nil {
		t.Fatal("cancelled orders should not advertise an eta")
	}
	for i, stage := range tracking.Stages {
		if stage.Current {
			t.Fatalf("cancelled orders have no current stage, stage %d is current", i)
		}
	}
}

func TestTimelineStoredTrackingWins(t *testing.T) {
	t.Parallel()

	stored := &types.OrderTracking{
		Status:   "Shipped",
		Location: "Mumbai hub",
		Stages:   []types.TrackingStage{{Label: "Shipped", Completed: true}},
	}
	order := &models.Order{
		Status:    enums.OrderStatusShipped,
		Tracking:  stored,
		CreatedAt: time.Now(),
	}

	tracking := Timeline(order, time.Now())

	if tracking.Location != "Mumbai hub" || len(tracking.Stages) != 1 {
		t.Fatalf("expected stored tracking to be returned verbatim: %+v", tracking)
	}
}
