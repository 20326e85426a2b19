package orders

import (
	"time"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// The delivery timeline is a fixed five-stage sequence. When no explicit
// tracking record exists the stage timestamps are synthesized from the
// order's creation time with fixed offsets.
var timelineStages = []struct {
	label  string
	offset time.Duration
	status enums.OrderStatus
}{
	{label: "Order placed", offset: 0, status: enums.OrderStatusProcessing},
	{label: "Order confirmed", offset: 2 * time.Hour, status: enums.OrderStatusProcessing},
	{label: "Shipped", offset: 24 * time.Hour, status: enums.OrderStatusShipped},
	{label: "Out for delivery", offset: 72 * time.Hour, status: enums.OrderStatusOutForDelivery},
	{label: "Delivered", offset: 96 * time.Hour, status: enums.OrderStatusDelivered},
}

// estimatedDeliveryOffset is how far past placement we promise delivery.
const estimatedDeliveryOffset = 96 * time.Hour

// Timeline returns the tracking view for an order. A stored tracking record
// wins; otherwise the five stages are synthesized from status and creation
// time. Cancelled orders report no remaining stages as pending.
func Timeline(order *models.Order, now time.Time) types.OrderTracking {
	if order.Tracking != nil {
		return *order.Tracking
	}

	reached := stageIndexFor(order.Status)
	eta := order.CreatedAt.Add(estimatedDeliveryOffset)

	stages := make([]types.TrackingStage, 0, len(timelineStages))
	lastUpdate := order.CreatedAt
	for i, stage := range timelineStages {
		completed := i <= reached
		at := (*time.Time)(nil)
		if completed {
			t := order.CreatedAt.Add(stage.offset)
			if t.After(now) {
				t = now
			}
			at = &t
			lastUpdate = t
		}
		stages = append(stages, types.TrackingStage{
			Label:     stage.label,
			Completed: completed,
			Current:   i == reached && order.Status != enums.OrderStatusDelivered,
			At:        at,
		})
	}

	tracking := types.OrderTracking{
		Status:     statusLabel(order.Status),
		LastUpdate: lastUpdate,
		Stages:     stages,
	}

	if order.Status == enums.OrderStatusCancelled {
		if order.CancelledAt != nil {
			tracking.LastUpdate = *order.CancelledAt
		}
		// Cancelled orders keep only the stages actually reached.
		for i := range tracking.Stages {
			tracking.Stages[i].Current = false
		}
		return tracking
	}

	if !order.Status.IsTerminal() {
		tracking.EstimatedDelivery = &eta
	}
	return tracking
}

func stageIndexFor(status enums.OrderStatus) int {
	switch status {
	case enums.OrderStatusProcessing:
		return 1
	case enums.OrderStatusShipped:
		return 2
	case enums.OrderStatusOutForDelivery:
		return 3
	case enums.OrderStatusDelivered:
		return 4
	default:
		return 0
	}
}

func statusLabel(status enums.OrderStatus) string {
	switch status {
	case enums.OrderStatusProcessing:
		return "Processing"
	case enums.OrderStatusShipped:
		return "Shipped"
	case enums.OrderStatusOutForDelivery:
		return "Out for delivery"
	case enums.OrderStatusDelivered:
		return "Delivered"
	case enums.OrderStatusCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}
