package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/ayurnest/ayurnest-backend/internal/notifications"
	"github.com/ayurnest/ayurnest-backend/internal/orders"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const trackingBatchLimit = 200

type statusTransition struct {
	from     enums.OrderStatus
	to       enums.OrderStatus
	after    time.Duration
	title    string
	detail   string
	location string
}

// statusTransitions drives the simulated fulfilment pipeline. An order moves
// to the next status once it has spent long enough past placement, matching
// the offsets the tracking timeline advertises.
var statusTransitions = []statusTransition{
	{
		from:     enums.OrderStatusProcessing,
		to:       enums.OrderStatusShipped,
		after:    24 * time.Hour,
		title:    "Order shipped",
		detail:   "Your order has left our warehouse.",
		location: "Fulfilment centre",
	},
	{
		from:     enums.OrderStatusShipped,
		to:       enums.OrderStatusOutForDelivery,
		after:    72 * time.Hour,
		title:    "Out for delivery",
		detail:   "Your order is out for delivery today.",
		location: "Local delivery hub",
	},
	{
		from:     enums.OrderStatusOutForDelivery,
		to:       enums.OrderStatusDelivered,
		after:    96 * time.Hour,
		title:    "Order delivered",
		detail:   "Your order has been delivered. Enjoy!",
		location: "Delivery address",
	},
}

// OrderTrackingJobParams configure the status advancement job.
type OrderTrackingJobParams struct {
	Logger           *logger.Logger
	DB               txRunner
	OrderRepo        orders.Repository
	NotificationRepo notifications.Repository
}

// NewOrderTrackingJob builds the cron job that walks orders through the
// fulfilment stages and notifies their owners.
func NewOrderTrackingJob(params OrderTrackingJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db runner required")
	}
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.NotificationRepo == nil {
		return nil, fmt.Errorf("notification repository required")
	}
	return &orderTrackingJob{
		logg:          params.Logger,
		db:            params.DB,
		orderRepo:     params.OrderRepo,
		notifications: params.NotificationRepo,
		now:           time.Now,
	}, nil
}

type orderTrackingJob struct {
	logg          *logger.Logger
	db            txRunner
	orderRepo     orders.Repository
	notifications notifications.Repository
	now           func() time.Time
}

func (j *orderTrackingJob) Name() string { return "order-tracking" }

func (j *orderTrackingJob) Run(ctx context.Context) error {
	var errs []error
	for _, transition := range statusTransitions {
		if err := j.advance(ctx, transition); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func (j *orderTrackingJob) advance(ctx context.Context, transition statusTransition) error {
	now := j.now().UTC()
	cutoff := now.Add(-transition.after)

	due, err := j.orderRepo.ListByStatus(ctx, transition.from, cutoff, trackingBatchLimit)
	if err != nil {
		return fmt.Errorf("list %s orders: %w", transition.from, err)
	}

	advanced := 0
	for _, order := range due {
		if err := j.advanceOrder(ctx, order, transition, now); err != nil {
			return fmt.Errorf("advance order %s: %w", order.ID, err)
		}
		advanced++
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"from":  string(transition.from),
		"to":    string(transition.to),
		"count": advanced,
	})
	j.logg.Info(logCtx, "order status advancement complete")
	return nil
}

func (j *orderTrackingJob) advanceOrder(ctx context.Context, order models.Order, transition statusTransition, now time.Time) error {
	return j.db.WithTx(ctx, func(tx *gorm.DB) error {
		orderRepo := j.orderRepo.WithTx(tx)
		updated, err := orderRepo.UpdateStatus(ctx, order.ID, transition.from, transition.to, now)
		if err != nil {
			return err
		}
		// A cancel or a concurrent worker beat us; skip quietly.
		if !updated {
			return nil
		}

		// Persist the tracking view for the new status so reads serve the
		// recorded stage rather than re-deriving it.
		reached := order
		reached.Status = transition.to
		reached.Tracking = nil
		tracking := orders.Timeline(&reached, now)
		tracking.Location = transition.location
		if err := orderRepo.UpdateTracking(ctx, order.ID, &tracking); err != nil {
			return err
		}

		notification := &models.Notification{
			UserID:  order.UserID,
			Type:    enums.NotificationTypeOrderUpdate,
			Title:   transition.title,
			Body:    transition.detail,
			OrderID: &order.ID,
		}
		return j.notifications.WithTx(tx).Create(ctx, notification)
	})
}
