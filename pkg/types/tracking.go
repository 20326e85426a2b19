package types

import "time"

// TrackingStage is one step in an order's delivery timeline.
type TrackingStage struct {
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	At        *time.Time `json:"at,omitempty"`
}

// OrderTracking is the synthesized tracking view returned for an order.
type OrderTracking struct {
	Status            string          `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	LastUpdate        time.Time       `json:"last_update"`
	Location          string          `json:"location,omitempty"`
	Lat               *float64        `json:"lat,omitempty"`
	Lng               *float64        `json:"lng,omitempty"`
	Stages            []TrackingStage `json:"stages"`
}
