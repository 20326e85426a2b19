package types

// Preferences holds per-user app settings. All fields are pointers so we
// can tell "unset" apart from "explicitly false" when merging partial
// updates; Normalize fills whatever the client omitted with defaults.
type Preferences struct {
	DarkTheme          *bool `json:"dark_theme,omitempty"`
	OrderUpdates       *bool `json:"order_updates,omitempty"`
	WellnessTips       *bool `json:"wellness_tips,omitempty"`
	PromotionalOffers  *bool `json:"promotional_offers,omitempty"`
	EmailNotifications *bool `json:"email_notifications,omitempty"`
}

func boolPtr(v bool) *bool { return &v }

// Normalize returns a copy with every nil field replaced by its default.
// Dark theme and promotional offers default off, the rest default on.
func (p Preferences) Normalize() Preferences {
	out := p
	if out.DarkTheme == nil {
		out.DarkTheme = boolPtr(false)
	}
	if out.OrderUpdates == nil {
		out.OrderUpdates = boolPtr(true)
	}
	if out.WellnessTips == nil {
		out.WellnessTips = boolPtr(true)
	}
	if out.PromotionalOffers == nil {
		out.PromotionalOffers = boolPtr(false)
	}
	if out.EmailNotifications == nil {
		out.EmailNotifications = boolPtr(true)
	}
	return out
}

// Merge overlays the non-nil fields of patch onto p and returns the result.
func (p Preferences) Merge(patch Preferences) Preferences {
	out := p
	if patch.DarkTheme != nil {
		out.DarkTheme = patch.DarkTheme
	}
	if patch.OrderUpdates != nil {
		out.OrderUpdates = patch.OrderUpdates
	}
	if patch.WellnessTips != nil {
		out.WellnessTips = patch.WellnessTips
	}
	if patch.PromotionalOffers != nil {
		out.PromotionalOffers = patch.PromotionalOffers
	}
	if patch.EmailNotifications != nil {
		out.EmailNotifications = patch.EmailNotifications
	}
	return out
}
