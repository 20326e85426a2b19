package types

import "strings"

// Address is the shipping destination captured at checkout and stored on
// the user profile. Lat/Lng are filled only when the address came through
// the Places resolver.
type Address struct {
	Line1      string   `json:"line1" validate:"required"`
	Line2      string   `json:"line2,omitempty"`
	City       string   `json:"city" validate:"required"`
	State      string   `json:"state" validate:"required"`
	PostalCode string   `json:"postal_code" validate:"required"`
	Country    string   `json:"country,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// IsZero reports whether no address fields were provided at all.
func (a Address) IsZero() bool {
	return a.Line1 == "" && a.Line2 == "" && a.City == "" &&
		a.State == "" && a.PostalCode == "" && a.Country == ""
}

// Oneline renders the address as a single display string.
func (a Address) Oneline() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
