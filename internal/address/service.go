package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayurnest/ayurnest-backend/pkg/maps"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
)

// SuggestionDTO is one autocomplete result for the checkout address form.
type SuggestionDTO struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// ResolvedAddressDTO is the normalized place a client picked.
type ResolvedAddressDTO struct {
	PlaceID          string        `json:"place_id"`
	FormattedAddress string        `json:"formatted_address"`
	Address          types.Address `json:"address"`
}

type placesClient interface {
	Autocomplete(ctx context.Context, req maps.AutocompleteRequest) ([]maps.AutocompleteSuggestion, error)
	ResolvePlace(ctx context.Context, placeID string) (*maps.PlaceDetails, error)
}

// Service proxies the Places APIs for the delivery-address flow.
type Service interface {
	Autocomplete(ctx context.Context, input, region string) ([]SuggestionDTO, error)
	Resolve(ctx context.Context, placeID string) (*ResolvedAddressDTO, error)
}

type service struct {
	places placesClient
}

// NewService builds an address service backed by the Places client.
func NewService(places placesClient) (Service, error) {
	if places == nil {
		return nil, fmt.Errorf("places client is required")
	}
	return &service{places: places}, nil
}

func (s *service) Autocomplete(ctx context.Context, input, region string) ([]SuggestionDTO, error) {
	req := maps.AutocompleteRequest{Input: input}
	if trimmed := strings.TrimSpace(region); trimmed != "" {
		req.IncludedRegionCodes = []string{trimmed}
	}

	suggestions, err := s.places.Autocomplete(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionDTO{PlaceID: s.PlaceID, Description: s.Description})
	}
	return out, nil
}

func (s *service) Resolve(ctx context.Context, placeID string) (*ResolvedAddressDTO, error) {
	details, err := s.places.ResolvePlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	lat := details.Location.Latitude
	lng := details.Location.Longitude
	addr := types.Address{Lat: &lat, Lng: &lng}
	fillFromComponents(&addr, details.AddressComponents)
	if addr.Line1 == "" {
		addr.Line1 = details.FormattedAddress
	}

	return &ResolvedAddressDTO{
		PlaceID:          details.PlaceID,
		FormattedAddress: details.FormattedAddress,
		Address:          addr,
	}, nil
}

func fillFromComponents(addr *types.Address, components []maps.AddressComponent) {
	var streetNumber, route string
	for _, comp := range components {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.LongName
			case "route":
				route = comp.LongName
			case "sublocality", "sublocality_level_1":
				if addr.Line2 == "" {
					addr.Line2 = comp.LongName
				}
			case "locality":
				addr.City = comp.LongName
			case "administrative_area_level_1":
				addr.State = comp.LongName
			case "postal_code":
				addr.PostalCode = comp.LongName
			case "country":
				addr.Country = comp.LongName
			}
		}
	}
	addr.Line1 = strings.TrimSpace(strings.Join([]string{streetNumber, route}, " "))
}
