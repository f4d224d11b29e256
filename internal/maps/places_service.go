// README: Google Places lookups for itinerary destinations.
package maps

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

// maxPlaces caps one lookup's results; itinerary context never needs more.
const maxPlaces = 3

// Place is a simplified location result for itinerary enrichment.
type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float32 `json:"rating"`
	MapsURL string  `json:"maps_url"`
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Lookup resolves a free-text query ("rooftop bars in Lisbon") to the top
// matching places.
func (s *PlacesService) Lookup(ctx context.Context, query string) ([]Place, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Place, 0, maxPlaces)
	for _, r := range resp.Results {
		out = append(out, Place{
			Name:    r.Name,
			Address: r.FormattedAddress,
			Rating:  r.Rating,
			MapsURL: placeURL(r.PlaceID),
		})
		if len(out) == maxPlaces {
			break
		}
	}
	return out, nil
}

func placeURL(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(placeID)
}
