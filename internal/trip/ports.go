package trip

import (
	"context"

	"travelbuddy/internal/providers"
)

// PlacesProvider — attractions and lodging around a free-text location.
type PlacesProvider interface {
	Attractions(ctx context.Context, location string) ([]providers.Place, error)
	Lodging(ctx context.Context, location string) ([]providers.Place, error)
}

// ListingsProvider — business search (restaurants) in a free-text location.
type ListingsProvider interface {
	Restaurants(ctx context.Context, location, cuisine, price string) ([]providers.Business, error)
}

// WeatherProvider — current conditions and travel-date advisories.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (providers.WeatherReport, error)
	BestTravelDates(ctx context.Context, location, tempPref, precipPref string) (string, error)
}

// Archive — optional write-only turn log. Never read back; live state
// stays in the in-memory stores.
type Archive interface {
	SaveTurn(ctx context.Context, userID, role, content string) error
}

// Service — one planning conversation turn, or a full reset.
type Service interface {
	HandleTurn(ctx context.Context, userID, text string) (string, error)
	Reset(ctx context.Context, userID string)
}
