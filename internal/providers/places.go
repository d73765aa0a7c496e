package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Place — one flattened places-provider record.
type Place struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}

// PlacesClient talks to the Google Maps Places API.
type PlacesClient struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewPlacesClient() *PlacesClient {
	return &PlacesClient{
		baseURL: "https://maps.googleapis.com/maps/api",
		key:     strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

const nearbyRadiusMeters = 5000

// Attractions returns tourist attractions near a free-text location.
func (c *PlacesClient) Attractions(ctx context.Context, location string) ([]Place, error) {
	return c.nearby(ctx, location, "tourist_attraction")
}

// Lodging returns hotels and similar lodging near a free-text location.
func (c *PlacesClient) Lodging(ctx context.Context, location string) ([]Place, error) {
	return c.nearby(ctx, location, "lodging")
}

func (c *PlacesClient) nearby(ctx context.Context, location, placeType string) ([]Place, error) {
	lat, lng, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprint(nearbyRadiusMeters))
	q.Set("type", placeType)
	q.Set("key", c.key)

	var resp struct {
		Results []struct {
			Name     string  `json:"name"`
			Rating   float64 `json:"rating"`
			Vicinity string  `json:"vicinity"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/place/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		return nil, errors.New("places: nearby search status " + resp.Status)
	}

	out := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, Place{Name: r.Name, Rating: r.Rating, Address: r.Vicinity})
	}
	return out, nil
}

// geocode converts a free-text location to coordinates of its first match.
func (c *PlacesClient) geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.key)

	var resp struct {
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/geocode/json", q, &resp); err != nil {
		return 0, 0, err
	}
	if len(resp.Results) == 0 {
		return 0, 0, errors.New("places: could not geocode location")
	}

	loc := resp.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.key == "" {
		return errors.New("places: GOOGLE_MAPS_API_KEY not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.New("places: api error " + resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
