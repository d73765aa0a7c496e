package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Business — one flattened business-listings record.
type Business struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Price      string   `json:"price,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// YelpClient talks to the Yelp Fusion business search API.
type YelpClient struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewYelpClient() *YelpClient {
	return &YelpClient{
		baseURL: "https://api.yelp.com/v3",
		key:     strings.TrimSpace(os.Getenv("YELP_API_KEY")),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

const searchLimit = 5

// Restaurants searches restaurants in a location, optionally filtered by
// cuisine category and price level ("1"-"4", comma-delimited).
func (c *YelpClient) Restaurants(ctx context.Context, location, cuisine, price string) ([]Business, error) {
	categories := cuisine
	if categories == "" {
		categories = "restaurants"
	}
	return c.search(ctx, "restaurants", location, categories, price)
}

// Activities searches activity businesses in a location.
func (c *YelpClient) Activities(ctx context.Context, location string) ([]Business, error) {
	return c.search(ctx, "activities", location, "active,arts,tours", "")
}

func (c *YelpClient) search(ctx context.Context, term, location, categories, price string) ([]Business, error) {
	if c.key == "" {
		return nil, errors.New("yelp: YELP_API_KEY not set")
	}

	q := url.Values{}
	q.Set("term", term)
	q.Set("location", location)
	q.Set("categories", categories)
	q.Set("limit", strconv.Itoa(searchLimit))
	if price != "" {
		q.Set("price", price)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/businesses/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, errors.New("yelp: api error " + resp.Status)
	}

	var body struct {
		Businesses []struct {
			Name       string  `json:"name"`
			Rating     float64 `json:"rating"`
			Price      string  `json:"price"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"businesses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	out := make([]Business, 0, len(body.Businesses))
	for _, b := range body.Businesses {
		biz := Business{Name: b.Name, Rating: b.Rating, Price: b.Price}
		for _, cat := range b.Categories {
			biz.Categories = append(biz.Categories, cat.Title)
		}
		out = append(out, biz)
	}
	return out, nil
}
