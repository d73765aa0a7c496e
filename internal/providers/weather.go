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

// WeatherReport — flattened current conditions for one location.
type WeatherReport struct {
	Location      string  `json:"location"`
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feelslike"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     int     `json:"wind_speed"`
}

// WeatherClient talks to the WeatherStack current/historical weather API.
type WeatherClient struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewWeatherClient() *WeatherClient {
	return &WeatherClient{
		baseURL: "http://api.weatherstack.com",
		key:     strings.TrimSpace(os.Getenv("WEATHER_STACK_API_KEY")),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches current conditions for a free-text location, metric units.
func (c *WeatherClient) Current(ctx context.Context, location string) (WeatherReport, error) {
	q := url.Values{}
	q.Set("query", location)
	return c.fetch(ctx, "/current", q)
}

// Historical fetches conditions for a location on a specific date (YYYY-MM-DD).
func (c *WeatherClient) Historical(ctx context.Context, location, date string) (WeatherReport, error) {
	q := url.Values{}
	q.Set("query", location)
	q.Set("historical_date", date)
	return c.fetch(ctx, "/historical", q)
}

// BestTravelDates fetches current conditions and turns them into a travel
// recommendation for the given weather preferences.
func (c *WeatherClient) BestTravelDates(ctx context.Context, location, tempPref, precipPref string) (string, error) {
	report, err := c.Current(ctx, location)
	if err != nil {
		return "", err
	}
	return Advise(report, tempPref, precipPref), nil
}

func (c *WeatherClient) fetch(ctx context.Context, path string, q url.Values) (WeatherReport, error) {
	if c.key == "" {
		return WeatherReport{}, errors.New("weather: WEATHER_STACK_API_KEY not set")
	}

	q.Set("access_key", c.key)
	q.Set("units", "m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return WeatherReport{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return WeatherReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return WeatherReport{}, errors.New("weather: api error " + resp.Status)
	}

	// WeatherStack reports failures inside a 200 body.
	var body struct {
		Error *struct {
			Info string `json:"info"`
		} `json:"error"`
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Current *struct {
			Temperature         int      `json:"temperature"`
			FeelsLike           int      `json:"feelslike"`
			WeatherDescriptions []string `json:"weather_descriptions"`
			Humidity            int      `json:"humidity"`
			Precip              float64  `json:"precip"`
			WindSpeed           int      `json:"wind_speed"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return WeatherReport{}, err
	}
	if body.Error != nil {
		return WeatherReport{}, errors.New("weather: " + body.Error.Info)
	}
	if body.Current == nil {
		return WeatherReport{}, errors.New("weather: no current data in response")
	}

	report := WeatherReport{
		Location:      body.Location.Name,
		Temperature:   body.Current.Temperature,
		FeelsLike:     body.Current.FeelsLike,
		Description:   "Unknown",
		Humidity:      body.Current.Humidity,
		Precipitation: body.Current.Precip,
		WindSpeed:     body.Current.WindSpeed,
	}
	if len(body.Current.WeatherDescriptions) > 0 {
		report.Description = body.Current.WeatherDescriptions[0]
	}
	return report, nil
}

// Summary renders a report as a human-readable sentence.
func Summary(r WeatherReport) string {
	location := r.Location
	if location == "" {
		location = "the requested location"
	}
	return fmt.Sprintf(
		"Current conditions in %s: %s, %d°C (feels like %d°C). Humidity: %d%%, Precipitation: %vmm, Wind speed: %d km/h.",
		location, r.Description, r.Temperature, r.FeelsLike, r.Humidity, r.Precipitation, r.WindSpeed,
	)
}

// Advise maps current conditions and weather preferences to a recommendation.
// Rules are checked in a fixed order, first match wins.
func Advise(r WeatherReport, tempPref, precipPref string) string {
	desc := strings.ToLower(r.Description)
	isSunny := strings.Contains(desc, "sunny") || strings.Contains(desc, "clear")
	isRainy := strings.Contains(desc, "rain") || strings.Contains(desc, "shower")

	switch {
	case tempPref == "warm" && r.Temperature < 15:
		return "Current temperatures are cooler than your preference. Consider delaying your trip if possible for warmer weather."
	case tempPref == "cool" && r.Temperature > 25:
		return "Current temperatures are warmer than your preference. Consider scheduling your trip during a cooler season."
	case precipPref == "low" && isRainy:
		return "There's currently precipitation in the area. Check the forecast for your travel dates."
	case isSunny && r.Temperature >= 15 && r.Temperature <= 25:
		return "Current weather conditions are ideal! This is a great time to visit."
	default:
		return fmt.Sprintf("Current conditions: %s, %d°C. Check specific dates for more accurate forecasts.", r.Description, r.Temperature)
	}
}
