package trip

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/providers"
)

// Digest caps: at most this many records per provider.
const maxDigestItems = 5

// digest — the per-turn summary of provider results folded into a reply.
// Built fresh on every enrichment run, never persisted.
type digest struct {
	Attractions []providers.Place        `json:"attractions"`
	Hotels      []providers.Place        `json:"hotels"`
	Restaurants []providers.Business     `json:"restaurants"`
	Weather     *providers.WeatherReport `json:"weather,omitempty"`
}

// Enricher decides per stage whether to pull provider data into the draft
// reply. Provider errors are swallowed: enrichment can only add to a
// reply, never break one.
type Enricher struct {
	places   PlacesProvider
	listings ListingsProvider
	weather  WeatherProvider
	llm      ai.Client
}

func NewEnricher(places PlacesProvider, listings ListingsProvider, weather WeatherProvider, llm ai.Client) *Enricher {
	return &Enricher{places: places, listings: listings, weather: weather, llm: llm}
}

// Enrich returns the final reply for a draft. Stages without enrichment
// pass the draft through unchanged, as does any enrichment failure.
func (e *Enricher) Enrich(ctx context.Context, p *Profile, draft string) string {
	if len(p.Locations) == 0 {
		return draft
	}
	location := p.Locations[0]

	switch p.Stage {
	case StageDates:
		report, err := e.weather.Current(ctx, location)
		if err != nil {
			log.Printf("[enrich] weather teaser for %q: %v", location, err)
			return draft
		}
		return draft + "\n\n" + providers.Summary(report) +
			"\n\nWould you like to know whether this is a good time to visit based on your weather preferences?"

	case StageWeatherPref:
		rec, err := e.weather.BestTravelDates(ctx, location, p.Weather.Temperature, p.Weather.Precipitation)
		if err != nil {
			log.Printf("[enrich] weather advisory for %q: %v", location, err)
			return draft
		}
		return draft + "\n\n" + rec

	case StageItinerary:
		return e.enhanceItinerary(ctx, p, draft, location)
	}

	return draft
}

// enhanceItinerary fans out all provider calls concurrently and joins
// them before building the digest, so total latency is bounded by the
// slowest provider. Each call fails independently: an errored provider
// contributes an empty slot, it never aborts the others.
func (e *Enricher) enhanceItinerary(ctx context.Context, p *Profile, draft, location string) string {
	var d digest
	var wg sync.WaitGroup

	// Each goroutine writes its own digest field, so no lock is needed.
	wg.Add(4)
	go func() {
		defer wg.Done()
		attractions, err := e.places.Attractions(ctx, location)
		if err != nil {
			log.Printf("[enrich] attractions for %q: %v", location, err)
			return
		}
		d.Attractions = head(attractions, maxDigestItems)
	}()
	go func() {
		defer wg.Done()
		hotels, err := e.places.Lodging(ctx, location)
		if err != nil {
			log.Printf("[enrich] lodging for %q: %v", location, err)
			return
		}
		d.Hotels = head(hotels, maxDigestItems)
	}()
	go func() {
		defer wg.Done()
		restaurants, err := e.listings.Restaurants(ctx, location, p.Food.Cuisine, p.Food.Price)
		if err != nil {
			log.Printf("[enrich] restaurants for %q: %v", location, err)
			return
		}
		d.Restaurants = head(restaurants, maxDigestItems)
	}()
	go func() {
		defer wg.Done()
		report, err := e.weather.Current(ctx, location)
		if err != nil {
			log.Printf("[enrich] weather for %q: %v", location, err)
			return
		}
		d.Weather = &report
	}()
	wg.Wait()

	payload, err := json.Marshal(struct {
		Profile *Profile `json:"profile"`
		Data    digest   `json:"data"`
		Draft   string   `json:"draft_reply"`
	}{p, d, draft})
	if err != nil {
		log.Println("[enrich] digest marshal:", err)
		return draft
	}

	msgs := []ai.Message{
		ai.System(PersonaPrompt),
		ai.System("Below is a draft itinerary reply, the user's trip profile, and live data about the destination (attractions, hotels, restaurants, current weather). Rewrite the draft into an enhanced reply that works the real data in where it fits. Keep anything from the draft that the data does not contradict.\n\n" + itineraryFormatRules),
		ai.System(string(payload)),
	}

	enhanced, err := e.llm.Complete(ctx, msgs)
	if err != nil {
		log.Println("[enrich] enhancement call failed, keeping draft:", err)
		return draft
	}
	return enhanced
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
