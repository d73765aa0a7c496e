package trip

import (
	"regexp"
	"strings"
)

// Keyword sets are deliberately dumb substring lists, not entity
// recognition. They are frozen constants: tests pin the behavior, and any
// semantic upgrade would change it. Matching is case-insensitive,
// first-match-wins, with no negation handling ("I don't want luxury"
// still matches "luxury").

var locationPhrases = []string{
	"visit", "go to", "travel to", "traveling to", "destination", "want to see",
}

// Longer phrases first so "traveling to" is not shadowed by "travel to".
var locationPattern = regexp.MustCompile(
	`(?:traveling to|travel to|want to see|go to|destination|visit)\s+([a-z\s,]+)`,
)

var dateKeywords = []string{
	"from", "to", "between", "during", "in",
	"next week", "next month", "this summer", "this winter", "flexible",
}

var (
	warmWords = []string{"warm", "hot", "sunny", "tropical"}
	coolWords = []string{"cool", "cold", "chilly", "snow"}
	dryWords  = []string{"dry", "no rain", "sunny", "clear"}
	wetWords  = []string{"rain", "rainy", "wet", "drizzle"}

	weatherKeywords = []string{
		"warm", "hot", "sunny", "tropical", "cool", "cold", "chilly", "snow",
		"dry", "rain", "rainy", "wet", "drizzle", "clear",
		"weather", "temperature", "climate", "mild", "moderate",
	}
)

var styleKeywords = []string{
	"luxury", "budget", "adventure", "adventurous", "relax", "relaxing",
	"culture", "cultural", "family", "romantic", "backpacking",
	"sightseeing", "outdoor", "hiking", "beach", "museum", "shopping",
	"nightlife",
}

var lodgingKeywords = []string{
	"hotel", "hostel", "airbnb", "resort", "apartment", "accommodation",
	"motel", "camping", "bed and breakfast", "stay",
}

var foodKeywords = []string{
	"food", "restaurant", "cuisine", "eat", "dining", "vegetarian", "vegan",
	"seafood", "street food", "fine dining", "local",
}

// Advance applies one free-text user turn to the profile. When the text
// matches the current stage's keyword set the stage moves forward exactly
// one step and the extracted facts are recorded; otherwise nothing
// changes and the assistant will ask the same kind of question again.
// StageItinerary is terminal: text is ignored there.
func Advance(p *Profile, text string) bool {
	t := strings.ToLower(text)

	switch p.Stage {
	case StageInitial, StageLocation:
		if !containsAny(t, locationPhrases) {
			return false
		}
		if m := locationPattern.FindStringSubmatch(t); m != nil {
			for _, part := range strings.Split(m[1], ",") {
				if part = strings.TrimSpace(part); part != "" {
					p.Locations = append(p.Locations, part)
				}
			}
		}
		p.Stage = StageDates
		return true

	case StageDates:
		if !containsAny(t, dateKeywords) {
			return false
		}
		p.Dates.Text = text
		// Best-effort "from X to Y" split; malformed input is silently skipped.
		if strings.Contains(t, "from") && strings.Contains(t, "to") {
			after := strings.SplitN(t, "from", 2)[1]
			if parts := strings.SplitN(after, "to", 2); len(parts) == 2 {
				p.Dates.Start = strings.TrimSpace(parts[0])
				p.Dates.End = strings.TrimSpace(parts[1])
			}
		}
		p.Stage = StageWeatherPref
		return true

	case StageWeatherPref:
		if !containsAny(t, weatherKeywords) {
			return false
		}
		p.Weather.Temperature = classify(t, warmWords, "warm", coolWords, "cool")
		p.Weather.Precipitation = classify(t, dryWords, "low", wetWords, "high")
		p.Stage = StagePreferences
		return true

	case StagePreferences:
		if !containsAny(t, styleKeywords) {
			return false
		}
		p.Preferences = append(p.Preferences, text)
		p.Stage = StageAccommodation
		return true

	case StageAccommodation:
		if !containsAny(t, lodgingKeywords) {
			return false
		}
		p.Accommodation = text
		p.Stage = StageFood
		return true

	case StageFood:
		if !containsAny(t, foodKeywords) {
			return false
		}
		p.Food.Preference = text
		p.Stage = StageItinerary
		return true
	}

	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// classify picks the first bucket whose indicator appears in the text,
// falling back to "moderate".
func classify(text string, first []string, firstLabel string, second []string, secondLabel string) string {
	if containsAny(text, first) {
		return firstLabel
	}
	if containsAny(text, second) {
		return secondLabel
	}
	return "moderate"
}
