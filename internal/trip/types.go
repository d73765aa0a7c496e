package trip

import (
	"encoding/json"
	"fmt"
)

// Stage — the user's position in the fixed planning question sequence.
// Stages only move forward, one step at a time; an explicit reset is the
// only way back to StageInitial.
type Stage int

const (
	StageInitial Stage = iota
	StageLocation
	StageDates
	StageWeatherPref
	StagePreferences
	StageAccommodation
	StageFood
	StageItinerary
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageLocation:
		return "location"
	case StageDates:
		return "dates"
	case StageWeatherPref:
		return "weather_preferences"
	case StagePreferences:
		return "preferences"
	case StageAccommodation:
		return "accommodation"
	case StageFood:
		return "food"
	case StageItinerary:
		return "itinerary"
	default:
		return "unknown"
	}
}

func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for candidate := StageInitial; candidate <= StageItinerary; candidate++ {
		if candidate.String() == name {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("trip: unknown stage %q", name)
}

// DateRange — best-effort travel dates pulled from free text.
type DateRange struct {
	Text  string `json:"text,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// WeatherPrefs — classified weather preferences.
type WeatherPrefs struct {
	Temperature   string `json:"temperature,omitempty"`   // warm | cool | moderate
	Precipitation string `json:"precipitation,omitempty"` // low | moderate | high
}

// FoodPrefs — raw food preference plus optional upstream-supplied filters.
type FoodPrefs struct {
	Preference string `json:"preference,omitempty"`
	Cuisine    string `json:"cuisine,omitempty"`
	Price      string `json:"price,omitempty"`
}

// Profile — accumulated structured facts for one user.
type Profile struct {
	Stage         Stage        `json:"stage"`
	Locations     []string     `json:"locations,omitempty"`
	Dates         DateRange    `json:"dates,omitempty"`
	Weather       WeatherPrefs `json:"weather_preferences,omitempty"`
	Preferences   []string     `json:"preferences,omitempty"`
	Accommodation string       `json:"accommodation,omitempty"`
	Food          FoodPrefs    `json:"food,omitempty"`
}

func NewProfile() *Profile {
	return &Profile{Stage: StageInitial}
}
