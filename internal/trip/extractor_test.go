package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_LocationCapture(t *testing.T) {
	p := NewProfile()

	advanced := Advance(p, "I want to visit Paris, Rome")

	require.True(t, advanced)
	assert.Equal(t, StageDates, p.Stage)
	assert.Equal(t, []string{"paris", "rome"}, p.Locations)
}

func TestAdvance_LocationPhraseVariants(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"we are traveling to tokyo", []string{"tokyo"}},
		{"I'd like to go to lisbon", []string{"lisbon"}},
		{"my dream destination is bali", []string{"is bali"}}, // raw capture, not NLU
		{"I want to see barcelona, madrid, seville", []string{"barcelona", "madrid", "seville"}},
	}

	for _, tc := range cases {
		p := NewProfile()
		require.True(t, Advance(p, tc.text), tc.text)
		assert.Equal(t, StageDates, p.Stage, tc.text)
		assert.Equal(t, tc.want, p.Locations, tc.text)
	}
}

func TestAdvance_NoKeywordNoMutation(t *testing.T) {
	p := NewProfile()

	advanced := Advance(p, "hello there!")

	assert.False(t, advanced)
	assert.Equal(t, StageInitial, p.Stage)
	assert.Empty(t, p.Locations)
}

func TestAdvance_LocationsNeverDeduplicated(t *testing.T) {
	p := NewProfile()
	require.True(t, Advance(p, "I want to visit paris, paris"))
	assert.Equal(t, []string{"paris", "paris"}, p.Locations)
}

func TestAdvance_Dates(t *testing.T) {
	p := &Profile{Stage: StageDates}

	require.True(t, Advance(p, "from June 1 to June 10"))

	assert.Equal(t, StageWeatherPref, p.Stage)
	assert.Equal(t, "from June 1 to June 10", p.Dates.Text)
	assert.Equal(t, "june 1", p.Dates.Start)
	assert.Equal(t, "june 10", p.Dates.End)
}

func TestAdvance_DatesWithoutRange(t *testing.T) {
	p := &Profile{Stage: StageDates}

	require.True(t, Advance(p, "sometime next month, I'm flexible"))

	assert.Equal(t, StageWeatherPref, p.Stage)
	assert.Equal(t, "sometime next month, I'm flexible", p.Dates.Text)
	// Malformed range is silently skipped, not an error.
	assert.Empty(t, p.Dates.Start)
	assert.Empty(t, p.Dates.End)
}

func TestAdvance_DatesNoKeyword(t *testing.T) {
	p := &Profile{Stage: StageDates}

	assert.False(t, Advance(p, "hello world"))
	assert.Equal(t, StageDates, p.Stage)
	assert.Empty(t, p.Dates.Text)
}

func TestAdvance_WeatherClassification(t *testing.T) {
	cases := []struct {
		text       string
		wantTemp   string
		wantPrecip string
	}{
		{"I like it warm and dry", "warm", "low"},
		{"cold and rainy is fine", "cool", "high"},
		{"any weather works", "moderate", "moderate"},
		// Warm indicators win over cool ones, dry over wet.
		{"warm but maybe cold, dry or rainy", "warm", "low"},
	}

	for _, tc := range cases {
		p := &Profile{Stage: StageWeatherPref}
		require.True(t, Advance(p, tc.text), tc.text)
		assert.Equal(t, StagePreferences, p.Stage, tc.text)
		assert.Equal(t, tc.wantTemp, p.Weather.Temperature, tc.text)
		assert.Equal(t, tc.wantPrecip, p.Weather.Precipitation, tc.text)
	}
}

func TestAdvance_PreferencesAppendRawText(t *testing.T) {
	p := &Profile{Stage: StagePreferences}

	require.True(t, Advance(p, "We love culture and a bit of luxury"))

	assert.Equal(t, StageAccommodation, p.Stage)
	assert.Equal(t, []string{"We love culture and a bit of luxury"}, p.Preferences)
}

func TestAdvance_NegationStillMatches(t *testing.T) {
	// Substring matching has no negation handling; this is frozen behavior.
	p := &Profile{Stage: StagePreferences}

	require.True(t, Advance(p, "I don't want luxury"))
	assert.Equal(t, StageAccommodation, p.Stage)
}

func TestAdvance_Accommodation(t *testing.T) {
	p := &Profile{Stage: StageAccommodation}

	require.True(t, Advance(p, "a small boutique hotel please"))

	assert.Equal(t, StageFood, p.Stage)
	assert.Equal(t, "a small boutique hotel please", p.Accommodation)
}

func TestAdvance_Food(t *testing.T) {
	p := &Profile{Stage: StageFood}

	require.True(t, Advance(p, "I love seafood and street food"))

	assert.Equal(t, StageItinerary, p.Stage)
	assert.Equal(t, "I love seafood and street food", p.Food.Preference)
}

func TestAdvance_ItineraryIsTerminal(t *testing.T) {
	p := &Profile{Stage: StageItinerary, Locations: []string{"paris"}}

	assert.False(t, Advance(p, "I want to visit london, from june to july, warm, luxury hotel food"))
	assert.Equal(t, StageItinerary, p.Stage)
	assert.Equal(t, []string{"paris"}, p.Locations)
}

func TestAdvance_FullWalk(t *testing.T) {
	p := NewProfile()

	turns := []string{
		"I want to visit Kyoto",
		"from April 1 to April 10",
		"warm and dry please",
		"we like culture and hiking",
		"a quiet hotel",
		"local food and seafood",
	}
	wantStages := []Stage{
		StageDates, StageWeatherPref, StagePreferences,
		StageAccommodation, StageFood, StageItinerary,
	}

	for i, text := range turns {
		require.True(t, Advance(p, text), text)
		assert.Equal(t, wantStages[i], p.Stage, text)
	}

	assert.Equal(t, []string{"kyoto"}, p.Locations)
	assert.Equal(t, "april 1", p.Dates.Start)
	assert.Equal(t, "april 10", p.Dates.End)
	assert.Equal(t, "warm", p.Weather.Temperature)
	assert.Equal(t, "low", p.Weather.Precipitation)
	assert.Equal(t, "a quiet hotel", p.Accommodation)
	assert.Equal(t, "local food and seafood", p.Food.Preference)
}
