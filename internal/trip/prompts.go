package trip

import (
	"fmt"
	"strings"
)

const PersonaPrompt = `You are TravelBuddy, an expert travel planning assistant.

Your purpose is to help users plan their trips by:
- Suggesting destinations based on their interests, budget, and time constraints
- Recommending attractions, activities, and local experiences
- Providing information about transportation options, accommodations, and local customs
- Creating personalized itineraries
- Offering tips on budgeting, packing, and travel safety

Always be friendly, enthusiastic, and conversational. Ask clarifying questions when needed, but don't overwhelm the user with too many questions at once.

If you don't know specific details about a destination, be honest about it rather than making up information. Focus on providing practical, actionable advice that helps the user create a memorable trip.`

// StartPrompt greets the user when a planning session starts or is reset.
const StartPrompt = `Let's plan your trip! I'll help you create a personalized travel itinerary. To get started: what location(s) are you interested in visiting? You can list multiple places.`

const itineraryFormatRules = `Format the itinerary as plain structured text. For each day of the trip produce one day block with exactly these lines, in this order and with these literal labels:

Day <number>: <date>
Weather Forecast: <expected conditions>
Activity: <main activity for the day>
Details:
Hotel: <hotel name> - <booking link, or [Booking Link] if unknown>
Restaurant: <restaurant name> - <booking link, or [Booking Link] if unknown>
Attraction: <attraction name> - <ticket link, or [Booking Link] if unknown>
Time: <suggested timing for the day>
Alternative Option: <one alternative activity>

Separate day blocks with a line containing only:
---

Do not use decorative symbols, emoji, markdown headers or bullet points anywhere in the itinerary.`

// StageInstruction maps the profile to the live instruction for the model.
// It is pure: the same profile always yields the same text. The itinerary
// instruction is rebuilt every turn so it always reflects the latest
// profile contents.
func StageInstruction(p *Profile) string {
	switch p.Stage {
	case StageInitial, StageLocation:
		return "The user has not chosen a destination yet. Ask which location or locations they would like to visit. Do not ask about anything else yet."

	case StageDates:
		return "The user has chosen destinations: " + joinOr(p.Locations, "none yet") +
			". Ask when they are planning to travel (specific dates or a rough period are both fine). Do not ask about anything else yet."

	case StageWeatherPref:
		return "The user's travel dates: " + orElse(p.Dates.Text, "not given") +
			". Ask what kind of weather they prefer for this trip, for example warm and dry or cool. Do not ask about anything else yet."

	case StagePreferences:
		return "Ask about the user's travel style and interests, for example luxury, budget, adventure, culture, relaxing. Do not ask about anything else yet."

	case StageAccommodation:
		return "Ask what kind of accommodation the user prefers, for example hotel, hostel, airbnb or resort. Do not ask about anything else yet."

	case StageFood:
		return "Ask about the user's food preferences, for example favorite cuisines, dietary restrictions or budget for dining. Do not ask about anything else yet."

	case StageItinerary:
		return itineraryInstruction(p)
	}

	return "Continue the travel planning conversation."
}

func itineraryInstruction(p *Profile) string {
	var b strings.Builder

	b.WriteString("All planning questions are answered. Produce a complete multi-day itinerary now.\n\n")
	b.WriteString("Known trip facts:\n")
	fmt.Fprintf(&b, "Destinations: %s\n", joinOr(p.Locations, "unspecified"))
	fmt.Fprintf(&b, "Dates: %s\n", orElse(p.Dates.Text, "unspecified"))
	if p.Dates.Start != "" || p.Dates.End != "" {
		fmt.Fprintf(&b, "Start: %s, End: %s\n", orElse(p.Dates.Start, "unspecified"), orElse(p.Dates.End, "unspecified"))
	}
	fmt.Fprintf(&b, "Weather preference: temperature %s, precipitation %s\n",
		orElse(p.Weather.Temperature, "any"), orElse(p.Weather.Precipitation, "any"))
	fmt.Fprintf(&b, "Travel style: %s\n", joinOr(p.Preferences, "unspecified"))
	fmt.Fprintf(&b, "Accommodation: %s\n", orElse(p.Accommodation, "unspecified"))
	fmt.Fprintf(&b, "Food: %s\n", orElse(p.Food.Preference, "unspecified"))

	b.WriteString("\n")
	b.WriteString(itineraryFormatRules)

	return b.String()
}

func joinOr(vals []string, fallback string) string {
	if len(vals) == 0 {
		return fallback
	}
	return strings.Join(vals, ", ")
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
