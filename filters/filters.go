package filters

import (
	"strings"
	"time"

	"micfinder/config"
	"micfinder/models"
	"micfinder/util"
)

// ApplyAllFilters runs the full filter pipeline over the working set. Every
// active predicate must pass for a mic to survive. now is explicit so the
// pipeline is a pure function of its inputs; bounds may be nil when the map
// viewport restriction is off. Input order is preserved.
func ApplyAllFilters(
	mics []models.MicEvent,
	f models.ActiveFilterSet,
	bounds *models.BoundingBox,
	favorites map[string]bool,
	now time.Time,
) []models.MicEvent {
	// The search predicate replaces the working set before the other
	// predicates narrow it further. An exact-venue selection overrides the
	// fuzzy search entirely.
	if f.ExactVenue == "" && strings.TrimSpace(f.Search) != "" {
		mics = SearchMics(mics, f.Search)
	}

	nowMinutes := util.MinutesOfDay(now)
	today := util.DayName(now)

	result := make([]models.MicEvent, 0, len(mics))
	for _, mic := range mics {
		if !matchesExactVenue(mic, f) {
			continue
		}
		if !matchesDay(mic, f.Day, today, nowMinutes) {
			continue
		}
		if !matchesBorough(mic, f.Borough) {
			continue
		}
		if !matchesNeighborhood(mic, f.Neighborhood) {
			continue
		}
		if !matchesCost(mic, f.Cost) {
			continue
		}
		if !matchesSignup(mic, f.Signup) {
			continue
		}
		if !matchesTimeWindow(mic, f, nowMinutes) {
			continue
		}
		if !matchesBounds(mic, f, bounds) {
			continue
		}
		if f.ShowFavorites && !favorites[mic.ID] {
			continue
		}
		result = append(result, mic)
	}
	return result
}

func matchesExactVenue(mic models.MicEvent, f models.ActiveFilterSet) bool {
	exact := strings.TrimSpace(f.ExactVenue)
	if exact == "" {
		return true
	}
	return strings.EqualFold(mic.Venue, exact)
}

// matchesDay passes when no day is selected, when any selected day is the
// "any day" sentinel, or when a selected day matches the mic's day. When
// "today" is among the selections and the mic is today, mics that started
// more than the grace window ago are hidden.
func matchesDay(mic models.MicEvent, days []string, today string, nowMinutes int) bool {
	if len(days) == 0 {
		return true
	}

	micDay := strings.ToLower(mic.Day)
	match := false
	filteringForToday := false
	for _, d := range days {
		lower := strings.ToLower(d)
		if lower == config.ANY_DAY_SENTINEL || lower == micDay {
			match = true
		}
		if lower == strings.ToLower(today) {
			filteringForToday = true
		}
	}
	if !match {
		return false
	}

	if filteringForToday && strings.EqualFold(mic.Day, today) {
		if mic.StartMinutes >= 0 && mic.StartMinutes < nowMinutes-config.GRACE_WINDOW_MINUTES {
			return false
		}
	}
	return true
}

func matchesBorough(mic models.MicEvent, boroughs []string) bool {
	if len(boroughs) == 0 {
		return true
	}
	for _, b := range boroughs {
		if strings.EqualFold(b, config.ALL_SENTINEL) || strings.EqualFold(b, mic.Borough) {
			return true
		}
	}
	return false
}

func matchesNeighborhood(mic models.MicEvent, neighborhoods []string) bool {
	if len(neighborhoods) == 0 {
		return true
	}
	micNeighborhood := strings.ToLower(mic.Neighborhood)
	for _, n := range neighborhoods {
		if strings.EqualFold(n, config.ALL_SENTINEL) || strings.HasPrefix(n, "All ") {
			return true
		}
		if strings.Contains(micNeighborhood, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// matchesCost classifies the free-text cost into free / drink-minimum /
// paid and matches against the selected classes.
func matchesCost(mic models.MicEvent, costs []string) bool {
	if len(costs) == 0 {
		return true
	}
	lowerCost := strings.ToLower(mic.Cost)
	for _, c := range costs {
		switch strings.ToLower(c) {
		case config.ALL_SENTINEL:
			return true
		case "free":
			if lowerCost == "free" || strings.HasPrefix(lowerCost, "free") {
				return true
			}
		case "1 drink min":
			if strings.Contains(lowerCost, "drink") {
				return true
			}
		case "paid":
			if !strings.Contains(lowerCost, "free") && !strings.Contains(lowerCost, "drink") {
				return true
			}
		}
	}
	return false
}

func matchesSignup(mic models.MicEvent, signups []string) bool {
	if len(signups) == 0 {
		return true
	}
	lowerSignup := strings.ToLower(mic.Signup)
	for _, s := range signups {
		switch strings.ToLower(s) {
		case config.ALL_SENTINEL:
			return true
		case "in-person":
			if strings.Contains(lowerSignup, "person") {
				return true
			}
		case "online":
			if strings.Contains(lowerSignup, "online") || strings.Contains(lowerSignup, "http") {
				return true
			}
		}
	}
	return false
}

// matchesTimeWindow keeps mics whose start time falls inside the selected
// window, and hides mics already more than the grace window in the past:
// an already-started mic is surfaced only while the grace window lasts, and
// only if it also sits inside the window. Blank bounds substitute the
// default 10:00 AM-11:45 PM window. Mics with an unparseable start time are
// excluded.
func matchesTimeWindow(mic models.MicEvent, f models.ActiveFilterSet, nowMinutes int) bool {
	start := strings.TrimSpace(f.CustomTimeStart)
	end := strings.TrimSpace(f.CustomTimeEnd)
	if start == "" && end == "" {
		start = config.DEFAULT_TIME_WINDOW_START
		end = config.DEFAULT_TIME_WINDOW_END
	} else if start == "" || end == "" {
		// Half-open selections do not restrict.
		return true
	}

	if mic.StartMinutes < 0 {
		return false
	}

	startMinutes := util.GetMinutes(start)
	endMinutes := util.GetMinutes(end)
	if mic.StartMinutes < startMinutes || mic.StartMinutes > endMinutes {
		return false
	}
	return mic.StartMinutes >= nowMinutes-config.GRACE_WINDOW_MINUTES
}

// matchesBounds restricts to the map viewport when enabled. An exact-venue
// selection, or a search that names the venue exactly, escapes the
// restriction so a searched-for venue shows up even off-screen.
func matchesBounds(mic models.MicEvent, f models.ActiveFilterSet, bounds *models.BoundingBox) bool {
	if !f.MapFilterEnabled || bounds == nil {
		return true
	}
	if f.ExactVenue != "" && strings.EqualFold(mic.Venue, strings.TrimSpace(f.ExactVenue)) {
		return true
	}
	if f.Search != "" && strings.EqualFold(mic.Venue, strings.TrimSpace(f.Search)) {
		return true
	}
	return bounds.Contains(mic.Lat, mic.Lon)
}
