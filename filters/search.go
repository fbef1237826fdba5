package filters

import (
	"strings"

	"micfinder/config"
	"micfinder/models"

	"github.com/agnivade/levenshtein"
)

// SearchMics narrows the working set by fuzzy free-text match against venue
// name and address. Matching is tolerant of typos up to an edit-distance
// budget proportional to the query length, with the first
// SEARCH_PREFIX_LENGTH characters required to match exactly.
func SearchMics(mics []models.MicEvent, query string) []models.MicEvent {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < config.SEARCH_MIN_MATCH_LENGTH {
		return mics
	}

	matched := make([]models.MicEvent, 0, len(mics))
	for _, mic := range mics {
		if fuzzyMatches(query, mic.Venue) || fuzzyMatches(query, mic.Address) {
			matched = append(matched, mic)
		}
	}
	return matched
}

func fuzzyMatches(query, candidate string) bool {
	candidate = strings.ToLower(candidate)
	if candidate == "" {
		return false
	}
	if strings.Contains(candidate, query) {
		return true
	}

	budget := distanceBudget(query)
	if budget == 0 {
		return false
	}

	// Compare the query against each word and each query-sized word window
	// of the candidate, so "comedy celar" still finds "comedy cellar".
	words := strings.Fields(candidate)
	queryWords := len(strings.Fields(query))
	for i := range words {
		if withinBudget(query, words[i], budget) {
			return true
		}
		if queryWords > 1 && i+queryWords <= len(words) {
			window := strings.Join(words[i:i+queryWords], " ")
			if withinBudget(query, window, budget) {
				return true
			}
		}
	}
	return false
}

func withinBudget(query, candidate string, budget int) bool {
	if !samePrefix(query, candidate, config.SEARCH_PREFIX_LENGTH) {
		return false
	}
	return levenshtein.ComputeDistance(query, candidate) <= budget
}

func samePrefix(a, b string, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	return a[:n] == b[:n]
}

func distanceBudget(query string) int {
	return len(query) * config.SEARCH_MAX_DISTANCE_RATIO_PCT / 100
}
