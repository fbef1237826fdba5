package filters

import (
	"sort"
	"time"

	"micfinder/models"
	"micfinder/util"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var venueCollator = collate.New(language.AmericanEnglish, collate.IgnoreCase)

// SortResults orders the filtered list by the given key. The sort is stable
// and never mutates its input. An unknown key returns the list unchanged.
func SortResults(mics []models.MicEvent, sortKey string, now time.Time) []models.MicEvent {
	sorted := make([]models.MicEvent, len(mics))
	copy(sorted, mics)

	switch sortKey {
	case models.SORT_CURRENT_TIME, "":
		return sortByCurrentTime(sorted, now)
	case models.SORT_SIGNUP_TIME:
		sort.SliceStable(sorted, func(i, j int) bool {
			return signUpSortValue(sorted[i]) < signUpSortValue(sorted[j])
		})
	case models.SORT_COST:
		sort.SliceStable(sorted, func(i, j int) bool {
			return util.GetCostValue(sorted[i].Cost) < util.GetCostValue(sorted[j].Cost)
		})
	case models.SORT_NAME:
		sort.SliceStable(sorted, func(i, j int) bool {
			return venueCollator.CompareString(sorted[i].Venue, sorted[j].Venue) < 0
		})
	}

	return sorted
}

// sortByCurrentTime partitions into mics starting at or after now and mics
// already past, sorts each ascending by start time, and lists upcoming
// first.
func sortByCurrentTime(mics []models.MicEvent, now time.Time) []models.MicEvent {
	nowMinutes := util.MinutesOfDay(now)

	upcoming := make([]models.MicEvent, 0, len(mics))
	past := make([]models.MicEvent, 0)
	for _, mic := range mics {
		if mic.StartMinutes >= nowMinutes {
			upcoming = append(upcoming, mic)
		} else {
			past = append(past, mic)
		}
	}

	byStart := func(s []models.MicEvent) {
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].StartMinutes < s[j].StartMinutes
		})
	}
	byStart(upcoming)
	byStart(past)

	return append(upcoming, past...)
}

// signUpSortValue pushes mics without a parseable sign-up time to the end.
func signUpSortValue(mic models.MicEvent) int {
	if mic.SignUpMinutes < 0 {
		return 24 * 60
	}
	return mic.SignUpMinutes
}
