package util

import (
	"strconv"
	"strings"

	"micfinder/models"
)

// DeduplicateMics collapses listings that describe the same real-world
// recurring event: same place (normalized venue + address + coordinates)
// and same slot (day + start time). The first listing encountered wins;
// input order is preserved. Idempotent and safe on an empty list.
func DeduplicateMics(mics []models.MicEvent) []models.MicEvent {
	seen := make(map[string]bool, len(mics))
	deduplicated := make([]models.MicEvent, 0, len(mics))

	for _, mic := range mics {
		key := dedupKey(mic)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduplicated = append(deduplicated, mic)
	}

	return deduplicated
}

// dedupKey is the place tuple plus the slot tuple. An empty address is a
// legitimate key component; listings without one still dedup against each
// other.
func dedupKey(mic models.MicEvent) string {
	return strings.Join([]string{
		NormalizeVenueName(mic.Venue),
		mic.Address,
		strconv.FormatFloat(mic.Lat, 'f', -1, 64),
		strconv.FormatFloat(mic.Lon, 'f', -1, 64),
		mic.Day,
		mic.Time,
	}, "__")
}
