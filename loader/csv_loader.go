package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"micfinder/models"
	"micfinder/util"
)

// Column headers consumed from the mic source CSV.
const (
	COL_VENUE_NAME   = "Venue Name"
	COL_LOCATION     = "Location"
	COL_BOROUGH      = "Borough"
	COL_NEIGHBORHOOD = "Neighborhood"
	COL_DAY          = "Day"
	COL_START_TIME   = "Start Time"
	COL_SIGNUP_TIME  = "Signup Time"
	COL_HOST         = "Host(s) / Organizer"
	COL_OTHER_RULES  = "Other Rules"
	COL_COST         = "Cost"
	COL_SIGNUP       = "Sign-Up Instructions"
	COL_LATITUDE     = "Geocodio Latitude"
	COL_LONGITUDE    = "Geocodio Longitude"
)

// ParseMics reads the delimited mic source and returns the normalized
// working set. Rows missing a venue name or a parseable latitude/longitude
// are dropped silently: that is data-quality policy, not an error. A nil
// error with an empty slice is a valid result for an empty source.
func ParseMics(r io.Reader) ([]models.MicEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []models.MicEvent{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var mics []models.MicEvent
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		venue := strings.TrimSpace(field(COL_VENUE_NAME))
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(field(COL_LATITUDE)), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(field(COL_LONGITUDE)), 64)
		if venue == "" || latErr != nil || lonErr != nil {
			continue
		}

		mics = append(mics, buildMic(venue, lat, lon, field))
	}

	if mics == nil {
		mics = []models.MicEvent{}
	}
	return mics, nil
}

// ParseMicsBytes is ParseMics over an in-memory payload.
func ParseMicsBytes(data []byte) ([]models.MicEvent, error) {
	return ParseMics(bytes.NewReader(data))
}

// LoadMicsFromCSV reads the mic source from a file on disk. A missing or
// malformed file yields an empty list and the error; it never panics past
// this boundary.
func LoadMicsFromCSV(path string) ([]models.MicEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[CSVLoader] Failed to open %s: %v", path, err)
		return []models.MicEvent{}, fmt.Errorf("failed to open mic source %q: %w", path, err)
	}
	defer f.Close()

	mics, err := ParseMics(f)
	if err != nil {
		log.Printf("[CSVLoader] Failed to parse %s: %v", path, err)
		return []models.MicEvent{}, err
	}
	return mics, nil
}

func buildMic(venue string, lat, lon float64, field func(string) string) models.MicEvent {
	// Canonical spelling at load time so dedup keys, favorites ids and the
	// display name all agree.
	venue = util.NormalizeVenueName(venue)

	day := field(COL_DAY)
	timeStr := field(COL_START_TIME)
	signUpTime := field(COL_SIGNUP_TIME)
	cost := field(COL_COST)
	signup := field(COL_SIGNUP)

	startMinutes := -1
	if mins, ok := util.ParseClockMinutes(timeStr); ok {
		startMinutes = mins
	}
	signUpMinutes := -1
	if mins, ok := util.ParseClockMinutes(signUpTime); ok {
		signUpMinutes = mins
	}

	return models.MicEvent{
		ID:            micID(venue, field(COL_LOCATION), day, timeStr),
		Venue:         venue,
		Address:       field(COL_LOCATION),
		Borough:       strings.TrimSpace(field(COL_BOROUGH)),
		Neighborhood:  field(COL_NEIGHBORHOOD),
		Day:           day,
		Time:          timeStr,
		StartMinutes:  startMinutes,
		SignUpTime:    signUpTime,
		SignUpMinutes: signUpMinutes,
		Host:          field(COL_HOST),
		Details:       field(COL_OTHER_RULES),
		Cost:          cost,
		Signup:        signup,
		Lat:           lat,
		Lon:           lon,
		IsFree:        strings.Contains(strings.ToLower(cost), "free"),
		HasSignup:     strings.TrimSpace(signup) != "",
	}
}

// micID derives a stable identifier from the fields that define the slot,
// so favorites survive a catalog reload.
func micID(venue, address, day, timeStr string) string {
	h := fnv.New32a()
	h.Write([]byte(venue + "|" + address + "|" + day + "|" + timeStr))
	return fmt.Sprintf("mic-%08x", h.Sum32())
}
