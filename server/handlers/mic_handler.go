package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"micfinder/filters"
	"micfinder/models"
	"micfinder/state"
	"micfinder/util"
)

const (
	LAT_MIN_QUERY_ARG = "lat_min"
	LAT_MAX_QUERY_ARG = "lat_max"
	LNG_MIN_QUERY_ARG = "lng_min"
	LNG_MAX_QUERY_ARG = "lng_max"
	VERBOSE_QUERY_ARG = "verbose"
)

// MinifiedMic is the small form returned when verbose=false.
type MinifiedMic struct {
	Venue        string `json:"venue"`
	Address      string `json:"address"`
	Day          string `json:"day"`
	Time         string `json:"time"`
	Cost         string `json:"cost"`
	HappeningNow bool   `json:"happening_now"`
	StartingSoon bool   `json:"starting_soon"`
}

// MicsResponse wraps the filtered list with its count and load health.
type MicsResponse struct {
	Count     int         `json:"count"`
	LoadError bool        `json:"load_error"`
	Mics      interface{} `json:"mics"`
}

// MicHandler serves the filtered, sorted mic catalog. Filter selections
// arrive as query parameters in the same shape the share-link encoder
// produces.
type MicHandler struct {
	st      *state.AppState
	nowFunc func() time.Time
}

func NewMicHandler(st *state.AppState) *MicHandler {
	return &MicHandler{
		st:      st,
		nowFunc: time.Now,
	}
}

func (h *MicHandler) GetMics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// 1) Rebuild the filter selections from the query string; no params
	// means the stored selections apply.
	activeFilters := h.st.ActiveFilters()
	if hasFilterParams(q) {
		activeFilters = models.FilterSetFromValues(q)
	}

	// 2) Viewport bounds, when the caller sent a complete rectangle.
	bounds := parseBounds(q)

	// 3) Run the pipeline: dedup, filter, sort.
	now := h.nowFunc()
	mics := util.DeduplicateMics(h.st.AllMics())
	results := filters.ApplyAllFilters(mics, activeFilters, bounds, h.st.FavoritesSet(), now)
	results = filters.SortResults(results, activeFilters.Sort, now)

	// 4) Transform according to verbose flag
	verbose := false
	if v := q.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := MicsResponse{
		Count:     len(results),
		LoadError: h.st.LoadError(),
		Mics:      h.transform(results, verbose, now),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *MicHandler) transform(results []models.MicEvent, verbose bool, now time.Time) interface{} {
	if verbose {
		return results
	}
	min := make([]MinifiedMic, 0, len(results))
	for _, mic := range results {
		min = append(min, MinifiedMic{
			Venue:        mic.Venue,
			Address:      mic.Address,
			Day:          mic.Day,
			Time:         mic.Time,
			Cost:         mic.Cost,
			HappeningNow: util.IsHappeningNow(mic, now),
			StartingSoon: util.IsStartingSoon(mic, now),
		})
	}
	return min
}

// Ping handles GET /ping
func (h *MicHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

var filterParamKeys = []string{
	"day", "borough", "neighborhood", "cost", "signup",
	"customTimeStart", "customTimeEnd", "search", "exactVenue",
	"showFavorites", "mapFilterEnabled", "sort",
}

func hasFilterParams(q url.Values) bool {
	for _, key := range filterParamKeys {
		if q.Get(key) != "" {
			return true
		}
	}
	return false
}

func parseBounds(q url.Values) *models.BoundingBox {
	latMin, err1 := parseArgFloat64(q, LAT_MIN_QUERY_ARG)
	latMax, err2 := parseArgFloat64(q, LAT_MAX_QUERY_ARG)
	lngMin, err3 := parseArgFloat64(q, LNG_MIN_QUERY_ARG)
	lngMax, err4 := parseArgFloat64(q, LNG_MAX_QUERY_ARG)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	return &models.BoundingBox{
		LatMin: latMin,
		LatMax: latMax,
		LngMin: lngMin,
		LngMax: lngMax,
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
