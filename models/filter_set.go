package models

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// ActiveFilterSet mirrors the UI's current filter selections. Zero values
// mean "no restriction". It round-trips through a URL query string (one
// parameter per field, JSON-encoded for the multi-selects) so filter state
// is shareable via link.
type ActiveFilterSet struct {
	Day          []string `json:"day,omitempty"`
	Borough      []string `json:"borough,omitempty"`
	Neighborhood []string `json:"neighborhood,omitempty"`
	Cost         []string `json:"cost,omitempty"`
	Signup       []string `json:"signup,omitempty"`

	CustomTimeStart string `json:"customTimeStart,omitempty"`
	CustomTimeEnd   string `json:"customTimeEnd,omitempty"`

	Search     string `json:"search,omitempty"`
	ExactVenue string `json:"exactVenue,omitempty"`

	ShowFavorites    bool `json:"showFavorites,omitempty"`
	MapFilterEnabled bool `json:"mapFilterEnabled,omitempty"`

	Sort string `json:"sort,omitempty"`
}

// Sort keys accepted by the sorter.
const (
	SORT_CURRENT_TIME = "currentTime"
	SORT_SIGNUP_TIME  = "signUpTime"
	SORT_COST         = "cost"
	SORT_NAME         = "name"
)

// DefaultFilterSet returns the selections a fresh session starts with.
func DefaultFilterSet() ActiveFilterSet {
	return ActiveFilterSet{
		Borough:      []string{},
		Neighborhood: []string{},
		Cost:         []string{},
		Signup:       []string{},
		Sort:         SORT_CURRENT_TIME,
	}
}

func (f ActiveFilterSet) ToValues() url.Values {
	q := url.Values{}

	setList := func(key string, vals []string) {
		if len(vals) == 0 {
			return
		}
		encoded, err := json.Marshal(vals)
		if err != nil {
			return
		}
		q.Set(key, string(encoded))
	}

	setList("day", f.Day)
	setList("borough", f.Borough)
	setList("neighborhood", f.Neighborhood)
	setList("cost", f.Cost)
	setList("signup", f.Signup)

	if f.CustomTimeStart != "" {
		q.Set("customTimeStart", f.CustomTimeStart)
	}
	if f.CustomTimeEnd != "" {
		q.Set("customTimeEnd", f.CustomTimeEnd)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.ExactVenue != "" {
		q.Set("exactVenue", f.ExactVenue)
	}
	if f.ShowFavorites {
		q.Set("showFavorites", "true")
	}
	if f.MapFilterEnabled {
		q.Set("mapFilterEnabled", "true")
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}

	return q
}

// FilterSetFromValues rebuilds an ActiveFilterSet from a query string
// produced by ToValues. Multi-select parameters also accept a bare string
// (a single selection saved without JSON encoding).
func FilterSetFromValues(q url.Values) ActiveFilterSet {
	f := DefaultFilterSet()

	f.Day = parseListParam(q, "day")
	if v := parseListParam(q, "borough"); len(v) > 0 {
		f.Borough = v
	}
	if v := parseListParam(q, "neighborhood"); len(v) > 0 {
		f.Neighborhood = v
	}
	if v := parseListParam(q, "cost"); len(v) > 0 {
		f.Cost = v
	}
	if v := parseListParam(q, "signup"); len(v) > 0 {
		f.Signup = v
	}

	f.CustomTimeStart = q.Get("customTimeStart")
	f.CustomTimeEnd = q.Get("customTimeEnd")
	f.Search = q.Get("search")
	f.ExactVenue = q.Get("exactVenue")

	if v := q.Get("showFavorites"); v != "" {
		f.ShowFavorites, _ = strconv.ParseBool(v)
	}
	if v := q.Get("mapFilterEnabled"); v != "" {
		f.MapFilterEnabled, _ = strconv.ParseBool(v)
	}
	if v := q.Get("sort"); v != "" {
		f.Sort = v
	}

	return f
}

func parseListParam(q url.Values, key string) []string {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(raw), &vals); err == nil {
		return vals
	}
	// not JSON: treat the raw value as a single selection
	return []string{raw}
}
