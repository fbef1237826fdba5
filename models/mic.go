package models

import "fmt"

// MicEvent represents one scheduled open-mic slot at a venue.
type MicEvent struct {
	ID      string `json:"id"`
	Venue   string `json:"venue"`
	Address string `json:"address"`

	Borough      string `json:"borough"`
	Neighborhood string `json:"neighborhood"`

	Day  string `json:"day"`
	Time string `json:"time"` // display form, as listed in the source

	// StartMinutes is Time parsed once at load to minutes since midnight.
	// -1 means the listed time could not be parsed.
	StartMinutes int `json:"start_minutes"`

	SignUpTime    string `json:"signup_time,omitempty"`
	SignUpMinutes int    `json:"signup_minutes"`

	Host    string `json:"host,omitempty"`
	Details string `json:"details,omitempty"`
	Cost    string `json:"cost,omitempty"`
	Signup  string `json:"signup,omitempty"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Derived at load time from Cost / Signup text.
	IsFree    bool `json:"is_free"`
	HasSignup bool `json:"has_signup"`
}

func (m *MicEvent) ToString() string {
	return fmt.Sprintf("MicEvent(id=%s, venue=%s, day=%s, time=%s, lat=%f, lon=%f)",
		m.ID, m.Venue, m.Day, m.Time, m.Lat, m.Lon)
}
