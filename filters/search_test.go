package filters

import (
	"testing"

	"micfinder/models"
)

func searchCatalog() []models.MicEvent {
	return []models.MicEvent{
		{ID: "cellar", Venue: "Comedy Cellar", Address: "117 Macdougal St"},
		{ID: "grove", Venue: "Grove 34", Address: "37-03 30th Ave"},
		{ID: "qed", Venue: "QED Astoria", Address: "27-16 23rd Ave"},
	}
}

func TestSearchMics(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"substring on venue", "cellar", []string{"cellar"}},
		{"case insensitive", "GROVE", []string{"grove"}},
		{"substring on address", "macdougal", []string{"cellar"}},
		{"typo within budget", "comedy celar", []string{"cellar"}},
		{"no match", "karaoke palace", []string{}},
		{"below minimum length returns everything", "q", []string{"cellar", "grove", "qed"}},
		{"blank returns everything", "   ", []string{"cellar", "grove", "qed"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := SearchMics(searchCatalog(), test.query)
			assertIDs(t, result, test.expected...)
		})
	}
}

func TestSearchMics_PrefixMustMatch(t *testing.T) {
	// "xomedy cellar" is one edit from "comedy cellar" but the first
	// character differs, so it does not match.
	result := SearchMics(searchCatalog(), "xomedy cellar")
	assertIDs(t, result)
}
