package state

import (
	"testing"

	"micfinder/models"
)

func TestAppState_MicsCopySemantics(t *testing.T) {
	st := NewAppState()
	st.SetMics([]models.MicEvent{{ID: "mic-1", Venue: "Grove 34"}})

	got := st.AllMics()
	got[0].Venue = "mutated"

	if st.AllMics()[0].Venue != "Grove 34" {
		t.Errorf("Expected internal catalog to be isolated from callers")
	}
}

func TestAppState_FavoritesSet(t *testing.T) {
	st := NewAppState()
	st.SetFavorites([]string{"mic-1", "mic-2"})

	set := st.FavoritesSet()
	if !set["mic-1"] || !set["mic-2"] || set["mic-3"] {
		t.Errorf("Unexpected favorites set: %v", set)
	}
}

func TestAppState_DefaultsAndReset(t *testing.T) {
	st := NewAppState()
	if st.ActiveFilters().Sort != models.SORT_CURRENT_TIME {
		t.Errorf("Expected default sort on a fresh state")
	}

	f := st.ActiveFilters()
	f.Day = []string{"Monday"}
	st.SetActiveFilters(f)
	st.SetMics([]models.MicEvent{{ID: "mic-1"}})
	st.SetLoadError(true)

	st.Reset()

	if len(st.AllMics()) != 0 || len(st.ActiveFilters().Day) != 0 || st.LoadError() {
		t.Errorf("Expected Reset to clear everything")
	}
}

func TestAppState_MapFilterFlag(t *testing.T) {
	st := NewAppState()
	if st.MapFilterEnabled() {
		t.Errorf("Expected map filter off by default")
	}

	st.SetMapFilterEnabled(true)
	if !st.MapFilterEnabled() {
		t.Errorf("Expected map filter enabled")
	}
	if !st.ActiveFilters().MapFilterEnabled {
		t.Errorf("Expected flag stored on the filter selections")
	}
}
