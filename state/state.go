package state

import (
	"sync"

	"micfinder/models"
)

// AppState is the process-wide working set: the loaded mic catalog, the
// active filter selections, the favorites list and the map-restriction
// flag. It replaces ambient globals with an explicitly constructed object
// handed to the pipeline and transport layers. All accessors are safe for
// concurrent use.
type AppState struct {
	mu sync.RWMutex

	mics          []models.MicEvent
	favorites     []string
	activeFilters models.ActiveFilterSet
	loadError     bool
}

// NewAppState builds an empty state with default filter selections.
func NewAppState() *AppState {
	return &AppState{
		activeFilters: models.DefaultFilterSet(),
	}
}

// SetMics replaces the full catalog, as a fresh load does.
func (s *AppState) SetMics(mics []models.MicEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mics = mics
}

// AllMics returns a copy of the full catalog.
func (s *AppState) AllMics() []models.MicEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MicEvent, len(s.mics))
	copy(out, s.mics)
	return out
}

func (s *AppState) SetFavorites(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = ids
}

func (s *AppState) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// FavoritesSet returns the favorites as a membership set for the pipeline.
func (s *AppState) FavoritesSet() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[string]bool, len(s.favorites))
	for _, id := range s.favorites {
		set[id] = true
	}
	return set
}

// SetActiveFilters replaces the current filter selections.
func (s *AppState) SetActiveFilters(f models.ActiveFilterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeFilters = f
}

func (s *AppState) ActiveFilters() models.ActiveFilterSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFilters
}

// SetMapFilterEnabled flips the map-viewport restriction, which lives on
// the filter set so it persists with the rest of the selections.
func (s *AppState) SetMapFilterEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeFilters.MapFilterEnabled = enabled
}

func (s *AppState) MapFilterEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFilters.MapFilterEnabled
}

// SetLoadError records whether the last catalog load failed outright.
func (s *AppState) SetLoadError(failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadError = failed
}

func (s *AppState) LoadError() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadError
}

// Reset clears everything back to a fresh session. Used by tests.
func (s *AppState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mics = nil
	s.favorites = nil
	s.activeFilters = models.DefaultFilterSet()
	s.loadError = false
}
