package services

import (
	"sync"
	"testing"
	"time"

	"micfinder/models"
	"micfinder/state"
)

type fakeMapView struct {
	mu      sync.Mutex
	bounds  *models.BoundingBox
	updates [][]models.MicEvent
}

func (f *fakeMapView) Bounds() *models.BoundingBox { return f.bounds }

func (f *fakeMapView) UpdateMarkers(mics []models.MicEvent) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, mics)
	return len(mics)
}

func (f *fakeMapView) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

type fakeListView struct {
	mu       sync.Mutex
	calls    []string
	headings []int
}

func (f *fakeListView) UpdateResultsHeading(count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "heading")
	f.headings = append(f.headings, count)
}

func (f *fakeListView) RenderMicList(mics []models.MicEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "list")
}

func upcomingMic(id string) models.MicEvent {
	return models.MicEvent{
		ID: id, Venue: "Venue " + id, Address: id + " Test St",
		Day: "Monday", Time: "11:00 PM", StartMinutes: 23 * 60,
		Lat: 40.7, Lon: -73.9,
	}
}

func TestRenderService_RenderNowPhases(t *testing.T) {
	st := state.NewAppState()
	st.SetMics([]models.MicEvent{upcomingMic("a"), upcomingMic("b")})

	mapView := &fakeMapView{}
	listView := &fakeListView{}
	rs := NewRenderService(st, mapView, listView)
	// Monday 8:00 PM
	rs.nowFunc = func() time.Time { return time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC) }

	rs.RenderNow()

	if mapView.updateCount() != 1 {
		t.Fatalf("Expected one marker update, got %d", mapView.updateCount())
	}
	if len(listView.calls) != 2 || listView.calls[0] != "heading" || listView.calls[1] != "list" {
		t.Fatalf("Expected heading then list, got %v", listView.calls)
	}
	if listView.headings[0] != 2 {
		t.Errorf("Expected heading count 2, got %d", listView.headings[0])
	}
}

func TestRenderService_TriggerCoalesces(t *testing.T) {
	st := state.NewAppState()
	st.SetMics([]models.MicEvent{upcomingMic("a")})

	mapView := &fakeMapView{}
	rs := NewRenderService(st, mapView, nil)
	rs.minInterval = 20 * time.Millisecond

	// The first trigger renders immediately; the burst that follows
	// coalesces into a single deferred pass.
	for i := 0; i < 10; i++ {
		rs.Trigger()
	}

	time.Sleep(100 * time.Millisecond)

	got := mapView.updateCount()
	if got != 2 {
		t.Errorf("Expected 2 render passes for a burst of 10 triggers, got %d", got)
	}
}

func TestRenderService_ResultsRunsFullPipeline(t *testing.T) {
	st := state.NewAppState()
	dup := upcomingMic("a")
	st.SetMics([]models.MicEvent{dup, dup, upcomingMic("b")})

	rs := NewRenderService(st, nil, nil)

	results := rs.Results(time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC))

	if len(results) != 2 {
		t.Fatalf("Expected duplicates collapsed to 2 results, got %d", len(results))
	}
}

func TestRenderService_MapBoundsFeedPipeline(t *testing.T) {
	st := state.NewAppState()
	inside := upcomingMic("in")
	outside := upcomingMic("out")
	outside.Lat, outside.Lon = 41.5, -72.0
	st.SetMics([]models.MicEvent{inside, outside})

	f := st.ActiveFilters()
	f.MapFilterEnabled = true
	st.SetActiveFilters(f)

	mapView := &fakeMapView{bounds: &models.BoundingBox{LatMin: 40.0, LatMax: 41.0, LngMin: -74.5, LngMax: -73.0}}
	rs := NewRenderService(st, mapView, nil)

	results := rs.Results(time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC))

	if len(results) != 1 || results[0].ID != "in" {
		t.Fatalf("Expected only the in-viewport mic, got %v", results)
	}
}
