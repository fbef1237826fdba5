package services

import (
	"log"
	"sync"
	"time"

	"micfinder/config"
	"micfinder/filters"
	"micfinder/models"
	"micfinder/state"
	"micfinder/util"
)

// MapView is the external map collaborator: it owns marker rendering and
// knows the current viewport.
type MapView interface {
	// Bounds returns the current viewport, or nil when no map is up.
	Bounds() *models.BoundingBox
	// UpdateMarkers pushes the filtered set and returns the marker count.
	UpdateMarkers(mics []models.MicEvent) int
}

// ListView is the external list/heading collaborator.
type ListView interface {
	UpdateResultsHeading(count int)
	RenderMicList(mics []models.MicEvent)
}

// RenderService is the debounced orchestrator behind every state-mutating
// action: it runs dedup, the filter pipeline and the sorter, then hands the
// result to the map and list collaborators in phases. Repeated triggers
// coalesce into at most one pending pass, and completed passes are spaced
// at least RENDER_MIN_INTERVAL_MS apart.
type RenderService struct {
	st       *state.AppState
	mapView  MapView
	listView ListView

	minInterval time.Duration
	nowFunc     func() time.Time

	mu         sync.Mutex
	lastRender time.Time
	pending    *time.Timer
}

// NewRenderService wires the orchestrator to its collaborators. Either
// collaborator may be nil (headless runs skip that phase).
func NewRenderService(st *state.AppState, mapView MapView, listView ListView) *RenderService {
	return &RenderService{
		st:          st,
		mapView:     mapView,
		listView:    listView,
		minInterval: config.RENDER_MIN_INTERVAL_MS * time.Millisecond,
		nowFunc:     time.Now,
	}
}

// Trigger requests a render pass. If one is already scheduled this is a
// no-op; if the last pass completed too recently, a single pass is
// scheduled after the spacing interval. A scheduled pass always eventually
// runs.
func (rs *RenderService) Trigger() {
	rs.mu.Lock()

	if rs.pending != nil {
		rs.mu.Unlock()
		return
	}

	now := rs.nowFunc()
	if now.Sub(rs.lastRender) < rs.minInterval {
		rs.pending = time.AfterFunc(rs.minInterval, func() {
			rs.mu.Lock()
			rs.pending = nil
			rs.mu.Unlock()
			rs.Trigger()
		})
		rs.mu.Unlock()
		return
	}

	rs.lastRender = now
	rs.mu.Unlock()

	rs.renderPass(now)
}

// RenderNow runs a pass immediately, bypassing the spacing policy. Used on
// startup and after a catalog reload.
func (rs *RenderService) RenderNow() {
	now := rs.nowFunc()
	rs.mu.Lock()
	rs.lastRender = now
	rs.mu.Unlock()
	rs.renderPass(now)
}

// Results runs the pipeline and returns the final sorted list without
// touching the collaborators.
func (rs *RenderService) Results(now time.Time) []models.MicEvent {
	mics := util.DeduplicateMics(rs.st.AllMics())

	activeFilters := rs.st.ActiveFilters()
	var bounds *models.BoundingBox
	if activeFilters.MapFilterEnabled && rs.mapView != nil {
		bounds = rs.mapView.Bounds()
	}

	results := filters.ApplyAllFilters(mics, activeFilters, bounds, rs.st.FavoritesSet(), now)
	return filters.SortResults(results, activeFilters.Sort, now)
}

func (rs *RenderService) renderPass(now time.Time) {
	results := rs.Results(now)

	// Phase 1: map markers, the heaviest collaborator.
	if rs.mapView != nil {
		markerCount := rs.mapView.UpdateMarkers(results)
		log.Printf("[RenderService] Updated %d map markers", markerCount)
	}

	// Phase 2: the lightweight results-count heading.
	if rs.listView != nil {
		rs.listView.UpdateResultsHeading(len(results))
	}

	// Phase 3: the list itself.
	if rs.listView != nil {
		rs.listView.RenderMicList(results)
	}
}
