package handlers

import (
	"encoding/json"
	"net/http"

	"micfinder/models"
	services "micfinder/service"
	"micfinder/state"
)

// FilterStateHandler persists and serves the active filter selections.
type FilterStateHandler struct {
	filterState *services.FilterStateService
	st          *state.AppState
	render      *services.RenderService
}

func NewFilterStateHandler(
	filterState *services.FilterStateService,
	st *state.AppState,
	render *services.RenderService) *FilterStateHandler {

	return &FilterStateHandler{
		filterState: filterState,
		st:          st,
		render:      render,
	}
}

// GetFilters handles GET /v1/filters: the current selections plus their
// shareable query-string form.
func (h *FilterStateHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	f := h.st.ActiveFilters()
	writeJSON(w, map[string]interface{}{
		"filters":     f,
		"share_query": h.filterState.ShareQuery(f),
	})
}

// PutFilters handles PUT /v1/filters with a JSON filter set body. The
// mutation, its persistence and the re-render trigger happen as one
// sequence.
func (h *FilterStateHandler) PutFilters(w http.ResponseWriter, r *http.Request) {
	var f models.ActiveFilterSet
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "Invalid filter payload", http.StatusBadRequest)
		return
	}
	if f.Sort == "" {
		f.Sort = models.SORT_CURRENT_TIME
	}

	h.st.SetActiveFilters(f)
	h.filterState.Save(f)
	if h.render != nil {
		h.render.Trigger()
	}

	writeJSON(w, map[string]interface{}{
		"filters":     f,
		"share_query": h.filterState.ShareQuery(f),
	})
}
