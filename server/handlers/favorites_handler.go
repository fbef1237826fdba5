package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	services "micfinder/service"
	"micfinder/state"
)

const ID_QUERY_ARG = "id"

// FavoritesHandler exposes the starred-mic set. Every mutation follows the
// same sequence: mutate, persist, trigger one re-render.
type FavoritesHandler struct {
	favorites *services.FavoritesService
	st        *state.AppState
	render    *services.RenderService
}

func NewFavoritesHandler(
	favorites *services.FavoritesService,
	st *state.AppState,
	render *services.RenderService) *FavoritesHandler {

	return &FavoritesHandler{
		favorites: favorites,
		st:        st,
		render:    render,
	}
}

// GetFavorites handles GET /v1/favorites
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ids := h.favorites.Load()
	h.st.SetFavorites(ids)

	writeJSON(w, map[string]interface{}{"favorites": ids})
}

// ToggleFavorite handles POST /v1/favorites/toggle?id={micID}
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	micID := r.URL.Query().Get(ID_QUERY_ARG)
	if micID == "" {
		http.Error(w, "Invalid argument "+ID_QUERY_ARG, http.StatusBadRequest)
		return
	}

	updated := h.favorites.Toggle(micID)
	h.st.SetFavorites(updated)
	if h.render != nil {
		h.render.Trigger()
	}

	writeJSON(w, map[string]interface{}{"favorites": updated})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
