package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MicHandlerAPI is the subset of the mic handler the router binds.
type MicHandlerAPI interface {
	GetMics(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// FavoritesHandlerAPI is the subset of the favorites handler the router binds.
type FavoritesHandlerAPI interface {
	GetFavorites(w http.ResponseWriter, r *http.Request)
	ToggleFavorite(w http.ResponseWriter, r *http.Request)
}

// FilterStateHandlerAPI is the subset of the filter-state handler the router binds.
type FilterStateHandlerAPI interface {
	GetFilters(w http.ResponseWriter, r *http.Request)
	PutFilters(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	micHandler         MicHandlerAPI
	favoritesHandler   FavoritesHandlerAPI
	filterStateHandler FilterStateHandlerAPI
	router             *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	micHandler MicHandlerAPI,
	favoritesHandler FavoritesHandlerAPI,
	filterStateHandler FilterStateHandlerAPI,
	router *mux.Router) *Router {
	return &Router{
		micHandler:         micHandler,
		favoritesHandler:   favoritesHandler,
		filterStateHandler: filterStateHandler,
		router:             router,
	}
}

func (r *Router) RegisterRoutes() {
	// accepts the same query parameters the share-link encoder produces,
	// plus lat_min/lat_max/lng_min/lng_max viewport bounds
	r.router.HandleFunc("/v1/mics", r.micHandler.GetMics).Methods("GET")

	r.router.HandleFunc("/v1/filters", r.filterStateHandler.GetFilters).Methods("GET")
	r.router.HandleFunc("/v1/filters", r.filterStateHandler.PutFilters).Methods("PUT")

	r.router.HandleFunc("/v1/favorites", r.favoritesHandler.GetFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites/toggle", r.favoritesHandler.ToggleFavorite).Methods("POST")

	r.router.HandleFunc("/ping", r.micHandler.Ping).Methods("GET")
}
