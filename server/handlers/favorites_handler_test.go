package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	redisdao "micfinder/dao/redis"
	"micfinder/db"
	"micfinder/localstore"
	services "micfinder/service"
	"micfinder/state"
)

func newFavoritesHandlerFixture(t *testing.T) (*FavoritesHandler, *state.AppState) {
	t.Helper()
	local, err := localstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	dao := redisdao.NewRedisFavoritesDAO(db.NewMockRedisClient(context.Background()))
	favorites := services.NewFavoritesService(dao, local, "user123")
	st := state.NewAppState()
	return NewFavoritesHandler(favorites, st, nil), st
}

func TestFavoritesHandler_ToggleFavorite(t *testing.T) {
	h, st := newFavoritesHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/favorites/toggle?id=mic-0000abcd", nil)
	rr := httptest.NewRecorder()

	h.ToggleFavorite(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Favorites []string `json:"favorites"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Favorites) != 1 || resp.Favorites[0] != "mic-0000abcd" {
		t.Errorf("Expected toggled favorite, got %v", resp.Favorites)
	}

	// The in-memory state is updated in the same sequence.
	if !st.FavoritesSet()["mic-0000abcd"] {
		t.Errorf("Expected state favorites updated")
	}
}

func TestFavoritesHandler_ToggleFavorite_MissingID(t *testing.T) {
	h, _ := newFavoritesHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/favorites/toggle", nil)
	rr := httptest.NewRecorder()

	h.ToggleFavorite(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestFavoritesHandler_GetFavorites(t *testing.T) {
	h, _ := newFavoritesHandlerFixture(t)

	toggle := httptest.NewRequest("POST", "/v1/favorites/toggle?id=mic-0000beef", nil)
	h.ToggleFavorite(httptest.NewRecorder(), toggle)

	req := httptest.NewRequest("GET", "/v1/favorites", nil)
	rr := httptest.NewRecorder()

	h.GetFavorites(rr, req)

	var resp struct {
		Favorites []string `json:"favorites"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Favorites) != 1 || resp.Favorites[0] != "mic-0000beef" {
		t.Errorf("Expected persisted favorite, got %v", resp.Favorites)
	}
}
