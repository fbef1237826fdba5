package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"micfinder/localstore"
	"micfinder/models"
	services "micfinder/service"
	"micfinder/state"
)

func newFilterStateHandlerFixture(t *testing.T) (*FilterStateHandler, *state.AppState) {
	t.Helper()
	local, err := localstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	filterState := services.NewFilterStateService(local)
	st := state.NewAppState()
	return NewFilterStateHandler(filterState, st, nil), st
}

func TestFilterStateHandler_PutFilters(t *testing.T) {
	h, st := newFilterStateHandlerFixture(t)

	body := `{"day":["Monday"],"borough":["Queens"],"sort":"cost"}`
	req := httptest.NewRequest("PUT", "/v1/filters", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.PutFilters(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	applied := st.ActiveFilters()
	if len(applied.Day) != 1 || applied.Day[0] != "Monday" {
		t.Errorf("Expected day selection applied, got %v", applied.Day)
	}
	if applied.Sort != models.SORT_COST {
		t.Errorf("Expected sort applied, got %q", applied.Sort)
	}
}

func TestFilterStateHandler_PutFilters_BackfillsSort(t *testing.T) {
	h, st := newFilterStateHandlerFixture(t)

	req := httptest.NewRequest("PUT", "/v1/filters", strings.NewReader(`{"day":["Friday"]}`))
	rr := httptest.NewRecorder()

	h.PutFilters(rr, req)

	if st.ActiveFilters().Sort != models.SORT_CURRENT_TIME {
		t.Errorf("Expected default sort backfilled, got %q", st.ActiveFilters().Sort)
	}
}

func TestFilterStateHandler_PutFilters_BadPayload(t *testing.T) {
	h, _ := newFilterStateHandlerFixture(t)

	req := httptest.NewRequest("PUT", "/v1/filters", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.PutFilters(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestFilterStateHandler_GetFilters(t *testing.T) {
	h, st := newFilterStateHandlerFixture(t)

	f := st.ActiveFilters()
	f.Search = "grove"
	st.SetActiveFilters(f)

	req := httptest.NewRequest("GET", "/v1/filters", nil)
	rr := httptest.NewRecorder()

	h.GetFilters(rr, req)

	var resp struct {
		Filters    models.ActiveFilterSet `json:"filters"`
		ShareQuery string                 `json:"share_query"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Filters.Search != "grove" {
		t.Errorf("Expected current selections, got %+v", resp.Filters)
	}
	if !strings.Contains(resp.ShareQuery, "search=grove") {
		t.Errorf("Expected shareable query string, got %q", resp.ShareQuery)
	}
}
