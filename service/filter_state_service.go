package services

import (
	"errors"
	"log"
	"net/url"

	"micfinder/config"
	"micfinder/localstore"
	"micfinder/models"
)

// FilterStateService persists the active filter selections under a fixed
// key in the local document store and mirrors them into a URL query string
// so filter state round-trips through reloads and is shareable via link.
type FilterStateService struct {
	local *localstore.Store
}

func NewFilterStateService(local *localstore.Store) *FilterStateService {
	return &FilterStateService{local: local}
}

// Load returns the saved selections, or the defaults when nothing was
// saved or the saved document is unreadable.
func (fss *FilterStateService) Load() models.ActiveFilterSet {
	var f models.ActiveFilterSet
	err := fss.local.Get(config.FILTER_STORAGE_KEY, &f)
	if errors.Is(err, localstore.ErrNoDocument) {
		return models.DefaultFilterSet()
	}
	if err != nil {
		log.Printf("[FilterStateService] Load failed, using defaults: %v", err)
		return models.DefaultFilterSet()
	}
	if f.Sort == "" {
		f.Sort = models.SORT_CURRENT_TIME
	}
	return f
}

// Save persists the selections. Failures are logged; the in-memory state
// stays authoritative.
func (fss *FilterStateService) Save(f models.ActiveFilterSet) {
	if err := fss.local.Set(config.FILTER_STORAGE_KEY, f); err != nil {
		log.Printf("[FilterStateService] Save failed: %v", err)
	}
}

// ShareQuery encodes the selections as the shareable query string.
func (fss *FilterStateService) ShareQuery(f models.ActiveFilterSet) string {
	return f.ToValues().Encode()
}

// FromQuery rebuilds selections from a shared query string.
func (fss *FilterStateService) FromQuery(q url.Values) models.ActiveFilterSet {
	return models.FilterSetFromValues(q)
}
