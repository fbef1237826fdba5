package services

import (
	"errors"
	"log"

	"micfinder/config"
	redisdao "micfinder/dao/redis"
	"micfinder/localstore"
)

// FavoritesService keeps the starred-mic set in two tiers: the local
// document store always, and the per-user remote document when a user id is
// known. Remote failures log and fall back to local; they never reach the
// caller.
type FavoritesService struct {
	dao    *redisdao.RedisFavoritesDAO
	local  *localstore.Store
	userID string
}

// NewFavoritesService constructs the service. userID may be empty, which
// means unauthenticated: local tier only.
func NewFavoritesService(
	dao *redisdao.RedisFavoritesDAO,
	local *localstore.Store,
	userID string) *FavoritesService {

	return &FavoritesService{
		dao:    dao,
		local:  local,
		userID: userID,
	}
}

// Load returns the favorites, preferring the remote document and falling
// back to the local tier. A missing document on both tiers is an empty set.
func (fs *FavoritesService) Load() []string {
	if fs.userID != "" {
		ids, err := fs.dao.GetFavorites(fs.userID)
		if err == nil {
			return ids
		}
		log.Printf("[FavoritesService] Remote load failed for user %s, falling back to local: %v", fs.userID, err)
	}

	var ids []string
	err := fs.local.Get(config.FAVORITES_STORAGE_KEY, &ids)
	if errors.Is(err, localstore.ErrNoDocument) {
		return []string{}
	}
	if err != nil {
		log.Printf("[FavoritesService] Local load failed: %v", err)
		return []string{}
	}
	return ids
}

// Save persists the favorites to the local tier and mirrors them remotely
// when authenticated. Persistence failures are logged, not propagated.
func (fs *FavoritesService) Save(ids []string) {
	if err := fs.local.Set(config.FAVORITES_STORAGE_KEY, ids); err != nil {
		log.Printf("[FavoritesService] Local save failed: %v", err)
	}

	if fs.userID == "" {
		return
	}
	if err := fs.dao.SetFavorites(fs.userID, ids); err != nil {
		log.Printf("[FavoritesService] Remote save failed for user %s, local copy kept: %v", fs.userID, err)
	}
}

// Toggle adds the mic id to the favorites if absent, removes it if present,
// persists both tiers and returns the updated list.
func (fs *FavoritesService) Toggle(micID string) []string {
	ids := fs.Load()

	found := false
	updated := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == micID {
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		updated = append(updated, micID)
	}

	fs.Save(updated)
	return updated
}
