package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"micfinder/db"
)

const FAVORITES_KEY_FORMAT_V1 = "favorites_v1:%s"

// RedisFavoritesDAO stores each user's favorite mic ids as a JSON document,
// the remote mirror of the local favorites tier.
type RedisFavoritesDAO struct {
	client db.RedisClient
}

// NewRedisFavoritesDAO initializes a RedisFavoritesDAO with the Redis client.
func NewRedisFavoritesDAO(client db.RedisClient) *RedisFavoritesDAO {
	return &RedisFavoritesDAO{client: client}
}

// SetFavorites replaces the stored favorites document for the user.
func (dao *RedisFavoritesDAO) SetFavorites(userID string, micIDs []string) error {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	data, err := json.Marshal(micIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites for user %s: %w", userID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set favorites in redis: %w", err)
	}
	return nil
}

// GetFavorites retrieves the stored favorites for the user.
func (dao *RedisFavoritesDAO) GetFavorites(userID string) ([]string, error) {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites from redis: %w", err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(str), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites JSON: %w", err)
	}
	return ids, nil
}

// DeleteFavorites removes the stored favorites document for the user.
func (dao *RedisFavoritesDAO) DeleteFavorites(userID string) error {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete favorites key %s: %w", key, err)
	}
	return nil
}

// ListUserIDs returns the user ids with a stored favorites document.
func (dao *RedisFavoritesDAO) ListUserIDs() ([]string, error) {
	pattern := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites keys: %w", err)
	}
	prefix := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
