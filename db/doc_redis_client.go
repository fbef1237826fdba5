package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// DocRedisClient holds the Redis client and context for the document DAOs.
type DocRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewDocRedisClient wraps an initialized Redis client.
func NewDocRedisClient(ctx context.Context, client *redis.Client) *DocRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return &DocRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *DocRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *DocRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return val, nil
}

// Keys lists keys matching the pattern.
func (r *DocRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *DocRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *DocRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *DocRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
