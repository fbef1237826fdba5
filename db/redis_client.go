package db

import "context"

// RedisClient defines the methods the DAOs need from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	GetContext() context.Context
	Ping() error
}
