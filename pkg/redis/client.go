package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// locationsTTL bounds how stale a cached saved-location list can get
// if an invalidation is lost.
const locationsTTL = 10 * time.Minute

// Client wraps the Redis connection.
type Client struct {
	rdb *goredis.Client
}

// NewClient connects to Redis with retry.
func NewClient(addr string) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err == nil {
			cancel()
			log.Println("Connected to Redis")
			return &Client{rdb: rdb}, nil
		}
		cancel()
		log.Printf("Waiting for Redis... (%d/20)", i+1)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("redis: failed to connect after 20 attempts")
}

func locationsKey(userID string) string { return "user:" + userID + ":locations" }

// CacheLocations stores a user's serialized saved-location list with TTL.
func (c *Client) CacheLocations(ctx context.Context, userID string, data []byte) error {
	return c.rdb.Set(ctx, locationsKey(userID), data, locationsTTL).Err()
}

// GetCachedLocations returns the cached list, or nil on a miss.
func (c *Client) GetCachedLocations(ctx context.Context, userID string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, locationsKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	return data, err
}

// InvalidateLocations drops the cached list after a write or delete.
func (c *Client) InvalidateLocations(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, locationsKey(userID)).Err()
}

// Close tears down the Redis connection.
func (c *Client) Close() error { return c.rdb.Close() }
