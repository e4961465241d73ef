/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

/* Package rediscache provides an implementation of httpcache.Cache backed by
 * Redis, for deployments that already run one. Entries are stored with a
 * retention ceiling so abandoned keys age out of Redis on their own; TTL
 * freshness is still decided by the HTTP cache layer, not by Redis expiry.
 */
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/go-redis/redis/v8"
)

// Retention ceiling for stored entries. Must exceed the longest TTL tier
// (7 days) or entries would vanish while still fresh.
const defaultRetention = 14 * 24 * time.Hour

// Cache objects store and retrieve data using a Redis server.
type Cache struct {
	client    *redis.Client
	retention time.Duration
	ctx       context.Context
}

// New returns a Cache talking to the Redis server at addr. Callers should
// invoke Init() on the returned Cache before use.
func New(ctx context.Context, addr, password string, db int) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		retention: defaultRetention,
		ctx:       ctx,
	}
}

// Init verifies the server is reachable.
func (c *Cache) Init() error {
	if _, err := c.client.Ping(c.ctx).Result(); err != nil {
		return fmt.Errorf("rediscache.init: could not connect to redis: %w", err)
	}
	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	data, err := c.client.Get(c.ctx, cacheKey(key)).Bytes()
	if err != nil {
		// a missing key is just a cache miss
		if !errors.Is(err, redis.Nil) {
			log.Errorf("rediscache.get: failed to get %v: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	if err := c.client.Set(c.ctx, cacheKey(key), data,
		c.retention).Err(); err != nil {
		log.Errorf("rediscache.set: set failed for %v: %v", key, err)
	}
}

func (c *Cache) Delete(key string) {
	if err := c.client.Del(c.ctx, cacheKey(key)).Err(); err != nil {
		log.Errorf("rediscache.delete: delete failed for %v: %v", key, err)
	}
}

func cacheKey(key string) string {
	return "nhlstats:apicache:" + key
}
