/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rediscache

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gregjones/httpcache/test"
)

// Runs only when NHLSTATS_TEST_REDIS_ADDR points at a reachable server.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("NHLSTATS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping test; NHLSTATS_TEST_REDIS_ADDR not set")
	}

	cache := New(context.Background(), addr, "", 0)
	if err := cache.Init(); err != nil {
		t.Skip(fmt.Sprintf("Skipping test; redis at %v unreachable: %v",
			addr, err))
	}

	test.Cache(t, cache)
}

func TestCacheKeyNamespacing(t *testing.T) {
	k := cacheKey("https://api-web.nhle.com/v1/standings/now")
	if k == "https://api-web.nhle.com/v1/standings/now" {
		t.Errorf("cache keys must be namespaced to avoid clobbering other users")
	}
	if k != cacheKey("https://api-web.nhle.com/v1/standings/now") {
		t.Errorf("cache key derivation is not deterministic")
	}
}
