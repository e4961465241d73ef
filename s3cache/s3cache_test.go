/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package s3cache

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gregjones/httpcache/test"
)

// Live tests run only when NHLSTATS_TEST_S3_BUCKET names an accessible
// bucket; otherwise they skip.
func testBucket(t *testing.T) string {
	t.Helper()
	bucket := os.Getenv("NHLSTATS_TEST_S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping test; NHLSTATS_TEST_S3_BUCKET not set")
	}
	return bucket
}

func TestS3Cache(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, "apicache-test", false)
	if err := cache.Init(); err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			bucket, err))
	}

	test.Cache(t, cache)
}

func TestS3CacheWithGzip(t *testing.T) {
	bucket := testBucket(t)
	cache := New(context.Background(), bucket, "apicache-test", true)
	if err := cache.Init(); err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			bucket, err))
	}

	test.Cache(t, cache)
}

func TestObjectKey(t *testing.T) {
	plain := New(context.Background(), "bucket", "", false)
	gz := New(context.Background(), "bucket", "", true)

	const key = "https://api-web.nhle.com/v1/standings/now"
	pk := plain.objectKey(key)
	gk := gz.objectKey(key)

	if pk == gk {
		t.Errorf("gzip and plain object keys should differ: %v", pk)
	}
	if pk != plain.objectKey(key) {
		t.Errorf("object key derivation is not deterministic")
	}
}
