/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package diskcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c := New(filepath.Join(t.TempDir(), "cache"), true)
	require.NoError(t, c.Init())
	return c
}

func TestGetSetDelete(t *testing.T) {
	c := newTestCache(t)
	const key = "https://api-web.nhle.com/v1/standings/now"

	_, ok := c.Get(key)
	assert.False(t, ok, "empty cache should miss")

	c.Set(key, []byte("payload-1"))
	data, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte("payload-1"), data)

	// overwrite
	c.Set(key, []byte("payload-2"))
	data, ok = c.Get(key)
	require.True(t, ok)
	assert.Equal(t, []byte("payload-2"), data)

	c.Delete(key)
	_, ok = c.Get(key)
	assert.False(t, ok, "deleted entry should miss")

	// deleting a missing key is a no-op
	c.Delete(key)
}

func TestKeysDoNotCollide(t *testing.T) {
	c := newTestCache(t)

	c.Set("https://api-web.nhle.com/v1/roster/EDM/current", []byte("edm"))
	c.Set("https://api-web.nhle.com/v1/roster/TOR/current", []byte("tor"))

	data, ok := c.Get("https://api-web.nhle.com/v1/roster/EDM/current")
	require.True(t, ok)
	assert.Equal(t, []byte("edm"), data)

	data, ok = c.Get("https://api-web.nhle.com/v1/roster/TOR/current")
	require.True(t, ok)
	assert.Equal(t, []byte("tor"), data)
}

func TestInitCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "cache")
	c := New(dir, false)
	require.NoError(t, c.Init())

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestPurge(t *testing.T) {
	c := newTestCache(t)

	c.Set("old-key", []byte("old"))
	oldPath := c.keyToPath("old-key")
	ancient := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, ancient, ancient))

	c.Set("new-key", []byte("new"))

	require.NoError(t, c.Purge(24*time.Hour))

	_, ok := c.Get("old-key")
	assert.False(t, ok, "purged entry should be gone")
	_, ok = c.Get("new-key")
	assert.True(t, ok, "fresh entry should survive purge")
}
