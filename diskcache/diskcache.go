/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

/* Package diskcache provides an implementation of httpcache.Cache that
 * stores and retrieves entries as files under a local directory. It is the
 * default response store. Keys are hashed to filesystem-safe names; a
 * corrupt or unreadable entry is reported as a miss so the caller falls
 * back to a live fetch.
 */
package diskcache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
)

// Cache objects store and retrieve data on the local filesystem.
type Cache struct {
	// dir is the directory holding one file per cache entry.
	dir string

	// logErrors controls whether store errors are logged. Store errors are
	// never surfaced to callers; a failed read is a miss and a failed write
	// leaves the previous entry in place.
	logErrors bool
}

// New returns a new Cache rooted at dir. Callers should invoke Init() on the
// returned Cache before use.
func New(dir string, logErrors bool) *Cache {
	return &Cache{
		dir:       dir,
		logErrors: logErrors,
	}
}

// Init creates the cache directory if absent and verifies it is writable.
func (c *Cache) Init() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("diskcache.init: failed to create %s: %w", c.dir, err)
	}

	// Permission check: verify we can create entries
	probe, err := os.CreateTemp(c.dir, "probe*")
	if err != nil {
		return fmt.Errorf("diskcache.init: %s is not writable: %w", c.dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.keyToPath(key))
	if err != nil {
		if c.logErrors && !os.IsNotExist(err) {
			log.Errorf("diskcache.get: failed to read entry for %v: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

// Set stores the provided data in the cache under the given key. Writes go
// through a temp file and rename so a concurrent reader never observes a
// torn entry; the last writer wins.
func (c *Cache) Set(key string, data []byte) {
	tmp, err := os.CreateTemp(c.dir, "tmp*")
	if err != nil {
		if c.logErrors {
			log.Errorf("diskcache.set: failed to create temp entry for %v: %v",
				key, err)
		}
		return
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), c.keyToPath(key))
	}
	if err != nil {
		os.Remove(tmp.Name())
		if c.logErrors {
			log.Errorf("diskcache.set: failed to write entry for %v: %v", key, err)
		}
	}
}

func (c *Cache) Delete(key string) {
	if err := os.Remove(c.keyToPath(key)); err != nil && !os.IsNotExist(err) {
		if c.logErrors {
			log.Errorf("diskcache.delete: delete failed for %v: %v", key, err)
		}
	}
}

// Purge removes entries whose modification time is older than the given age.
// Expired entries are otherwise only invalidated on read and accumulate on
// disk until purged.
func (c *Cache) Purge(olderThan time.Duration) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("diskcache.purge: failed to read %s: %w", c.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) <= olderThan {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		if err := os.Remove(path); err == nil {
			log.Debugf("diskcache.purge: removed %s", path)
		} else if c.logErrors {
			log.Warnf("diskcache.purge: failed to remove %s: %v", path, err)
		}
	}

	return nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) keyToPath(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	return filepath.Join(c.dir, hex.EncodeToString(h.Sum(nil)))
}
