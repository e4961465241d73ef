/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func useTestConfig(t *testing.T, testdataFile string) {
	t.Helper()
	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	assert.NoError(t, err, "failed to get absolute path for test config")
	t.Setenv("NHLSTATS_CFG", absPath)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Config)
	}{
		{
			name:     "full config",
			testFile: "full.yaml",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/var/cache/nhlstats", cfg.Cache.Dir)
				assert.Equal(t, "redis", cfg.Cache.Backend)
				assert.Equal(t, 168, cfg.Cache.Clean)
				assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
				assert.Equal(t, 2, cfg.Cache.Redis.DB)
				assert.Equal(t, "nhlstats-shared-cache", cfg.Cache.S3.Bucket)
				assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
				assert.Equal(t, 250, cfg.HTTP.RateLimitMillis)
			},
		},
		{
			name:     "partial config keeps defaults",
			testFile: "partial.yaml",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, "memory", cfg.Cache.Backend)
				assert.Equal(t, 15, cfg.HTTP.TimeoutSeconds)
				assert.Equal(t, 400, cfg.HTTP.RateLimitMillis)
				assert.Empty(t, cfg.Cache.Dir)
			},
		},
		{
			name:     "malformed config",
			testFile: "bad.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTestConfig(t, tt.testFile)

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("NHLSTATS_CFG", "/nonexistent/path/nhlstats.yaml")

	cfg, err := Load()
	assert.NoError(t, err, "missing config file should not be an error")
	assert.Equal(t, Default(), cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "disk", cfg.Cache.Backend)
	assert.Equal(t, 15, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, 400, cfg.HTTP.RateLimitMillis)
	assert.Zero(t, cfg.Cache.Clean)
}
