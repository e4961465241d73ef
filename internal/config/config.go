/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Config holds the toolkit's settings. All fields have workable defaults;
// a config file is optional.
type Config struct {
	Cache CacheConfig `yaml:"cache"`
	HTTP  HTTPConfig  `yaml:"http"`
}

type CacheConfig struct {
	// Dir is the disk cache directory. Empty means
	// <user cache dir>/nhlstats.
	Dir string `yaml:"dir"`
	// Backend selects the response store: disk, memory, redis, or s3.
	Backend string `yaml:"backend"`
	// Clean is the age in hours beyond which cachepurge removes disk
	// entries. Zero disables purging.
	Clean int         `yaml:"clean"`
	Redis RedisConfig `yaml:"redis"`
	S3    S3Config    `yaml:"s3"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

type HTTPConfig struct {
	// TimeoutSeconds bounds each request end to end.
	TimeoutSeconds int `yaml:"timeout"`
	// RateLimitMillis is the minimum spacing between live fetches.
	RateLimitMillis int `yaml:"rate_limit_ms"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: "disk",
			Clean:   0,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds:  15,
			RateLimitMillis: 400,
		},
	}
}

// Load reads nhlstats.yaml from the NHLSTATS_CFG path if set, otherwise from
// the standard locations (XDG_CONFIG_HOME, APPDATA, HOME). A missing file is
// not an error; defaults are returned. A file that exists but cannot be
// parsed is an error.
func Load() (Config, error) {
	cfg := Default()

	path, ok := configPath()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	log.Debugf("loaded config from %s", path)

	return cfg, nil
}

func configPath() (string, bool) {
	if p := os.Getenv("NHLSTATS_CFG"); p != "" {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
		return "", false
	}

	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, "nhlstats.yaml")
		if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
			return file, true
		}
	}
	return "", false
}
