/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/gregjones/httpcache"
	"golang.org/x/sync/singleflight"

	"github.com/vpg252-gif/nhl-stats-dashboard/diskcache"
	"github.com/vpg252-gif/nhl-stats-dashboard/internal"
)

const (
	defaultBaseURL        = "https://api-web.nhle.com/v1"
	defaultStatsBaseURL   = "https://api.nhle.com/stats/rest/en"
	defaultSuggestBaseURL = "https://suggest.svc.nhl.com/svc/suggest/v1"
)

// Responses are cached in one of three TTL tiers depending on how quickly
// the underlying data can change.
const (
	liveTTL          = 5 * time.Minute
	currentSeasonTTL = 1 * time.Hour
	historicalTTL    = 7 * 24 * time.Hour
)

// Client is a caching client for the NHL stats APIs. All methods are
// synchronous; a method returns once its HTTP request (or cache read)
// completes.
type Client struct {
	baseURL        string
	statsBaseURL   string
	suggestBaseURL string

	httpClient5min  *http.Client
	httpClient1hour *http.Client
	httpClient7day  *http.Client

	group singleflight.Group
	now   func() time.Time
}

type options struct {
	store           httpcache.Cache
	storeSet        bool
	useCache        bool
	baseURL         string
	statsBaseURL    string
	suggestBaseURL  string
	timeout         time.Duration
	requestInterval time.Duration
}

type Option func(*options)

// WithCacheStore injects a response store (e.g. an in-memory cache for
// tests, or a redis/s3 backed one). The default is a disk cache under the
// user cache dir.
func WithCacheStore(store httpcache.Cache) Option {
	return func(o *options) {
		o.store = store
		o.storeSet = true
	}
}

// WithoutCache disables all cache reads and writes; every call hits the
// network.
func WithoutCache() Option {
	return func(o *options) {
		o.useCache = false
	}
}

// WithBaseURLs overrides the API endpoints. Empty strings keep the defaults.
func WithBaseURLs(base, stats, suggest string) Option {
	return func(o *options) {
		if base != "" {
			o.baseURL = base
		}
		if stats != "" {
			o.statsBaseURL = stats
		}
		if suggest != "" {
			o.suggestBaseURL = suggest
		}
	}
}

// WithTimeout overrides the per-request timeout (default 15s).
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRequestInterval overrides the minimum spacing between live fetches
// (default 400ms). Zero disables pacing.
func WithRequestInterval(d time.Duration) Option {
	return func(o *options) {
		o.requestInterval = d
	}
}

// NewClient returns a Client. With no options it caches responses on local
// disk; if the disk cache cannot be initialized the client falls back to
// uncached operation rather than failing.
func NewClient(opts ...Option) *Client {
	o := options{
		useCache:        true,
		baseURL:         defaultBaseURL,
		statsBaseURL:    defaultStatsBaseURL,
		suggestBaseURL:  defaultSuggestBaseURL,
		timeout:         15 * time.Second,
		requestInterval: 400 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var store httpcache.Cache
	if o.useCache {
		if o.storeSet {
			store = o.store
		} else {
			dc := diskcache.New(defaultCacheDir(), true)
			if err := dc.Init(); err != nil {
				log.Warnf("nhl: failed to init disk cache: %v; proceeding uncached",
					err)
			} else {
				store = dc
			}
		}
	}

	base := internal.NewBaseTransport(o.requestInterval)

	client := &Client{
		baseURL:         o.baseURL,
		statsBaseURL:    o.statsBaseURL,
		suggestBaseURL:  o.suggestBaseURL,
		httpClient5min:  internal.NewCachedHttpClient(store, liveTTL, base),
		httpClient1hour: internal.NewCachedHttpClient(store, currentSeasonTTL, base),
		httpClient7day:  internal.NewCachedHttpClient(store, historicalTTL, base),
		now:             time.Now,
	}
	client.httpClient5min.Timeout = o.timeout
	client.httpClient1hour.Timeout = o.timeout
	client.httpClient7day.Timeout = o.timeout

	return client
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, internal.CacheDirName)
	}
	return internal.CacheDirName
}

// clientForSeason picks the TTL tier for a season-scoped request: the
// current season's data still changes, past seasons are settled.
func (client *Client) clientForSeason(season Season) *http.Client {
	if season == seasonAt(client.now()) {
		return client.httpClient1hour
	}
	return client.httpClient7day
}

// clientForGame picks the TTL tier for a game-scoped request by the season
// encoded in the game id.
func (client *Client) clientForGame(gameID GameID) *http.Client {
	if gameID.Season() == seasonAt(client.now()) {
		return client.httpClient5min
	}
	return client.httpClient7day
}

// getJSON performs a GET through the given tier client and decodes the JSON
// response into out. Concurrent calls for the same URL are collapsed into a
// single fetch.
func (client *Client) getJSON(ctx context.Context, hc *http.Client,
	rawURL string, out any) error {

	body, err, _ := client.group.Do(rawURL, func() (any, error) {
		return client.fetch(ctx, hc, rawURL)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	return nil
}

func (client *Client) fetch(ctx context.Context, hc *http.Client,
	rawURL string) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s: %s", resp.StatusCode,
			rawURL, string(respBody))
	}

	return respBody, nil
}
