/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow pins tier decisions: March 2024 is within the 20232024 season.
var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

const standingsFixture = `{"standings":[
  {"seasonId":20232024,"teamName":{"default":"Edmonton Oilers"},
   "teamAbbrev":{"default":"EDM"},"conferenceName":"Western",
   "divisionName":"Pacific","gamesPlayed":68,"wins":43,"losses":21,
   "otLosses":4,"points":90,"goalDifferential":42,"date":"2024-03-15"},
  {"seasonId":20232024,"teamName":{"default":"Boston Bruins"},
   "teamAbbrev":{"default":"BOS"},"conferenceName":"Eastern",
   "divisionName":"Atlantic","gamesPlayed":69,"wins":39,"losses":14,
   "otLosses":15,"points":93,"goalDifferential":35,"date":"2024-03-15"}
]}`

// testServer serves canned payloads by exact path and counts origin hits.
func testServer(t *testing.T, hits *atomic.Int64,
	payloads map[string]string) *httptest.Server {

	t.Helper()
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			body, ok := payloads[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))
}

func newTestClient(t *testing.T, srv *httptest.Server,
	opts ...Option) *Client {

	t.Helper()
	opts = append([]Option{
		WithCacheStore(httpcache.NewMemoryCache()),
		WithBaseURLs(srv.URL, srv.URL+"/stats", srv.URL+"/suggest"),
		WithRequestInterval(0),
	}, opts...)
	client := NewClient(opts...)
	client.now = func() time.Time { return testNow }
	return client
}

func TestStandingsCachedWithinTTL(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now": standingsFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)
	ctx := context.Background()

	first, err := client.GetStandings(ctx)
	require.NoError(t, err)
	second, err := client.GetStandings(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second, "cached call must return identical results")
	assert.EqualValues(t, 1, hits.Load(), "second call must be served from cache")
	require.Len(t, first, 2)
	assert.Equal(t, "EDM", first[0].TeamAbbrev.Default)
	assert.Equal(t, 90, first[0].Points)
}

func TestWithoutCacheAlwaysFetches(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now": standingsFixture,
	})
	defer srv.Close()

	client := NewClient(
		WithoutCache(),
		WithBaseURLs(srv.URL, "", ""),
		WithRequestInterval(0),
	)
	client.now = func() time.Time { return testNow }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.GetStandings(ctx)
		require.NoError(t, err)
	}

	assert.EqualValues(t, 3, hits.Load(),
		"every call must hit the network with caching disabled")
}

func TestHTTPErrorSurfaces(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{})
	defer srv.Close()

	client := newTestClient(t, srv)

	_, err := client.GetStandings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDecodeErrorSurfaces(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now": `{"standings": "not-a-list"`,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	_, err := client.GetStandings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestCurrentSeason(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now": standingsFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	season, err := client.CurrentSeason(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Season("20232024"), season)
}

func TestAllTeamAbbrevsSorted(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now": standingsFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	teams, err := client.AllTeamAbbrevs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BOS", "EDM"}, teams)
	// derived from the same cached standings payload
	assert.EqualValues(t, 1, hits.Load())
}

func TestTierSelection(t *testing.T) {
	client := NewClient(WithCacheStore(httpcache.NewMemoryCache()),
		WithRequestInterval(0))
	client.now = func() time.Time { return testNow }

	assert.Same(t, client.httpClient1hour,
		client.clientForSeason(Season("20232024")),
		"current season requests belong in the 1 hour tier")
	assert.Same(t, client.httpClient7day,
		client.clientForSeason(Season("20202021")),
		"past season requests belong in the 7 day tier")

	assert.Same(t, client.httpClient5min,
		client.clientForGame(GameID(2023020001)),
		"current season games may still be in progress")
	assert.Same(t, client.httpClient7day,
		client.clientForGame(GameID(2019020333)))
}
