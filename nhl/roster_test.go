/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterFixture = `{
  "forwards":[{"id":8478402,"firstName":{"default":"Connor"},
    "lastName":{"default":"McDavid"},"sweaterNumber":97,
    "positionCode":"C","shootsCatches":"L","birthCountry":"CAN"}],
  "defensemen":[{"id":8475218,"firstName":{"default":"Mattias"},
    "lastName":{"default":"Ekholm"},"sweaterNumber":14,
    "positionCode":"D","shootsCatches":"L","birthCountry":"SWE"}],
  "goalies":[{"id":8479973,"firstName":{"default":"Stuart"},
    "lastName":{"default":"Skinner"},"sweaterNumber":74,
    "positionCode":"G","shootsCatches":"L","birthCountry":"CAN"}]
}`

func TestGetTeamRoster(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/roster/EDM/current": rosterFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	// lowercase input must be normalized to the API's tri-code form
	roster, err := client.GetTeamRoster(context.Background(), "edm")
	require.NoError(t, err)
	require.Len(t, roster.Forwards, 1)
	require.Len(t, roster.Defensemen, 1)
	require.Len(t, roster.Goalies, 1)
	assert.Equal(t, "McDavid", roster.Forwards[0].LastName.Default)
	assert.Equal(t, "G", roster.Goalies[0].PositionCode)
}

func TestAllTeamRosters(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now":       standingsFixture,
		"/roster/BOS/20232024": rosterFixture,
		"/roster/EDM/20232024": rosterFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	rosters, err := client.AllTeamRosters(context.Background(),
		Season("20232024"))
	require.NoError(t, err)
	require.Len(t, rosters, 2)
	assert.Contains(t, rosters, "EDM")
	assert.Contains(t, rosters, "BOS")
	assert.Equal(t, "McDavid", rosters["EDM"].Forwards[0].LastName.Default)
}

func TestAllTeamRostersPropagatesFailure(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/standings/now":       standingsFixture,
		"/roster/EDM/20232024": rosterFixture,
		// BOS roster intentionally missing
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	_, err := client.AllTeamRosters(context.Background(), Season("20232024"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching roster for BOS")
}
