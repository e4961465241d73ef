/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxscoreFixture = `{
  "id":2023020204,"season":20232024,"gameType":2,
  "gameDate":"2023-11-15","gameState":"OFF",
  "venue":{"default":"Rogers Place"},
  "homeTeam":{"id":22,"abbrev":"EDM","name":{"default":"Oilers"},
    "score":4,"sog":33},
  "awayTeam":{"id":55,"abbrev":"SEA","name":{"default":"Kraken"},
    "score":1,"sog":25},
  "playerByGameStats":{"homeTeam":{"forwards":[]}}
}`

const playByPlayFixture = `{
  "id":2023020204,"gameState":"OFF",
  "homeTeam":{"id":22,"abbrev":"EDM","score":4},
  "awayTeam":{"id":55,"abbrev":"SEA","score":1},
  "plays":[
    {"eventId":102,"period":1,"timeInPeriod":"04:21","typeCode":505,
     "typeDescKey":"goal","details":{"scoringPlayerId":8478402}},
    {"eventId":103,"period":1,"timeInPeriod":"04:21","typeCode":520,
     "typeDescKey":"stoppage"}
  ]
}`

func TestGetBoxscore(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/gamecenter/2023020204/boxscore": boxscoreFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	box, err := client.GetBoxscore(context.Background(), GameID(2023020204))
	require.NoError(t, err)
	assert.Equal(t, GameID(2023020204), box.ID)
	assert.Equal(t,
		time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
		box.GameDate)
	assert.Equal(t, 4, box.HomeTeam.Score)
	assert.Equal(t, "SEA", box.AwayTeam.Abbrev)
	assert.NotEmpty(t, box.PlayerByGameStats)
}

func TestGetPlayByPlay(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits, map[string]string{
		"/gamecenter/2023020204/play-by-play": playByPlayFixture,
	})
	defer srv.Close()

	client := newTestClient(t, srv)

	pbp, err := client.GetPlayByPlay(context.Background(), GameID(2023020204))
	require.NoError(t, err)
	require.Len(t, pbp.Plays, 2)
	assert.Equal(t, "goal", pbp.Plays[0].TypeDescKey)
	assert.NotEmpty(t, pbp.Plays[0].Details)
	assert.Empty(t, pbp.Plays[1].Details)
}
