/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vpg252-gif/nhl-stats-dashboard/nhl"
)

// this program exercises every endpoint against the live API; run it
// manually after NHL API changes to confirm the payload shapes still decode

func main() {
	ctx := context.Background()
	client := nhl.NewClient(nhl.WithoutCache())
	failed := false

	check := func(name string, err error, detail string) {
		if err != nil {
			fmt.Printf("FAIL %-16s %v\n", name, err)
			failed = true
			return
		}
		fmt.Printf("ok   %-16s %s\n", name, detail)
	}

	season, err := client.CurrentSeason(ctx)
	check("season", err, string(season))
	if err != nil {
		os.Exit(1)
	}

	teams, err := client.AllTeamAbbrevs(ctx)
	check("teams", err, fmt.Sprintf("%d teams", len(teams)))

	standings, err := client.GetStandings(ctx)
	check("standings", err, fmt.Sprintf("%d rows", len(standings)))

	roster, err := client.GetTeamRoster(ctx, "EDM")
	var rosterDetail string
	if err == nil {
		rosterDetail = fmt.Sprintf("%d forwards", len(roster.Forwards))
	}
	check("roster", err, rosterDetail)

	results, err := client.SearchPlayers(ctx, "mcdavid")
	check("search", err, fmt.Sprintf("%d matches", len(results)))

	var playerID nhl.PlayerID = 8478402 // McDavid
	if err == nil && len(results) > 0 {
		playerID = results[0].ID
	}

	info, err := client.GetPlayerInfo(ctx, playerID)
	var infoDetail string
	if err == nil {
		infoDetail = info.FirstName.Default + " " + info.LastName.Default
	}
	check("player", err, infoDetail)

	gamelog, err := client.GetPlayerGameLog(ctx, playerID, season,
		nhl.GameTypeRegular)
	check("gamelog", err, fmt.Sprintf("%d games", len(gamelog)))

	leaders, err := client.GetSkaterStatsLeaders(ctx, season, nhl.SkaterPoints,
		nhl.GameTypeRegular, 5)
	check("skaterleaders", err, fmt.Sprintf("%d entries", len(leaders)))

	leaders, err = client.GetGoalieStatsLeaders(ctx, season, nhl.GoalieWins,
		nhl.GameTypeRegular, 5)
	check("goalieleaders", err, fmt.Sprintf("%d entries", len(leaders)))

	summary, err := client.GetSkaterStatsSummary(ctx, season,
		nhl.GameTypeRegular, 0, 5)
	var summaryDetail string
	if err == nil {
		summaryDetail = fmt.Sprintf("%d of %d rows", len(summary.Data),
			summary.Total)
	}
	check("skatersummary", err, summaryDetail)

	gsummary, err := client.GetGoalieStatsSummary(ctx, season,
		nhl.GameTypeRegular, 0, 5)
	var gsummaryDetail string
	if err == nil {
		gsummaryDetail = fmt.Sprintf("%d of %d rows", len(gsummary.Data),
			gsummary.Total)
	}
	check("goaliesummary", err, gsummaryDetail)

	days, err := client.GetSchedule(ctx)
	check("schedule", err, fmt.Sprintf("%d days", len(days)))

	games, err := client.GetTeamSchedule(ctx, "EDM", season)
	check("teamschedule", err, fmt.Sprintf("%d games", len(games)))

	// find a finished game for boxscore / play-by-play
	var gameID nhl.GameID
	for _, g := range games {
		if g.GameState == "OFF" || g.GameState == "FINAL" {
			gameID = g.ID
			break
		}
	}
	if gameID != 0 {
		box, err := client.GetBoxscore(ctx, gameID)
		var boxDetail string
		if err == nil {
			boxDetail = fmt.Sprintf("%s %d - %s %d", box.AwayTeam.Abbrev,
				box.AwayTeam.Score, box.HomeTeam.Abbrev, box.HomeTeam.Score)
		}
		check("boxscore", err, boxDetail)

		pbp, err := client.GetPlayByPlay(ctx, gameID)
		var pbpDetail string
		if err == nil {
			pbpDetail = fmt.Sprintf("%d plays", len(pbp.Plays))
		}
		check("playbyplay", err, pbpDetail)
	} else {
		fmt.Println("skip boxscore/playbyplay: no finished games yet")
	}

	if failed {
		os.Exit(1)
	}
}
