/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vpg252-gif/nhl-stats-dashboard/nhl"
)

// this program exists just to warm the response cache with the slow-moving
// payloads (standings, rosters, leaderboards) so interactive use is fast

func main() {
	ctx := context.Background()
	client := nhl.NewClient()

	standings, err := client.GetStandings(ctx)
	if err != nil {
		// best effort
		return
	}
	fmt.Printf("seeded standings (%d teams)\n", len(standings))

	season, err := client.CurrentSeason(ctx)
	if err != nil {
		return
	}

	teams, err := client.AllTeamAbbrevs(ctx)
	if err != nil {
		return
	}
	for _, team := range teams {
		_, err := client.GetTeamRoster(ctx, team)
		time.Sleep(2 * time.Second) // avoid pegging nhle.com
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded %v roster\n", team)
	}

	for _, category := range []nhl.SkaterCategory{nhl.SkaterPoints,
		nhl.SkaterGoals, nhl.SkaterAssists} {
		_, err := client.GetSkaterStatsLeaders(ctx, season, category,
			nhl.GameTypeRegular, 0)
		time.Sleep(2 * time.Second) // avoid pegging nhle.com
		if err != nil {
			continue
		}

		fmt.Printf("seeded %v leaders\n", category)
	}

	for _, category := range []nhl.GoalieCategory{nhl.GoalieWins,
		nhl.GoalieSavePctg} {
		_, err := client.GetGoalieStatsLeaders(ctx, season, category,
			nhl.GameTypeRegular, 0)
		time.Sleep(2 * time.Second) // avoid pegging nhle.com
		if err != nil {
			continue
		}

		fmt.Printf("seeded %v leaders\n", category)
	}

	_, err = client.GetSchedule(ctx)
	if err != nil {
		return
	}
	fmt.Println("seeded schedule")
}
