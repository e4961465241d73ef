/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// vended by https://api.nhle.com/stats/rest/en/skater/summary
// SkaterSummaryRow carries every per-skater stat in one record; use this
// report when shots, hits, blocks, and special-teams goals are needed
// together, which the leaderboard endpoints cannot provide.
type SkaterSummaryRow struct {
	PlayerID         PlayerID `json:"playerId"`
	SkaterFullName   string   `json:"skaterFullName"`
	TeamAbbrevs      string   `json:"teamAbbrevs"`
	PositionCode     string   `json:"positionCode"`
	GamesPlayed      int      `json:"gamesPlayed"`
	Goals            int      `json:"goals"`
	Assists          int      `json:"assists"`
	Points           int      `json:"points"`
	PlusMinus        int      `json:"plusMinus"`
	PenaltyMinutes   int      `json:"penaltyMinutes"`
	PpGoals          int      `json:"ppGoals"`
	ShGoals          int      `json:"shGoals"`
	GameWinningGoals int      `json:"gameWinningGoals"`
	Shots            int      `json:"shots"`
	ShootingPct      float64  `json:"shootingPct"`
	TimeOnIcePerGame float64  `json:"timeOnIcePerGame"`
}

// SkaterStatsSummary is one page of the skater summary report.
type SkaterStatsSummary struct {
	Data  []SkaterSummaryRow `json:"data"`
	Total int                `json:"total"`
}

// vended by https://api.nhle.com/stats/rest/en/goalie/summary
// GoalieSummaryRow carries every per-goalie stat in one record.
type GoalieSummaryRow struct {
	PlayerID            PlayerID `json:"playerId"`
	GoalieFullName      string   `json:"goalieFullName"`
	TeamAbbrevs         string   `json:"teamAbbrevs"`
	GamesPlayed         int      `json:"gamesPlayed"`
	GamesStarted        int      `json:"gamesStarted"`
	Wins                int      `json:"wins"`
	Losses              int      `json:"losses"`
	OtLosses            int      `json:"otLosses"`
	ShotsAgainst        int      `json:"shotsAgainst"`
	Saves               int      `json:"saves"`
	SavePct             float64  `json:"savePct"`
	GoalsAgainst        int      `json:"goalsAgainst"`
	GoalsAgainstAverage float64  `json:"goalsAgainstAverage"`
	Shutouts            int      `json:"shutouts"`
	TimeOnIce           int      `json:"timeOnIce"`
}

// GoalieStatsSummary is one page of the goalie summary report.
type GoalieStatsSummary struct {
	Data  []GoalieSummaryRow `json:"data"`
	Total int                `json:"total"`
}

// GetSkaterStatsSummary fetches one page of the comprehensive skater stats
// report. start is the pagination offset; limit is clamped to 1-100.
func (client *Client) GetSkaterStatsSummary(ctx context.Context, season Season,
	gameType GameType, start, limit int) (*SkaterStatsSummary, error) {

	summaryURL := client.statsBaseURL + "/skater/summary?" +
		summaryQuery(season, gameType, start, limit,
			`[{"property":"points","direction":"DESC"},{"property":"goals","direction":"DESC"}]`)

	var summary SkaterStatsSummary
	if err := client.getJSON(ctx, client.clientForSeason(season), summaryURL,
		&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetGoalieStatsSummary fetches one page of the comprehensive goalie stats
// report.
func (client *Client) GetGoalieStatsSummary(ctx context.Context, season Season,
	gameType GameType, start, limit int) (*GoalieStatsSummary, error) {

	summaryURL := client.statsBaseURL + "/goalie/summary?" +
		summaryQuery(season, gameType, start, limit,
			`[{"property":"wins","direction":"DESC"}]`)

	var summary GoalieStatsSummary
	if err := client.getJSON(ctx, client.clientForSeason(season), summaryURL,
		&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// summaryQuery builds the stats REST API query string. The API filters via
// a "cayenneExp" expression and sorts by a JSON sort spec.
func summaryQuery(season Season, gameType GameType, start, limit int,
	sortSpec string) string {

	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if start < 0 {
		start = 0
	}
	return url.Values{
		"cayenneExp": {fmt.Sprintf("seasonId=%s and gameTypeId=%d", season,
			gameType)},
		"sort":  {sortSpec},
		"start": {strconv.Itoa(start)},
		"limit": {strconv.Itoa(limit)},
	}.Encode()
}
