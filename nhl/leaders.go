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

// SkaterCategory names a skater leaderboard metric. The set is closed; any
// other value is rejected before a request is made.
type SkaterCategory string

const (
	SkaterPoints           SkaterCategory = "points"
	SkaterGoals            SkaterCategory = "goals"
	SkaterAssists          SkaterCategory = "assists"
	SkaterPlusMinus        SkaterCategory = "plusMinus"
	SkaterPenaltyMinutes   SkaterCategory = "penaltyMinutes"
	SkaterPowerPlayGoals   SkaterCategory = "powerPlayGoals"
	SkaterShorthandedGoals SkaterCategory = "shorthandedGoals"
	SkaterGameWinningGoals SkaterCategory = "gameWinningGoals"
	SkaterShots            SkaterCategory = "shots"
	SkaterHits             SkaterCategory = "hits"
	SkaterBlockedShots     SkaterCategory = "blockedShots"
	SkaterTimeOnIce        SkaterCategory = "timeOnIce"
)

var skaterCategories = map[SkaterCategory]bool{
	SkaterPoints:           true,
	SkaterGoals:            true,
	SkaterAssists:          true,
	SkaterPlusMinus:        true,
	SkaterPenaltyMinutes:   true,
	SkaterPowerPlayGoals:   true,
	SkaterShorthandedGoals: true,
	SkaterGameWinningGoals: true,
	SkaterShots:            true,
	SkaterHits:             true,
	SkaterBlockedShots:     true,
	SkaterTimeOnIce:        true,
}

// GoalieCategory names a goalie leaderboard metric.
type GoalieCategory string

const (
	GoalieWins                GoalieCategory = "wins"
	GoalieSavePctg            GoalieCategory = "savePctg"
	GoalieGoalsAgainstAverage GoalieCategory = "goalsAgainstAverage"
	GoalieShutouts            GoalieCategory = "shutouts"
)

var goalieCategories = map[GoalieCategory]bool{
	GoalieWins:                true,
	GoalieSavePctg:            true,
	GoalieGoalsAgainstAverage: true,
	GoalieShutouts:            true,
}

// vended by https://api-web.nhle.com/v1/skater-stats-leaders/<season>/<type>
// LeaderEntry represents one ranked player in a leaderboard.
type LeaderEntry struct {
	ID         PlayerID        `json:"id"`
	FirstName  LocalizedString `json:"firstName"`
	LastName   LocalizedString `json:"lastName"`
	TeamAbbrev string          `json:"teamAbbrev"`
	TeamName   LocalizedString `json:"teamName"`
	Position   string          `json:"position"`
	Headshot   string          `json:"headshot"`
	Value      float64         `json:"value"`
}

// GetSkaterStatsLeaders fetches the top skaters for a statistical category.
// limit is clamped to 1-100; non-positive means the maximum.
func (client *Client) GetSkaterStatsLeaders(ctx context.Context, season Season,
	category SkaterCategory, gameType GameType,
	limit int) ([]LeaderEntry, error) {

	if !skaterCategories[category] {
		return nil, fmt.Errorf("unsupported skater category %q", category)
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	leadersURL := fmt.Sprintf("%s/skater-stats-leaders/%s/%d?%s",
		client.baseURL, season, gameType, url.Values{
			"categories": {string(category)},
			"limit":      {strconv.Itoa(limit)},
		}.Encode())

	var resp map[string][]LeaderEntry
	if err := client.getJSON(ctx, client.clientForSeason(season), leadersURL,
		&resp); err != nil {
		return nil, err
	}
	return resp[string(category)], nil
}

// GetGoalieStatsLeaders fetches the top goalies for a statistical category.
// limit is clamped to 1-50; non-positive means the maximum.
func (client *Client) GetGoalieStatsLeaders(ctx context.Context, season Season,
	category GoalieCategory, gameType GameType,
	limit int) ([]LeaderEntry, error) {

	if !goalieCategories[category] {
		return nil, fmt.Errorf("unsupported goalie category %q", category)
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	leadersURL := fmt.Sprintf("%s/goalie-stats-leaders/%s/%d?%s",
		client.baseURL, season, gameType, url.Values{
			"categories": {string(category)},
			"limit":      {strconv.Itoa(limit)},
		}.Encode())

	var resp map[string][]LeaderEntry
	if err := client.getJSON(ctx, client.clientForSeason(season), leadersURL,
		&resp); err != nil {
		return nil, err
	}
	return resp[string(category)], nil
}
