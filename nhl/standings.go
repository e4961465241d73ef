/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"fmt"
	"time"
)

// vended by https://api-web.nhle.com/v1/standings/now
// Standing represents one team's row in the league standings.
type Standing struct {
	SeasonID         int             `json:"seasonId"`
	TeamName         LocalizedString `json:"teamName"`
	TeamCommonName   LocalizedString `json:"teamCommonName"`
	TeamAbbrev       LocalizedString `json:"teamAbbrev"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionName     string          `json:"divisionName"`
	GamesPlayed      int             `json:"gamesPlayed"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OtLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
	PointPctg        float64         `json:"pointPctg"`
	GoalFor          int             `json:"goalFor"`
	GoalAgainst      int             `json:"goalAgainst"`
	GoalDifferential int             `json:"goalDifferential"`
	StreakCode       string          `json:"streakCode"`
	StreakCount      int             `json:"streakCount"`
	Date             string          `json:"date"`
}

type standingsResponse struct {
	Standings []Standing `json:"standings"`
}

// GetStandings fetches the current league standings.
func (client *Client) GetStandings(ctx context.Context) ([]Standing, error) {
	url := client.baseURL + "/standings/now"
	var resp standingsResponse
	if err := client.getJSON(ctx, client.httpClient5min, url, &resp); err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// GetStandingsByDate fetches the standings as of the given date.
func (client *Client) GetStandingsByDate(ctx context.Context,
	date time.Time) ([]Standing, error) {

	url := fmt.Sprintf("%s/standings/%s", client.baseURL,
		date.Format("2006-01-02"))
	var resp standingsResponse
	if err := client.getJSON(ctx, client.httpClient7day, url, &resp); err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// GetTeams returns the standings rows for every active franchise; the
// standings payload carries full team identification for each club.
func (client *Client) GetTeams(ctx context.Context) ([]Standing, error) {
	return client.GetStandings(ctx)
}
