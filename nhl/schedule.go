/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vpg252-gif/nhl-stats-dashboard/internal"
)

// vended by https://api-web.nhle.com/v1/schedule/<date|now>
// ScheduledGame represents one game on the schedule.
type ScheduledGame struct {
	ID           GameID          `json:"id"`
	Season       int             `json:"season"`
	GameType     GameType        `json:"gameType"`
	GameDate     string          `json:"gameDate"`
	StartTimeUTC time.Time       `json:"startTimeUTC"`
	GameState    string          `json:"gameState"`
	Venue        LocalizedString `json:"venue"`
	HomeTeam     ScheduleTeam    `json:"homeTeam"`
	AwayTeam     ScheduleTeam    `json:"awayTeam"`
}

// ScheduleTeam identifies one side of a scheduled game.
type ScheduleTeam struct {
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
}

// Custom unmarshaller to handle non-RFC3339 start times and "null".
func (g *ScheduledGame) UnmarshalJSON(data []byte) error {
	type Alias ScheduledGame
	aux := &struct {
		StartTimeUTC string `json:"startTimeUTC"`
		*Alias
	}{
		Alias: (*Alias)(g),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("ScheduledGame unmarshal: %w", err)
	}
	var err error
	g.StartTimeUTC, err = internal.ParseDateOrZero(aux.StartTimeUTC)
	if err != nil {
		return fmt.Errorf("parsing ScheduledGame.StartTimeUTC: %w", err)
	}
	return nil
}

// ScheduleDay groups the games of one calendar day.
type ScheduleDay struct {
	Date  string          `json:"date"`
	Games []ScheduledGame `json:"games"`
}

type scheduleResponse struct {
	GameWeek []ScheduleDay `json:"gameWeek"`
}

// GetSchedule fetches the league schedule for the current week.
func (client *Client) GetSchedule(ctx context.Context) ([]ScheduleDay, error) {
	url := client.baseURL + "/schedule/now"
	var resp scheduleResponse
	if err := client.getJSON(ctx, client.httpClient5min, url, &resp); err != nil {
		return nil, err
	}
	return resp.GameWeek, nil
}

// GetScheduleByDate fetches the schedule for the week containing the given
// date. Past dates are settled and cached in the historical tier.
func (client *Client) GetScheduleByDate(ctx context.Context,
	date time.Time) ([]ScheduleDay, error) {

	url := fmt.Sprintf("%s/schedule/%s", client.baseURL,
		date.Format("2006-01-02"))

	hc := client.httpClient5min
	today := client.now().Truncate(24 * time.Hour)
	if date.Before(today) {
		hc = client.httpClient7day
	}

	var resp scheduleResponse
	if err := client.getJSON(ctx, hc, url, &resp); err != nil {
		return nil, err
	}
	return resp.GameWeek, nil
}

type clubScheduleResponse struct {
	Games []ScheduledGame `json:"games"`
}

// GetTeamSchedule fetches the full season schedule for a team.
func (client *Client) GetTeamSchedule(ctx context.Context, team string,
	season Season) ([]ScheduledGame, error) {

	url := fmt.Sprintf("%s/club-schedule-season/%s/%s", client.baseURL,
		strings.ToUpper(team), season)
	var resp clubScheduleResponse
	if err := client.getJSON(ctx, client.clientForSeason(season), url,
		&resp); err != nil {
		return nil, err
	}
	return resp.Games, nil
}
