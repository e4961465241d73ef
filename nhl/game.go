/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vpg252-gif/nhl-stats-dashboard/internal"
)

// vended by https://api-web.nhle.com/v1/gamecenter/<id>/boxscore
// Boxscore holds the team-level summary of a completed or in-progress game.
type Boxscore struct {
	ID        GameID          `json:"id"`
	Season    int             `json:"season"`
	GameType  GameType        `json:"gameType"`
	GameDate  time.Time       `json:"gameDate"`
	GameState string          `json:"gameState"`
	Venue     LocalizedString `json:"venue"`
	HomeTeam  BoxscoreTeam    `json:"homeTeam"`
	AwayTeam  BoxscoreTeam    `json:"awayTeam"`

	// Per-player stat grids vary by position; kept raw for callers that
	// need them.
	PlayerByGameStats json.RawMessage `json:"playerByGameStats"`
}

// BoxscoreTeam summarizes one side of a game.
type BoxscoreTeam struct {
	ID     int             `json:"id"`
	Abbrev string          `json:"abbrev"`
	Name   LocalizedString `json:"name"`
	Score  int             `json:"score"`
	SOG    int             `json:"sog"`
}

// Custom unmarshaller to handle the API's bare YYYY-MM-DD game dates.
func (b *Boxscore) UnmarshalJSON(data []byte) error {
	type Alias Boxscore
	aux := &struct {
		GameDate string `json:"gameDate"`
		*Alias
	}{
		Alias: (*Alias)(b),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Boxscore unmarshal: %w", err)
	}
	var err error
	b.GameDate, err = internal.ParseDateOrZero(aux.GameDate)
	if err != nil {
		return fmt.Errorf("parsing Boxscore.GameDate: %w", err)
	}
	return nil
}

// GetBoxscore fetches the boxscore for a game. Current-season games use the
// live tier since they may still be in progress.
func (client *Client) GetBoxscore(ctx context.Context,
	gameID GameID) (*Boxscore, error) {

	url := fmt.Sprintf("%s/gamecenter/%d/boxscore", client.baseURL, gameID)
	var box Boxscore
	if err := client.getJSON(ctx, client.clientForGame(gameID), url,
		&box); err != nil {
		return nil, err
	}
	return &box, nil
}

// vended by https://api-web.nhle.com/v1/gamecenter/<id>/play-by-play
// Play represents one event in a game's play-by-play feed.
type Play struct {
	EventID      int    `json:"eventId"`
	Period       int    `json:"period"`
	TimeInPeriod string `json:"timeInPeriod"`
	TypeCode     int    `json:"typeCode"`
	TypeDescKey  string `json:"typeDescKey"`

	// Event details are event-type specific (shooter, goalie, zone, ...);
	// kept raw.
	Details json.RawMessage `json:"details"`
}

// PlayByPlay holds the full event feed for a game.
type PlayByPlay struct {
	ID        GameID       `json:"id"`
	GameState string       `json:"gameState"`
	HomeTeam  BoxscoreTeam `json:"homeTeam"`
	AwayTeam  BoxscoreTeam `json:"awayTeam"`
	Plays     []Play       `json:"plays"`
}

// GetPlayByPlay fetches play-by-play data for a game (useful for advanced
// metrics).
func (client *Client) GetPlayByPlay(ctx context.Context,
	gameID GameID) (*PlayByPlay, error) {

	url := fmt.Sprintf("%s/gamecenter/%d/play-by-play", client.baseURL, gameID)
	var pbp PlayByPlay
	if err := client.getJSON(ctx, client.clientForGame(gameID), url,
		&pbp); err != nil {
		return nil, err
	}
	return &pbp, nil
}
