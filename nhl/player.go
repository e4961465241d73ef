/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vpg252-gif/nhl-stats-dashboard/internal"
)

// vended by https://api-web.nhle.com/v1/player/<id>/landing
// PlayerInfo holds a player's biographical and career information.
type PlayerInfo struct {
	PlayerID          PlayerID        `json:"playerId"`
	IsActive          bool            `json:"isActive"`
	CurrentTeamAbbrev string          `json:"currentTeamAbbrev"`
	FirstName         LocalizedString `json:"firstName"`
	LastName          LocalizedString `json:"lastName"`
	SweaterNumber     int             `json:"sweaterNumber"`
	Position          string          `json:"position"`
	HeightInInches    int             `json:"heightInInches"`
	WeightInPounds    int             `json:"weightInPounds"`
	BirthDate         string          `json:"birthDate"`
	BirthCity         LocalizedString `json:"birthCity"`
	BirthCountry      string          `json:"birthCountry"`
	Headshot          string          `json:"headshot"`

	// Deeply nested stat blocks are kept raw; their shape varies by
	// position and season and callers rarely need more than a subset.
	FeaturedStats json.RawMessage `json:"featuredStats"`
	CareerTotals  json.RawMessage `json:"careerTotals"`
	SeasonTotals  json.RawMessage `json:"seasonTotals"`
}

// GetPlayerInfo fetches biographical and career info for a player.
func (client *Client) GetPlayerInfo(ctx context.Context,
	playerID PlayerID) (*PlayerInfo, error) {

	url := fmt.Sprintf("%s/player/%d/landing", client.baseURL, playerID)
	var info PlayerInfo
	if err := client.getJSON(ctx, client.httpClient7day, url, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// vended by https://api-web.nhle.com/v1/player/<id>/game-log/<season>/<type>
// GameLogEntry represents one game in a player's game-by-game log.
type GameLogEntry struct {
	GameID         GameID    `json:"gameId"`
	GameDate       time.Time `json:"gameDate"`
	TeamAbbrev     string    `json:"teamAbbrev"`
	HomeRoadFlag   string    `json:"homeRoadFlag"`
	OpponentAbbrev string    `json:"opponentAbbrev"`
	Goals          int       `json:"goals"`
	Assists        int       `json:"assists"`
	Points         int       `json:"points"`
	PlusMinus      int       `json:"plusMinus"`
	Shots          int       `json:"shots"`
	Pim            int       `json:"pim"`
	TOI            string    `json:"toi"`
}

// Custom unmarshaller to handle the API's bare YYYY-MM-DD game dates.
func (e *GameLogEntry) UnmarshalJSON(data []byte) error {
	type Alias GameLogEntry
	aux := &struct {
		GameDate string `json:"gameDate"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("GameLogEntry unmarshal: %w", err)
	}
	var err error
	e.GameDate, err = internal.ParseDateOrZero(aux.GameDate)
	if err != nil {
		return fmt.Errorf("parsing GameLogEntry.GameDate: %w", err)
	}
	return nil
}

type gameLogResponse struct {
	GameLog []GameLogEntry `json:"gameLog"`
}

// GetPlayerGameLog fetches a game-by-game log for a player in a given
// season.
func (client *Client) GetPlayerGameLog(ctx context.Context, playerID PlayerID,
	season Season, gameType GameType) ([]GameLogEntry, error) {

	url := fmt.Sprintf("%s/player/%d/game-log/%s/%d", client.baseURL,
		playerID, season, gameType)
	var resp gameLogResponse
	if err := client.getJSON(ctx, client.clientForSeason(season), url,
		&resp); err != nil {
		return nil, err
	}
	return resp.GameLog, nil
}

// PlayerSearchResult identifies a player matched by name search.
type PlayerSearchResult struct {
	ID        PlayerID
	FirstName string
	LastName  string
}

type playerSearchItem struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SearchPlayers searches for players by partial or full name. The primary
// search endpoint is unreliable; when it yields nothing the suggest service
// is consulted instead.
func (client *Client) SearchPlayers(ctx context.Context,
	name string) ([]PlayerSearchResult, error) {

	searchURL := fmt.Sprintf("%s/player-search?%s", client.baseURL,
		url.Values{"name": {name}, "active": {"true"}}.Encode())

	var items []playerSearchItem
	err := client.getJSON(ctx, client.httpClient7day, searchURL, &items)
	if err == nil && len(items) > 0 {
		results := make([]PlayerSearchResult, 0, len(items))
		for _, item := range items {
			id, convErr := strconv.Atoi(item.PlayerID)
			if convErr != nil {
				continue
			}
			first, last := splitName(item.Name)
			results = append(results, PlayerSearchResult{
				ID:        PlayerID(id),
				FirstName: first,
				LastName:  last,
			})
		}
		if len(results) > 0 {
			return results, nil
		}
	}

	return client.suggestPlayers(ctx, name)
}

// suggestPlayers queries the legacy suggest service, whose payload is a list
// of pipe-delimited strings: "8478402|McDavid|Connor|...".
func (client *Client) suggestPlayers(ctx context.Context,
	name string) ([]PlayerSearchResult, error) {

	suggestURL := fmt.Sprintf("%s/minactiveplayers/%s/99",
		client.suggestBaseURL, url.PathEscape(name))
	var resp suggestResponse
	if err := client.getJSON(ctx, client.httpClient7day, suggestURL,
		&resp); err != nil {
		return nil, err
	}

	var results []PlayerSearchResult
	for _, s := range resp.Suggestions {
		parts := strings.Split(s, "|")
		if len(parts) < 3 {
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		results = append(results, PlayerSearchResult{
			ID:        PlayerID(id),
			LastName:  parts[1],
			FirstName: parts[2],
		})
	}

	return results, nil
}

func splitName(name string) (first, last string) {
	idx := strings.LastIndex(name, " ")
	if idx == -1 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}
