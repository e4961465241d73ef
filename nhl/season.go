/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Season identifies an NHL season as the concatenation of its start and end
// years, e.g. "20232024".
type Season string

// ParseSeason validates a season string.
func ParseSeason(s string) (Season, error) {
	if len(s) != 8 {
		return "", fmt.Errorf("invalid season %q: want 8 digits like 20232024", s)
	}
	start, err := strconv.Atoi(s[:4])
	if err != nil {
		return "", fmt.Errorf("invalid season %q: %w", s, err)
	}
	end, err := strconv.Atoi(s[4:])
	if err != nil {
		return "", fmt.Errorf("invalid season %q: %w", s, err)
	}
	if end != start+1 {
		return "", fmt.Errorf("invalid season %q: years must be consecutive", s)
	}
	return Season(s), nil
}

// StartYear returns the calendar year the season began.
func (s Season) StartYear() int {
	y, _ := strconv.Atoi(string(s)[:4])
	return y
}

// seasonAt returns the season in effect at t. Seasons roll over in July:
// from July through June of the following year the season id is
// "<year><year+1>".
func seasonAt(t time.Time) Season {
	y := t.Year()
	if t.Month() < time.July {
		y--
	}
	return Season(fmt.Sprintf("%04d%04d", y, y+1))
}

// GameType distinguishes regular season from playoff games.
type GameType int

const (
	GameTypeRegular  GameType = 2
	GameTypePlayoffs GameType = 3
)

// GameID is an NHL game identifier following the pattern YYYYTTNNNN, where
// YYYY is the season start year, TT the game type (02 regular season,
// 03 playoffs), and NNNN the game number.
type GameID int64

// Season returns the season the game belongs to.
func (id GameID) Season() Season {
	y := int(id / 1000000)
	return Season(fmt.Sprintf("%04d%04d", y, y+1))
}

// Type returns the game type encoded in the id.
func (id GameID) Type() GameType {
	return GameType((id / 10000) % 100)
}

// CurrentSeason returns the current season id by inspecting today's
// standings, falling back to a wall-clock estimate when the payload carries
// no season.
func (client *Client) CurrentSeason(ctx context.Context) (Season, error) {
	standings, err := client.GetStandings(ctx)
	if err != nil {
		return "", err
	}
	if len(standings) > 0 && standings[0].SeasonID != 0 {
		return Season(strconv.Itoa(standings[0].SeasonID)), nil
	}
	return seasonAt(client.now()), nil
}

// AllTeamAbbrevs returns the sorted tri-codes of all active teams
// (e.g. ["ANA", "BOS", ...]), derived from today's standings.
func (client *Client) AllTeamAbbrevs(ctx context.Context) ([]string, error) {
	standings, err := client.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	var teams []string
	for _, st := range standings {
		if st.TeamAbbrev.Default != "" {
			teams = append(teams, st.TeamAbbrev.Default)
		}
	}
	sort.Strings(teams)

	return teams, nil
}
