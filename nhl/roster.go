/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// vended by https://api-web.nhle.com/v1/roster/<team>/<season|current>
// RosterPlayer represents one player on a team roster.
type RosterPlayer struct {
	ID             PlayerID        `json:"id"`
	FirstName      LocalizedString `json:"firstName"`
	LastName       LocalizedString `json:"lastName"`
	SweaterNumber  int             `json:"sweaterNumber"`
	PositionCode   string          `json:"positionCode"`
	ShootsCatches  string          `json:"shootsCatches"`
	HeightInInches int             `json:"heightInInches"`
	WeightInPounds int             `json:"weightInPounds"`
	BirthDate      string          `json:"birthDate"`
	BirthCountry   string          `json:"birthCountry"`
}

// Roster holds a team's players grouped by position.
type Roster struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}

// GetTeamRoster fetches the current roster for a team identified by its
// three-letter code, e.g. "EDM".
func (client *Client) GetTeamRoster(ctx context.Context,
	team string) (*Roster, error) {

	url := fmt.Sprintf("%s/roster/%s/current", client.baseURL,
		strings.ToUpper(team))
	var roster Roster
	if err := client.getJSON(ctx, client.httpClient1hour, url, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// GetTeamRosterForSeason fetches a team's roster for a specific season.
func (client *Client) GetTeamRosterForSeason(ctx context.Context, team string,
	season Season) (*Roster, error) {

	url := fmt.Sprintf("%s/roster/%s/%s", client.baseURL,
		strings.ToUpper(team), season)
	var roster Roster
	if err := client.getJSON(ctx, client.clientForSeason(season), url,
		&roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// AllTeamRosters fetches the roster of every active team for the given
// season, keyed by team code. Fetches run concurrently but bounded, and the
// shared limiter below the cache still paces actual network traffic.
func (client *Client) AllTeamRosters(ctx context.Context,
	season Season) (map[string]*Roster, error) {

	teams, err := client.AllTeamAbbrevs(ctx)
	if err != nil {
		return nil, err
	}

	rosters := make(map[string]*Roster)
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, team := range teams {
		g.Go(func() error {
			roster, err := client.GetTeamRosterForSeason(ctx, team, season)
			if err != nil {
				return fmt.Errorf("fetching roster for %v: %w", team, err)
			}
			mu.Lock()
			rosters[team] = roster
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rosters, nil
}
