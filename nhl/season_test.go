/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	testCases := []struct {
		in      string
		want    Season
		wantErr bool
	}{
		{"20232024", Season("20232024"), false},
		{"19171918", Season("19171918"), false},
		{"2023", "", true},
		{"20232025", "", true}, // non-consecutive years
		{"2023x024", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		got, err := ParseSeason(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestSeasonAt(t *testing.T) {
	testCases := []struct {
		at   time.Time
		want Season
	}{
		{time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "20232024"},
		{time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC), "20232024"},
		{time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), "20242025"},
		{time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), "20242025"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, seasonAt(tc.at), "at %v", tc.at)
	}
}

func TestGameIDDecoding(t *testing.T) {
	id := GameID(2023020204)
	assert.Equal(t, Season("20232024"), id.Season())
	assert.Equal(t, GameTypeRegular, id.Type())

	playoff := GameID(2022030411)
	assert.Equal(t, Season("20222023"), playoff.Season())
	assert.Equal(t, GameTypePlayoffs, playoff.Type())
}

func TestSeasonStartYear(t *testing.T) {
	assert.Equal(t, 2023, Season("20232024").StartYear())
}
