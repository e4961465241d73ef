/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package nhl

// LocalizedString is the NHL API's localized text shape, e.g.
// {"default": "Oilers", "fr": "..."}. Only the default rendering is kept.
type LocalizedString struct {
	Default string `json:"default"`
}

// PlayerID is an NHL player identifier (e.g. 8478402 for Connor McDavid).
type PlayerID int
