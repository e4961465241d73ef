/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "nhl-stats-dashboard/0.1.0 (+https://github.com/vpg252-gif/nhl-stats-dashboard)"

	// CacheDirName is the subdirectory under the user cache dir holding
	// cached API responses.
	CacheDirName = "nhlstats"
)
