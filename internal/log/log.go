/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex/log with a compact handler and a log level taken from
// the NHLSTATS_LOG env variable (default ERROR).
func Init() {
	level := strings.ToUpper(os.Getenv("NHLSTATS_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&lineHandler{})
	log.SetLevelFromString(level)
}

// lineHandler writes one timestamped line per entry to stderr.
type lineHandler struct{}

// HandleLog implements the log.Handler interface
func (h *lineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(os.Stderr, "%s %.1s %s\n", timestamp, level, e.Message)
	return nil
}
