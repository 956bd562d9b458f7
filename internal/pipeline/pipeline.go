// Package pipeline transforms a decoded health export into the daily fact
// table and its summary tables.
//
// Three stages run in order: raw records flatten into a normalized health
// table, raw workouts flatten into a normalized workout table, and both join
// into one daily fact row per observed calendar day. Each stage is fail-fast:
// one malformed row aborts the run with a ProcessingError.
package pipeline

import (
	"math"
	"time"

	"github.com/JonnyWalker81/healthsync/internal/logger"
)

// Pipeline runs the transformation stages with an injected logger.
type Pipeline struct {
	log logger.Logger
}

// New creates a Pipeline logging through log.
func New(log logger.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dateOf truncates a timestamp to its calendar date in the timestamp's own
// offset, normalized to UTC midnight so dates compare with ==.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekdayIndex returns Monday=0..Sunday=6 for d.
func weekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}
