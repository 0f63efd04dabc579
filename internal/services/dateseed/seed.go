// Package dateseed derives the identifier for a puzzle day.
//
// A seed is the local calendar date of a time formatted as "YYYY-M-D" with no
// zero padding (for example "2024-1-9"). It is stable for every instant
// within one local day and changes when the day changes. Seeds select the
// day's product and key the persisted daily stats.
package dateseed

import (
	"fmt"
	"time"

	"github.com/mcoot/drophunt/internal/dependencies/clock"
)

const layout = "2006-1-2"

// ForTime returns the seed for the local calendar day of t
func ForTime(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%d-%d-%d", y, int(m), d)
}

// Previous returns the seed for the calendar day before t
func Previous(t time.Time) string {
	return ForTime(t.AddDate(0, 0, -1))
}

// Parse returns midnight UTC of the day named by seed
func Parse(seed string) (time.Time, error) {
	t, err := time.Parse(layout, seed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date seed %q: %w", seed, err)
	}
	return t, nil
}

// PreviousSeed returns the seed for the day before seed
func PreviousSeed(seed string) (string, error) {
	t, err := Parse(seed)
	if err != nil {
		return "", err
	}
	return Previous(t), nil
}

// Service produces seeds from an injected clock
type Service struct {
	clock clock.Clock
}

// New creates a new Service
func New(clock clock.Clock) *Service {
	return &Service{clock: clock}
}

// Today returns the seed for the clock's current day
func (s *Service) Today() string {
	return ForTime(s.clock.Now())
}

// Yesterday returns the seed for the day before the clock's current day
func (s *Service) Yesterday() string {
	return Previous(s.clock.Now())
}

// HasPlayedToday reports whether lastPlayed is today's seed
func (s *Service) HasPlayedToday(lastPlayed string) bool {
	if lastPlayed == "" {
		return false
	}
	return lastPlayed == s.Today()
}
