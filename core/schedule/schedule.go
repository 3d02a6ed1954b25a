package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidConfig is returned for schedules that cannot be resolved.
var ErrInvalidConfig = errors.New("invalid reset schedule")

// Schedule is a set of daily reset hours in a named zone.
type Schedule struct {
	loc   *time.Location
	hours []int
}

// New validates cfg and loads its zone.
func New(cfg Config) (*Schedule, error) {
	if cfg.Timezone == "" {
		return nil, fmt.Errorf("%w: empty timezone", ErrInvalidConfig)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidConfig, cfg.Timezone, err)
	}
	return NewInLocation(loc, cfg.MorningHour, cfg.EveningHour)
}

// NewInLocation builds a schedule from an already loaded zone.
func NewInLocation(loc *time.Location, hours ...int) (*Schedule, error) {
	if len(hours) == 0 {
		return nil, fmt.Errorf("%w: no reset hours", ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(hours))
	sorted := make([]int, 0, len(hours))
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("%w: hour %d out of range", ErrInvalidConfig, h)
		}
		if seen[h] {
			return nil, fmt.Errorf("%w: duplicate hour %d", ErrInvalidConfig, h)
		}
		seen[h] = true
		sorted = append(sorted, h)
	}
	sort.Ints(sorted)

	return &Schedule{loc: loc, hours: sorted}, nil
}

// Location returns the reference zone.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Hours returns the reset hours in ascending order.
func (s *Schedule) Hours() []int {
	return append([]int(nil), s.hours...)
}

// Next returns the first reset instant strictly after now, in UTC.
func (s *Schedule) Next(now time.Time) time.Time {
	local := now.In(s.loc)
	for day := 0; day <= 2; day++ {
		y, m, d := time.Date(local.Year(), local.Month(), local.Day()+day, 12, 0, 0, 0, time.UTC).Date()
		for _, h := range s.hours {
			candidate := resolveWallClock(y, m, d, h, s.loc)
			if candidate.After(now) {
				return candidate
			}
		}
	}
	// Unreachable for any valid zone.
	return now.Add(24 * time.Hour).UTC()
}

// Upcoming returns the next n reset instants after now.
func (s *Schedule) Upcoming(now time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		now = s.Next(now)
		out = append(out, now)
	}
	return out
}

// resolveWallClock maps a local wall-clock hour to a single UTC instant. Ambiguous
// times pick the earlier instant, skipped times the end of the gap.
func resolveWallClock(y int, m time.Month, d, hour int, loc *time.Location) time.Time {
	naive := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)

	var best time.Time
	for _, probe := range []time.Time{naive.Add(-24 * time.Hour), naive.Add(24 * time.Hour)} {
		_, offset := probe.In(loc).Zone()
		u := naive.Add(-time.Duration(offset) * time.Second)
		if sameWall(u.In(loc), naive) && (best.IsZero() || u.Before(best)) {
			best = u
		}
	}
	if !best.IsZero() {
		return best.UTC()
	}

	// Gap: read the wall time with the pre-transition offset, which lands just after the
	// transition; the zone period it falls in starts exactly at the transition.
	_, before := naive.Add(-24 * time.Hour).In(loc).Zone()
	after := naive.Add(-time.Duration(before) * time.Second).In(loc)
	start, _ := after.ZoneBounds()
	if start.IsZero() {
		return after.UTC()
	}
	return start.UTC()
}

func sameWall(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd && a.Hour() == b.Hour() && a.Minute() == b.Minute()
}
