// Package holidays provides holiday sources for business time calendars.
//
// Three kinds of source are available:
//
//   - [RuleSet]: fixed-date ({month, day}) and floating ({month, weekday,
//     week}) rules evaluated day by day. [USFederal] is the built-in set.
//   - [Table]: a fixed list of dates with bounded year coverage. Queries
//     outside the covered years fail with [ErrUnsupportedYear] instead of
//     silently reporting a working day.
//   - [FromCal]: an adapter over github.com/rickar/cal/v2 holiday
//     definitions.
//
// Every source exposes a Sequence method (or function) with the signature
//
//	func(start time.Time) iter.Seq2[time.Time, error]
//
// which yields holiday dates on or after start in ascending order. That is
// the generator shape accepted by businesstime.WithHolidayGenerator.
package holidays

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedYear is returned when a bounded source is queried for
	// a year it has no data for.
	ErrUnsupportedYear = errors.New("holidays: unsupported year")

	// ErrInvalidRule is returned for malformed holiday rules.
	ErrInvalidRule = errors.New("holidays: invalid rule")
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight).
	Name string    // The holiday name (e.g., "Memorial Day").
}

func on(year int, month time.Month, day int, name string) Holiday {
	return Holiday{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Name: name}
}
