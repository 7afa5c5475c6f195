package businesstime

import "errors"

// Configuration errors, returned from [New] and the config loaders.
var (
	ErrInvalidHours          = errors.New("businesstime: invalid business hours")
	ErrInvalidWeekend        = errors.New("businesstime: invalid weekend")
	ErrIncompleteWeeklyHours = errors.New("businesstime: weekly hours must cover all seven weekdays")
	ErrConflictingHolidays   = errors.New("businesstime: more than one holiday source")
	ErrUnknownPreset         = errors.New("businesstime: unknown holiday preset")
	ErrInvalidConfig         = errors.New("businesstime: invalid config")
)

var (
	// ErrHolidaysNotAscending is returned when a holiday generator yields a
	// date that is not strictly after the previous one.
	ErrHolidaysNotAscending = errors.New("businesstime: holiday generator is not strictly ascending")

	// ErrNoBusinessDay is returned when no business day exists within
	// a year of the starting point.
	ErrNoBusinessDay = errors.New("businesstime: no business day within 366 days")
)

// errReversedRange guards the span builder, whose callers order the bounds.
var errReversedRange = errors.New("businesstime: range end before start")
