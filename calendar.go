// Package businesstime measures business time between two instants.
//
// A [Calendar] knows the business hours of each weekday, which weekdays are
// the weekend, and where holidays come from. Given two timestamps it reports
// how much business time elapsed between them, skipping nights, weekends
// and holidays.
//
// Basic usage with the default calendar (09:00-17:00, Saturday and Sunday
// off, no holidays):
//
//	start := time.Date(2014, time.January, 16, 18, 30, 0, 0, time.UTC)
//	end := time.Date(2014, time.January, 22, 10, 0, 0, 0, time.UTC)
//	businesstime.BusinessTimeDelta(start, end) // 73h: three days and one hour
//
// With a single [Hours] window the delta counts every crossed business day
// as 24h, so whole days stay visible; [Calendar.BusinessTimeHours] converts
// those days into open hours. With [WithWeeklyHours] every day may have a
// different window and the delta is the plain sum of business time.
//
// Holidays come from a fixed list ([WithHolidays]), a bounded table
// ([WithHolidaySet]) or a generator such as holidays.USFederal.Sequence
// ([WithHolidayGenerator]), which is cached per calendar.
//
// Both bounds of a query are read as wall-clock times in the location of
// the first bound.
package businesstime

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// Calendar holds business hours, the weekend and a holiday source.
// Create one with [New]. A Calendar is immutable apart from its holiday
// cache and all methods are safe for concurrent use.
type Calendar struct {
	hours    [7]Hours
	open     [7]time.Duration
	uniform  bool
	weekend  [7]bool
	holidays holidaySource
	logger   *slog.Logger
}

type settings struct {
	hours   [7]Hours
	uniform bool
	weekly  WeeklyHours
	weekend []time.Weekday
	sources []holidaySource
	gen     HolidayGenerator
	logger  *slog.Logger
	errs    []error
}

// Option configures a [Calendar].
type Option func(*settings)

// WithBusinessHours uses the same open window on every business day.
func WithBusinessHours(h Hours) Option {
	return func(s *settings) {
		s.weekly = nil
		s.uniform = true
		for i := range s.hours {
			s.hours[i] = h
		}
	}
}

// WithWeeklyHours gives every weekday its own open window. All seven
// weekdays must be present.
func WithWeeklyHours(w WeeklyHours) Option {
	return func(s *settings) {
		s.weekly = w
		s.uniform = false
	}
}

// WithWeekend sets the non-business weekdays. The default is Saturday and
// Sunday. An empty list means every weekday is a working day.
func WithWeekend(days ...time.Weekday) Option {
	return func(s *settings) {
		s.weekend = days
	}
}

// WithHolidays uses a fixed list of holiday dates. Only the calendar date
// of each time is kept, in that time's own location.
func WithHolidays(dates ...time.Time) Option {
	return func(s *settings) {
		s.sources = append(s.sources, newStaticHolidays(dates))
	}
}

// WithHolidaySet uses a holiday set such as holidays.UK. Its errors,
// including holidays.ErrUnsupportedYear, are returned from queries.
func WithHolidaySet(set HolidaySet) Option {
	return func(s *settings) {
		if set == nil {
			s.errs = append(s.errs, fmt.Errorf("%w: nil holiday set", ErrInvalidConfig))
			return
		}
		s.sources = append(s.sources, setHolidays{set: set})
	}
}

// WithHolidayGenerator uses a lazily evaluated holiday sequence. Dates
// pulled from it are cached by the calendar.
func WithHolidayGenerator(gen HolidayGenerator) Option {
	return func(s *settings) {
		if gen == nil {
			s.errs = append(s.errs, fmt.Errorf("%w: nil holiday generator", ErrInvalidConfig))
			return
		}
		s.gen = gen
		s.sources = append(s.sources, nil)
	}
}

// WithLogger sets the logger for debug records. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// New creates a Calendar. Without options it is open 09:00-17:00 with
// Saturday and Sunday as the weekend and no holidays.
func New(opts ...Option) (*Calendar, error) {
	s := settings{
		uniform: true,
		weekend: []time.Weekday{time.Saturday, time.Sunday},
		logger:  slog.New(slog.DiscardHandler),
	}
	for i := range s.hours {
		s.hours[i] = Hours{Open: 9 * time.Hour, Close: 17 * time.Hour}
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	c := &Calendar{uniform: s.uniform, logger: s.logger}
	errs := s.errs

	if s.weekly != nil {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			h, ok := s.weekly[wd]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: missing %v", ErrIncompleteWeeklyHours, wd))
				continue
			}
			s.hours[wd] = h
		}
		for wd := range s.weekly {
			if wd < time.Sunday || wd > time.Saturday {
				errs = append(errs, fmt.Errorf("%w: weekday %d out of range", ErrIncompleteWeeklyHours, int(wd)))
			}
		}
	}
	for wd, h := range s.hours {
		if err := h.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", time.Weekday(wd), err))
			continue
		}
		c.hours[wd] = h
		c.open[wd] = h.Duration()
	}

	for _, wd := range s.weekend {
		if wd < time.Sunday || wd > time.Saturday {
			errs = append(errs, fmt.Errorf("%w: weekday %d out of range", ErrInvalidWeekend, int(wd)))
			continue
		}
		c.weekend[wd] = true
	}
	if !slices.Contains(c.weekend[:], false) {
		errs = append(errs, fmt.Errorf("%w: every weekday is a weekend day", ErrInvalidWeekend))
	}

	switch len(s.sources) {
	case 0:
	case 1:
		c.holidays = s.sources[0]
		if c.holidays == nil {
			c.holidays = newHolidayCache(s.gen, s.logger)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: got %d", ErrConflictingHolidays, len(s.sources)))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	source := "none"
	if c.holidays != nil {
		source = c.holidays.kind()
	}
	c.logger.Debug("calendar created", "uniform", c.uniform, "weekend", s.weekend, "holidays", source)
	return c, nil
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = func() *Calendar {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}()

// Hours returns the open window of wd.
func (c *Calendar) Hours(wd time.Weekday) Hours { return c.hours[wd] }

// OpenHours returns the length of wd's open window.
func (c *Calendar) OpenHours(wd time.Weekday) time.Duration { return c.open[wd] }

// Uniform reports whether the calendar was built with a single [Hours]
// window, which selects the day-counting delta.
func (c *Calendar) Uniform() bool { return c.uniform }

func (c *Calendar) openAt(d civil.Date, loc *time.Location) time.Time {
	return d.At(c.hours[d.Weekday()].Open, loc)
}

func (c *Calendar) closeAt(d civil.Date, loc *time.Location) time.Time {
	return d.At(c.hours[d.Weekday()].Close, loc)
}

// IsWeekend reports whether t falls on a weekend day.
func (c *Calendar) IsWeekend(t time.Time) bool {
	return c.weekend[t.Weekday()]
}

func (c *Calendar) isHoliday(d civil.Date, loc *time.Location) (bool, error) {
	if c.holidays == nil {
		return false, nil
	}
	return c.holidays.contains(d, loc)
}

func (c *Calendar) isBusinessDay(d civil.Date, loc *time.Location) (bool, error) {
	if c.weekend[d.Weekday()] {
		return false, nil
	}
	h, err := c.isHoliday(d, loc)
	return !h, err
}

// IsHoliday reports whether t's calendar date is a holiday.
func (c *Calendar) IsHoliday(t time.Time) (bool, error) {
	return c.isHoliday(civil.Of(t), t.Location())
}

// IsBusinessDay reports whether t's calendar date is neither a weekend day
// nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) (bool, error) {
	return c.isBusinessDay(civil.Of(t), t.Location())
}

// IsDuringBusinessHours reports whether t is on a business day and inside
// that weekday's [open, close) window.
func (c *Calendar) IsDuringBusinessHours(t time.Time) (bool, error) {
	ok, err := c.IsBusinessDay(t)
	if !ok || err != nil {
		return false, err
	}
	h := c.hours[t.Weekday()]
	tod := civil.TimeOfDay(t)
	return h.Open <= tod && tod < h.Close, nil
}

// HolidaysBetween returns the holidays in the range [from, to] inclusive,
// at midnight in from's location, sorted by date. If from is after to,
// returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) ([]time.Time, error) {
	loc := from.Location()
	start, end := civil.Of(from), civil.Of(to.In(loc))
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDays(1) {
		ok, err := c.isHoliday(d, loc)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d.In(loc))
		}
	}
	return out, nil
}

// --- Package-level convenience functions ---
//
// The default calendar has no holiday source, so these cannot fail.

// IsBusinessDay reports whether t is a weekday.
func IsBusinessDay(t time.Time) bool {
	ok, _ := defaultCal.IsBusinessDay(t)
	return ok
}

// IsDuringBusinessHours reports whether t is on a weekday between 09:00
// and 17:00.
func IsDuringBusinessHours(t time.Time) bool {
	ok, _ := defaultCal.IsDuringBusinessHours(t)
	return ok
}

// BusinessTimeDelta returns the business time between d1 and d2 on the
// default calendar.
func BusinessTimeDelta(d1, d2 time.Time) time.Duration {
	d, _ := defaultCal.BusinessTimeDelta(d1, d2)
	return d
}

// BusinessTimeHours returns the business hours between d1 and d2 on the
// default calendar.
func BusinessTimeHours(d1, d2 time.Time) time.Duration {
	d, _ := defaultCal.BusinessTimeHours(d1, d2)
	return d
}
