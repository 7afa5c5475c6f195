package holidays

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// Rule describes one recurring holiday.
//
// A rule with Day > 0 is a fixed date (e.g. July 4). A rule with Week != 0
// is a floating date: Week = +N is the Nth occurrence of Weekday in Month,
// Week = -N is the Nth occurrence counted from the end of the month
// (-1 is the last one).
type Rule struct {
	Name     string
	Month    time.Month
	Day      int
	Weekday  time.Weekday
	Week     int
	FromYear int // first year the rule applies; 0 means no lower bound
	ToYear   int // last year the rule applies; 0 means no upper bound
}

func (r Rule) fixed() bool { return r.Day > 0 }

func (r Rule) inEffect(year int) bool {
	if r.FromYear != 0 && year < r.FromYear {
		return false
	}
	if r.ToYear != 0 && year > r.ToYear {
		return false
	}
	return true
}

// matches reports whether the rule falls on d, ignoring any observance shift.
func (r Rule) matches(d civil.Date) bool {
	if d.Month != r.Month || !r.inEffect(d.Year) {
		return false
	}
	if r.fixed() {
		return d.Day == r.Day
	}
	if d.Weekday() != r.Weekday {
		return false
	}
	if r.Week > 0 {
		return (d.Day-1)/7 == r.Week-1
	}
	return (civil.DaysIn(d.Year, d.Month)-d.Day)/7+1 == -r.Week
}

// Validate reports whether the rule is well formed.
func (r Rule) Validate() error {
	if r.Month < time.January || r.Month > time.December {
		return fmt.Errorf("%w: %q: month %d out of range", ErrInvalidRule, r.Name, int(r.Month))
	}
	switch {
	case r.Day > 0 && r.Week != 0:
		return fmt.Errorf("%w: %q: both day and week set", ErrInvalidRule, r.Name)
	case r.Day > 0:
		// February 29 is allowed; it simply only matches in leap years.
		if r.Day > civil.DaysIn(2000, r.Month) {
			return fmt.Errorf("%w: %q: %v has no day %d", ErrInvalidRule, r.Name, r.Month, r.Day)
		}
	case r.Week != 0:
		if r.Week < -5 || r.Week > 5 {
			return fmt.Errorf("%w: %q: week %d out of range", ErrInvalidRule, r.Name, r.Week)
		}
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("%w: %q: weekday %d out of range", ErrInvalidRule, r.Name, int(r.Weekday))
		}
	default:
		return fmt.Errorf("%w: %q: neither day nor week set", ErrInvalidRule, r.Name)
	}
	if r.FromYear != 0 && r.ToYear != 0 && r.ToYear < r.FromYear {
		return fmt.Errorf("%w: %q: to_year %d before from_year %d", ErrInvalidRule, r.Name, r.ToYear, r.FromYear)
	}
	return nil
}

// RuleSet is a named collection of holiday rules.
//
// When ObserveWeekend is set, a fixed-date holiday that falls on a Saturday
// is also observed on the preceding Friday, and one that falls on a Sunday
// on the following Monday. Both the actual and the observed day count as
// holidays.
type RuleSet struct {
	Name           string
	Rules          []Rule
	ObserveWeekend bool
}

// Validate checks every rule in the set.
func (rs *RuleSet) Validate() error {
	var errs []error
	for _, r := range rs.Rules {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (rs *RuleSet) match(d civil.Date) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.matches(d) {
			return r, true
		}
		if !rs.ObserveWeekend || !r.fixed() {
			continue
		}
		switch d.Weekday() {
		case time.Friday:
			if r.matches(d.AddDays(1)) {
				return r, true
			}
		case time.Monday:
			if r.matches(d.AddDays(-1)) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

// IsHoliday reports whether t's calendar date is a holiday under the set.
func (rs *RuleSet) IsHoliday(t time.Time) bool {
	_, ok := rs.match(civil.Of(t))
	return ok
}

// HolidayName returns the name of the holiday on t's date, or "".
func (rs *RuleSet) HolidayName(t time.Time) string {
	r, _ := rs.match(civil.Of(t))
	return r.Name
}

// lastYear returns the last year any rule can match, or 0 when at least
// one rule is open ended.
func (rs *RuleSet) lastYear() int {
	last := 0
	for _, r := range rs.Rules {
		if r.ToYear == 0 {
			return 0
		}
		// Observance can push a Dec 31 holiday into the next year's Jan 1
		// neighbourhood, so leave one year of slack.
		last = max(last, r.ToYear+1)
	}
	return last
}

// Sequence yields every holiday date on or after start, in ascending order,
// at midnight in start's location. The sequence is unbounded unless every
// rule has a ToYear. A set that fails [RuleSet.Validate] yields that error
// and stops.
func (rs *RuleSet) Sequence(start time.Time) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		if err := rs.Validate(); err != nil {
			yield(time.Time{}, err)
			return
		}
		if len(rs.Rules) == 0 {
			return
		}
		loc := start.Location()
		last := rs.lastYear()
		for d := civil.Of(start); last == 0 || d.Year <= last; d = d.AddDays(1) {
			if _, ok := rs.match(d); ok {
				if !yield(d.In(loc), nil) {
					return
				}
			}
		}
	}
}

// Between returns the holidays in [from, to] by calendar date, ascending.
func (rs *RuleSet) Between(from, to time.Time) []Holiday {
	end := civil.Of(to)
	var out []Holiday
	for d := civil.Of(from); !d.After(end); d = d.AddDays(1) {
		if r, ok := rs.match(d); ok {
			out = append(out, Holiday{Date: d.In(from.Location()), Name: r.Name})
		}
	}
	return out
}
