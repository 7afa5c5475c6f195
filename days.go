package businesstime

import (
	"iter"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// maxScanDays bounds searches for the next business day.
const maxScanDays = 366

// IterDays yields the calendar dates from d1's date towards d2's date, at
// midnight in d1's location. d2's own date is excluded, unless both fall on
// the same date, in which case that single date is yielded. The sequence
// descends when d2 is before d1.
func (c *Calendar) IterDays(d1, d2 time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		loc := d1.Location()
		cur, end := civil.Of(d1), civil.Of(d2.In(loc))
		if cur == end {
			yield(cur.In(loc))
			return
		}
		step := 1
		if end.Before(cur) {
			step = -1
		}
		for ; step*cur.Compare(end) < 0; cur = cur.AddDays(step) {
			if !yield(cur.In(loc)) {
				return
			}
		}
	}
}

// IterWeekdays is [Calendar.IterDays] without weekend dates.
func (c *Calendar) IterWeekdays(d1, d2 time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for t := range c.IterDays(d1, d2) {
			if c.IsWeekend(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// IterBusinessDays is [Calendar.IterDays] restricted to business days that
// still hold business time for the range:
//
//   - if d1 and d2 share a date and d2 is before that day's opening,
//     nothing is yielded;
//   - going forward, d1's date is skipped when d1 is after its closing;
//   - going backward, d1's date is skipped when d1 is before its opening.
//
// A holiday source error is yielded once and ends the sequence.
func (c *Calendar) IterBusinessDays(d1, d2 time.Time) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		loc := d1.Location()
		d2 = d2.In(loc)
		first, last := civil.Of(d1), civil.Of(d2)
		if first == last && civil.TimeOfDay(d2) < c.hours[last.Weekday()].Open {
			return
		}

		h, tod := c.hours[first.Weekday()], civil.TimeOfDay(d1)
		var skip bool
		if d2.Before(d1) {
			skip = tod < h.Open
		} else {
			skip = tod > h.Close
		}

		for t := range c.IterDays(d1, d2) {
			if skip {
				skip = false
				continue
			}
			ok, err := c.isBusinessDay(civil.Of(t), loc)
			if err != nil {
				yield(time.Time{}, err)
				return
			}
			if ok && !yield(t, nil) {
				return
			}
		}
	}
}

func (c *Calendar) scanBusinessDay(t time.Time, step int) (time.Time, error) {
	loc := t.Location()
	d := civil.Of(t)
	for range maxScanDays {
		ok, err := c.isBusinessDay(d, loc)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			return d.In(loc), nil
		}
		d = d.AddDays(step)
	}
	return time.Time{}, ErrNoBusinessDay
}

// NextBusinessDay returns the first business day on or after t's date, at
// midnight in t's location.
func (c *Calendar) NextBusinessDay(t time.Time) (time.Time, error) {
	return c.scanBusinessDay(t, 1)
}

// PreviousBusinessDay returns the last business day on or before t's
// date, at midnight in t's location.
func (c *Calendar) PreviousBusinessDay(t time.Time) (time.Time, error) {
	return c.scanBusinessDay(t, -1)
}

// BusinessDaysBetween returns the count of business days in the range
// [from, to] inclusive. If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) (int, error) {
	loc := from.Location()
	start, end := civil.Of(from), civil.Of(to.In(loc))
	n := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		ok, err := c.isBusinessDay(d, loc)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
