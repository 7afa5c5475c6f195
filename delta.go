package businesstime

import (
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// BusinessTimeDelta returns the business time between d1 and d2. The
// result is negative when d2 is before d1, and
// BusinessTimeDelta(a, b) == -BusinessTimeDelta(b, a).
//
// On a uniform calendar every crossed business day counts as 24h and the
// partial first and last days count their business time, so two days and
// one hour is 49h. Use [Calendar.BusinessTimeHours] for open hours only.
// On a weekly-hours calendar the result is the sum of business time.
func (c *Calendar) BusinessTimeDelta(d1, d2 time.Time) (time.Duration, error) {
	d2 = d2.In(d1.Location())
	sign := time.Duration(1)
	if d1.After(d2) {
		d1, d2, sign = d2, d1, -1
	}

	anchors, err := c.spanningDatetimes(d1, d2)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	switch {
	case len(anchors) == 0:
		total, err = c.residual(d1, d2)
		if err != nil {
			return 0, err
		}
	case c.uniform:
		total = c.walkDays(anchors)
	default:
		total = c.sumDays(anchors)
	}
	return sign * total, nil
}

// residual covers ranges without anchors: d1 is after hours or on a
// non-business day and d2 is on the next business day.
func (c *Calendar) residual(d1, d2 time.Time) (time.Duration, error) {
	loc := d2.Location()
	end := civil.Of(d2)

	during, err := c.IsDuringBusinessHours(d2)
	if err != nil {
		return 0, err
	}
	if during {
		return d2.Sub(c.openAt(end, loc)), nil
	}

	startOK, err := c.IsBusinessDay(d1)
	if err != nil || startOK {
		return 0, err
	}
	endOK, err := c.isBusinessDay(end, loc)
	if err != nil || !endOK {
		return 0, err
	}
	open, close := c.openAt(end, loc), c.closeAt(end, loc)
	switch {
	case d2.After(close):
		return close.Sub(open), nil
	case d2.After(open):
		return d2.Sub(open), nil
	}
	return 0, nil
}

// walkDays carries the first anchor's time of day across the anchors,
// adding a day for every date crossed, then settles the remainder against
// the final anchor. If that overshoots the final anchor, one day is taken
// back and the open hours minus the overshoot added instead.
func (c *Calendar) walkDays(anchors []time.Time) time.Duration {
	loc := anchors[0].Location()
	tod := civil.TimeOfDay(anchors[0])
	prev := civil.Of(anchors[0])
	last := len(anchors) - 1

	var total time.Duration
	for i := 1; i <= last; i++ {
		a := anchors[i]
		date := civil.Of(a)
		cur := date.At(tod, loc)
		if date != prev {
			total += day
		}
		if i == last {
			if cur.After(a) {
				total += -day + c.open[date.Weekday()] - cur.Sub(a)
			} else {
				total += a.Sub(cur)
			}
		}
		prev = date
	}
	return total
}

// sumDays adds each anchor day's open window, clipped by the first and
// last anchors.
func (c *Calendar) sumDays(anchors []time.Time) time.Duration {
	loc := anchors[0].Location()
	last := len(anchors) - 1

	// Start and end on one day. The span builder never puts the end anchor
	// before the start anchor, so this is never negative.
	if last == 1 && civil.Of(anchors[0]) == civil.Of(anchors[1]) {
		d := civil.Of(anchors[0])
		if !anchors[0].Before(c.openAt(d, loc)) && !anchors[0].After(c.closeAt(d, loc)) {
			return anchors[1].Sub(anchors[0])
		}
	}

	var total time.Duration
	for i, a := range anchors {
		d := civil.Of(a)
		open, close := c.openAt(d, loc), c.closeAt(d, loc)
		switch {
		case i > 0 && i < last, a.After(close):
			total += close.Sub(open)
		case a.Before(open):
		case i == 0:
			total += close.Sub(a)
		default:
			total += a.Sub(open)
		}
	}
	return total
}

// BusinessTimeHours returns the business time between d1 and d2 counting
// only open hours. On a uniform calendar each whole 24h day of
// [Calendar.BusinessTimeDelta] becomes one day of open hours; the sign is
// kept, so BusinessTimeHours(a, b) == -BusinessTimeHours(b, a). On a
// weekly-hours calendar it equals BusinessTimeDelta.
func (c *Calendar) BusinessTimeHours(d1, d2 time.Time) (time.Duration, error) {
	delta, err := c.BusinessTimeDelta(d1, d2)
	if err != nil || !c.uniform {
		return delta, err
	}
	days, rem := delta/day, delta%day
	return days*c.open[time.Monday] + rem, nil
}

// AddBusinessTime returns the instant reached after d of business time
// from t, walking business days one at a time and using up each day's
// open window. A negative d walks backwards. The result lands inside
// business hours or on a closing time.
func (c *Calendar) AddBusinessTime(t time.Time, d time.Duration) (time.Time, error) {
	if d == 0 {
		return t, nil
	}
	loc := t.Location()
	date := civil.Of(t)
	forward := d > 0
	remaining := d
	if !forward {
		remaining = -d
	}

	first := true
	for idle := 0; ; {
		ok, err := c.isBusinessDay(date, loc)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			idle = 0
			open, close := c.openAt(date, loc), c.closeAt(date, loc)
			if forward {
				from := open
				if first && t.After(open) {
					from = t
				}
				if avail := close.Sub(from); avail > 0 {
					if remaining <= avail {
						return from.Add(remaining), nil
					}
					remaining -= avail
				}
			} else {
				to := close
				if first && t.Before(close) {
					to = t
				}
				if avail := to.Sub(open); avail > 0 {
					if remaining <= avail {
						return to.Add(-remaining), nil
					}
					remaining -= avail
				}
			}
		} else if idle++; idle >= maxScanDays {
			return time.Time{}, ErrNoBusinessDay
		}
		first = false
		if forward {
			date = date.AddDays(1)
		} else {
			date = date.AddDays(-1)
		}
	}
}
