package businesstime

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// HolidaySet is a holiday source that can answer membership directly.
// The tables in the holidays package implement it; they fail with
// holidays.ErrUnsupportedYear outside their coverage.
type HolidaySet interface {
	Contains(t time.Time) (bool, error)
}

// HolidayGenerator returns the holidays on or after start, strictly
// ascending, at any time of day. The sequence may be infinite. It must be
// restartable: calling it again with a later start resumes from there.
//
// holidays.USFederal.Sequence and holidays.FromCal(...) have this shape.
type HolidayGenerator func(start time.Time) iter.Seq2[time.Time, error]

// holidaySource is chosen once in New.
type holidaySource interface {
	contains(d civil.Date, loc *time.Location) (bool, error)
	kind() string
}

type staticHolidays map[civil.Date]struct{}

func newStaticHolidays(dates []time.Time) staticHolidays {
	s := make(staticHolidays, len(dates))
	for _, t := range dates {
		s[civil.Of(t)] = struct{}{}
	}
	return s
}

func (s staticHolidays) contains(d civil.Date, _ *time.Location) (bool, error) {
	_, ok := s[d]
	return ok, nil
}

func (staticHolidays) kind() string { return "static" }

type setHolidays struct{ set HolidaySet }

func (s setHolidays) contains(d civil.Date, loc *time.Location) (bool, error) {
	return s.set.Contains(d.In(loc))
}

func (setHolidays) kind() string { return "set" }

// holidayCache memoizes a generator. It keeps the date the generator was
// last started from and every date pulled since; an earlier query
// restarts it, a later one pulls until the frontier passes the query.
type holidayCache struct {
	gen    HolidayGenerator
	logger *slog.Logger

	mu      sync.Mutex
	started bool
	start   civil.Date
	dates   []civil.Date
	seen    map[civil.Date]struct{}
	done    bool // generator ran out
}

func newHolidayCache(gen HolidayGenerator, logger *slog.Logger) *holidayCache {
	return &holidayCache{gen: gen, logger: logger}
}

func (*holidayCache) kind() string { return "generator" }

func (c *holidayCache) contains(q civil.Date, loc *time.Location) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || q.Before(c.start) {
		c.restart(q)
	}
	if err := c.extend(q, loc); err != nil {
		c.reset()
		return false, err
	}
	_, ok := c.seen[q]
	return ok, nil
}

func (c *holidayCache) restart(q civil.Date) {
	if c.started {
		c.logger.Debug("holiday cache restarted", "from", c.start.String(), "to", q.String())
	}
	c.started = true
	c.start = q
	c.dates = c.dates[:0]
	c.seen = make(map[civil.Date]struct{})
	c.done = false
}

func (c *holidayCache) reset() {
	c.started = false
	c.dates = nil
	c.seen = nil
	c.done = false
}

func (c *holidayCache) last() (civil.Date, bool) {
	if len(c.dates) == 0 {
		return civil.Date{}, false
	}
	return c.dates[len(c.dates)-1], true
}

// extend pulls dates until the last cached one is on or after q or the
// generator is exhausted. The generator is re-entered at the day after
// the last cached date, so nothing is held open between calls.
func (c *holidayCache) extend(q civil.Date, loc *time.Location) error {
	for !c.done {
		from := c.start
		if last, ok := c.last(); ok {
			if !q.After(last) {
				return nil
			}
			from = last.AddDays(1)
		}

		pulled, reached := 0, false
		for t, err := range c.gen(from.In(loc)) {
			if err != nil {
				return err
			}
			d := civil.Of(t)
			if prev, ok := c.last(); ok && !d.After(prev) {
				return fmt.Errorf("%w: %s followed %s", ErrHolidaysNotAscending, d, prev)
			}
			if d.Before(from) {
				return fmt.Errorf("%w: %s before start %s", ErrHolidaysNotAscending, d, from)
			}
			c.dates = append(c.dates, d)
			c.seen[d] = struct{}{}
			pulled++
			if !d.Before(q) {
				reached = true
				break
			}
		}
		c.done = !reached
		c.logger.Debug("holiday cache extended", "query", q.String(), "pulled", pulled, "cached", len(c.dates), "exhausted", c.done)
	}
	if last, ok := c.last(); ok && !q.After(last) {
		return nil
	}
	// Past the end of an exhausted generator. Start it once at q so that a
	// bounded source can still reject a date it does not cover.
	for _, err := range c.gen(q.In(loc)) {
		return err
	}
	return nil
}
