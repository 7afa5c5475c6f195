package businesstime

import (
	"fmt"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// spanningDatetimes returns the anchors delimiting business time in
// [d1, d2]: the opening of every business day in range, with the first
// clipped up to d1, followed by the closing of the last day or d2 itself
// when d2 falls inside business hours. It returns nil when no business day
// lies in range. d2 must already be in d1's location.
func (c *Calendar) spanningDatetimes(d1, d2 time.Time) ([]time.Time, error) {
	if d2.Before(d1) {
		return nil, fmt.Errorf("%w: %s > %s", errReversedRange, d1.Format(time.RFC3339), d2.Format(time.RFC3339))
	}
	loc := d1.Location()

	var anchors []time.Time
	for t, err := range c.IterBusinessDays(d1, d2) {
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, c.openAt(civil.Of(t), loc))
	}
	if len(anchors) == 0 {
		return nil, nil
	}

	if d1.After(anchors[0]) {
		anchors[0] = d1
	}

	end := civil.Of(d2)
	ok, err := c.isBusinessDay(end, loc)
	if err != nil {
		return nil, err
	}
	switch last := len(anchors) - 1; {
	case ok && !d2.Before(c.openAt(end, loc)):
		anchors = append(anchors, minTime(c.closeAt(end, loc), d2))
	case last == 0:
		anchors = append(anchors, c.closeAt(civil.Of(anchors[0]), loc))
	default:
		anchors[last] = c.closeAt(civil.Of(anchors[last]), loc)
	}
	return anchors, nil
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
