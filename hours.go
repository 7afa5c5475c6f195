package businesstime

import (
	"fmt"
	"strings"
	"time"
)

const day = 24 * time.Hour

// Hours is a business day's open window, given as offsets from local
// midnight. Open is inclusive and Close exclusive.
type Hours struct {
	Open  time.Duration
	Close time.Duration
}

// ParseHours parses open and close clock times in "15:04" or "15:04:05"
// form.
func ParseHours(open, close string) (Hours, error) {
	o, err := parseClock(open)
	if err != nil {
		return Hours{}, err
	}
	c, err := parseClock(close)
	if err != nil {
		return Hours{}, err
	}
	h := Hours{Open: o, Close: c}
	return h, h.Validate()
}

// MustParseHours is like [ParseHours] but panics on error. It is meant for
// package-level variables and tests.
func MustParseHours(open, close string) Hours {
	h, err := ParseHours(open, close)
	if err != nil {
		panic(err)
	}
	return h
}

func parseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = time.TimeOnly
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: clock time %q: %v", ErrInvalidHours, s, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// Validate reports whether 0 <= Open < Close < 24h.
func (h Hours) Validate() error {
	if h.Open < 0 || h.Close >= day {
		return fmt.Errorf("%w: %s outside one day", ErrInvalidHours, h)
	}
	if h.Open >= h.Close {
		return fmt.Errorf("%w: open %s not before close %s", ErrInvalidHours, clock(h.Open), clock(h.Close))
	}
	return nil
}

// Duration returns the length of the open window.
func (h Hours) Duration() time.Duration { return h.Close - h.Open }

func (h Hours) String() string {
	return clock(h.Open) + "-" + clock(h.Close)
}

func clock(d time.Duration) string {
	if d < 0 {
		return "-" + clock(-d)
	}
	h, m, s := int(d/time.Hour), int(d%time.Hour/time.Minute), int(d%time.Minute/time.Second)
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// WeeklyHours assigns an open window to every weekday. Weekend days need
// an entry too; it is simply never used.
type WeeklyHours map[time.Weekday]Hours
