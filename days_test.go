package businesstime

import (
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func dates(ts ...time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Format(time.DateOnly))
	}
	return out
}

func collectDays(t *testing.T, seq iter.Seq2[time.Time, error]) []string {
	t.Helper()
	var out []time.Time
	for d, err := range seq {
		if err != nil {
			t.Fatalf("sequence error: %v", err)
		}
		out = append(out, d)
	}
	return dates(out...)
}

func TestIterDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		d1, d2 time.Time
		want   []string
	}{
		{"forward", at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0),
			[]string{"2014-01-16", "2014-01-17", "2014-01-18", "2014-01-19", "2014-01-20", "2014-01-21"}},
		{"same day", at(2014, 1, 16, 12, 15), at(2014, 1, 16, 12, 16), []string{"2014-01-16"}},
		{"same instant", at(2014, 1, 16, 12, 15), at(2014, 1, 16, 12, 15), []string{"2014-01-16"}},
		{"clears time", time.Date(2014, 1, 16, 12, 12, 11, 0, time.UTC), at(2014, 1, 18, 15, 0),
			[]string{"2014-01-16", "2014-01-17"}},
		{"backward", at(2014, 1, 18, 15, 0), at(2014, 1, 16, 12, 0), []string{"2014-01-18", "2014-01-17"}},
		{"across a month", at(2014, 1, 30, 0, 0), at(2014, 2, 2, 0, 0), []string{"2014-01-30", "2014-01-31", "2014-02-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates(slices.Collect(defaultCal.IterDays(tt.d1, tt.d2))...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IterDays (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterDays_Midnight(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)
	for d := range defaultCal.IterDays(time.Date(2014, 1, 16, 12, 0, 0, 0, est), at(2014, 1, 19, 0, 0)) {
		if d.Hour() != 0 || d.Minute() != 0 || d.Location() != est {
			t.Errorf("IterDays yielded %v, want midnight EST", d)
		}
	}
}

func TestIterWeekdays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cal  *Calendar
		want []string
	}{
		{"fixed", newFederal(t), []string{"2014-01-16", "2014-01-17", "2014-01-20", "2014-01-21"}},
		{"varying", newVarying(t), []string{"2014-01-16", "2014-01-17", "2014-01-19", "2014-01-20", "2014-01-21"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates(slices.Collect(tt.cal.IterWeekdays(at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0)))...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IterWeekdays (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterBusinessDays(t *testing.T) {
	t.Parallel()

	fixed := newFederal(t)
	varying := newVarying(t)
	static, err := New(WithHolidays(at(2014, 1, 1, 0, 0), at(2014, 1, 20, 0, 0)))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		cal    *Calendar
		d1, d2 time.Time
		want   []string
	}{
		{"fixed", fixed, at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0),
			[]string{"2014-01-16", "2014-01-17", "2014-01-21"}},
		{"static holidays", static, at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0),
			[]string{"2014-01-16", "2014-01-17", "2014-01-21"}},
		{"fixed after close", fixed, at(2014, 1, 16, 17, 1), at(2014, 1, 23, 2, 0),
			[]string{"2014-01-17", "2014-01-21", "2014-01-22"}},
		{"fixed at close", fixed, at(2014, 1, 16, 17, 0), at(2014, 1, 18, 2, 0),
			[]string{"2014-01-16", "2014-01-17"}},
		{"varying", varying, at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0),
			[]string{"2014-01-16", "2014-01-17", "2014-01-19", "2014-01-21"}},
		{"varying after close", varying, at(2014, 1, 16, 17, 1), at(2014, 1, 23, 2, 0),
			[]string{"2014-01-17", "2014-01-19", "2014-01-21", "2014-01-22"}},
		{"same day before open", fixed, at(2014, 1, 16, 1, 0), at(2014, 1, 16, 8, 59), []string{}},
		{"same day during", fixed, at(2014, 1, 16, 1, 0), at(2014, 1, 16, 9, 0), []string{"2014-01-16"}},
		{"same day after close", fixed, at(2014, 1, 16, 17, 30), at(2014, 1, 16, 18, 0), []string{}},
		{"backward", fixed, at(2014, 1, 22, 12, 0), at(2014, 1, 16, 0, 0),
			[]string{"2014-01-22", "2014-01-21", "2014-01-17"}},
		{"backward before open", fixed, at(2014, 1, 22, 8, 0), at(2014, 1, 16, 0, 0),
			[]string{"2014-01-21", "2014-01-17"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectDays(t, tt.cal.IterBusinessDays(tt.d1, tt.d2))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IterBusinessDays (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterBusinessDays_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c, err := New(WithHolidayGenerator(func(time.Time) iter.Seq2[time.Time, error] {
		return func(yield func(time.Time, error) bool) {
			yield(time.Time{}, boom)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}

	n := 0
	for _, err := range c.IterBusinessDays(at(2014, 1, 16, 0, 0), at(2014, 1, 22, 0, 0)) {
		n++
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
	}
	if n != 1 {
		t.Errorf("yielded %d values, want a single error", n)
	}
}

func TestIterBusinessDays_Break(t *testing.T) {
	t.Parallel()

	c := newFederal(t)
	n := 0
	for range c.IterBusinessDays(at(2014, 1, 1, 0, 0), at(2014, 12, 31, 0, 0)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestNextBusinessDay(t *testing.T) {
	t.Parallel()

	c := newFederal(t)
	tests := []struct {
		name string
		from time.Time
		next string
		prev string
	}{
		{"business day itself", at(2014, 1, 16, 15, 0), "2014-01-16", "2014-01-16"},
		{"weekend before MLK day", at(2014, 1, 18, 10, 0), "2014-01-21", "2014-01-17"},
		{"MLK day", at(2014, 1, 20, 10, 0), "2014-01-21", "2014-01-17"},
		{"New Year's Day", at(2014, 1, 1, 0, 0), "2014-01-02", "2013-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := c.NextBusinessDay(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			prev, err := c.PreviousBusinessDay(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			if got := next.Format(time.DateOnly); got != tt.next {
				t.Errorf("NextBusinessDay = %s, want %s", got, tt.next)
			}
			if got := prev.Format(time.DateOnly); got != tt.prev {
				t.Errorf("PreviousBusinessDay = %s, want %s", got, tt.prev)
			}
			if next.Hour() != 0 {
				t.Errorf("NextBusinessDay = %v, want midnight", next)
			}
		})
	}
}

// everyDay is a generator that declares every date a holiday.
func everyDay(start time.Time) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		for d := start; ; d = d.AddDate(0, 0, 1) {
			if !yield(d, nil) {
				return
			}
		}
	}
}

func TestNoBusinessDay(t *testing.T) {
	t.Parallel()

	c, err := New(WithHolidayGenerator(everyDay))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.NextBusinessDay(at(2014, 1, 1, 0, 0)); !errors.Is(err, ErrNoBusinessDay) {
		t.Errorf("NextBusinessDay error = %v, want ErrNoBusinessDay", err)
	}
	if _, err := c.PreviousBusinessDay(at(2014, 1, 1, 0, 0)); !errors.Is(err, ErrNoBusinessDay) {
		t.Errorf("PreviousBusinessDay error = %v, want ErrNoBusinessDay", err)
	}
	if _, err := c.AddBusinessTime(at(2014, 1, 1, 10, 0), time.Hour); !errors.Is(err, ErrNoBusinessDay) {
		t.Errorf("AddBusinessTime error = %v, want ErrNoBusinessDay", err)
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	t.Parallel()

	c := newFederal(t)
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"January 2014", at(2014, 1, 1, 0, 0), at(2014, 1, 31, 0, 0), 21},
		{"single business day", at(2014, 1, 16, 8, 0), at(2014, 1, 16, 20, 0), 1},
		{"weekend", at(2014, 1, 18, 0, 0), at(2014, 1, 19, 0, 0), 0},
		{"reversed", at(2014, 1, 31, 0, 0), at(2014, 1, 1, 0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.BusinessDaysBetween(tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("BusinessDaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
