package businesstime

import (
	"bytes"
	"errors"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rabitt1ove/businesstime/holidays"
)

// countingGenerator wraps gen and counts how often it is started.
type countingGenerator struct {
	mu    sync.Mutex
	calls int
	gen   HolidayGenerator
}

func (g *countingGenerator) sequence(start time.Time) iter.Seq2[time.Time, error] {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.gen(start)
}

func (g *countingGenerator) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// fixedDates yields the given dates that fall on or after start.
func fixedDates(ds ...time.Time) HolidayGenerator {
	return func(start time.Time) iter.Seq2[time.Time, error] {
		return func(yield func(time.Time, error) bool) {
			for _, d := range ds {
				if d.Before(start) {
					continue
				}
				if !yield(d, nil) {
					return
				}
			}
		}
	}
}

func TestHolidayCache_Restarts(t *testing.T) {
	t.Parallel()

	gen := &countingGenerator{gen: holidays.USFederal.Sequence}
	c, err := New(WithHolidayGenerator(gen.sequence))
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		date  time.Time
		want  bool
		calls int
	}{
		{at(2018, 5, 28, 0, 0), true, 1},  // first query starts the generator
		{at(2018, 5, 1, 0, 0), false, 2},  // earlier than the start: restart
		{at(2018, 5, 20, 0, 0), false, 2}, // inside the cached range
		{at(2018, 5, 28, 0, 0), true, 2},
		{at(2018, 7, 4, 0, 0), true, 3}, // beyond the frontier: resume
		{at(2018, 6, 1, 0, 0), false, 3},
	}
	for _, s := range steps {
		got, err := c.IsHoliday(s.date)
		if err != nil {
			t.Fatal(err)
		}
		if got != s.want {
			t.Errorf("IsHoliday(%s) = %v, want %v", s.date.Format(time.DateOnly), got, s.want)
		}
		if n := gen.count(); n != s.calls {
			t.Errorf("after %s: generator started %d times, want %d", s.date.Format(time.DateOnly), n, s.calls)
		}
	}
}

func TestHolidayCache_OrderIndependent(t *testing.T) {
	t.Parallel()

	var queries []time.Time
	for d := at(2016, 11, 1, 12, 0); d.Before(at(2017, 2, 1, 0, 0)); d = d.AddDate(0, 0, 1) {
		queries = append(queries, d)
	}
	ascending := newFederal(t)
	want := make(map[time.Time]bool, len(queries))
	for _, q := range queries {
		ok, err := ascending.IsHoliday(q)
		if err != nil {
			t.Fatal(err)
		}
		want[q] = ok
	}

	orders := map[string][]time.Time{
		"descending":  reversed(queries),
		"interleaved": interleave(queries),
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			c := newFederal(t)
			for _, q := range order {
				got, err := c.IsHoliday(q)
				if err != nil {
					t.Fatal(err)
				}
				if got != want[q] {
					t.Errorf("IsHoliday(%s) = %v, want %v", q.Format(time.DateOnly), got, want[q])
				}
			}
		})
	}
}

func reversed(ts []time.Time) []time.Time {
	out := make([]time.Time, len(ts))
	for i, t := range ts {
		out[len(ts)-1-i] = t
	}
	return out
}

// interleave alternates between the back and the front of ts.
func interleave(ts []time.Time) []time.Time {
	out := make([]time.Time, 0, len(ts))
	for i, j := 0, len(ts)-1; i <= j; i, j = i+1, j-1 {
		out = append(out, ts[j])
		if i != j {
			out = append(out, ts[i])
		}
	}
	return out
}

func TestHolidayCache_NotAscending(t *testing.T) {
	t.Parallel()

	// Ignores start, so a resumed run repeats dates already seen.
	unordered := func(time.Time) iter.Seq2[time.Time, error] {
		return func(yield func(time.Time, error) bool) {
			for _, d := range []time.Time{at(2014, 1, 5, 0, 0), at(2014, 1, 3, 0, 0)} {
				if !yield(d, nil) {
					return
				}
			}
		}
	}
	c, err := New(WithHolidayGenerator(unordered))
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := c.IsHoliday(at(2014, 1, 1, 0, 0)); err != nil || ok {
		t.Fatalf("IsHoliday(2014-01-01) = %v, %v; want false, nil", ok, err)
	}
	if _, err := c.IsHoliday(at(2014, 1, 7, 0, 0)); !errors.Is(err, ErrHolidaysNotAscending) {
		t.Errorf("IsHoliday(2014-01-07) error = %v, want ErrHolidaysNotAscending", err)
	}
}

func TestHolidayCache_Exhausted(t *testing.T) {
	t.Parallel()

	c, err := New(WithHolidayGenerator(fixedDates(at(2014, 1, 1, 0, 0))))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		date time.Time
		want bool
	}{
		{at(2014, 6, 1, 0, 0), false},
		{at(2014, 12, 31, 0, 0), false},
		{at(2014, 1, 1, 0, 0), true},
		{at(2015, 1, 1, 0, 0), false},
	}
	for _, tt := range tests {
		got, err := c.IsHoliday(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("IsHoliday(%s) = %v, want %v", tt.date.Format(time.DateOnly), got, tt.want)
		}
	}
}

func TestHolidayCache_ErrorResets(t *testing.T) {
	t.Parallel()

	c, err := New(WithHolidayGenerator(holidays.UK.Sequence))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.IsHoliday(at(2021, 1, 1, 0, 0)); !errors.Is(err, holidays.ErrUnsupportedYear) {
		t.Fatalf("IsHoliday(2021) error = %v, want ErrUnsupportedYear", err)
	}
	ok, err := c.IsHoliday(at(2016, 12, 27, 0, 0))
	if err != nil {
		t.Fatalf("IsHoliday after an error: %v", err)
	}
	if !ok {
		t.Error("2016-12-27 should be a holiday (Christmas substitute day)")
	}
}

func TestHolidayCache_TableEndOfCoverage(t *testing.T) {
	t.Parallel()

	c, err := New(WithHolidayGenerator(holidays.UK.Sequence))
	if err != nil {
		t.Fatal(err)
	}
	// The last UK holiday is Boxing Day 2019; the days after it are still covered.
	for _, q := range []time.Time{at(2019, 12, 30, 0, 0), at(2019, 12, 31, 0, 0), at(2019, 12, 26, 0, 0)} {
		want := q.Day() == 26
		got, err := c.IsHoliday(q)
		if err != nil {
			t.Fatalf("IsHoliday(%s): %v", q.Format(time.DateOnly), err)
		}
		if got != want {
			t.Errorf("IsHoliday(%s) = %v, want %v", q.Format(time.DateOnly), got, want)
		}
	}

	got, err := c.BusinessTimeDelta(at(2019, 12, 20, 10, 0), at(2019, 12, 31, 10, 0))
	if err != nil {
		t.Fatalf("BusinessTimeDelta: %v", err)
	}
	// 23, 24, 27, 30 and 31 December; Christmas and Boxing Day are skipped.
	if want := 5 * day; got != want {
		t.Errorf("BusinessTimeDelta = %v, want %v", got, want)
	}

	set, err := New(WithHolidaySet(holidays.UK))
	if err != nil {
		t.Fatal(err)
	}
	viaSet, err := set.BusinessTimeDelta(at(2019, 12, 20, 10, 0), at(2019, 12, 31, 10, 0))
	if err != nil || viaSet != got {
		t.Errorf("set calendar BusinessTimeDelta = %v, %v; want %v", viaSet, err, got)
	}

	// Past the coverage the table still refuses to answer.
	if _, err := c.IsHoliday(at(2020, 1, 2, 0, 0)); !errors.Is(err, holidays.ErrUnsupportedYear) {
		t.Errorf("IsHoliday(2020-01-02) error = %v, want ErrUnsupportedYear", err)
	}
}

func TestHolidayCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := newFederal(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			for d := range 60 {
				q := at(2015+i%3, 1, 1, 12, 0).AddDate(0, 0, d*6)
				if _, err := c.IsHoliday(q); err != nil {
					t.Error(err)
					return
				}
			}
		})
	}
	wg.Wait()

	ok, err := c.IsHoliday(at(2016, 7, 4, 0, 0))
	if err != nil || !ok {
		t.Errorf("IsHoliday(2016-07-04) = %v, %v; want true, nil", ok, err)
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newFederal(t, WithLogger(logger))
	if _, err := c.IsHoliday(at(2018, 5, 28, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.IsHoliday(at(2017, 5, 29, 0, 0)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"calendar created", "holiday cache extended", "holiday cache restarted"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
