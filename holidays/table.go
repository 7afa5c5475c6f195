package holidays

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// Table is a fixed list of holidays covering the years FromYear..ToYear
// inclusive. Some jurisdictions legislate their holidays year by year, so
// no rule set can describe them; a table is the honest representation.
//
// Queries for a year outside the coverage fail with [ErrUnsupportedYear].
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	Name     string
	FromYear int
	ToYear   int

	names  map[civil.Date]string
	sorted []civil.Date
}

// NewTable builds a table from the given holidays. When two entries share
// a date the first name wins.
func NewTable(name string, fromYear, toYear int, hs ...Holiday) *Table {
	t := &Table{
		Name:     name,
		FromYear: fromYear,
		ToYear:   toYear,
		names:    make(map[civil.Date]string, len(hs)),
	}
	t.add(hs)
	return t
}

// Extend returns a new table with the same coverage holding t's holidays
// plus hs.
func (t *Table) Extend(name string, hs ...Holiday) *Table {
	ext := &Table{
		Name:     name,
		FromYear: t.FromYear,
		ToYear:   t.ToYear,
		names:    maps.Clone(t.names),
	}
	ext.add(hs)
	return ext
}

func (t *Table) add(hs []Holiday) {
	for _, h := range hs {
		d := civil.Of(h.Date)
		if _, ok := t.names[d]; !ok {
			t.names[d] = h.Name
		}
	}
	t.sorted = slices.SortedFunc(maps.Keys(t.names), civil.Date.Compare)
}

func (t *Table) check(year int) error {
	if year < t.FromYear || year > t.ToYear {
		return fmt.Errorf("%w: %s covers %d-%d, got %d", ErrUnsupportedYear, t.Name, t.FromYear, t.ToYear, year)
	}
	return nil
}

// Contains reports whether tm's calendar date is in the table.
func (t *Table) Contains(tm time.Time) (bool, error) {
	d := civil.Of(tm)
	if err := t.check(d.Year); err != nil {
		return false, err
	}
	_, ok := t.names[d]
	return ok, nil
}

// HolidayName returns the holiday name for tm's date, or "".
func (t *Table) HolidayName(tm time.Time) (string, error) {
	d := civil.Of(tm)
	if err := t.check(d.Year); err != nil {
		return "", err
	}
	return t.names[d], nil
}

// Sequence yields the table's dates on or after start in ascending order
// and stops after the last one. A start outside the coverage yields
// [ErrUnsupportedYear] instead.
func (t *Table) Sequence(start time.Time) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		from := civil.Of(start)
		if err := t.check(from.Year); err != nil {
			yield(time.Time{}, err)
			return
		}
		i, _ := slices.BinarySearchFunc(t.sorted, from, civil.Date.Compare)
		for _, d := range t.sorted[i:] {
			if d.Year > t.ToYear {
				break
			}
			if !yield(d.In(start.Location()), nil) {
				return
			}
		}
	}
}

// Between returns the holidays in [from, to] by calendar date, ascending.
// Both ends must lie inside the coverage.
func (t *Table) Between(from, to time.Time) ([]Holiday, error) {
	start, end := civil.Of(from), civil.Of(to)
	if err := t.check(start.Year); err != nil {
		return nil, err
	}
	if err := t.check(end.Year); err != nil {
		return nil, err
	}
	var out []Holiday
	for _, d := range t.sorted {
		if d.InRange(start, end) {
			out = append(out, Holiday{Date: d.In(from.Location()), Name: t.names[d]})
		}
	}
	return out, nil
}
