package holidays

import (
	"iter"
	"slices"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/rabitt1ove/businesstime/internal/civil"
)

// maxCalYear bounds the year scan of [FromCal] so that a set of holidays
// which have all expired cannot loop forever.
const maxCalYear = 9999

// FromCal returns a holiday generator over rickar/cal holiday definitions.
// Both the actual and the observed date of every holiday are yielded, in
// ascending order and without duplicates.
func FromCal(hs ...*cal.Holiday) func(start time.Time) iter.Seq2[time.Time, error] {
	return func(start time.Time) iter.Seq2[time.Time, error] {
		return func(yield func(time.Time, error) bool) {
			if len(hs) == 0 {
				return
			}
			loc := start.Location()
			from := civil.Of(start)
			for year := from.Year; year <= maxCalYear; year++ {
				for _, d := range calDates(year, hs) {
					if d.Before(from) {
						continue
					}
					if !yield(d.In(loc), nil) {
						return
					}
				}
			}
		}
	}
}

// calDates returns the sorted, distinct dates in year on which any of hs
// falls or is observed. Observed dates can spill across a year boundary
// (New Year's Day observed on Dec 31), so neighbouring years are computed
// too.
func calDates(year int, hs []*cal.Holiday) []civil.Date {
	var out []civil.Date
	for y := year - 1; y <= year+1; y++ {
		for _, h := range hs {
			actual, observed := h.Calc(y)
			for _, t := range []time.Time{actual, observed} {
				if t.IsZero() {
					continue
				}
				if d := civil.Of(t); d.Year == year {
					out = append(out, d)
				}
			}
		}
	}
	slices.SortFunc(out, civil.Date.Compare)
	return slices.Compact(out)
}
