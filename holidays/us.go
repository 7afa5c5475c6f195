package holidays

import (
	"time"

	"github.com/rickar/cal/v2/us"
)

// USFederal is the set of United States federal holidays as published by
// the Office of Personnel Management. Fixed-date holidays falling on a
// weekend are also observed on the nearest weekday.
var USFederal = &RuleSet{
	Name:           "US Federal",
	ObserveWeekend: true,
	Rules: []Rule{
		{Name: "New Year's Day", Month: time.January, Day: 1},
		{Name: "Birthday of Martin Luther King, Jr.", Month: time.January, Weekday: time.Monday, Week: 3},
		{Name: "Washington's Birthday", Month: time.February, Weekday: time.Monday, Week: 3},
		{Name: "Memorial Day", Month: time.May, Weekday: time.Monday, Week: -1},
		{Name: "Juneteenth National Independence Day", Month: time.June, Day: 19, FromYear: 2021},
		{Name: "Independence Day", Month: time.July, Day: 4},
		{Name: "Labor Day", Month: time.September, Weekday: time.Monday, Week: 1},
		{Name: "Columbus Day", Month: time.October, Weekday: time.Monday, Week: 2},
		{Name: "Veterans Day", Month: time.November, Day: 11},
		{Name: "Thanksgiving Day", Month: time.November, Weekday: time.Thursday, Week: 4},
		{Name: "Christmas Day", Month: time.December, Day: 25},
	},
}

// USFederalCal is the US federal holiday calendar as defined by
// github.com/rickar/cal/v2/us, yielding both actual and observed dates.
var USFederalCal = FromCal(
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
)
