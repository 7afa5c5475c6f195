package holidays

import "time"

// Queensland holds the Queensland (Australia) public holidays for 2013-2018.
// Australian states legislate their holidays individually for each year,
// so they are listed rather than derived from rules.
// Source: http://www.qld.gov.au/recreation/travel/holidays/public/
var Queensland = NewTable("Queensland", 2013, 2018,
	on(2013, time.January, 1, "New Year's Day"),
	on(2014, time.January, 1, "New Year's Day"),
	on(2015, time.January, 1, "New Year's Day"),
	on(2016, time.January, 1, "New Year's Day"),
	on(2017, time.January, 1, "New Year's Day"),
	on(2017, time.January, 2, "New Year's Day holiday"),
	on(2018, time.January, 1, "New Year's Day"),

	on(2013, time.January, 28, "Australia Day"),
	on(2014, time.January, 27, "Australia Day"),
	on(2015, time.January, 26, "Australia Day"),
	on(2016, time.January, 26, "Australia Day"),
	on(2017, time.January, 26, "Australia Day"),
	on(2018, time.January, 26, "Australia Day"),

	on(2013, time.March, 29, "Good Friday"),
	on(2014, time.April, 18, "Good Friday"),
	on(2015, time.April, 3, "Good Friday"),
	on(2016, time.March, 25, "Good Friday"),
	on(2017, time.April, 14, "Good Friday"),
	on(2018, time.March, 30, "Good Friday"),

	on(2013, time.March, 30, "Easter Saturday"),
	on(2014, time.April, 19, "Easter Saturday"),
	on(2015, time.April, 4, "Easter Saturday"),
	on(2016, time.March, 26, "Easter Saturday"),
	on(2017, time.April, 15, "Easter Saturday"),
	on(2018, time.March, 31, "Easter Saturday"),

	on(2017, time.April, 16, "Easter Sunday"),
	on(2018, time.April, 1, "Easter Sunday"),

	on(2013, time.April, 1, "Easter Monday"),
	on(2014, time.April, 21, "Easter Monday"),
	on(2015, time.April, 6, "Easter Monday"),
	on(2016, time.March, 28, "Easter Monday"),
	on(2017, time.April, 17, "Easter Monday"),
	on(2018, time.April, 2, "Easter Monday"),

	on(2013, time.April, 25, "Anzac Day"),
	on(2014, time.April, 25, "Anzac Day"),
	on(2015, time.April, 25, "Anzac Day"),
	on(2016, time.April, 25, "Anzac Day"),
	on(2017, time.April, 25, "Anzac Day"),
	on(2018, time.April, 25, "Anzac Day"),

	on(2013, time.October, 7, "Labour Day"),
	on(2014, time.October, 6, "Labour Day"),
	on(2015, time.October, 5, "Labour Day"),
	on(2016, time.May, 2, "Labour Day"),
	on(2017, time.May, 1, "Labour Day"),
	on(2018, time.May, 7, "Labour Day"),

	on(2013, time.June, 10, "Queen's Birthday"),
	on(2014, time.June, 9, "Queen's Birthday"),
	on(2015, time.June, 8, "Queen's Birthday"),
	on(2016, time.October, 3, "Queen's Birthday"),
	on(2017, time.October, 2, "Queen's Birthday"),
	on(2018, time.October, 1, "Queen's Birthday"),

	on(2013, time.December, 25, "Christmas Day"),
	on(2014, time.December, 25, "Christmas Day"),
	on(2015, time.December, 25, "Christmas Day"),
	on(2016, time.December, 25, "Christmas Day"),
	on(2016, time.December, 27, "Christmas Day holiday"),
	on(2017, time.December, 25, "Christmas Day"),
	on(2018, time.December, 25, "Christmas Day"),

	on(2013, time.December, 26, "Boxing Day"),
	on(2014, time.December, 26, "Boxing Day"),
	on(2015, time.December, 26, "Boxing Day"),
	on(2015, time.December, 28, "Boxing Day holiday"),
	on(2016, time.December, 26, "Boxing Day"),
	on(2017, time.December, 26, "Boxing Day"),
	on(2018, time.December, 26, "Boxing Day"),
)

// Brisbane adds the Brisbane-only show day (and the 2014 G20 holiday) to
// [Queensland].
var Brisbane = Queensland.Extend("Brisbane",
	on(2013, time.August, 14, "Royal Queensland Show Day"),
	on(2014, time.August, 13, "Royal Queensland Show Day"),
	on(2015, time.August, 12, "Royal Queensland Show Day"),
	on(2016, time.August, 10, "Royal Queensland Show Day"),
	on(2017, time.August, 16, "Royal Queensland Show Day"),
	on(2018, time.August, 15, "Royal Queensland Show Day"),

	on(2014, time.November, 14, "G20 Leaders' Summit"),
)
