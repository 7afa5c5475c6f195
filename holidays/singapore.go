package holidays

import "time"

// Singapore holds the Singapore public holidays for 2013-2019, including the
// Monday given when a holiday falls on a Sunday.
// Source: https://www.mom.gov.sg/employment-practices/public-holidays
var Singapore = NewTable("Singapore", 2013, 2019,
	on(2013, time.January, 1, "New Year's Day"),
	on(2014, time.January, 1, "New Year's Day"),
	on(2015, time.January, 1, "New Year's Day"),
	on(2016, time.January, 1, "New Year's Day"),
	on(2017, time.January, 1, "New Year's Day"),
	on(2017, time.January, 2, "New Year's Day (observed)"),
	on(2018, time.January, 1, "New Year's Day"),
	on(2019, time.January, 1, "New Year's Day"),

	on(2013, time.February, 10, "Chinese New Year"),
	on(2013, time.February, 11, "Chinese New Year"),
	on(2013, time.February, 12, "Chinese New Year (observed)"),
	on(2014, time.January, 31, "Chinese New Year"),
	on(2014, time.February, 1, "Chinese New Year"),
	on(2015, time.February, 19, "Chinese New Year"),
	on(2015, time.February, 20, "Chinese New Year"),
	on(2016, time.February, 8, "Chinese New Year"),
	on(2016, time.February, 9, "Chinese New Year"),
	on(2017, time.January, 28, "Chinese New Year"),
	on(2017, time.January, 29, "Chinese New Year"),
	on(2017, time.January, 30, "Chinese New Year (observed)"),
	on(2018, time.February, 16, "Chinese New Year"),
	on(2018, time.February, 17, "Chinese New Year"),
	on(2019, time.February, 5, "Chinese New Year"),
	on(2019, time.February, 6, "Chinese New Year"),

	on(2013, time.March, 29, "Good Friday"),
	on(2014, time.April, 18, "Good Friday"),
	on(2015, time.April, 3, "Good Friday"),
	on(2016, time.March, 25, "Good Friday"),
	on(2017, time.April, 14, "Good Friday"),
	on(2018, time.March, 30, "Good Friday"),
	on(2019, time.April, 19, "Good Friday"),

	on(2013, time.May, 1, "Labour Day"),
	on(2014, time.May, 1, "Labour Day"),
	on(2015, time.May, 1, "Labour Day"),
	on(2016, time.May, 1, "Labour Day"),
	on(2016, time.May, 2, "Labour Day (observed)"),
	on(2017, time.May, 1, "Labour Day"),
	on(2018, time.May, 1, "Labour Day"),
	on(2019, time.May, 1, "Labour Day"),

	on(2013, time.May, 24, "Vesak Day"),
	on(2014, time.May, 13, "Vesak Day"),
	on(2015, time.June, 1, "Vesak Day"),
	on(2016, time.May, 21, "Vesak Day"),
	on(2017, time.May, 10, "Vesak Day"),
	on(2018, time.May, 29, "Vesak Day"),
	on(2019, time.May, 19, "Vesak Day"),
	on(2019, time.May, 20, "Vesak Day (observed)"),

	on(2013, time.August, 8, "Hari Raya Puasa"),
	on(2014, time.July, 28, "Hari Raya Puasa"),
	on(2015, time.July, 17, "Hari Raya Puasa"),
	on(2016, time.July, 6, "Hari Raya Puasa"),
	on(2017, time.June, 25, "Hari Raya Puasa"),
	on(2017, time.June, 26, "Hari Raya Puasa (observed)"),
	on(2018, time.June, 15, "Hari Raya Puasa"),
	on(2019, time.June, 5, "Hari Raya Puasa"),

	on(2013, time.August, 9, "National Day"),
	on(2014, time.August, 9, "National Day"),
	on(2015, time.August, 9, "National Day"),
	on(2015, time.August, 10, "National Day (observed)"),
	on(2016, time.August, 9, "National Day"),
	on(2017, time.August, 9, "National Day"),
	on(2018, time.August, 9, "National Day"),
	on(2019, time.August, 9, "National Day"),

	on(2013, time.October, 15, "Hari Raya Haji"),
	on(2014, time.October, 5, "Hari Raya Haji"),
	on(2014, time.October, 6, "Hari Raya Haji (observed)"),
	on(2015, time.September, 24, "Hari Raya Haji"),
	on(2016, time.September, 12, "Hari Raya Haji"),
	on(2017, time.September, 1, "Hari Raya Haji"),
	on(2018, time.August, 22, "Hari Raya Haji"),
	on(2019, time.August, 11, "Hari Raya Haji"),
	on(2019, time.August, 12, "Hari Raya Haji (observed)"),

	on(2013, time.November, 3, "Deepavali"),
	on(2013, time.November, 4, "Deepavali (observed)"),
	on(2014, time.October, 23, "Deepavali"),
	on(2015, time.November, 10, "Deepavali"),
	on(2016, time.October, 29, "Deepavali"),
	on(2017, time.October, 18, "Deepavali"),
	on(2018, time.November, 6, "Deepavali"),
	on(2019, time.October, 27, "Deepavali"),
	on(2019, time.October, 28, "Deepavali (observed)"),

	on(2013, time.December, 25, "Christmas Day"),
	on(2014, time.December, 25, "Christmas Day"),
	on(2015, time.December, 25, "Christmas Day"),
	on(2016, time.December, 25, "Christmas Day"),
	on(2016, time.December, 26, "Christmas Day (observed)"),
	on(2017, time.December, 25, "Christmas Day"),
	on(2018, time.December, 25, "Christmas Day"),
	on(2019, time.December, 25, "Christmas Day"),
)
