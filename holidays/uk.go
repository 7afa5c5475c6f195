package holidays

import "time"

// UK holds the bank holidays of England and Wales for 2013-2019.
// Source: https://www.gov.uk/bank-holidays
var UK = NewTable("UK", 2013, 2019,
	on(2013, time.January, 1, "New Year's Day"),
	on(2014, time.January, 1, "New Year's Day"),
	on(2015, time.January, 1, "New Year's Day"),
	on(2016, time.January, 1, "New Year's Day"),
	on(2017, time.January, 1, "New Year's Day"),
	on(2017, time.January, 2, "New Year's Day (substitute day)"),
	on(2018, time.January, 1, "New Year's Day"),
	on(2019, time.January, 1, "New Year's Day"),

	on(2013, time.March, 29, "Good Friday"),
	on(2014, time.April, 18, "Good Friday"),
	on(2015, time.April, 3, "Good Friday"),
	on(2016, time.March, 25, "Good Friday"),
	on(2017, time.April, 14, "Good Friday"),
	on(2018, time.March, 30, "Good Friday"),
	on(2019, time.April, 19, "Good Friday"),

	on(2013, time.April, 1, "Easter Monday"),
	on(2014, time.April, 21, "Easter Monday"),
	on(2015, time.April, 6, "Easter Monday"),
	on(2016, time.March, 28, "Easter Monday"),
	on(2017, time.April, 17, "Easter Monday"),
	on(2018, time.April, 2, "Easter Monday"),
	on(2019, time.April, 22, "Easter Monday"),

	on(2013, time.May, 6, "Early May bank holiday"),
	on(2014, time.May, 5, "Early May bank holiday"),
	on(2015, time.May, 4, "Early May bank holiday"),
	on(2016, time.May, 2, "Early May bank holiday"),
	on(2017, time.May, 1, "Early May bank holiday"),
	on(2018, time.May, 7, "Early May bank holiday"),
	on(2019, time.May, 6, "Early May bank holiday"),

	on(2013, time.May, 27, "Spring bank holiday"),
	on(2014, time.May, 26, "Spring bank holiday"),
	on(2015, time.May, 25, "Spring bank holiday"),
	on(2016, time.May, 30, "Spring bank holiday"),
	on(2017, time.May, 29, "Spring bank holiday"),
	on(2018, time.May, 28, "Spring bank holiday"),
	on(2019, time.May, 27, "Spring bank holiday"),

	on(2013, time.August, 26, "Summer bank holiday"),
	on(2014, time.August, 25, "Summer bank holiday"),
	on(2015, time.August, 31, "Summer bank holiday"),
	on(2016, time.August, 29, "Summer bank holiday"),
	on(2017, time.August, 28, "Summer bank holiday"),
	on(2018, time.August, 27, "Summer bank holiday"),
	on(2019, time.August, 26, "Summer bank holiday"),

	on(2013, time.December, 25, "Christmas Day"),
	on(2014, time.December, 25, "Christmas Day"),
	on(2015, time.December, 25, "Christmas Day"),
	on(2016, time.December, 25, "Christmas Day"),
	on(2016, time.December, 27, "Christmas Day (substitute day)"),
	on(2017, time.December, 25, "Christmas Day"),
	on(2018, time.December, 25, "Christmas Day"),
	on(2019, time.December, 25, "Christmas Day"),

	on(2013, time.December, 26, "Boxing Day"),
	on(2014, time.December, 26, "Boxing Day"),
	on(2015, time.December, 26, "Boxing Day"),
	on(2015, time.December, 28, "Boxing Day (substitute day)"),
	on(2016, time.December, 26, "Boxing Day"),
	on(2017, time.December, 26, "Boxing Day"),
	on(2018, time.December, 26, "Boxing Day"),
	on(2019, time.December, 26, "Boxing Day"),
)
