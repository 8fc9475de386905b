package stats

import "time"

// Months lists the calendar in order. Bar and box aggregates both index
// their month columns through it, so neither depends on group-by order.
var Months = [12]time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
	time.July, time.August, time.September, time.October, time.November, time.December,
}

// MonthNames returns the full English month names, January first.
func MonthNames() []string {
	names := make([]string, len(Months))
	for i, m := range Months {
		names[i] = m.String()
	}
	return names
}

// MonthAbbrevs returns three-letter month names, Jan first.
func MonthAbbrevs() []string {
	names := make([]string, len(Months))
	for i, m := range Months {
		names[i] = m.String()[:3]
	}
	return names
}

var monthByName = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for _, mo := range Months {
		m[mo.String()] = mo
		m[mo.String()[:3]] = mo
	}
	return m
}()

// ParseMonth resolves a full or abbreviated English month name.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := monthByName[name]
	return m, ok
}
