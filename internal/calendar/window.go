package calendar

import "time"

// FirstWeekday finds the first date in [start, end] that falls on target.
// The window may cross month and year boundaries. It reports false when the
// window holds no such day, including when start is after end.
func FirstWeekday(target Weekday, start, end Date) (Date, bool) {
	for current := start; !current.After(end); current = current.AddDays(1) {
		if current.Weekday() == target {
			return current, true
		}
	}
	return Date{}, false
}

// window is a month/day range anchored to a year when evaluated.
type window struct {
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

// in returns the concrete bounds of w in year. An end month before the start
// month rolls into the following year.
func (w window) in(year int) (start, end Date) {
	start = NewDate(year, w.startMonth, w.startDay)
	endYear := year
	if w.endMonth < w.startMonth {
		endYear++
	}
	end = NewDate(endYear, w.endMonth, w.endDay)
	return start, end
}
