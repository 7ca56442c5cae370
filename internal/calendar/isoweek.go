package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidWeek is returned for an ISO week number the year does not have.
var ErrInvalidWeek = errors.New("invalid ISO week")

// WeeksInYear returns 52 or 53, the number of weeks in ISO week-numbering
// year.
//
// The Thursday of week 53 is built from the Monday of week 1 and resolved
// back to its ISO week. A year without a week 53 resolves that day into
// week 1 of the next year, which counts as 52.
func WeeksInYear(year int) int {
	thursday := isoWeekMonday(year, 53).AddDays(Thursday.ISO() - 1)
	if y, w := ISOWeek(thursday); y == year && w == 53 {
		return 53
	}
	return 52
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func ISOWeek(d Date) (year, week int) {
	return d.Time().ISOWeek()
}

// ISOWeekStart returns the Monday of the given ISO week.
func ISOWeekStart(year, week int) (Date, error) {
	if week < 1 || week > WeeksInYear(year) {
		return Date{}, fmt.Errorf("%w: %d-W%02d", ErrInvalidWeek, year, week)
	}
	return isoWeekMonday(year, week), nil
}

// WeekDates returns the seven dates, Monday first, of the given ISO week.
func WeekDates(year, week int) ([]Date, error) {
	monday, err := ISOWeekStart(year, week)
	if err != nil {
		return nil, err
	}
	days := make([]Date, 7)
	for i := range days {
		days[i] = monday.AddDays(i)
	}
	return days, nil
}

// isoWeekMonday counts week days from the Monday of week 1, the week that
// holds January 4. It does not check that week exists in year.
func isoWeekMonday(year, week int) Date {
	jan4 := Date{Year: year, Month: 1, Day: 4}
	monday := jan4.AddDays(1 - jan4.Weekday().ISO())
	return monday.AddDays((week - 1) * 7)
}
