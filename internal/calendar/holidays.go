package calendar

import (
	"sort"
	"time"
)

// Swedish holiday names as returned by HolidayName.
const (
	NameNewYearsDay  = "Nyårsdagen"
	NameEpiphany     = "Trettondedag jul"
	NameMayDay       = "Första maj"
	NameNationalDay  = "Sveriges nationaldag"
	NameChristmasDay = "Juldagen"
	NameBoxingDay    = "Annandag jul"
	NameGoodFriday   = "Långfredagen"
	NameEasterSunday = "Påskdagen"
	NameEasterMonday = "Annandag påsk"
	NameAscensionDay = "Kristi himmelsfärdsdag"
	NamePentecost    = "Pingstdagen"
	NameMidsummerDay = "Midsommardagen"
	NameAllSaintsDay = "Alla helgons dag"
)

const ruleCount = 13

// Holiday is one dated occurrence of a rule.
type Holiday struct {
	Date Date
	Name string
}

// rule is one of fixedDate, easterOffset or weekdayWindow.
type rule interface {
	// on returns the date the rule falls on in year, given that year's
	// Easter Sunday.
	on(year int, easter Date) (Date, bool)
	holidayName() string
}

type fixedDate struct {
	month time.Month
	day   int
	name  string
}

func (r fixedDate) on(year int, _ Date) (Date, bool) {
	return Date{Year: year, Month: r.month, Day: r.day}, true
}

func (r fixedDate) holidayName() string { return r.name }

type easterOffset struct {
	days int
	name string
}

func (r easterOffset) on(_ int, easter Date) (Date, bool) {
	return easter.AddDays(r.days), true
}

func (r easterOffset) holidayName() string { return r.name }

type weekdayWindow struct {
	weekday Weekday
	window
	name string
}

func (r weekdayWindow) on(year int, _ Date) (Date, bool) {
	start, end := r.in(year)
	return FirstWeekday(r.weekday, start, end)
}

func (r weekdayWindow) holidayName() string { return r.name }

// Rules in priority order. The first match wins.
var (
	fixedRules = [...]fixedDate{
		{time.January, 1, NameNewYearsDay},
		{time.January, 6, NameEpiphany},
		{time.May, 1, NameMayDay},
		{time.June, 6, NameNationalDay},
		{time.December, 25, NameChristmasDay},
		{time.December, 26, NameBoxingDay},
	}

	easterRules = [...]easterOffset{
		{-2, NameGoodFriday},
		{0, NameEasterSunday},
		{1, NameEasterMonday},
		{39, NameAscensionDay},
		{49, NamePentecost},
	}

	windowRules = [...]weekdayWindow{
		{Saturday, window{time.June, 20, time.June, 26}, NameMidsummerDay},
		{Saturday, window{time.October, 31, time.November, 6}, NameAllSaintsDay},
	}
)

func allRules() []rule {
	rules := make([]rule, 0, ruleCount)
	for _, r := range fixedRules {
		rules = append(rules, r)
	}
	for _, r := range easterRules {
		rules = append(rules, r)
	}
	for _, r := range windowRules {
		rules = append(rules, r)
	}
	return rules
}

// HolidayName returns the name of the Swedish holiday falling on d, if any.
//
// Fixed dates are checked first, then the Easter-relative feasts, then
// Midsummer Day and All Saints' Day.
func HolidayName(d Date) (string, bool) {
	for _, r := range fixedRules {
		if d.Month == r.month && d.Day == r.day {
			return r.name, true
		}
	}

	easter := EasterSunday(d.Year)
	for _, r := range easterRules {
		if on, _ := r.on(d.Year, easter); on == d {
			return r.name, true
		}
	}

	for _, r := range windowRules {
		if on, ok := r.on(d.Year, easter); ok && on == d {
			return r.name, true
		}
	}
	return "", false
}

// IsHoliday reports whether d is one of the Swedish holidays.
func IsHoliday(d Date) bool {
	_, ok := HolidayName(d)
	return ok
}

// Holidays returns the holidays of year ordered by date. When two rules land
// on the same day (Ascension on May 1 in 2008) only the name HolidayName
// reports for that day is listed.
func Holidays(year int) []Holiday {
	easter := EasterSunday(year)
	out := make([]Holiday, 0, ruleCount)
	seen := make(map[Date]bool, ruleCount)
	for _, r := range allRules() {
		on, ok := r.on(year, easter)
		if !ok || seen[on] {
			continue
		}
		seen[on] = true
		out = append(out, Holiday{Date: on, Name: r.holidayName()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
