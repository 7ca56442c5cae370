package calendar

import (
	"strconv"
	"time"
)

// Weekday numbers the days of the week 1=Sunday through 7=Saturday.
//
// This is neither time.Weekday (0=Sunday) nor the ISO 8601 numbering
// (1=Monday ... 7=Sunday) used for week dates. Use ISO to convert.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayOf(wd time.Weekday) Weekday {
	return Weekday(wd) + 1
}

// Valid reports whether w is one of the seven defined days.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// ISO returns the ISO 8601 day number, 1=Monday through 7=Sunday.
func (w Weekday) ISO() int {
	if w == Sunday {
		return 7
	}
	return int(w) - 1
}

// Std returns the equivalent time.Weekday.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w-1]
}
