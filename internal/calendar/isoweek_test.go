package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestWeeksInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2004, 53},
		{2009, 53},
		{2015, 53},
		{2020, 53},
		{2021, 52},
		{2024, 52},
		{2025, 52},
		{2026, 53},
	}

	for _, tt := range tests {
		if got := WeeksInYear(tt.year); got != tt.want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

// A year is long when January 1 is a Thursday, or a Wednesday in a leap year.
func TestWeeksInYear_JanuaryFirstRule(t *testing.T) {
	for year := 1583; year <= 4099; year++ {
		jan1 := Date{year, time.January, 1}.Weekday()
		want := 52
		if jan1 == Thursday || (IsLeap(year) && jan1 == Wednesday) {
			want = 53
		}
		if got := WeeksInYear(year); got != want {
			t.Fatalf("WeeksInYear(%d) = %d, want %d (Jan 1 is %v)", year, got, want, jan1)
		}
	}
}

func TestISOWeekStart(t *testing.T) {
	tests := []struct {
		year, week int
		want       Date
	}{
		{2025, 1, Date{2024, time.December, 30}},
		{2025, 25, Date{2025, time.June, 16}},
		{2020, 53, Date{2020, time.December, 28}},
		{2021, 1, Date{2021, time.January, 4}},
	}

	for _, tt := range tests {
		got, err := ISOWeekStart(tt.year, tt.week)
		if err != nil {
			t.Fatalf("ISOWeekStart(%d, %d) error = %v", tt.year, tt.week, err)
		}
		if got != tt.want {
			t.Errorf("ISOWeekStart(%d, %d) = %v, want %v", tt.year, tt.week, got, tt.want)
		}
		if y, w := ISOWeek(got); y != tt.year || w != tt.week {
			t.Errorf("ISOWeek(%v) = %d-W%02d, want %d-W%02d", got, y, w, tt.year, tt.week)
		}
	}
}

func TestISOWeekStart_Invalid(t *testing.T) {
	for _, week := range []int{0, -1, 53, 54} {
		if _, err := ISOWeekStart(2021, week); !errors.Is(err, ErrInvalidWeek) {
			t.Errorf("ISOWeekStart(2021, %d) error = %v, want ErrInvalidWeek", week, err)
		}
	}
}

func TestWeekDates(t *testing.T) {
	days, err := WeekDates(2025, 25)
	if err != nil {
		t.Fatalf("WeekDates() error = %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("WeekDates() returned %d days", len(days))
	}
	if days[0].Weekday() != Monday || days[6].Weekday() != Sunday {
		t.Errorf("WeekDates() runs %v..%v, want Monday..Sunday", days[0].Weekday(), days[6].Weekday())
	}
	if days[5] != (Date{2025, time.June, 21}) {
		t.Errorf("WeekDates(2025, 25)[5] = %v, want midsummer day", days[5])
	}
}
