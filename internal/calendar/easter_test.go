package calendar

import (
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want Date
	}{
		{1583, Date{1583, time.April, 10}},
		{1818, Date{1818, time.March, 22}},
		{1943, Date{1943, time.April, 25}},
		{2008, Date{2008, time.March, 23}},
		{2019, Date{2019, time.April, 21}},
		{2023, Date{2023, time.April, 9}},
		{2024, Date{2024, time.March, 31}},
		{2025, Date{2025, time.April, 20}},
		{2038, Date{2038, time.April, 25}},
	}

	for _, tt := range tests {
		if got := EasterSunday(tt.year); got != tt.want {
			t.Errorf("EasterSunday(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestEasterSunday_Bounds(t *testing.T) {
	earliest := Date{Month: time.March, Day: 22}
	latest := Date{Month: time.April, Day: 25}

	for year := 1583; year <= 4099; year++ {
		e := EasterSunday(year)
		if e.Weekday() != Sunday {
			t.Fatalf("EasterSunday(%d) = %v is a %v", year, e, e.Weekday())
		}
		earliest.Year, latest.Year = year, year
		if e.Before(earliest) || e.After(latest) {
			t.Fatalf("EasterSunday(%d) = %v outside Mar 22 - Apr 25", year, e)
		}
	}
}

func TestMovableFeasts(t *testing.T) {
	tests := []struct {
		date    Date
		name    string
		weekday Weekday
	}{
		{Date{2025, time.April, 18}, NameGoodFriday, Friday},
		{Date{2025, time.April, 20}, NameEasterSunday, Sunday},
		{Date{2025, time.April, 21}, NameEasterMonday, Monday},
		{Date{2025, time.May, 29}, NameAscensionDay, Thursday},
		{Date{2025, time.June, 8}, NamePentecost, Sunday},
	}
	for _, tt := range tests {
		if got, _ := HolidayName(tt.date); got != tt.name {
			t.Errorf("HolidayName(%v) = %q, want %q", tt.date, got, tt.name)
		}
	}

	weekdays := make(map[string]Weekday, len(tests))
	for _, tt := range tests {
		weekdays[tt.name] = tt.weekday
	}
	for year := 1583; year <= 4099; year++ {
		easter := EasterSunday(year)
		for _, r := range easterRules {
			d, _ := r.on(year, easter)
			if d.Weekday() != weekdays[r.name] {
				t.Fatalf("%s %d = %v is a %v, want %v", r.name, year, d, d.Weekday(), weekdays[r.name])
			}
		}
	}
}

func TestEasterSunday_BeforeGregorianReform(t *testing.T) {
	// Computed on the proleptic calendar; only its shape is checked.
	for _, year := range []int{1, 1000, 1582} {
		e := EasterSunday(year)
		if !e.Valid() || e.Year != year {
			t.Errorf("EasterSunday(%d) = %v", year, e)
		}
	}
}
