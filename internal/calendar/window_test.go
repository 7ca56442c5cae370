package calendar

import (
	"testing"
	"time"
)

func TestFirstWeekday(t *testing.T) {
	tests := []struct {
		name   string
		target Weekday
		start  Date
		end    Date
		want   Date
		wantOK bool
	}{
		{
			name:   "midsummer 2025",
			target: Saturday,
			start:  Date{2025, time.June, 20},
			end:    Date{2025, time.June, 26},
			want:   Date{2025, time.June, 21},
			wantOK: true,
		},
		{
			name:   "all saints crosses month",
			target: Saturday,
			start:  Date{2025, time.October, 31},
			end:    Date{2025, time.November, 6},
			want:   Date{2025, time.November, 1},
			wantOK: true,
		},
		{
			name:   "all saints on october 31",
			target: Saturday,
			start:  Date{2026, time.October, 31},
			end:    Date{2026, time.November, 6},
			want:   Date{2026, time.October, 31},
			wantOK: true,
		},
		{
			name:   "crosses year",
			target: Thursday,
			start:  Date{2025, time.December, 30},
			end:    Date{2026, time.January, 5},
			want:   Date{2026, time.January, 1},
			wantOK: true,
		},
		{
			name:   "single day match",
			target: Sunday,
			start:  Date{2025, time.April, 20},
			end:    Date{2025, time.April, 20},
			want:   Date{2025, time.April, 20},
			wantOK: true,
		},
		{
			name:   "short window without target",
			target: Sunday,
			start:  Date{2025, time.April, 21},
			end:    Date{2025, time.April, 23},
		},
		{
			name:   "start after end",
			target: Saturday,
			start:  Date{2025, time.June, 26},
			end:    Date{2025, time.June, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstWeekday(tt.target, tt.start, tt.end)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FirstWeekday(%v, %v, %v) = %v, %v; want %v, %v",
					tt.target, tt.start, tt.end, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWindowIn(t *testing.T) {
	start, end := window{time.December, 28, time.January, 3}.in(2025)
	if start != (Date{2025, time.December, 28}) || end != (Date{2026, time.January, 3}) {
		t.Errorf("in(2025) = %v, %v", start, end)
	}
}
