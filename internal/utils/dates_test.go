package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "simple_month",
			a:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			want: 30,
		},
		{
			name: "leap_february",
			a:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: 29,
		},
		{
			name: "negative_when_reversed",
			a:    time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
			want: -5,
		},
		{
			name: "same_day_with_different_times",
			a:    time.Date(2024, time.June, 10, 23, 50, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 10, 0, 5, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "time_of_day_ignored",
			a:    time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.June, 11, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysBetween(tc.a, tc.b)
			if got != tc.want {
				t.Fatalf("DaysBetween: want=%d got=%d", tc.want, got)
			}
		})
	}
}
