package astro

import (
	"testing"
	"time"
)

func TestDayOfWeek_KnownDates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"saturday_2000_01_01", 2000, 1, 1, 6},
		{"sunday_2024_06_23", 2024, 6, 23, 0},
		{"friday_2024_06_21", 2024, 6, 21, 5},
		{"thursday_leap_day_2024", 2024, 2, 29, 4},
		{"monday_1900_01_01", 1900, 1, 1, 1},
		{"wednesday_2025_01_01", 2025, 1, 1, 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DayOfWeek(tc.year, tc.month, tc.day); got != tc.want {
				t.Fatalf("DayOfWeek(%d,%d,%d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
		})
	}
}

func TestDayOfWeek_AgreesWithTimePackage(t *testing.T) {
	t.Parallel()

	// Walk a year of dates and compare against the standard library,
	// which also uses 0=Sunday.
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		want := int(d.Weekday())
		got := DayOfWeek(d.Year(), int(d.Month()), d.Day())
		if got != want {
			t.Fatalf("DayOfWeek mismatch on %s: got %d, want %d", d.Format("2006-01-02"), got, want)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestAddDays_SignPreserving(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("observer", -4*3600)
	base := time.Date(2024, 6, 21, 10, 30, 0, 0, zone)

	if got := AddDays(base, 1); !got.Equal(base.Add(24 * time.Hour)) {
		t.Fatalf("AddDays(+1) = %v", got)
	}
	if got := AddDays(base, -2); !got.Equal(base.Add(-48 * time.Hour)) {
		t.Fatalf("AddDays(-2) = %v", got)
	}
	if got := AddDays(base, 0); !got.Equal(base) {
		t.Fatalf("AddDays(0) = %v", got)
	}
}

func TestMidnightOf_TruncatesInLocalZone(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("observer", 5*3600+1800) // UTC+5:30
	in := time.Date(2024, 6, 21, 23, 59, 59, 0, zone)
	got := MidnightOf(in)

	want := time.Date(2024, 6, 21, 0, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Fatalf("MidnightOf = %v, want %v", got, want)
	}
	if got.Location() != zone {
		t.Fatalf("MidnightOf changed the zone: %v", got.Location())
	}
}
