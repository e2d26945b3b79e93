package astro

import "testing"

func TestRulerFor_FirstHourOfEachDay(t *testing.T) {
	t.Parallel()

	// The classical day rulers: each day's first hour is ruled by the day's
	// namesake planet.
	wantByDay := []string{
		"Sun",     // Sunday
		"Moon",    // Monday
		"Mars",    // Tuesday
		"Mercury", // Wednesday
		"Jupiter", // Thursday
		"Venus",   // Friday
		"Saturn",  // Saturday
	}
	for day, want := range wantByDay {
		if got := RulerFor(day, 0); got.Name != want {
			t.Errorf("day %d first-hour ruler: got %s, want %s", day, got.Name, want)
		}
	}
}

func TestWeekDayRankTable_Values(t *testing.T) {
	t.Parallel()

	want := [7]int{3, 6, 2, 5, 1, 4, 0}
	if weekDayToChaldeanRank != want {
		t.Fatalf("rank table = %v, want %v", weekDayToChaldeanRank, want)
	}
}

func TestWeekDayRankTable_ConsecutiveDayShift(t *testing.T) {
	t.Parallel()

	// 24 hours mod 7 planets = 3: each day's first-hour ruler sits three
	// Chaldean ranks after the previous day's.
	for d := 0; d < 7; d++ {
		cur := weekDayToChaldeanRank[d]
		next := weekDayToChaldeanRank[(d+1)%7]
		if (cur+3)%7 != next {
			t.Errorf("day %d→%d: rank %d then %d, want shift of 3 mod 7", d, (d+1)%7, cur, next)
		}
	}
}

func TestRulerFor_CyclesThroughChaldeanOrder(t *testing.T) {
	t.Parallel()

	// Saturday starts at Saturn (rank 0), so its hours walk the Chaldean
	// order from the top.
	order := []string{"Saturn", "Jupiter", "Mars", "Sun", "Venus", "Mercury", "Moon"}
	for h := 0; h < 24; h++ {
		want := order[h%7]
		if got := RulerFor(6, h); got.Name != want {
			t.Fatalf("Saturday hour %d: got %s, want %s", h, got.Name, want)
		}
	}
}

func TestPlanetTable_Abbreviations(t *testing.T) {
	t.Parallel()

	wantAbbrev := map[string]string{
		"Saturn": "SA", "Jupiter": "JU", "Mars": "MA", "Sun": "SU",
		"Venus": "VE", "Mercury": "ME", "Moon": "MO",
	}
	for _, p := range planets {
		if p.Abbrev != wantAbbrev[p.Name] {
			t.Errorf("%s abbreviation: got %q, want %q", p.Name, p.Abbrev, wantAbbrev[p.Name])
		}
	}
}
