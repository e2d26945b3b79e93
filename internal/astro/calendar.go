package astro

import "time"

const secondsPerDay = 86400

// DayOfWeek computes the weekday for a calendar date using Zeller's
// congruence, returning 0=Sunday .. 6=Saturday.
func DayOfWeek(year, month, day int) int {
	// January and February count as months 13 and 14 of the previous year.
	if month < 3 {
		month += 12
		year--
	}
	return (day + 2*month + 3*(month+1)/5 + year + year/4 - year/100 + year/400 + 1) % 7
}

// AddDays shifts an instant by n whole days of epoch seconds. Calendar
// anomalies don't apply here: the observer zone is a fixed offset.
func AddDays(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * secondsPerDay * time.Second)
}

// MidnightOf truncates an instant to local midnight of its calendar day.
func MidnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
