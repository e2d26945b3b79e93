package astro

// Planet is an immutable entry of the Chaldean-order planet table.
type Planet struct {
	Name   string
	Abbrev string
}

// planets in Chaldean order: index 0..6.
var planets = [7]Planet{
	{"Saturn", "SA"},
	{"Jupiter", "JU"},
	{"Mars", "MA"},
	{"Sun", "SU"},
	{"Venus", "VE"},
	{"Mercury", "ME"},
	{"Moon", "MO"},
}

// weekDayToChaldeanRank maps weekday (0=Sunday .. 6=Saturday) to the
// Chaldean rank of that day's first-hour ruler.
var weekDayToChaldeanRank = [7]int{
	3, // Sunday: Sun
	6, // Monday: Moon
	2, // Tuesday: Mars
	5, // Wednesday: Mercury
	1, // Thursday: Jupiter
	4, // Friday: Venus
	0, // Saturday: Saturn
}

// RulerFor returns the planet ruling the hour that is hoursSinceStart
// hours after the first hour of the given weekday. hoursSinceStart is
// the Chaldean offset: 0..11 for day hours, 12..23 for night hours.
func RulerFor(weekDay, hoursSinceStart int) Planet {
	rank := (weekDayToChaldeanRank[weekDay] + hoursSinceStart) % 7
	return planets[rank]
}
