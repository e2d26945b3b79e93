package astro

import (
	"errors"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// ErrNoPlanetaryHour means the sun does not rise or set on a day the
// computation needs (polar day or polar night). Callers treat it as
// "no planetary hour available", not as a transient failure.
var ErrNoPlanetaryHour = errors.New("no planetary hour: sun does not rise or set")

// SunTimes holds local sunrise and sunset for one calendar day.
type SunTimes struct {
	Rise time.Time
	Set  time.Time
}

// SolveFunc is the external sunrise/sunset solver contract: given a
// calendar date and coordinates it returns sunrise and sunset as UTC
// decimal hours relative to that date's midnight, or an error when the
// sun never crosses the horizon that day.
type SolveFunc func(year int, month time.Month, day int, lat, lon float64) (riseUTC, setUTC float64, err error)

// SolarSolver is the default solver, backed by go-sunrise. A zero result
// time signals the polar condition.
func SolarSolver(year int, month time.Month, day int, lat, lon float64) (float64, float64, error) {
	rise, set := sunrise.SunriseSunset(lat, lon, year, month, day)
	if rise.IsZero() || set.IsZero() {
		return 0, 0, ErrNoPlanetaryHour
	}
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return rise.Sub(midnight).Hours(), set.Sub(midnight).Hours(), nil
}

// SunTimesFor computes local sunrise/sunset for the calendar day of
// dayMidnight. The UTC offset is added to the solver's decimal hours
// before conversion, so the result may land on an adjacent day.
func (e *Engine) SunTimesFor(dayMidnight time.Time, lat, lon, utcOffsetHours float64) (SunTimes, error) {
	riseUTC, setUTC, err := e.solve(dayMidnight.Year(), dayMidnight.Month(), dayMidnight.Day(), lat, lon)
	if err != nil {
		return SunTimes{}, ErrNoPlanetaryHour
	}
	return SunTimes{
		Rise: timeFromDecimalHours(dayMidnight, riseUTC+utcOffsetHours),
		Set:  timeFromDecimalHours(dayMidnight, setUTC+utcOffsetHours),
	}, nil
}

// timeFromDecimalHours converts a decimal hour value, relative to the
// given local midnight, into a local timestamp rounded to the nearest
// minute. Values below 0 or at/above 24 roll into the adjacent day, and
// a second count of 30 or more carries into the next minute, which may
// carry further into the next hour and day. This rounding determines
// displayed hour boundaries and must stay exact.
func timeFromDecimalHours(dayMidnight time.Time, hours float64) time.Time {
	hour := int(math.Floor(hours))
	frac := hours - float64(hour)

	day := dayMidnight
	if hour < 0 {
		hour += 24
		day = AddDays(day, -1)
	} else if hour >= 24 {
		hour -= 24
		day = AddDays(day, 1)
	}

	minutes := 60.0 * frac
	seconds := 60.0 * math.Mod(minutes, 1.0)

	minute := int(math.Floor(minutes))
	if seconds >= 30.0 {
		minute = int(math.Ceil(minutes))
	}
	if minute == 60 {
		minute = 0
		hour = (hour + 1) % 24
		if hour == 0 {
			day = AddDays(day, 1)
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
