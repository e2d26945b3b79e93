package astro

import "time"

// Period is the interval being subdivided: [sunrise, sunset) of one day,
// or [sunset, next sunrise) spanning midnight. BaseDay is the local
// midnight of the day whose ruler governs the period's first hour.
type Period struct {
	Start   time.Time
	End     time.Time
	Night   bool
	BaseDay time.Time
}

// selectPeriod picks which of the three candidate periods contains the
// target: yesterday's night, today's daytime, or tonight's night.
// Boundaries are half-open, so an instant exactly at sunset belongs to
// the night that begins there. Adjacent-day solver failures propagate;
// a night period is unusable without both of its bounding days.
func (e *Engine) selectPeriod(target time.Time, lat, lon, utcOffsetHours float64) (Period, error) {
	day := MidnightOf(target)
	today, err := e.SunTimesFor(day, lat, lon, utcOffsetHours)
	if err != nil {
		return Period{}, err
	}

	switch {
	case target.Before(today.Rise):
		// Still in yesterday's night period.
		prevDay := AddDays(day, -1)
		prev, err := e.SunTimesFor(prevDay, lat, lon, utcOffsetHours)
		if err != nil {
			return Period{}, err
		}
		return Period{Start: prev.Set, End: today.Rise, Night: true, BaseDay: prevDay}, nil

	case !target.Before(today.Set):
		// At or after sunset: tonight's period, ruled by today.
		next, err := e.SunTimesFor(AddDays(day, 1), lat, lon, utcOffsetHours)
		if err != nil {
			return Period{}, err
		}
		return Period{Start: today.Set, End: next.Rise, Night: true, BaseDay: day}, nil

	default:
		return Period{Start: today.Rise, End: today.Set, Night: false, BaseDay: day}, nil
	}
}
