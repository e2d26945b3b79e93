// Package astro derives Chaldean planetary hours from sunrise and sunset.
//
// A planetary "day" runs from sunrise to the next sunrise and splits into
// twelve unequal daylight hours and twelve unequal night hours, each ruled
// by a planet rotating through the Chaldean order. All computation happens
// in a fixed-offset local zone supplied by the caller; the package holds no
// state between calls.
package astro

import (
	"math"
	"time"
)

// recomputeMargin keeps the boundary minute from being recomputed
// prematurely under integer-second rounding.
const recomputeMargin = 60 * time.Second

// Hour is one computed planetary hour within its period.
type Hour struct {
	Index          int // 0..11 within the period
	ChaldeanOffset int // Index, plus 12 during night periods
	Ruler          Planet
	Start          time.Time
	End            time.Time
	Night          bool
	Period         Period
}

// Engine composes the sun-times provider, period selection, subdivision
// and ruler lookup. It is stateless and safe for concurrent use.
type Engine struct {
	solve SolveFunc
}

// NewEngine returns an engine using the given solver; nil selects the
// default solar solver.
func NewEngine(solve SolveFunc) *Engine {
	if solve == nil {
		solve = SolarSolver
	}
	return &Engine{solve: solve}
}

// Compute returns the planetary hour containing target at the given
// coordinates. The target is first moved into a fixed zone built from
// utcOffsetHours, so midnight truncation happens on the observer's
// calendar day. Returns ErrNoPlanetaryHour when the solver fails for any
// required day.
func (e *Engine) Compute(target time.Time, lat, lon, utcOffsetHours float64) (Hour, error) {
	target = target.In(ObserverZone(utcOffsetHours))

	period, err := e.selectPeriod(target, lat, lon, utcOffsetHours)
	if err != nil {
		return Hour{}, err
	}

	index, start, end := locateHour(period.Start, period.End, target)

	// Night hours are hours 13..24 of the planetary day.
	offset := index
	if period.Night {
		offset += 12
	}

	weekDay := DayOfWeek(period.BaseDay.Year(), int(period.BaseDay.Month()), period.BaseDay.Day())

	return Hour{
		Index:          index,
		ChaldeanOffset: offset,
		Ruler:          RulerFor(weekDay, offset),
		Start:          start,
		End:            end,
		Night:          period.Night,
		Period:         period,
	}, nil
}

// NextRecomputeAfter returns the instant after which a cached hour is
// stale and must be recomputed.
func NextRecomputeAfter(hourEnd time.Time) time.Time {
	return hourEnd.Add(recomputeMargin)
}

// ObserverZone builds the fixed-offset location for a UTC offset given
// in decimal hours (fractional offsets such as +5.5 are valid).
func ObserverZone(utcOffsetHours float64) *time.Location {
	return time.FixedZone("observer", int(math.Round(utcOffsetHours*3600)))
}
