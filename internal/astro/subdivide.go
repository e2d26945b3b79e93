package astro

import (
	"math"
	"time"
)

// locateHour divides [periodStart, periodEnd) into 12 equal planetary
// hours and returns which one contains target, with its bounds truncated
// to whole seconds. Day and night periods are rarely exact multiples of
// 12, so the index is clamped to [0, 11] to absorb floating-point
// overshoot at the exact period end; the last slice absorbs any
// truncation slack.
func locateHour(periodStart, periodEnd, target time.Time) (index int, start, end time.Time) {
	ps := periodStart.Unix()
	pe := periodEnd.Unix()
	tt := target.Unix()

	duration := float64(pe-ps) / 12.0
	index = int(math.Floor(float64(tt-ps) / duration))

	if index < 0 {
		index = 0
	}
	if index > 11 {
		index = 11
	}

	loc := periodStart.Location()
	start = time.Unix(ps+int64(float64(index)*duration), 0).In(loc)
	end = time.Unix(ps+int64(float64(index+1)*duration), 0).In(loc)
	return index, start, end
}
