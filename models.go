package planetaryhours

import "time"

// ObserverLocation is the stored coordinate pair used for every computation.
// Both fields zero encodes "no location set".
type ObserverLocation struct {
	ID        int       `json:"id"`
	Latitude  float64   `json:"latitude"`  // decimal degrees, [-90, 90]
	Longitude float64   `json:"longitude"` // decimal degrees, [-180, 180]
	Label     string    `json:"label,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSet reports whether a usable location has been stored.
func (l ObserverLocation) IsSet() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// PlanetaryHour is one computed hour, the snapshot display consumers render.
type PlanetaryHour struct {
	Ruler          string    `json:"ruler"`           // full planet name
	RulerAbbrev    string    `json:"ruler_abbrev"`    // two-letter abbreviation
	Index          int       `json:"index"`           // 0..11 within its period
	ChaldeanOffset int       `json:"chaldean_offset"` // 0..23; 12..23 at night
	Night          bool      `json:"is_night"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	PeriodStart    time.Time `json:"period_start"`
	PeriodEnd      time.Time `json:"period_end"`
	HourOffset     int       `json:"hour_offset,omitempty"` // whole hours added to "now"
	ComputedAt     time.Time `json:"computed_at"`
	RecomputeAfter time.Time `json:"recompute_after"` // hour end + margin
}

// ComputationEvent is a single log entry.
type ComputationEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // HOUR_ROLLOVER | LOCATION_SET | LOCATION_CLEARED | COMPUTE_FAILED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
