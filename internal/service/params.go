package service

import "time"

type LocationParams struct {
	Latitude  float64 // decimal degrees, [-90, 90]
	Longitude float64 // decimal degrees, [-180, 180]
	Label     string  // optional display name
}

// Preset is a named coordinate pair selectable without typing degrees.
type Preset struct {
	Name      string  `mapstructure:"name"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "HOUR_ROLLOVER", "LOCATION_SET", "LOCATION_CLEARED", "COMPUTE_FAILED"
}
