package types

import "time"

const (
	// EventEnter .
	EventEnter = "enter"
	// EventLeave .
	EventLeave = "leave"
)

// Event marks a device crossing a geofence boundary.
type Event struct {
	Type      string    `json:"type"`
	Geofence  string    `json:"geofence"`
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	// DurationSeconds is how long the device stayed inside, set on leave only.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}
