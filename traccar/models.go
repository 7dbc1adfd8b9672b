package traccar

import (
	"time"

	"github.com/paulmach/orb"
)

// Position is one GPS fix as reported by the traccar api.
type Position struct {
	ID         int64                  `json:"id"`
	DeviceID   int                    `json:"deviceId"`
	Latitude   float64                `json:"latitude"`
	Longitude  float64                `json:"longitude"`
	Altitude   float64                `json:"altitude"`
	Speed      float64                `json:"speed"`
	Course     float64                `json:"course"`
	Accuracy   float64                `json:"accuracy"`
	Valid      bool                   `json:"valid"`
	FixTime    time.Time              `json:"fixTime"`
	DeviceTime time.Time              `json:"deviceTime"`
	ServerTime time.Time              `json:"serverTime"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Point .
func (p Position) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Device .
type Device struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	UniqueID   string    `json:"uniqueId"`
	Status     string    `json:"status"`
	Disabled   bool      `json:"disabled"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Geofence is the raw traccar geofence, area still unparsed.
type Geofence struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Area        string `json:"area"`
}
