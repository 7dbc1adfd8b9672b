package fence

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const (
	// KindCircle .
	KindCircle = "circle"
	// KindPolygon .
	KindPolygon = "polygon"
)

// Geofence is a named area positions can be tested against.
// Points are orb convention, lon first.
type Geofence interface {
	Name() string
	Kind() string
	Contains(orb.Point) bool
}

type circle struct {
	name   string
	centre orb.Point
	// radius in metres
	radius float64
}

// NewCircle .
func NewCircle(name string, centre orb.Point, radius float64) Geofence {
	return circle{
		name:   name,
		centre: centre,
		radius: radius,
	}
}

func (c circle) Name() string {
	return c.name
}

func (c circle) Kind() string {
	return KindCircle
}

func (c circle) Contains(point orb.Point) bool {
	return geo.DistanceHaversine(c.centre, point) <= c.radius
}

func (c circle) String() string {
	return fmt.Sprintf("<circle %s (%v, %v)>", c.name, c.centre, c.radius)
}

type polygon struct {
	name string
	area orb.Polygon
}

// NewPolygon .
func NewPolygon(name string, area orb.Polygon) Geofence {
	return polygon{
		name: name,
		area: area,
	}
}

func (p polygon) Name() string {
	return p.name
}

func (p polygon) Kind() string {
	return KindPolygon
}

func (p polygon) Contains(point orb.Point) bool {
	return planar.PolygonContains(p.area, point)
}

func (p polygon) String() string {
	return fmt.Sprintf("<polygon %s %v>", p.name, p.area)
}
