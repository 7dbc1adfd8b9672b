package fence

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/trackhq/fencewatch/types"
)

const (
	circlePrefix  = "CIRCLE"
	polygonPrefix = "POLYGON"
)

// Parse turns a traccar area string into a Geofence. Traccar writes
// coordinates lat first; orb points are lon first, so axes are swapped here.
func Parse(name string, area string) (Geofence, error) {
	trimmed := strings.TrimSpace(area)
	switch {
	case strings.HasPrefix(trimmed, circlePrefix):
		return parseCircle(name, trimmed)
	case strings.HasPrefix(trimmed, polygonPrefix):
		return parsePolygon(name, trimmed)
	}
	return nil, errors.Annotatef(types.ErrUnsupportedArea, "area %q", area)
}

// parseCircle handles traccar's non-WKT extension "CIRCLE (lat lon, radius)".
func parseCircle(name string, area string) (Geofence, error) {
	open := strings.Index(area, "(")
	end := strings.LastIndex(area, ")")
	if open < 0 || end < open {
		return nil, errors.Annotatef(types.ErrUnsupportedArea, "malformed circle %q", area)
	}
	parts := strings.SplitN(area[open+1:end], ",", 2)
	if len(parts) != 2 {
		return nil, errors.Annotatef(types.ErrUnsupportedArea, "malformed circle %q", area)
	}
	centre, err := parsePoint(parts[0])
	if err != nil {
		return nil, errors.Annotatef(err, "circle %q", area)
	}
	radius, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, errors.Annotatef(err, "circle radius in %q", area)
	}
	return NewCircle(name, centre, radius), nil
}

func parsePolygon(name string, area string) (Geofence, error) {
	parsed, err := wkt.UnmarshalPolygon(area)
	if err != nil {
		return nil, errors.Annotatef(types.ErrUnsupportedArea, "malformed polygon %q: %v", area, err)
	}
	swapped := make(orb.Polygon, 0, len(parsed))
	for _, ring := range parsed {
		swappedRing := make(orb.Ring, 0, len(ring))
		for _, point := range ring {
			swappedRing = append(swappedRing, orb.Point{point[1], point[0]})
		}
		swapped = append(swapped, swappedRing)
	}
	return NewPolygon(name, swapped), nil
}

// parsePoint reads a "lat lon" pair into an orb point.
func parsePoint(value string) (orb.Point, error) {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) != 2 {
		return orb.Point{}, errors.Annotatef(types.ErrUnsupportedArea, "coordinate pair %q", value)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return orb.Point{}, errors.Trace(err)
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return orb.Point{}, errors.Trace(err)
	}
	return orb.Point{lon, lat}, nil
}
