package api

import (
	"strings"
	"time"

	"github.com/juju/errors"

	"github.com/trackhq/fencewatch/types"
)

// dayLayouts covers the formats clients are known to send for the day
// path segment, from plain dates up to full timestamps.
var dayLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// dayWindow parses day, anchors it to midnight in location and returns the
// [midnight, midnight+1d) window. AddDate keeps the window aligned with the
// calendar across DST switches.
func dayWindow(day string, location *time.Location) (time.Time, time.Time, error) {
	value := strings.TrimSpace(day)
	for _, layout := range dayLayouts {
		parsed, err := time.ParseInLocation(layout, value, location)
		if err != nil {
			continue
		}
		from := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, location)
		return from, from.AddDate(0, 0, 1), nil
	}
	return time.Time{}, time.Time{}, errors.Annotatef(types.ErrBadDay, "day %q", day)
}
