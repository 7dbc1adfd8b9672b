package analyzer

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/trackhq/fencewatch/fence"
	"github.com/trackhq/fencewatch/metrics"
	"github.com/trackhq/fencewatch/traccar"
	"github.com/trackhq/fencewatch/types"
)

// Analyzer maps raw positions onto geofence enter/leave events.
type Analyzer struct {
	fences []fence.Geofence
}

// New .
func New(fences []fence.Geofence) Analyzer {
	return Analyzer{fences: fences}
}

// FromTraccar parses raw traccar geofences into an Analyzer. Areas the
// parser doesn't understand are skipped with a warning.
func FromTraccar(geofences []traccar.Geofence) Analyzer {
	fences := make([]fence.Geofence, 0, len(geofences))
	for _, geofence := range geofences {
		parsed, err := fence.Parse(geofence.Name, geofence.Area)
		if err != nil {
			log.WithError(err).WithField("geofence", geofence.Name).Warn("Skip geofence")
			continue
		}
		fences = append(fences, parsed)
	}
	return New(fences)
}

// Fences .
func (a Analyzer) Fences() []fence.Geofence {
	return a.fences
}

type fenceState struct {
	inside bool
	since  time.Time
}

// MapPositions walks the positions in fix time order and keeps an
// inside/outside state per geofence. Crossing into a fence emits an enter
// event, crossing out emits a leave event carrying the stay duration.
// Fences still occupied after the last position get no synthetic leave.
// The result is chronological and never nil.
func (a Analyzer) MapPositions(positions []traccar.Position) []types.Event {
	sorted := make([]traccar.Position, len(positions))
	copy(sorted, positions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FixTime.Before(sorted[j].FixTime)
	})

	states := make([]fenceState, len(a.fences))
	events := []types.Event{}

	for _, position := range sorted {
		point := position.Point()
		for i, f := range a.fences {
			contains := f.Contains(point)
			switch {
			case contains && !states[i].inside:
				states[i] = fenceState{inside: true, since: position.FixTime}
				events = append(events, types.Event{
					Type:      types.EventEnter,
					Geofence:  f.Name(),
					Time:      position.FixTime,
					Latitude:  position.Latitude,
					Longitude: position.Longitude,
				})
				metrics.Events.WithLabelValues(types.EventEnter).Inc()
			case !contains && states[i].inside:
				events = append(events, types.Event{
					Type:            types.EventLeave,
					Geofence:        f.Name(),
					Time:            position.FixTime,
					Latitude:        position.Latitude,
					Longitude:       position.Longitude,
					DurationSeconds: position.FixTime.Sub(states[i].since).Seconds(),
				})
				states[i].inside = false
				metrics.Events.WithLabelValues(types.EventLeave).Inc()
			}
		}
	}
	return events
}
