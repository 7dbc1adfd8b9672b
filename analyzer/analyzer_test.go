package analyzer

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackhq/fencewatch/fence"
	"github.com/trackhq/fencewatch/traccar"
	"github.com/trackhq/fencewatch/types"
)

var base = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func position(minute int, lat float64, lon float64) traccar.Position {
	return traccar.Position{
		Latitude:  lat,
		Longitude: lon,
		FixTime:   base.Add(time.Duration(minute) * time.Minute),
	}
}

func TestMapPositionsEnterAndLeave(t *testing.T) {
	// one km around the null island
	analyzer := New([]fence.Geofence{
		fence.NewCircle("island", orb.Point{0, 0}, 1000),
	})

	events := analyzer.MapPositions([]traccar.Position{
		position(0, 0.05, 0),  // ~5.5km away
		position(10, 0.001, 0), // inside
		position(20, 0.002, 0), // still inside
		position(30, 0.05, 0),  // out again
	})

	require.Len(t, events, 2)

	assert.Equal(t, types.EventEnter, events[0].Type)
	assert.Equal(t, "island", events[0].Geofence)
	assert.Equal(t, base.Add(10*time.Minute), events[0].Time)
	assert.Zero(t, events[0].DurationSeconds)

	assert.Equal(t, types.EventLeave, events[1].Type)
	assert.Equal(t, "island", events[1].Geofence)
	assert.Equal(t, base.Add(30*time.Minute), events[1].Time)
	assert.Equal(t, (20 * time.Minute).Seconds(), events[1].DurationSeconds)
}

func TestMapPositionsSortsByFixTime(t *testing.T) {
	analyzer := New([]fence.Geofence{
		fence.NewCircle("island", orb.Point{0, 0}, 1000),
	})

	// same trace as above, shuffled
	events := analyzer.MapPositions([]traccar.Position{
		position(30, 0.05, 0),
		position(0, 0.05, 0),
		position(20, 0.002, 0),
		position(10, 0.001, 0),
	})

	require.Len(t, events, 2)
	assert.Equal(t, types.EventEnter, events[0].Type)
	assert.Equal(t, types.EventLeave, events[1].Type)
	assert.True(t, events[0].Time.Before(events[1].Time))
}

func TestMapPositionsOverlappingFences(t *testing.T) {
	analyzer := New([]fence.Geofence{
		fence.NewCircle("inner", orb.Point{0, 0}, 500),
		fence.NewCircle("outer", orb.Point{0, 0}, 5000),
	})

	events := analyzer.MapPositions([]traccar.Position{
		position(0, 0.5, 0),   // far away
		position(10, 0.001, 0), // inside both
	})

	require.Len(t, events, 2)
	assert.Equal(t, "inner", events[0].Geofence)
	assert.Equal(t, "outer", events[1].Geofence)
	for _, event := range events {
		assert.Equal(t, types.EventEnter, event.Type)
	}
}

func TestMapPositionsStillInsideAtEndOfWindow(t *testing.T) {
	analyzer := New([]fence.Geofence{
		fence.NewCircle("island", orb.Point{0, 0}, 1000),
	})

	events := analyzer.MapPositions([]traccar.Position{
		position(0, 0.001, 0),
		position(10, 0.002, 0),
	})

	// no synthetic leave for a stay running past the last position
	require.Len(t, events, 1)
	assert.Equal(t, types.EventEnter, events[0].Type)
}

func TestMapPositionsEmpty(t *testing.T) {
	analyzer := New([]fence.Geofence{
		fence.NewCircle("island", orb.Point{0, 0}, 1000),
	})

	events := analyzer.MapPositions(nil)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestFromTraccarSkipsUnsupportedAreas(t *testing.T) {
	analyzer := FromTraccar([]traccar.Geofence{
		{Name: "home", Area: "CIRCLE (48.8584 2.2945, 100)"},
		{Name: "route", Area: "LINESTRING (48 2, 49 3)"},
		{Name: "yard", Area: "POLYGON ((48 2, 48 3, 49 3, 49 2, 48 2))"},
	})

	fences := analyzer.Fences()
	require.Len(t, fences, 2)
	assert.Equal(t, "home", fences[0].Name())
	assert.Equal(t, "yard", fences[1].Name())
}
