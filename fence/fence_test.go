package fence

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCircleContains(t *testing.T) {
	// 100m around the Eiffel tower
	circle := NewCircle("tower", orb.Point{2.2945, 48.8584}, 100)

	assert.Equal(t, "tower", circle.Name())
	assert.Equal(t, KindCircle, circle.Kind())

	assert.True(t, circle.Contains(orb.Point{2.2945, 48.8584}))
	// roughly 55m north
	assert.True(t, circle.Contains(orb.Point{2.2945, 48.8589}))
	// roughly 220m north
	assert.False(t, circle.Contains(orb.Point{2.2945, 48.8604}))
}

func TestPolygonContains(t *testing.T) {
	square := NewPolygon("square", orb.Polygon{orb.Ring{
		{2, 48},
		{3, 48},
		{3, 49},
		{2, 49},
		{2, 48},
	}})

	assert.Equal(t, "square", square.Name())
	assert.Equal(t, KindPolygon, square.Kind())

	assert.True(t, square.Contains(orb.Point{2.5, 48.5}))
	assert.False(t, square.Contains(orb.Point{3.5, 48.5}))
	assert.False(t, square.Contains(orb.Point{2.5, 49.5}))
}
