package junction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthorniley/junctions/geometry"
	"github.com/jthorniley/junctions/junction"
)

func TestRoadLaneLabelsMatchLaneMap(t *testing.T) {
	r := junction.NewRoad(geometry.Point{}, 0, 20, 3)
	for _, label := range r.LaneLabels() {
		_, ok := r.Lane(label)
		assert.True(t, ok, "label %q missing from lane map", label)
	}
	_, ok := r.Lane("z")
	assert.False(t, ok)
}

func TestRoadLanesAreSameLengthAndAntiparallel(t *testing.T) {
	r := junction.NewRoad(geometry.Point{}, 0.3, 20, 3)
	a := r.LaneA()
	b := r.LaneB()
	assert.InDelta(t, 20, a.Length(), 1e-9)
	assert.InDelta(t, 20, b.Length(), 1e-9)

	_, bearingA := a.Interpolate(0)
	_, bearingB := b.Interpolate(0)
	diff := math.Abs(geometry.NormalizeBearing(bearingB - bearingA))
	assert.InDelta(t, math.Pi, diff, 1e-9)
}

func TestRoadHasNoInternalPriorities(t *testing.T) {
	r := junction.NewRoad(geometry.Point{}, 0, 20, 3)
	assert.Empty(t, r.PriorityOverLane("a"))
	assert.Empty(t, r.PriorityOverLane("b"))
}

func TestArcLaneLengthsFollowRadius(t *testing.T) {
	arcLen := math.Pi / 2
	radius := 8.0
	sep := 2.0
	a := junction.NewArc(geometry.Point{}, 0, arcLen, radius, sep)

	inner := a.LaneA()
	outer := a.LaneB()
	assert.InDelta(t, radius*arcLen, inner.Length(), 1e-9)
	assert.InDelta(t, (radius+sep)*arcLen, outer.Length(), 1e-9)
}

func TestArcLanesShareFocus(t *testing.T) {
	a := junction.NewArc(geometry.Point{X: 1, Y: 1}, 0.5, math.Pi/3, 6, 1.5)
	assert.True(t, a.LaneA().Focus().ApproxEqual(a.LaneB().Focus(), 1e-9))
}

func TestTeeLaneLabelsMatchLaneMap(t *testing.T) {
	tee := junction.NewTee(geometry.Point{}, 0, 20, 3)
	for _, label := range tee.LaneLabels() {
		_, ok := tee.Lane(label)
		assert.True(t, ok, "label %q missing from lane map", label)
	}
}

func TestTeePriorityRelation(t *testing.T) {
	tee := junction.NewTee(geometry.Point{}, 0, 20, 3)

	assert.Empty(t, tee.PriorityOverLane("a"))
	assert.Empty(t, tee.PriorityOverLane("b"))
	assert.Empty(t, tee.PriorityOverLane("c"))
	assert.ElementsMatch(t, []string{"a", "b", "f"}, tee.PriorityOverLane("d"))
	assert.ElementsMatch(t, []string{"a"}, tee.PriorityOverLane("e"))
	assert.ElementsMatch(t, []string{"a", "c"}, tee.PriorityOverLane("f"))
}

func TestTeeOuterTurnLanesAreLongerThanInner(t *testing.T) {
	tee := junction.NewTee(geometry.Point{}, 0, 25, 3)

	c, ok := tee.Lane("c")
	require.True(t, ok)
	d, ok := tee.Lane("d")
	require.True(t, ok)
	e, ok := tee.Lane("e")
	require.True(t, ok)
	f, ok := tee.Lane("f")
	require.True(t, ok)

	assert.InDelta(t, c.Length(), e.Length(), 1e-9)
	assert.InDelta(t, d.Length(), f.Length(), 1e-9)
	assert.Greater(t, d.Length(), c.Length())
}
