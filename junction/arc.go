package junction

import (
	"math"

	"github.com/jthorniley/junctions/geometry"
)

var arcLaneLabels = []string{"a", "b"}

// Arc is two concentric arcs of the same central angle sharing a focus:
// inner lane "a" at radius r turning clockwise, outer lane "b" at
// radius r+sep turning counter-clockwise so it runs anti-parallel to
// "a". It declares no internal priorities.
type Arc struct {
	laneA, laneB geometry.Arc
	radius       float64
}

// NewArc builds an Arc junction. origin/bearing describe the start of
// the inner lane "a"; arcLength is the shared central angle (radians);
// radius is the inner lane's radius; sep is the lateral gap to the
// outer lane "b".
func NewArc(origin geometry.Point, bearing geometry.Bearing, arcLength, radius, sep float64) Arc {
	if radius <= 0 {
		panic("junction: non-positive arc radius")
	}
	if arcLength < 0 {
		panic("junction: negative arc length")
	}
	if sep < 0 {
		panic("junction: negative lane separation")
	}
	a := geometry.NewArc(origin, bearing, radius, arcLength, geometry.Clockwise)
	aEndBearing := a.EndBearing()
	outwardNormalAtEnd := geometry.Left(aEndBearing)
	bStart := a.End().Add(outwardNormalAtEnd.Scale(sep))
	bStartBearing := geometry.NormalizeBearing(aEndBearing + math.Pi)
	b := geometry.NewArc(bStart, bStartBearing, radius+sep, arcLength, geometry.Counterclockwise)
	return Arc{laneA: a, laneB: b, radius: radius}
}

func (a Arc) Kind() Kind           { return KindArc }
func (a Arc) LaneLabels() []string { return append([]string(nil), arcLaneLabels...) }
func (a Arc) LaneA() geometry.Arc  { return a.laneA }
func (a Arc) LaneB() geometry.Arc  { return a.laneB }
func (a Arc) Radius() float64      { return a.radius }

func (a Arc) Lane(label string) (geometry.Curve, bool) {
	switch label {
	case "a":
		return a.laneA, true
	case "b":
		return a.laneB, true
	default:
		return nil, false
	}
}

func (a Arc) PriorityOverLane(string) []string { return nil }
