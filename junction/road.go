package junction

import (
	"math"

	"github.com/jthorniley/junctions/geometry"
)

var roadLaneLabels = []string{"a", "b"}

// Road is two straight, antiparallel lanes of common length separated
// by a fixed lateral offset. It declares no internal priorities.
type Road struct {
	laneA, laneB geometry.Straight
}

// NewRoad builds a Road starting at origin, heading along bearing, of
// road_length with the two lanes separated by sep. Lane "a" runs
// forward from origin; lane "b" runs the opposite direction, offset to
// the right of "a" by sep.
func NewRoad(origin geometry.Point, bearing geometry.Bearing, length, sep float64) Road {
	if length <= 0 {
		panic("junction: non-positive road length")
	}
	if sep < 0 {
		panic("junction: negative lane separation")
	}
	a := geometry.NewStraight(origin, bearing, length)
	bStart := origin.Add(geometry.Right(bearing).Scale(sep)).Add(geometry.Unit(bearing).Scale(length))
	b := geometry.NewStraight(bStart, bearing+math.Pi, length)
	return Road{laneA: a, laneB: b}
}

func (r Road) Kind() Kind               { return KindRoad }
func (r Road) LaneLabels() []string     { return append([]string(nil), roadLaneLabels...) }
func (r Road) LaneA() geometry.Straight { return r.laneA }
func (r Road) LaneB() geometry.Straight { return r.laneB }

func (r Road) Lane(label string) (geometry.Curve, bool) {
	switch label {
	case "a":
		return r.laneA, true
	case "b":
		return r.laneB, true
	default:
		return nil, false
	}
}

func (r Road) PriorityOverLane(string) []string { return nil }
