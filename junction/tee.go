package junction

import (
	"math"

	"github.com/samber/lo"

	"github.com/jthorniley/junctions/geometry"
)

var teeLaneLabels = []string{"a", "b", "c", "d", "e", "f"}

var teePriority = map[string][]string{
	"a": nil,
	"b": nil,
	"c": nil,
	"d": {"a", "b", "f"},
	"e": {"a"},
	"f": {"a", "c"},
}

// Tee is a T-junction: one Road (lanes a, b) and two right-angle Arc
// branches flattened into four more lanes (c, d, e, f). The main road
// has unconditional right of way over every turning movement; see
// PriorityOverLane.
type Tee struct {
	mainRoad Road
	branchA  Arc
	branchB  Arc
}

// NewTee builds a Tee starting at origin with the main road heading
// along bearing for main_length, lane separation sep. branch_a turns
// off at origin; branch_b turns off from branch_a's "b" lane start, on
// the opposite side of the road.
func NewTee(origin geometry.Point, bearing geometry.Bearing, mainLength, sep float64) Tee {
	mainRoad := NewRoad(origin, bearing, mainLength, sep)
	branchRadius := (mainLength - sep) / 2
	branchA := NewArc(origin, bearing, math.Pi/2, branchRadius, sep)
	branchB := NewArc(branchA.laneB.Start(), bearing-math.Pi/2, math.Pi/2, branchA.radius, sep)
	return Tee{mainRoad: mainRoad, branchA: branchA, branchB: branchB}
}

func (t Tee) Kind() Kind           { return KindTee }
func (t Tee) LaneLabels() []string { return append([]string(nil), teeLaneLabels...) }

func (t Tee) Lane(label string) (geometry.Curve, bool) {
	switch label {
	case "a":
		return t.mainRoad.laneA, true
	case "b":
		return t.mainRoad.laneB, true
	case "c":
		return t.branchA.laneA, true
	case "d":
		return t.branchA.laneB, true
	case "e":
		return t.branchB.laneA, true
	case "f":
		return t.branchB.laneB, true
	default:
		return nil, false
	}
}

func (t Tee) PriorityOverLane(lane string) []string {
	p, ok := teePriority[lane]
	if !ok {
		return nil
	}
	return lo.Map(p, func(l string, _ int) string { return l })
}
