// Package junction implements the three junction variants — Road, Arc,
// Tee — each an immutable, labeled collection of lane curves plus a
// right-of-way relation among its own lanes. Runtime polymorphism in
// the source is replaced here with a small tagged union: every variant
// implements Junction directly, composed by value (Tee embeds a Road
// and two Arcs, no back references).
package junction

import "github.com/jthorniley/junctions/geometry"

// Kind tags which concrete junction variant a value holds.
type Kind int

const (
	KindRoad Kind = iota
	KindArc
	KindTee
)

// String returns the lowercase type-prefix used by label synthesis
// (network.AddJunction's "<lowercase-type><k>" rule).
func (k Kind) String() string {
	switch k {
	case KindRoad:
		return "road"
	case KindArc:
		return "arc"
	case KindTee:
		return "tee"
	default:
		panic("junction: unknown kind")
	}
}

// Junction is the common interface over Road, Arc, and Tee. A junction
// owns its lane geometry exclusively and is immutable once constructed.
type Junction interface {
	Kind() Kind
	// LaneLabels returns this junction's lane labels in a fixed,
	// canonical order. It must exactly match the key set of the lane
	// map exposed via Lane.
	LaneLabels() []string
	// Lane returns the curve for label, or ok=false if label is not
	// one of this junction's lanes.
	Lane(label string) (geometry.Curve, bool)
	// PriorityOverLane returns the labels, within this same junction,
	// that have right-of-way over lane. Empty if lane has no internal
	// priority constraints (or does not exist).
	PriorityOverLane(lane string) []string
}
