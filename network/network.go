// Package network owns a labeled collection of junctions, the directed
// multigraph of lane-to-lane connections, and the per-lane speed limit
// table. It mirrors the teacher's manager pattern (map[id]*T plus a
// parallel slice preserving insertion order) adapted to string labels,
// with a single error-returning accessor rather than the teacher's
// Get/GetOrError pair — label lookups here are driven by external
// callers, so every failure is surfaced, never panicked.
package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/jthorniley/junctions/geometry"
	"github.com/jthorniley/junctions/junction"
)

var log = logrus.WithField("module", "network")

// ErrDuplicateLabel is returned when AddJunction is called with a label
// that already exists in the network.
var ErrDuplicateLabel = errors.New("duplicate label")

// ErrUnknownLabel is returned when a junction or lane label is not
// present in the network.
var ErrUnknownLabel = errors.New("unknown label")

// LaneHandle identifies a lane by its junction label and lane label.
// Equality is structural, so LaneHandle is safe to use as a map key.
type LaneHandle struct {
	Junction string
	Lane     string
}

func (h LaneHandle) String() string {
	return h.Junction + "/" + h.Lane
}

// DefaultSpeedLimit is a conventional value to pass to New. AddJunction
// does not read it: lanes without an override get the limit given to
// New.
const DefaultSpeedLimit = 10.0

// Network owns junctions, their lane connectivity, and per-lane speed
// limits. Junctions are immutable after insertion.
type Network struct {
	defaultSpeedLimit float64

	labels    []string
	junctions map[string]junction.Junction

	speedLimits map[LaneHandle]float64
	edges       map[LaneHandle][]LaneHandle
}

// New builds an empty Network. defaultSpeedLimit is applied to any lane
// whose insertion does not specify an override; it must be positive.
func New(defaultSpeedLimit float64) *Network {
	if defaultSpeedLimit <= 0 {
		panic("network: non-positive default speed limit")
	}
	return &Network{
		defaultSpeedLimit: defaultSpeedLimit,
		junctions:         map[string]junction.Junction{},
		speedLimits:       map[LaneHandle]float64{},
		edges:             map[LaneHandle][]LaneHandle{},
	}
}

// AddJunction inserts j under label. If label is empty, one is
// synthesized as "<lowercase-kind><k>" where k is one greater than the
// largest existing integer suffix on that kind's prefix (starting at
// 1). speedLimit, if non-zero, overrides the network default for every
// lane of j; it must not be negative.
func (n *Network) AddJunction(j junction.Junction, label string, speedLimit float64) (string, error) {
	if speedLimit < 0 {
		panic("network: negative speed limit")
	}
	if label == "" {
		label = n.synthesizeLabel(j.Kind())
	} else if _, exists := n.junctions[label]; exists {
		return "", fmt.Errorf("junction %q: %w", label, ErrDuplicateLabel)
	}

	limit := speedLimit
	if limit == 0 {
		limit = n.defaultSpeedLimit
	}

	n.junctions[label] = j
	n.labels = append(n.labels, label)
	for _, laneLabel := range j.LaneLabels() {
		n.speedLimits[LaneHandle{Junction: label, Lane: laneLabel}] = limit
	}
	log.Debugf("added junction %q (%s), %d lanes at speed limit %v", label, j.Kind(), len(j.LaneLabels()), limit)
	return label, nil
}

func (n *Network) synthesizeLabel(kind junction.Kind) string {
	prefix := kind.String()
	max := 0
	for _, label := range n.labels {
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		if k, err := strconv.Atoi(strings.TrimPrefix(label, prefix)); err == nil && k > max {
			max = k
		}
	}
	return fmt.Sprintf("%s%d", prefix, max+1)
}

// Junction returns the junction stored under label.
func (n *Network) Junction(label string) (junction.Junction, error) {
	j, ok := n.junctions[label]
	if !ok {
		return nil, fmt.Errorf("junction %q: %w", label, ErrUnknownLabel)
	}
	return j, nil
}

// JunctionLabels returns all junction labels in insertion order.
func (n *Network) JunctionLabels() []string {
	return append([]string(nil), n.labels...)
}

// LaneLabels returns the lane labels of the junction stored under
// junctionLabel.
func (n *Network) LaneLabels(junctionLabel string) ([]string, error) {
	j, err := n.Junction(junctionLabel)
	if err != nil {
		return nil, err
	}
	return j.LaneLabels(), nil
}

// Lane returns the geometric curve identified by h.
func (n *Network) Lane(h LaneHandle) (geometry.Curve, error) {
	j, ok := n.junctions[h.Junction]
	if !ok {
		return nil, fmt.Errorf("junction %q: %w", h.Junction, ErrUnknownLabel)
	}
	c, ok := j.Lane(h.Lane)
	if !ok {
		return nil, fmt.Errorf("lane %s: %w", h, ErrUnknownLabel)
	}
	return c, nil
}

// SpeedLimit returns the speed limit of the lane identified by h.
func (n *Network) SpeedLimit(h LaneHandle) (float64, error) {
	limit, ok := n.speedLimits[h]
	if !ok {
		return 0, fmt.Errorf("lane %s: %w", h, ErrUnknownLabel)
	}
	return limit, nil
}

// ConnectLanes appends to to from's ordered outgoing list. Duplicate
// edges are permitted and bias random successor selection in the
// stepper.
func (n *Network) ConnectLanes(from, to LaneHandle) error {
	if _, err := n.Lane(from); err != nil {
		return err
	}
	if _, err := n.Lane(to); err != nil {
		return err
	}
	n.edges[from] = append(n.edges[from], to)
	return nil
}

// ConnectedLanes returns from's ordered outgoing connections.
func (n *Network) ConnectedLanes(from LaneHandle) []LaneHandle {
	return append([]LaneHandle(nil), n.edges[from]...)
}

// FeederLanes returns every lane whose outgoing connections include to.
// Recomputed on every call rather than cached, matching the teacher's
// own preference (lane.go's GetPressure walks Predecessors/Successors
// fresh each call) over maintaining a reverse-adjacency index.
func (n *Network) FeederLanes(to LaneHandle) []LaneHandle {
	var feeders []LaneHandle
	for from, targets := range n.edges {
		if lo.Contains(targets, to) {
			feeders = append(feeders, from)
		}
	}
	return feeders
}

// PriorityLanes delegates to h's junction's PriorityOverLane.
func (n *Network) PriorityLanes(h LaneHandle) ([]LaneHandle, error) {
	j, ok := n.junctions[h.Junction]
	if !ok {
		return nil, fmt.Errorf("junction %q: %w", h.Junction, ErrUnknownLabel)
	}
	labels := j.PriorityOverLane(h.Lane)
	return lo.Map(labels, func(l string, _ int) LaneHandle {
		return LaneHandle{Junction: h.Junction, Lane: l}
	}), nil
}

// AllLanes returns every LaneHandle in the network, ordered by
// junction insertion order then lane order within each junction.
func (n *Network) AllLanes() []LaneHandle {
	var all []LaneHandle
	for _, jl := range n.labels {
		j := n.junctions[jl]
		for _, ll := range j.LaneLabels() {
			all = append(all, LaneHandle{Junction: jl, Lane: ll})
		}
	}
	return all
}
