// Package stepper drives the per-tick simulation: deriving wait flags,
// advancing vehicle positions under speed-limit and following-distance
// constraints, and planning/applying lane-boundary transitions. The
// excess-time transition arithmetic is grounded on
// original_source/src/junctions/stepper.py, generalized here to a
// multi-vehicle store with following-distance suppression and memoized
// random successor choice, neither of which the source's
// single-vehicle version needed.
package stepper

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/jthorniley/junctions/network"
	"github.com/jthorniley/junctions/priority"
	"github.com/jthorniley/junctions/utils/randengine"
	"github.com/jthorniley/junctions/vehicle"
)

var log = logrus.WithField("module", "stepper")

// SeparationMin is the default minimum gap between consecutive vehicles
// on the same lane before the follower is suppressed for the tick. New
// uses this; NewWithConfig takes the threshold as an argument instead.
const SeparationMin = 5.0

// Stepper owns the network and vehicle store references plus the
// ephemeral per-sim state (last wait flags, memoized successor
// choices) that must persist between ticks.
type Stepper struct {
	net           *network.Network
	store         *vehicle.Store
	rng           *randengine.Engine
	separationMin float64

	waitFlags       priority.WaitFlags
	plannedNextLane map[vehicle.Id]network.LaneHandle
}

// New builds a Stepper over net and store, seeded with seed for
// reproducible successor-choice sequences, using the package default
// SeparationMin. Use NewWithConfig to override it.
func New(net *network.Network, store *vehicle.Store, seed uint64) *Stepper {
	return &Stepper{
		net:             net,
		store:           store,
		rng:             randengine.New(seed),
		separationMin:   SeparationMin,
		plannedNextLane: map[vehicle.Id]network.LaneHandle{},
	}
}

// NewWithConfig builds a Stepper the same way as New, but with the
// following-distance threshold given by separationMin (for example a
// simconfig.RuntimeConfig's SeparationMin) instead of the package
// default.
func NewWithConfig(net *network.Network, store *vehicle.Store, separationMin float64, seed uint64) *Stepper {
	s := New(net, store, seed)
	s.separationMin = separationMin
	return s
}

// WaitFlags returns the most recently computed wait-flag set. Nil
// before the first Step.
func (s *Stepper) WaitFlags() priority.WaitFlags {
	return s.waitFlags
}

// lanePlan is one planned transition produced by Phase 3.
type lanePlan struct {
	id       vehicle.Id
	retire   bool
	lane     network.LaneHandle
	position float64
}

// Step advances the simulation by dt. A non-positive dt still refreshes
// wait flags but otherwise is a no-op: positions do not move and no
// transitions are planned or applied.
func (s *Stepper) Step(dt float64) {
	s.waitFlags = priority.Compute(s.net, s.store)

	if dt <= 0 {
		return
	}
	s.advance(dt)

	plans := s.plan()
	s.apply(plans)
}

// advance is Phase 2: move every vehicle forward by speed_limit*dt,
// suppressing movement for any vehicle whose gap to its immediate
// leader is below SeparationMin. The leader of each lane always moves.
func (s *Stepper) advance(dt float64) {
	for _, lane := range s.net.AllLanes() {
		limit, err := s.net.SpeedLimit(lane)
		if err != nil {
			panic(err)
		}
		m := limit * dt

		ids := s.store.IdsByLane(lane)
		positions := s.store.PositionsByLane(lane)
		n := len(ids)
		if n == 0 {
			continue
		}

		increments := lo.Map(ids, func(_ vehicle.Id, i int) float64 {
			if i == n-1 {
				return m
			}
			if positions[i+1]-positions[i] < s.separationMin {
				return 0
			}
			return m
		})

		for i, id := range ids {
			if increments[i] == 0 {
				continue
			}
			if err := s.store.SwitchLane(id, lane, positions[i]+increments[i]); err != nil {
				panic(err)
			}
		}
	}
}

// plan is Phase 3: find every vehicle past its lane's end and decide
// its transition, without mutating the store.
func (s *Stepper) plan() []lanePlan {
	var plans []lanePlan

	for _, lane := range s.net.AllLanes() {
		curve, err := s.net.Lane(lane)
		if err != nil {
			panic(err)
		}
		length := curve.Length()
		limit, err := s.net.SpeedLimit(lane)
		if err != nil {
			panic(err)
		}

		ids := s.store.IdsByLane(lane)
		positions := s.store.PositionsByLane(lane)

		start := firstPastEnd(positions, length)
		for i := start; i < len(ids); i++ {
			id := ids[i]
			pos := positions[i]

			next, hasNext := s.plannedNextLane[id]
			if !hasNext {
				outgoing := s.net.ConnectedLanes(lane)
				if len(outgoing) == 0 {
					plans = append(plans, lanePlan{id: id, retire: true})
					continue
				}
				next = outgoing[s.rng.Choice(len(outgoing))]
				s.plannedNextLane[id] = next
			}

			if s.waitFlags.Get(next) {
				plans = append(plans, lanePlan{id: id, lane: lane, position: length})
				continue
			}

			nextLimit, err := s.net.SpeedLimit(next)
			if err != nil {
				panic(err)
			}
			tExcess := (pos - length) / limit
			newPos := tExcess * nextLimit
			plans = append(plans, lanePlan{id: id, lane: next, position: newPos})
			delete(s.plannedNextLane, id)
		}
	}

	return plans
}

// apply is Phase 4: commit every planned transition in order.
func (s *Stepper) apply(plans []lanePlan) {
	for _, p := range plans {
		if p.retire {
			if err := s.store.Remove(p.id); err != nil {
				log.Warnf("retire %v: %v", p.id, err)
			}
			continue
		}
		if err := s.store.SwitchLane(p.id, p.lane, p.position); err != nil {
			log.Warnf("transition %v to %s: %v", p.id, p.lane, err)
		}
	}
}

// firstPastEnd returns the first index in the ascending positions
// slice whose value is >= length.
func firstPastEnd(positions []float64, length float64) int {
	low, high := 0, len(positions)
	for low < high {
		mid := (low + high) / 2
		if positions[mid] < length {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}
