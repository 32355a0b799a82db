// Package priority computes, per tick, which lanes must refuse new
// entrants because of right-of-way conflicts. It is grounded directly
// on original_source/src/junctions/priority_wait.py: for each lane,
// walk its priority lanes in order, stopping at the first one that is
// either directly occupied or about to be fed faster than the lane in
// question could clear itself.
package priority

import (
	"github.com/jthorniley/junctions/network"
	"github.com/jthorniley/junctions/vehicle"
)

// WaitFlags is the set of lanes currently closed to entering traffic.
type WaitFlags map[network.LaneHandle]bool

// Get reports whether lane is flagged. An unset lane is never flagged.
func (w WaitFlags) Get(lane network.LaneHandle) bool {
	return w[lane]
}

// Compute derives the wait-flag set for the current state of net and
// store. It is a pure function: net and store are read, never mutated.
func Compute(net *network.Network, store *vehicle.Store) WaitFlags {
	flags := WaitFlags{}

	for _, lane := range net.AllLanes() {
		limit, err := net.SpeedLimit(lane)
		if err != nil {
			panic(err)
		}
		clearTime := laneLength(net, lane) / limit

		priorities, err := net.PriorityLanes(lane)
		if err != nil {
			panic(err)
		}

		for _, p := range priorities {
			if len(store.PositionsByLane(p)) > 0 {
				flags[lane] = true
				break
			}

			blocked := false
			for _, f := range net.FeederLanes(p) {
				positions := store.PositionsByLane(f)
				if len(positions) == 0 {
					continue
				}
				lastPosition := positions[len(positions)-1]
				feederLimit, err := net.SpeedLimit(f)
				if err != nil {
					panic(err)
				}
				timeToEnd := (laneLength(net, f) - lastPosition) / feederLimit
				if timeToEnd < clearTime {
					flags[lane] = true
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
	}

	return flags
}

func laneLength(net *network.Network, lane network.LaneHandle) float64 {
	curve, err := net.Lane(lane)
	if err != nil {
		panic(err)
	}
	return curve.Length()
}
