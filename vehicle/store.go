// Package vehicle implements the dual-indexed vehicle store: a
// position-sorted sequence per lane (by_lane) plus a reverse index from
// vehicle id to its current (lane, slot) (by_id). The sorted sequence
// is maintained immediately on every mutation — unlike the teacher's
// utils/container/array.IncrementalArray, which defers add/remove to a
// later Prepare() call, every record here must be query-consistent the
// instant a call returns. What survives from that type is its core
// idea: elements track their own slot so a splice only has to reindex
// the slots after it, not rebuild the whole structure.
package vehicle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/jthorniley/junctions/network"
)

var log = logrus.WithField("module", "vehicle")

// ErrUnknownVehicle is returned by any store operation against an id
// that is not currently present. Removing an absent id is an error,
// not a silent no-op.
var ErrUnknownVehicle = errors.New("unknown vehicle")

// Id is a vehicle's opaque, globally unique identity. It is never
// reused after the vehicle is removed.
type Id = uuid.UUID

type record struct {
	id       Id
	position float64
}

type locator struct {
	lane network.LaneHandle
	slot int
}

// Store is the dual-indexed vehicle position table described above.
// The zero value is not usable; construct with New.
type Store struct {
	byLane map[network.LaneHandle][]record
	byId   map[Id]locator
}

// New builds an empty Store.
func New() *Store {
	return &Store{
		byLane: map[network.LaneHandle][]record{},
		byId:   map[Id]locator{},
	}
}

// CreateVehicle allocates a fresh id and inserts it into lane at
// position, returning the id. Ties at the same position resolve by the
// stable-tie rule: the new vehicle is inserted after any existing
// vehicle at the same position, i.e. it ends up ahead of them.
func (s *Store) CreateVehicle(lane network.LaneHandle, position float64) Id {
	id := uuid.New()
	slot := s.insertAfterEqual(lane, position)
	s.byLane[lane] = insertAt(s.byLane[lane], slot, record{id: id, position: position})
	s.reindexFrom(lane, slot)
	return id
}

// SwitchLane moves id to newLane at newPosition, removing it from its
// current lane first.
func (s *Store) SwitchLane(id Id, newLane network.LaneHandle, newPosition float64) error {
	loc, ok := s.byId[id]
	if !ok {
		return fmt.Errorf("switch lane: %w", ErrUnknownVehicle)
	}
	s.removeAt(loc.lane, loc.slot)

	slot := s.insertAfterEqual(newLane, newPosition)
	s.byLane[newLane] = insertAt(s.byLane[newLane], slot, record{id: id, position: newPosition})
	s.reindexFrom(newLane, slot)
	return nil
}

// Remove erases id from the store permanently.
func (s *Store) Remove(id Id) error {
	loc, ok := s.byId[id]
	if !ok {
		return fmt.Errorf("remove: %w", ErrUnknownVehicle)
	}
	s.removeAt(loc.lane, loc.slot)
	delete(s.byId, id)
	return nil
}

// Get returns id's current lane and position.
func (s *Store) Get(id Id) (network.LaneHandle, float64, error) {
	loc, ok := s.byId[id]
	if !ok {
		return network.LaneHandle{}, 0, fmt.Errorf("get: %w", ErrUnknownVehicle)
	}
	return loc.lane, s.byLane[loc.lane][loc.slot].position, nil
}

// PositionsByLane returns the ascending positions on lane. The returned
// slice must not be mutated by the caller.
func (s *Store) PositionsByLane(lane network.LaneHandle) []float64 {
	recs := s.byLane[lane]
	positions := make([]float64, len(recs))
	for i, r := range recs {
		positions[i] = r.position
	}
	return positions
}

// IdsByLane returns the ids on lane in the same order as
// PositionsByLane.
func (s *Store) IdsByLane(lane network.LaneHandle) []Id {
	recs := s.byLane[lane]
	ids := make([]Id, len(recs))
	for i, r := range recs {
		ids[i] = r.id
	}
	return ids
}

// LaneView is one lane's worth of vehicles, returned by GroupByLane.
type LaneView struct {
	Lane      network.LaneHandle
	Ids       []Id
	Positions []float64
}

// GroupByLane returns every non-empty lane's vehicles.
func (s *Store) GroupByLane() []LaneView {
	lanes := lo.Filter(lo.Keys(s.byLane), func(lane network.LaneHandle, _ int) bool {
		return len(s.byLane[lane]) > 0
	})
	return lo.Map(lanes, func(lane network.LaneHandle, _ int) LaneView {
		return LaneView{
			Lane:      lane,
			Ids:       s.IdsByLane(lane),
			Positions: s.PositionsByLane(lane),
		}
	})
}

// Snapshot returns an independent deep copy of the store, suitable for
// speculative stepping: mutating the clone never affects the original,
// and vice versa. spec names this operation without prescribing an
// implementation; this follows the teacher's preference for explicit,
// allocation-visible clones (utils/container/array.go's Data()).
func (s *Store) Snapshot() *Store {
	clone := New()
	for lane, recs := range s.byLane {
		cloned := make([]record, len(recs))
		copy(cloned, recs)
		clone.byLane[lane] = cloned
	}
	for id, loc := range s.byId {
		clone.byId[id] = loc
	}
	return clone
}

// insertAfterEqual returns the slot at which a new record at position
// should be inserted: after every existing record at the same position
// (the stable-tie rule), before the first strictly greater position.
func (s *Store) insertAfterEqual(lane network.LaneHandle, position float64) int {
	recs := s.byLane[lane]
	return sort.Search(len(recs), func(i int) bool {
		return recs[i].position > position
	})
}

func insertAt(recs []record, slot int, r record) []record {
	recs = append(recs, record{})
	copy(recs[slot+1:], recs[slot:])
	recs[slot] = r
	return recs
}

// reindexFrom updates by_id for every slot at or after from on lane.
func (s *Store) reindexFrom(lane network.LaneHandle, from int) {
	recs := s.byLane[lane]
	for i := from; i < len(recs); i++ {
		s.byId[recs[i].id] = locator{lane: lane, slot: i}
	}
}

// removeAt deletes the record at slot on lane and reindexes the
// trailing slots.
func (s *Store) removeAt(lane network.LaneHandle, slot int) {
	recs := s.byLane[lane]
	recs = append(recs[:slot], recs[slot+1:]...)
	s.byLane[lane] = recs
	s.reindexFrom(lane, slot)
	if len(recs) == 0 {
		log.Debugf("lane %s emptied", lane)
	}
}
