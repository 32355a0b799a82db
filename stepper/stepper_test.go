package stepper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthorniley/junctions/geometry"
	"github.com/jthorniley/junctions/junction"
	"github.com/jthorniley/junctions/network"
	"github.com/jthorniley/junctions/simconfig"
	"github.com/jthorniley/junctions/stepper"
	"github.com/jthorniley/junctions/vehicle"
)

func singleRoadNetwork(t *testing.T, length, limit float64) (*network.Network, network.LaneHandle) {
	t.Helper()
	n := network.New(limit)
	_, err := n.AddJunction(junction.NewRoad(geometry.Point{}, 0, length, 3), "road", limit)
	require.NoError(t, err)
	return n, network.LaneHandle{Junction: "road", Lane: "a"}
}

func TestSimpleStep(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1000, 6.5)
	store := vehicle.New()
	id := store.CreateVehicle(lane, 0.0)

	s := stepper.New(n, store, 1)
	s.Step(0.1)

	_, pos, err := store.Get(id)
	require.NoError(t, err)
	assert.InDelta(t, 0.65, pos, 1e-9)
}

func TestTransitionToFasterLane(t *testing.T) {
	n := network.New(10)
	_, err := n.AddJunction(junction.NewRoad(geometry.Point{}, 0, 7, 3), "r1", 10)
	require.NoError(t, err)
	_, err = n.AddJunction(junction.NewRoad(geometry.Point{}, 0, 10, 3), "r2", 20)
	require.NoError(t, err)

	r1a := network.LaneHandle{Junction: "r1", Lane: "a"}
	r2a := network.LaneHandle{Junction: "r2", Lane: "a"}
	require.NoError(t, n.ConnectLanes(r1a, r2a))

	store := vehicle.New()
	id := store.CreateVehicle(r1a, 0)
	s := stepper.New(n, store, 1)

	expected := []float64{1.5, 3.0, 4.5, 6.0}
	for _, want := range expected {
		s.Step(0.15)
		lane, pos, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, r1a, lane)
		assert.InDelta(t, want, pos, 1e-9)
	}

	s.Step(0.15)
	lane, pos, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, r2a, lane)
	assert.InDelta(t, 1.0, pos, 1e-9)
}

func TestFollowDistance(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1000, 10)
	store := vehicle.New()
	leader := store.CreateVehicle(lane, 4.5)
	follower := store.CreateVehicle(lane, 0)

	s := stepper.New(n, store, 1)
	s.Step(0.1)

	_, leaderPos, err := store.Get(leader)
	require.NoError(t, err)
	_, followerPos, err := store.Get(follower)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, leaderPos, 1e-9)
	assert.InDelta(t, 0.0, followerPos, 1e-9)

	s.Step(0.1)
	_, leaderPos, err = store.Get(leader)
	require.NoError(t, err)
	_, followerPos, err = store.Get(follower)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, leaderPos, 1e-9)
	assert.InDelta(t, 1.0, followerPos, 1e-9)
}

func TestTieBreakingOnOverlap(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1000, 10)
	store := vehicle.New()
	first := store.CreateVehicle(lane, 0.0)
	second := store.CreateVehicle(lane, 0.0)

	s := stepper.New(n, store, 1)
	s.Step(0.1)

	_, firstPos, err := store.Get(first)
	require.NoError(t, err)
	_, secondPos, err := store.Get(second)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, firstPos, 1e-9)
	assert.InDelta(t, 1.0, secondPos, 1e-9)
}

func TestStepWithNonPositiveDtRefreshesWaitFlagsOnly(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1000, 10)
	store := vehicle.New()
	id := store.CreateVehicle(lane, 3)

	s := stepper.New(n, store, 1)
	s.Step(0)

	_, pos, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 3.0, pos)
	assert.NotNil(t, s.WaitFlags())
}

func TestNewWithConfigAppliesTighterSeparation(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1000, 10)
	store := vehicle.New()
	leader := store.CreateVehicle(lane, 1.5)
	follower := store.CreateVehicle(lane, 0)

	rc := simconfig.NewRuntimeConfig(simconfig.Config{SeparationMin: 1})
	s := stepper.NewWithConfig(n, store, rc.SeparationMin, rc.RandomSeed)
	s.Step(0.1)

	_, leaderPos, err := store.Get(leader)
	require.NoError(t, err)
	_, followerPos, err := store.Get(follower)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, leaderPos, 1e-9)
	assert.InDelta(t, 1.0, followerPos, 1e-9)
}

func TestVehicleRetiresAtDeadEndLane(t *testing.T) {
	n, lane := singleRoadNetwork(t, 1, 10)
	store := vehicle.New()
	id := store.CreateVehicle(lane, 0.95)

	s := stepper.New(n, store, 1)
	s.Step(0.1)

	_, _, err := store.Get(id)
	assert.Error(t, err)
}
