package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartPlantBites(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	p.Y = 15
	a := placeActor(w, SprHeartPlant, 10, 19, &HeartPlant{})

	var frames, xs []int
	for range 6 {
		tickActor(w, a, 1)
		frames = append(frames, a.Frame)
		xs = append(xs, a.X)
	}

	assert.Equal(t, []int{0, 1, 1, 2, 2, 0}, frames)
	assert.Equal(t, []int{10, 9, 9, 10, 10, 10}, xs)
}

func TestHeartPlantIgnoresPlayerAside(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 12, Dir4East)
	p.Y = 15
	hp := &HeartPlant{}
	a := placeActor(w, SprHeartPlant, 10, 19, hp)

	tickActor(w, a, 10)
	assert.False(t, hp.Biting)
	assert.Zero(t, a.Frame)
}

func TestClamPlantCycle(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprClamPlant, 10, 19, &ClamPlant{Mode: DrawNormal})

	tickActor(w, a, 17)
	require.Zero(t, a.Frame, "shut until the timer runs out")

	var frames []int
	for range 8 {
		tickActor(w, a, 1)
		frames = append(frames, a.Frame)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 3, 2, 1, 0}, frames)
}

func TestSpittingWallPlantFires(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprSpitWallPlantW, 10, 15, &SpittingWallPlant{})

	var shots []int
	for i := 1; i <= 100; i++ {
		n := w.NumActors()
		tickActor(w, a, 1)
		if w.NumActors() > n {
			shots = append(shots, i)
		}
		if i == 44 {
			assert.Equal(t, 1, a.Frame)
		}
	}

	assert.Equal(t, []int{45, 95}, shots)
	shot := w.Actor(1)
	assert.Equal(t, ActProjectileW, shot.Kind)
	assert.Equal(t, 9, shot.X)
	assert.Equal(t, 14, shot.Y)
}

func TestBearTrapHoldsPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	p.BlockMovementCmds = true
	trap := &BearTrap{Closed: true}
	a := placeActor(w, SprBearTrap, 10, 19, trap)

	tickActor(w, a, 23)
	assert.True(t, p.BlockMovementCmds)
	assert.Equal(t, 2, a.Frame)

	tickActor(w, a, 1)
	assert.False(t, p.BlockMovementCmds, "released before the jaws open")

	tickActor(w, a, 3)
	assert.False(t, trap.Closed)
	assert.Zero(t, trap.Step)
	assert.Zero(t, a.Frame)
}

func TestBearTrapExplodes(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 30, Dir4East)
	p.BlockMovementCmds = true
	a := placeActor(w, SprBearTrap, 10, 19, &BearTrap{Closed: true})
	w.NewExplosion(10, 17)

	tickActor(w, a, 1)

	assert.True(t, a.Dead)
	assert.False(t, p.BlockMovementCmds)
	assert.Equal(t, uint32(250), w.Score)
	assert.Equal(t, 1, liveShards(w))
}

func TestTulipLauncherCycle(t *testing.T) {
	w := newTestWorld(t)
	tulip := &TulipLauncher{}
	a := placeActor(w, SprTulipLauncher, 10, 19, tulip)

	tickActor(w, a, 2)
	require.Equal(t, 1, w.Snapshot().Spawners)
	assert.Equal(t, ActParachuteBall, w.Spawners()[0].Kind)
	assert.Equal(t, 12, w.Spawners()[0].X)

	tickActor(w, a, 3)
	assert.Equal(t, 100, tulip.Rest)

	tickActor(w, a, 101)
	assert.Equal(t, 1, w.Snapshot().Spawners, "resting")

	tickActor(w, a, 1)
	assert.Equal(t, 2, w.Snapshot().Spawners)
}
