package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveShards(w *World) int {
	n := 0
	for _, sh := range w.Shards() {
		if sh.Age != 0 {
			n++
		}
	}
	return n
}

func liveDecorations(w *World, s Sprite) int {
	n := 0
	for _, d := range w.Decorations() {
		if d.Alive && d.Sprite == s {
			n++
		}
	}
	return n
}

func TestPoolsIgnoreRequestsWhenFull(t *testing.T) {
	w := newTestWorld(t)

	for i := range MaxShards + 3 {
		w.NewShard(SprBarrelShards, i%4, 10, 10)
	}
	assert.Equal(t, MaxShards, liveShards(w))

	for range MaxExplosions + 2 {
		w.NewExplosion(10, 10)
	}
	assert.Equal(t, MaxExplosions, w.Snapshot().Explosions)

	for range MaxSpawners + 2 {
		w.NewSpawner(ActYelPear, 10, 10)
	}
	assert.Equal(t, MaxSpawners, w.Snapshot().Spawners)

	for range MaxDecorations + 2 {
		w.NewDecoration(SprSmokeLarge, 6, 10, 10, Dir8North, 1)
	}
	assert.Equal(t, MaxDecorations, w.Snapshot().Decorations)
}

func TestExpiredSlotIsReused(t *testing.T) {
	w := newTestWorld(t)
	for range MaxShards {
		w.NewShard(SprBarrelShards, 0, 10, 10)
	}

	w.Shards()[3].Age = 0
	w.NewShard(SprBasketShards, 2, 7, 8)

	sh := w.Shards()[3]
	assert.Equal(t, SprBasketShards, sh.Sprite)
	assert.Equal(t, 2, sh.Frame)
	assert.Equal(t, 7, sh.X)
	assert.Equal(t, 8, sh.Y)
	assert.Equal(t, 1, sh.Age)
}

func TestShardInclinationCycles(t *testing.T) {
	w := newTestWorld(t)
	for range 6 {
		w.NewShard(SprBarrelShards, 0, 10, 10)
	}

	got := make([]int, 0, 6)
	for _, sh := range w.Shards()[:6] {
		got = append(got, sh.Inclination)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 0, 1}, got)
}

func TestExplosionLifecycle(t *testing.T) {
	w := newTestWorld(t)
	w.Player.X, w.Player.Y = 40, 19

	w.NewExplosion(20, 10)
	ex := &w.Explosions()[0]
	require.Equal(t, 1, ex.Age)
	assert.Equal(t, 12, ex.Y, "sprite bottom sits two rows below")

	for i := 1; i <= 8; i++ {
		w.DrawExplosions()
		if i < 8 {
			assert.Equal(t, i+1, ex.Age, "frame %d", i)
		}
	}

	assert.Equal(t, 0, ex.Age, "slot freed after eight frames")
	assert.Equal(t, 1, liveDecorations(w, SprSmokeLarge))
	assert.Equal(t, 1, liveDecorations(w, SprSparkleLong))
	assert.Equal(t, 4, w.Player.Health, "distant explosion must not hurt")
}

func TestIsNearExplosion(t *testing.T) {
	w := newTestWorld(t)
	assert.False(t, w.IsNearExplosion(SprBarrel, 0, 20, 12))

	w.NewExplosion(20, 10)
	assert.True(t, w.IsNearExplosion(SprBarrel, 0, 20, 12))
	assert.False(t, w.IsNearExplosion(SprBarrel, 0, 30, 12))
}

func TestSpawnerMaterializesActor(t *testing.T) {
	t.Run("open air", func(t *testing.T) {
		w := newTestWorld(t)
		w.NewSpawner(ActYelPear, 10, 60)

		for i := 1; i < 11; i++ {
			w.MoveAndDrawSpawners()
			require.Equal(t, 0, w.NumActors(), "frame %d", i)
		}
		w.MoveAndDrawSpawners()

		require.Equal(t, 1, w.NumActors())
		assert.Equal(t, ActYelPear, w.Actor(0).Kind)
		assert.Equal(t, 0, w.Snapshot().Spawners)
	})

	t.Run("under a ceiling", func(t *testing.T) {
		w := newTestWorld(t)
		w.NewSpawner(ActYelPear, 10, 22)

		w.MoveAndDrawSpawners()

		require.Equal(t, 1, w.NumActors())
		assert.Equal(t, ActYelPear, w.Actor(0).Kind)
		assert.Equal(t, 21, w.Actor(0).Y)
	})
}

func TestDecorationRepeats(t *testing.T) {
	w := newTestWorld(t)
	w.NewDecoration(SprSmokeLarge, 2, 5, 5, Dir8Stationary, 2)

	for range 3 {
		w.MoveAndDrawDecorations()
	}
	assert.Equal(t, 1, liveDecorations(w, SprSmokeLarge))

	w.MoveAndDrawDecorations()
	assert.Equal(t, 0, liveDecorations(w, SprSmokeLarge))
}

func TestDecorationLeavingScreenIsFreed(t *testing.T) {
	w := newTestWorld(t)
	w.NewDecoration(SprSmokeLarge, 1, 5, 5, Dir8Stationary, 0)
	w.MoveAndDrawDecorations()
	require.Equal(t, 1, liveDecorations(w, SprSmokeLarge))

	w.ScrollX = 20
	w.MoveAndDrawDecorations()
	assert.Equal(t, 0, liveDecorations(w, SprSmokeLarge))
}
