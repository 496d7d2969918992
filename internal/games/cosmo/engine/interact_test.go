package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupContact(t *testing.T) {
	tests := []struct {
		name      string
		sprite    Sprite
		wantScore uint32
		wantStars uint32
		wantKind  ActorKind
	}{
		{"star", SprStar, 200, 1, ActScoreEffect200},
		{"pear", SprYelPear, 200, 0, ActScoreEffect200},
		{"grapes", SprGrapes, 800, 0, ActScoreEffect800},
		{"horn", SprHorn, 400, 0, ActScoreEffect400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			groundPlayer(w, 10, Dir4East)
			a := placeActor(w, tt.sprite, 11, 18, Static{})

			w.MoveAndDrawActors()

			assert.Equal(t, tt.wantScore, w.Score)
			assert.Equal(t, tt.wantStars, w.Stars)
			// The score effect takes over the freed slot.
			assert.Equal(t, tt.wantKind, a.Kind)
			assert.False(t, a.Dead)
		})
	}
}

func TestPickupOutOfReach(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 10, Dir4East)
	a := placeActor(w, SprStar, 20, 18, Static{})

	w.MoveAndDrawActors()

	assert.False(t, a.Dead)
	assert.Zero(t, w.Stars)
}

func TestHamburgerRaisesMaxHealth(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	require.Equal(t, 3, p.MaxHealth)
	placeActor(w, SprHamburger, 11, 18, Static{})

	w.MoveAndDrawActors()

	assert.Equal(t, 4, p.MaxHealth)
	assert.Equal(t, uint32(12800), w.Score)
	assert.True(t, w.Hints.SawHamburger)
}

func TestExitSignWinsLevel(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 10, Dir4East)
	placeActor(w, SprExitSign, 11, 18, Static{})

	w.MoveAndDrawActors()
	assert.True(t, w.WinLevel)
}

func TestHazardHurts(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	placeActor(w, SprSawBlade, 11, 18, Static{})

	w.MoveAndDrawActors()
	assert.Equal(t, 3, p.Health)
}

func TestDestroyBarrel(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 30, Dir4East)
	w.NewActor(ActBarrelYelPear, 10, 19)
	w.NewActor(ActBarrelOnion, 14, 19)
	require.Equal(t, 2, w.NumBarrels)

	first := w.Actor(0)
	w.DestroyBarrel(first)

	assert.True(t, first.Dead)
	assert.Equal(t, 4, liveShards(w))
	assert.Equal(t, 1, w.Snapshot().Spawners)
	assert.Equal(t, ActYelPear, w.Spawners()[0].Kind)
	assert.Equal(t, 11, w.Spawners()[0].X)
	assert.Equal(t, 1, w.NumBarrels)
	assert.Equal(t, 2, w.NumActors(), "no bubble before the last barrel")

	w.DestroyBarrel(w.Actor(1))
	assert.Zero(t, w.NumBarrels)
	assert.Equal(t, ActSpeechWow50K, w.Actor(0).Kind, "bubble reuses the first free slot")
}

func TestDestroyBarrelIgnoresOtherActors(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprBarrel, 10, 19, Static{})

	w.DestroyBarrel(a)
	assert.False(t, a.Dead)
	assert.Zero(t, liveShards(w))
}

func TestBarrelExplodes(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 30, Dir4East)
	w.NewActor(ActBarrelHorn, 10, 19)
	barrel := w.Actor(0)
	w.NewExplosion(10, 17)

	w.MoveAndDrawActors()

	assert.True(t, barrel.Dead || barrel.Kind != ActBarrelHorn)
	assert.Equal(t, uint32(1600), w.Score)
	assert.Equal(t, ActHorn, w.Spawners()[0].Kind)
}

func TestCanBeExploded(t *testing.T) {
	tests := []struct {
		name   string
		sprite Sprite
		frame  int
		want   bool
		score  uint32
	}{
		{"ghost", SprGhost, 0, true, 1600},
		{"star is not explodable", SprStar, 0, false, 0},
		{"retracted spikes survive", SprSpikesFloorRecip, 2, false, 0},
		{"raised spikes break", SprSpikesFloorRecip, 0, true, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			got := w.CanBeExploded(tt.sprite, tt.frame, 10, 10)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.score, w.Score)
			if tt.want {
				assert.Equal(t, 1, liveShards(w))
			}
		})
	}
}

func TestAddScoreForSpriteUnknown(t *testing.T) {
	w := newTestWorld(t)
	w.AddScoreForSprite(SprBarrel)
	assert.Zero(t, w.Score)

	w.AddScoreForSprite(SprHintGlobe)
	assert.Equal(t, uint32(12800), w.Score)
}
