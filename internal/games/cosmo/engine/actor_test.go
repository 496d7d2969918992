package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBehavior struct {
	ticks int
	kill  bool
}

func (b *countingBehavior) Tick(_ *World, a *Actor) {
	b.ticks++
	if b.kill {
		a.Dead = true
	}
}

type recordingRenderer struct {
	nopRenderer
	sprites []Sprite
}

func (r *recordingRenderer) DrawSprite(s Sprite, _, _, _ int, _ DrawMode) {
	r.sprites = append(r.sprites, s)
}

type recordingAudio struct {
	sounds []Sound
	music  []int
}

func (r *recordingAudio) StartSound(s Sound) {
	r.sounds = append(r.sounds, s)
}

func (r *recordingAudio) StartMusic(track int) {
	r.music = append(r.music, track)
}

// placeActor puts a hand-built actor into the next slot.
func placeActor(w *World, s Sprite, x, y int, b Behavior) *Actor {
	a := &w.actors[w.numActors]
	*a = Actor{Kind: ActBasketNull, Sprite: s, X: x, Y: y, Behavior: b}
	w.numActors++
	return a
}

// tickActor runs an actor's behavior n times outside the actor pass.
func tickActor(w *World, a *Actor, n int) {
	for range n {
		a.Behavior.Tick(w, a)
	}
}

func TestNewActorReusesDeadSlot(t *testing.T) {
	w := newTestWorld(t)
	w.NewActor(ActYelPear, 5, 10)
	w.NewActor(ActOnion, 8, 10)
	require.Equal(t, 2, w.NumActors())

	w.Actor(0).Dead = true
	w.NewActor(ActHorn, 12, 10)

	assert.Equal(t, 2, w.NumActors())
	assert.Equal(t, ActHorn, w.Actor(0).Kind)
	assert.False(t, w.Actor(0).Dead)
}

func TestNewActorFullArena(t *testing.T) {
	w := newTestWorld(t)
	w.numActors = MaxActors - 2

	w.NewActor(ActYelPear, 5, 10)
	assert.Equal(t, MaxActors-2, w.NumActors())
}

func TestNewActorAtIndexRejectsUnknownKind(t *testing.T) {
	w := newTestWorld(t)
	assert.False(t, w.NewActorAtIndex(0, ActorKind(-1), 5, 5))
	assert.False(t, w.NewActorAtIndex(0, ActorKind(100000), 5, 5))
}

func TestNewActorCountsBarrels(t *testing.T) {
	w := newTestWorld(t)
	w.NewActor(ActBarrelPowerUp, 5, 10)
	w.NewActor(ActBarrelYelPear, 8, 10)
	assert.Equal(t, 2, w.NumBarrels)
}

func TestProcessActorSkipsDead(t *testing.T) {
	w := newTestWorld(t)
	r := &recordingRenderer{}
	w.SetRenderer(r)

	b := &countingBehavior{}
	a := placeActor(w, SprBarrel, 5, 10, b)
	a.Dead = true

	w.MoveAndDrawActors()

	assert.Zero(t, b.ticks)
	assert.Empty(t, r.sprites)
}

func TestProcessActorDyingInTickIsNotDrawn(t *testing.T) {
	w := newTestWorld(t)
	r := &recordingRenderer{}
	w.SetRenderer(r)

	b := &countingBehavior{kill: true}
	placeActor(w, SprBarrel, 5, 10, b)

	w.MoveAndDrawActors()
	w.MoveAndDrawActors()

	assert.Equal(t, 1, b.ticks, "dead actors take no further part")
	assert.Empty(t, r.sprites)
}

func TestProcessActorDrawsVisible(t *testing.T) {
	w := newTestWorld(t)
	r := &recordingRenderer{}
	w.SetRenderer(r)

	b := &countingBehavior{}
	placeActor(w, SprBarrel, 5, 10, b)

	w.MoveAndDrawActors()

	assert.Equal(t, 1, b.ticks)
	assert.Equal(t, []Sprite{SprBarrel}, r.sprites)
}

func TestProcessActorOffscreen(t *testing.T) {
	t.Run("inactive is frozen", func(t *testing.T) {
		w := newTestWorld(t)
		b := &countingBehavior{}
		placeActor(w, SprBarrel, 50, 10, b)

		w.MoveAndDrawActors()
		assert.Zero(t, b.ticks)
	})

	t.Run("force active ticks hidden", func(t *testing.T) {
		w := newTestWorld(t)
		r := &recordingRenderer{}
		w.SetRenderer(r)

		b := &countingBehavior{}
		a := placeActor(w, SprBarrel, 50, 10, b)
		a.ForceActive = true

		w.MoveAndDrawActors()
		assert.Equal(t, 1, b.ticks)
		assert.Empty(t, r.sprites)
	})

	t.Run("fallen off the map dies", func(t *testing.T) {
		w := newTestWorld(t)
		b := &countingBehavior{}
		a := placeActor(w, SprBarrel, 5, w.Map.Height+ScrollH+4, b)
		a.ForceActive = true

		w.MoveAndDrawActors()
		assert.True(t, a.Dead)
		assert.Zero(t, b.ticks)
	})
}

func TestProcessActorExplodes(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprGhost, 5, 10, Static{})
	w.NewExplosion(5, 8)

	w.MoveAndDrawActors()
	assert.True(t, a.Dead)
}

func TestWeightedActorFalls(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprBarrel, 5, 10, Static{})
	a.Weighted = true
	a.ForceActive = true

	for range 20 {
		w.MoveAndDrawActors()
	}
	assert.Equal(t, 19, a.Y, "lands on the floor")
	assert.Zero(t, a.FallSpeed)
}

func TestAdjustActorMove(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprBarrel, 6, 19, Static{})

	a.X--
	w.AdjustActorMove(a, Dir4West)
	assert.True(t, a.WestOK)
	assert.Equal(t, 5, a.X)

	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	w.Map.SetTile(wall, 4, 19)

	a.X--
	w.AdjustActorMove(a, Dir4West)
	assert.False(t, a.WestOK)
	assert.Equal(t, 5, a.X, "step into a wall is undone")
}
