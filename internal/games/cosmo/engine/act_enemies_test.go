package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalMoverTurnsAtWall(t *testing.T) {
	w := newTestWorld(t)
	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	w.Map.SetTile(wall, 13, 19)

	mover := &HorizontalMover{Pause: 8, Frames: 1, Dir: Dir2East}
	a := placeActor(w, SprSharpRobotFloor, 10, 19, mover)

	// Moves on every other frame.
	tickActor(w, a, 3)
	assert.Equal(t, 12, a.X)

	tickActor(w, a, 2)
	assert.Equal(t, 12, a.X, "the step into the wall is undone")
	assert.Equal(t, Dir2West, mover.Dir)
	assert.Equal(t, 8, mover.Cooldown)

	tickActor(w, a, 7)
	assert.Equal(t, 12, a.X, "pauses before walking back")

	tickActor(w, a, 1)
	assert.Equal(t, 11, a.X)
}

func TestVerticalMoverBounces(t *testing.T) {
	w := newTestWorld(t)
	const ceiling = TileSolidFirst + 8
	w.Map.SetAttr(ceiling, AttrSolid)
	w.Map.SetTile(ceiling, 10, 15)

	a := placeActor(w, SprSawBlade, 10, 19, &VerticalMover{Dir: Dir2North})

	want := []int{18, 17, 16, 16, 17, 18, 19, 19, 18}
	for i, y := range want {
		tickActor(w, a, 1)
		assert.Equal(t, y, a.Y, "frame %d", i+1)
	}
}

func TestJumpingBulletArc(t *testing.T) {
	w := newTestWorld(t)
	bullet := &JumpingBullet{Dir: Dir2West}
	a := placeActor(w, SprJumpingBullet, 20, 19, bullet)

	tickActor(w, a, 8)
	assert.Equal(t, 12, a.X)
	assert.Equal(t, 8, a.Y, "top of the arc")

	tickActor(w, a, 8)
	assert.Equal(t, 4, a.X)
	assert.Equal(t, 19, a.Y, "lands where it started")
	assert.Equal(t, Dir2East, bullet.Dir)
	assert.Zero(t, bullet.Step)

	tickActor(w, a, 1)
	assert.Equal(t, 5, a.X)
	assert.Equal(t, 17, a.Y)
}

func TestProjectileFlies(t *testing.T) {
	tests := []struct {
		name         string
		dir          Dir8
		x, y         int
		wantX, wantY int
		wantDead     bool
	}{
		{"south west", Dir8SouthWest, 20, 12, 18, 14, false},
		{"east", Dir8East, 20, 12, 22, 12, false},
		{"north", Dir8North, 20, 12, 20, 10, false},
		{"off screen", Dir8East, ScrollW, 12, ScrollW, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			audio := &recordingAudio{}
			w.SetAudio(audio)
			groundPlayer(w, 10, Dir4East)
			a := placeActor(w, SprProjectile, tt.x, tt.y, &Projectile{Dir: tt.dir})

			tickActor(w, a, 2)

			assert.Equal(t, tt.wantDead, a.Dead)
			assert.Equal(t, tt.wantX, a.X)
			assert.Equal(t, tt.wantY, a.Y)
			if !tt.wantDead {
				assert.Equal(t, []Sound{SndProjectileLaunch}, audio.sounds, "launch sound plays once")
			}
		})
	}
}

func TestSpittingTurretVolley(t *testing.T) {
	tests := []struct {
		name         string
		turretY      int
		playerX      int
		wantKind     ActorKind
		wantX, wantY int
	}{
		{"player to the east", 19, 30, ActProjectileE, 16, 18},
		{"player to the west", 19, 2, ActProjectileW, 9, 18},
		{"player below", 10, 10, ActProjectileS, 12, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			groundPlayer(w, tt.playerX, Dir4East)
			w.NewActor(ActSpittingTurret, 10, tt.turretY)
			a := w.Actor(0)

			var shots []int
			for i := 1; i <= 46; i++ {
				n := w.NumActors()
				tickActor(w, a, 1)
				if w.NumActors() > n {
					shots = append(shots, i)
				}
			}

			// One shot per volley, then a 27 frame cooldown.
			assert.Equal(t, []int{13, 46}, shots)
			require.Equal(t, 3, w.NumActors())
			shot := w.Actor(1)
			assert.Equal(t, tt.wantKind, shot.Kind)
			assert.Equal(t, tt.wantX, shot.X)
			assert.Equal(t, tt.wantY, shot.Y)
		})
	}
}

func TestBabyGhostEggHatches(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	groundPlayer(w, 10, Dir4East)
	w.NewActor(ActBabyGhostEggProx, 10, 19)
	a := w.Actor(0)
	egg := a.Behavior.(*BabyGhostEgg)

	tickActor(w, a, 1)
	require.True(t, egg.Triggered)
	assert.Equal(t, 19, egg.Hatch)
	assert.Contains(t, audio.sounds, SndBghostEggCrack)

	tickActor(w, a, 18)
	assert.Equal(t, ActBabyGhostEggProx, a.Kind)
	assert.Equal(t, 2, a.Frame)

	tickActor(w, a, 1)
	// The ghost takes over the egg's slot.
	assert.Equal(t, 1, w.NumActors())
	assert.Equal(t, ActBabyGhost, w.Actor(0).Kind)
	assert.False(t, w.Actor(0).Dead)
	assert.Equal(t, 1, liveDecorations(w, SprBabyGhostEggShard1))
	assert.Equal(t, 1, liveDecorations(w, SprBabyGhostEggShard4))
	assert.Contains(t, audio.sounds, SndBghostEggHatch)
}

func TestBabyGhostEggWithoutProximityWaits(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 10, Dir4East)
	w.NewActor(ActBabyGhostEgg, 10, 19)
	a := w.Actor(0)

	tickActor(w, a, 100)

	assert.Equal(t, ActBabyGhostEgg, a.Kind)
	assert.False(t, a.Dead)
	assert.Contains(t, []int{0, 1}, a.Frame)
}
