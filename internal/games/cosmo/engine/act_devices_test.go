package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpPadLaunchesPlayer(t *testing.T) {
	tests := []struct {
		name      string
		kind      ActorKind
		sound     Sound
		wantNorth int
	}{
		{"floor pad", ActJumpPadFloor, SndPlayerPounce, 41},
		{"pad robot", ActJumpPadRobot, SndJumpPadRobot, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			audio := &recordingAudio{}
			w.SetAudio(audio)
			p := groundPlayer(w, 10, Dir4East)
			p.Y = 18
			p.Falling = true
			p.FallTime = 2

			w.NewActor(tt.kind, 11, 19)
			pad := w.Actor(0)

			assert.False(t, w.TouchPlayer(pad))
			assert.Equal(t, tt.wantNorth, p.MomentumNorth)
			assert.True(t, p.Recoiling)
			assert.True(t, p.LongJumping)
			assert.Contains(t, audio.sounds, tt.sound)
		})
	}
}

func TestJumpPadPressedFrames(t *testing.T) {
	w := newTestWorld(t)
	jp := &JumpPad{Pressed: 3}
	a := placeActor(w, SprJumpPad, 11, 19, jp)

	var frames []int
	for range 4 {
		tickActor(w, a, 1)
		frames = append(frames, a.Frame)
	}
	assert.Equal(t, []int{1, 1, 1, 0}, frames)
}

func TestJumpPadRobotStopsWhilePressed(t *testing.T) {
	w := newTestWorld(t)
	groundPlayer(w, 30, Dir4East)
	robot := &JumpPadRobot{Pressed: 3, Dir: Dir2West}
	a := placeActor(w, SprJumpPadRobot, 11, 19, robot)

	tickActor(w, a, 3)
	assert.Equal(t, 11, a.X)
	assert.Equal(t, 2, a.Frame)

	tickActor(w, a, 1)
	assert.Equal(t, 10, a.X)
}

func TestArrowPistonCycle(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprArrowPistonW, 10, 15, &ArrowPiston{Dir: Dir2West})

	tickActor(w, a, 25)
	assert.Equal(t, 10, a.X)

	tickActor(w, a, 3)
	assert.Equal(t, 7, a.X, "thrust out")

	tickActor(w, a, 3)
	assert.Equal(t, 10, a.X, "pulled back")
}

func TestFireballFliesToWall(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	w.ScrollY = 9
	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	w.Map.SetTile(wall, 5, 19)

	fb := &Fireball{HomeX: 10, HomeY: 19, Dir: Dir2West}
	a := placeActor(w, SprFireball, 10, 19, fb)

	tickActor(w, a, 30)
	assert.Equal(t, 10, a.X, "waits in the launcher")
	assert.Equal(t, []Sound{SndFireballLaunch}, audio.sounds)

	tickActor(w, a, 4)
	assert.Equal(t, 6, a.X)

	tickActor(w, a, 1)
	assert.Equal(t, 10, a.X, "back home after hitting the wall")
	assert.Zero(t, fb.Step)
	assert.Equal(t, 1, liveDecorations(w, SprSmoke))
	assert.Equal(t, []Sound{SndFireballLaunch, SndBigObjectHit}, audio.sounds)
}

func TestReciprocatingSpikesCycle(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprSpikesFloorRecip, 10, 19, &ReciprocatingSpikes{})

	frames := make([]int, 0, 41)
	for range 41 {
		tickActor(w, a, 1)
		frames = append(frames, a.Frame)
	}

	// Index i holds the frame after tick i+1.
	assert.Equal(t, 1, frames[0])
	assert.Equal(t, 2, frames[1], "retracted")
	assert.Equal(t, 2, frames[19])
	assert.Equal(t, 1, frames[20], "rising")
	assert.Equal(t, 0, frames[21])
	assert.Equal(t, 0, frames[39])
	assert.Equal(t, 1, frames[40], "retracting again")
}

func TestReciprocatingSpearCycle(t *testing.T) {
	w := newTestWorld(t)
	a := placeActor(w, SprSpear, 10, 19, &ReciprocatingSpear{})

	tickActor(w, a, 14)
	assert.Equal(t, 19, a.Y)

	tickActor(w, a, 8)
	assert.Equal(t, 27, a.Y)

	tickActor(w, a, 9)
	require.Equal(t, 19, a.Y)
}
