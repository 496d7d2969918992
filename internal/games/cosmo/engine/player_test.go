package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groundPlayer stands the player on the floor at column x.
func groundPlayer(w *World, x int, face Dir4) *Player {
	w.InitializePlayer()
	p := &w.Player
	p.X, p.Y = x, 19
	p.Falling = false
	p.FallTime = 0
	p.JumpLatch = false
	p.HurtCooldown = 0
	p.FaceDir = face
	// Scroll the way a level start does so nearby actors are on screen.
	w.ScrollY = max(p.Y-10, 0)
	return p
}

func TestWalkPlayer(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		face  Dir4
		cmd   Input
		wantX int
	}{
		{"west steps", 10, Dir4West, Input{West: true}, 9},
		{"east steps", 10, Dir4East, Input{East: true}, 11},
		{"first press turns", 10, Dir4East, Input{West: true}, 10},
		{"west map edge", 0, Dir4West, Input{West: true}, 0},
		{"east map edge", 61, Dir4East, Input{East: true}, 61},
		{"both cancel", 10, Dir4West, Input{West: true, East: true}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := groundPlayer(w, tt.x, tt.face)
			w.Cmd = tt.cmd

			w.MovePlayer()

			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, 19, p.Y)
			assert.False(t, p.Falling)
		})
	}
}

func TestWalkPlayerTurnSetsFacing(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	w.Cmd = Input{West: true}

	w.MovePlayer()
	assert.Equal(t, Dir4West, p.FaceDir)
	assert.Equal(t, PlayerBaseWest, p.BaseFrame)
	assert.Equal(t, 10, p.X)

	w.MovePlayer()
	assert.Equal(t, 9, p.X)
}

func TestWalkPlayerIntoWall(t *testing.T) {
	w := newTestWorld(t)
	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	w.Map.SetTile(wall, 9, 17)

	p := groundPlayer(w, 10, Dir4West)
	w.Cmd = Input{West: true}
	w.MovePlayer()

	assert.Equal(t, 10, p.X)
	assert.Equal(t, Dir4None, p.ClingDir)
}

func TestPlayerFallsAndLands(t *testing.T) {
	w := newTestWorld(t)
	w.InitializePlayer()
	p := &w.Player
	p.X, p.Y = 10, 5

	for range 30 {
		w.MovePlayer()
		if !p.Falling {
			break
		}
	}

	assert.False(t, p.Falling)
	assert.Equal(t, 19, p.Y)
	assert.Zero(t, p.JumpTime)
}

func TestIdleAnimation(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	w.Cmd = Input{}

	for i := 1; i <= 190; i++ {
		w.MovePlayer()
		require.False(t, p.Falling, "frame %d", i)

		c := i
		if i > 185 {
			c = i - 185
		}

		switch {
		case c > 100 && c < 110:
			assert.Equal(t, PlayerLookNorth, p.Frame, "frame %d", i)
		case c > 139 && c < 150:
			assert.Equal(t, PlayerLookSouth, p.Frame, "frame %d", i)
		case c == 180, c == 184:
			assert.Contains(t, []int{PlayerShake1, PlayerStandBlink}, p.Frame, "frame %d", i)
		case c == 181, c == 183:
			assert.Contains(t, []int{PlayerShake2, PlayerStandBlink}, p.Frame, "frame %d", i)
		case c == 182:
			assert.Contains(t, []int{PlayerShake3, PlayerStandBlink}, p.Frame, "frame %d", i)
		default:
			assert.Contains(t, []int{PlayerStand, PlayerStandBlink}, p.Frame, "frame %d", i)
		}
	}
}

func TestIdleCountResetsOnMove(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)

	for range 105 {
		w.MovePlayer()
	}
	require.Equal(t, PlayerLookNorth, p.Frame)

	w.Cmd = Input{East: true}
	w.MovePlayer()
	w.Cmd = Input{}
	w.MovePlayer()

	assert.Equal(t, 1, p.idleCount)
}

func TestPounceHelper(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Player)
		want  bool
	}{
		{"falling onto target", func(p *Player) {}, true},
		{"late in a jump", func(p *Player) { p.Falling = false; p.JumpTime = 7 }, true},
		{"target not under player", func(p *Player) { p.PounceReady = false }, false},
		{"standing", func(p *Player) { p.Falling = false }, false},
		{"dead", func(p *Player) { p.DeadTime = 1 }, false},
		{"dizzy", func(p *Player) { p.DizzyLeft = 5 }, false},
		{"still recoiling", func(p *Player) { p.Recoiling = true; p.MomentumNorth = 5 }, false},
		{"recoil nearly spent", func(p *Player) { p.Recoiling = true; p.MomentumNorth = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := groundPlayer(w, 10, Dir4East)
			p.Y = 15
			p.Falling = true
			p.PounceReady = true
			tt.setup(p)

			got := w.PounceHelper(7)
			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, 8, p.MomentumNorth)
				assert.True(t, p.Recoiling)
				assert.Equal(t, PounceHintSeen, w.Hints.Pounce)
			}
		})
	}
}

func TestPounceStreakBubble(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)

	for i := 1; i <= 10; i++ {
		p.Falling = true
		p.Recoiling = false
		p.PounceReady = true
		require.True(t, w.PounceHelper(7), "pounce %d", i)
	}

	assert.Zero(t, p.PounceStreak)
	require.Equal(t, 1, w.NumActors())
	assert.Equal(t, ActSpeechWow50K, w.Actor(0).Kind)
}

func TestHurtPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	require.Equal(t, 4, p.Health)

	w.HurtPlayer()
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 44, p.HurtCooldown)
	assert.True(t, w.Hints.SawHurtBubble)
	assert.Equal(t, PounceHintQueued, w.Hints.Pounce)
	require.Equal(t, 1, w.NumActors())
	assert.Equal(t, ActSpeechOuch, w.Actor(0).Kind)

	w.HurtPlayer()
	assert.Equal(t, 3, p.Health, "cooldown protects")

	p.HurtCooldown = 0
	w.GodMode = true
	w.HurtPlayer()
	assert.Equal(t, 3, p.Health, "god mode protects")

	w.GodMode = false
	for range 3 {
		p.HurtCooldown = 0
		w.HurtPlayer()
	}
	assert.Zero(t, p.Health)
	assert.Equal(t, 1, p.DeadTime)
	assert.Equal(t, 1, w.NumActors(), "only the first hurt speaks")
}

func TestPlaceBombOncePerPress(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	p.Bombs = 3

	for range 3 {
		w.Cmd = Input{Bomb: true}
		w.MovePlayer()
	}
	assert.Equal(t, 2, p.Bombs, "holding the key places one bomb")
	require.Equal(t, 1, w.NumActors())
	bomb := w.Actor(0)
	assert.Equal(t, ActBombArmed, bomb.Kind)
	assert.Equal(t, 13, bomb.X)
	assert.Equal(t, 17, bomb.Y)

	w.Cmd = Input{}
	w.MovePlayer()
	w.Cmd = Input{Bomb: true}
	w.MovePlayer()
	assert.Equal(t, 1, p.Bombs)
	assert.Equal(t, 2, w.NumActors())
}

func TestPlaceBombWest(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4West)
	p.BaseFrame = PlayerBaseWest
	p.Bombs = 1

	w.Cmd = Input{Bomb: true}
	w.MovePlayer()

	assert.Zero(t, p.Bombs)
	require.Equal(t, 1, w.NumActors())
	assert.Equal(t, 8, w.Actor(0).X)
	assert.Equal(t, PlayerCrouch, p.Frame)
	assert.Equal(t, Dir4West, p.BombDir)
}

func TestPlaceBombWithoutBombs(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		sawHint    bool
		wantNotice []Notice
		wantSounds []Sound
	}{
		{"west shows the hint only", PlayerBaseWest, false, []Notice{{Event: EventBombHint}}, nil},
		{"east shows the hint and refuses", PlayerBaseEast, false, []Notice{{Event: EventBombHint}}, []Sound{SndNoBombs}},
		{"west after the hint", PlayerBaseWest, true, nil, []Sound{SndNoBombs}},
		{"east after the hint", PlayerBaseEast, true, nil, []Sound{SndNoBombs}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			audio := &recordingAudio{}
			w.SetAudio(audio)
			p := groundPlayer(w, 10, Dir4East)
			p.BaseFrame = tt.base
			w.Hints.SawBombHint = tt.sawHint
			w.Notices()

			w.Cmd = Input{Bomb: true}
			w.MovePlayer()

			assert.Equal(t, tt.wantNotice, w.Notices())
			assert.Equal(t, tt.wantSounds, audio.sounds)
			assert.True(t, w.Hints.SawBombHint)
			assert.Zero(t, w.NumActors())
		})
	}
}

func TestPlaceBombBlockedByWall(t *testing.T) {
	w := newTestWorld(t)
	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	w.Map.SetTile(wall, 14, 17)

	p := groundPlayer(w, 10, Dir4East)
	p.Bombs = 1
	w.Cmd = Input{Bomb: true}
	w.MovePlayer()

	assert.Equal(t, 1, p.Bombs)
	assert.Zero(t, w.NumActors())
}

func TestJumpFollowsTable(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	p := groundPlayer(w, 10, Dir4East)

	want := []int{17, 16, 15, 14, 13, 12, 11, 11}
	for i, y := range want {
		w.Cmd = Input{Jump: true}
		w.MovePlayer()
		require.Equal(t, y, p.Y, "frame %d", i+1)
	}

	assert.True(t, p.Falling, "the jump turns into a fall")
	assert.True(t, p.JumpLatch)
	assert.Equal(t, []Sound{SndPlayerJump}, audio.sounds)
}

func TestJumpBumpsHead(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	const ceiling = TileSolidFirst + 16
	w.Map.SetAttr(ceiling, AttrSolid)
	w.Map.SetTileRepeat(ceiling, w.Map.Width, 0, 12)
	p := groundPlayer(w, 10, Dir4East)

	w.Cmd = Input{Jump: true}
	w.MovePlayer()
	require.Equal(t, 17, p.Y)

	w.MovePlayer()
	assert.Equal(t, 17, p.Y, "pushed back under the ceiling")
	assert.True(t, p.Falling)
	assert.True(t, p.JumpLatch)
	assert.Zero(t, p.MomentumNorth)
	assert.Equal(t, []Sound{SndPlayerJump, SndPlayerHitHead}, audio.sounds)
}

// clingWall builds a wall at column x from row top down to row bottom.
func clingWall(w *World, x, top, bottom int, attr TileAttr) {
	const wall = TileSolidFirst + 24
	w.Map.SetAttr(wall, attr)
	for y := top; y <= bottom; y++ {
		w.Map.SetTile(wall, x, y)
	}
}

func TestWalkIntoWallClings(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	clingWall(w, 9, 8, 15, AttrSolid|AttrCanCling)

	p := groundPlayer(w, 10, Dir4West)
	p.Y = 15
	p.Falling = true
	p.FallTime = 2

	w.Cmd = Input{West: true}
	w.MovePlayer()

	assert.Equal(t, Dir4West, p.ClingDir)
	assert.Equal(t, 10, p.X)
	assert.Equal(t, 15, p.Y)
	assert.False(t, p.Falling)
	assert.Equal(t, PlayerCling, p.Frame)
	assert.Equal(t, []Sound{SndPlayerCling}, audio.sounds)

	w.Cmd = Input{}
	w.MovePlayer()
	assert.Equal(t, Dir4West, p.ClingDir, "a dry wall holds")
	assert.Equal(t, 15, p.Y)
}

func TestWalkIntoWallWithoutGripFalls(t *testing.T) {
	w := newTestWorld(t)
	clingWall(w, 9, 8, 15, AttrSolid)

	p := groundPlayer(w, 10, Dir4West)
	p.Y = 15
	p.Falling = true

	w.Cmd = Input{West: true}
	w.MovePlayer()

	assert.Equal(t, Dir4None, p.ClingDir)
	assert.True(t, p.Falling)
}

func TestClingSlipsDownSlipperyWall(t *testing.T) {
	w := newTestWorld(t)
	clingWall(w, 9, 8, 15, AttrSolid|AttrCanCling|AttrSlippery)

	p := groundPlayer(w, 10, Dir4West)
	p.Y = 15
	p.ClingDir = Dir4West

	tests := []struct {
		y     int
		cling Dir4
	}{
		{16, Dir4West},
		{17, Dir4West},
		// The wall ends at row 15, so the grip point at row 16 lets go.
		{18, Dir4None},
	}
	for i, tt := range tests {
		w.Cmd = Input{}
		w.MovePlayer()
		assert.Equal(t, tt.y, p.Y, "frame %d", i+1)
		assert.Equal(t, tt.cling, p.ClingDir, "frame %d", i+1)
	}
	assert.True(t, p.Falling)
}

func TestMovePlayerPushStopsAtWall(t *testing.T) {
	w := newTestWorld(t)
	const wall = TileSolidFirst + 8
	w.Map.SetAttr(wall, AttrSolid)
	for y := 15; y <= 19; y++ {
		w.Map.SetTile(wall, 15, y)
	}

	p := groundPlayer(w, 10, Dir4East)
	w.ScrollX = 0
	w.SetPlayerPush(Dir8East, 10, 2, PlayerPushed, false, true)

	w.MovePlayerPush()
	assert.Equal(t, 12, p.X)
	assert.True(t, p.Pushed)
	assert.Equal(t, 1, p.PushTime)
	assert.Equal(t, 2, w.ScrollX)

	w.MovePlayerPush()
	assert.Equal(t, 12, p.X, "the step into the wall is rolled back")
	assert.Equal(t, 19, p.Y)
	assert.Equal(t, 2, w.ScrollX)
	assert.False(t, p.Pushed)
	assert.True(t, p.Falling)
	assert.Equal(t, Dir8Stationary, p.PushDir)
}

func TestMovePlayerPushExpires(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	w.SetPlayerPush(Dir8West, 3, 1, PlayerPushed, false, false)

	for range 2 {
		w.MovePlayerPush()
	}
	require.True(t, p.Pushed)

	w.MovePlayerPush()
	assert.False(t, p.Pushed)
	assert.Equal(t, 7, p.X)
}

func TestMovePlayerPushCancel(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	w.SetPlayerPush(Dir8East, 10, 1, PlayerPushed, true, false)

	w.Cmd = Input{Jump: true}
	w.MovePlayerPush()

	assert.False(t, p.Pushed)
	assert.Equal(t, 10, p.X)
}

func TestMovePlayerPushStopsAtMapEdge(t *testing.T) {
	tests := []struct {
		name string
		x    int
		dir  Dir8
	}{
		{"west edge", 0, Dir8West},
		{"east edge", 61, Dir8East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := groundPlayer(w, tt.x, Dir4East)
			w.SetPlayerPush(tt.dir, 3, 1, PlayerPushed, false, false)

			for range 3 {
				w.MovePlayerPush()
			}
			assert.Equal(t, tt.x, p.X)
			assert.False(t, p.Pushed)
		})
	}
}

func TestLongFallQueuesDizzy(t *testing.T) {
	w := newTestWorld(t)
	w.Map.SetTileRepeat(TileEmpty, w.Map.Width, 0, 20)
	w.Map.SetTileRepeat(tileFloor, w.Map.Width, 0, 90)

	p := groundPlayer(w, 10, Dir4East)
	p.Falling = true

	for i := 1; i <= 25; i++ {
		w.MovePlayer()
		require.Equal(t, i, p.FallTime)

		switch {
		case i < 10:
			assert.Equal(t, PlayerFall, p.Frame, "frame %d", i)
		case i < 25:
			assert.Equal(t, PlayerFallLong, p.Frame, "frame %d", i)
		default:
			assert.Equal(t, PlayerFallSevere, p.Frame, "frame %d", i)
		}
		assert.Equal(t, i == 25, p.QueueDizzy, "frame %d", i)
	}
	assert.Equal(t, 64, p.Y)

	for i := 0; p.Falling; i++ {
		require.Less(t, i, 30, "never landed")
		w.MovePlayer()
	}
	assert.Equal(t, 89, p.Y)
	require.True(t, p.QueueDizzy)

	w.ProcessPlayerDizzy()
	assert.False(t, p.QueueDizzy)
	assert.Equal(t, 7, p.DizzyLeft)
	assert.Equal(t, PlayerShake1, p.Frame)

	w.Cmd = Input{East: true}
	w.MovePlayer()
	assert.Equal(t, 10, p.X, "no walking while dizzy")
}

func TestScrollFollowsPlayer(t *testing.T) {
	tests := []struct {
		name             string
		x                int
		cmd              Input
		scrollX, scrollY int
		wantX, wantY     int
	}{
		{"inside margins", 25, Input{}, 10, 9, 10, 9},
		{"below bottom margin", 25, Input{}, 10, 0, 10, 1},
		{"above top margin", 25, Input{}, 10, 15, 10, 14},
		{"past east margin", 40, Input{}, 10, 9, 11, 9},
		{"past west margin", 20, Input{}, 15, 9, 14, 9},
		{"looking up", 25, Input{North: true}, 10, 9, 10, 8},
		{"looking down", 25, Input{South: true}, 10, 9, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			groundPlayer(w, tt.x, Dir4East)
			w.ScrollX, w.ScrollY = tt.scrollX, tt.scrollY
			w.Cmd = tt.cmd

			w.MovePlayer()

			assert.Equal(t, tt.wantX, w.ScrollX)
			assert.Equal(t, tt.wantY, w.ScrollY)
		})
	}
}

// mountScooter puts the player on a scooter that has finished lifting off.
func mountScooter(w *World, x, y int) *Player {
	p := groundPlayer(w, x, Dir4East)
	p.Y = y
	p.Scooter = 1
	return p
}

func TestScooterLiftsOff(t *testing.T) {
	w := newTestWorld(t)
	p := groundPlayer(w, 10, Dir4East)
	p.Scooter = 4

	for range 3 {
		w.Cmd = Input{}
		w.MovePlayerScooter()
	}
	assert.Equal(t, 1, p.Scooter)
	assert.Equal(t, 16, p.Y)
	assert.Equal(t, 1, liveDecorations(w, SprScooterExhaust), "odd rows puff")

	w.Cmd = Input{}
	w.MovePlayerScooter()
	assert.Equal(t, 16, p.Y, "hovers once lifted")
	assert.Equal(t, PlayerStand, p.Frame)
}

func TestScooterMoves(t *testing.T) {
	tests := []struct {
		name         string
		base         int
		cmd          Input
		wall         bool
		wantX, wantY int
	}{
		{"east", PlayerBaseEast, Input{East: true}, false, 11, 16},
		{"east into wall", PlayerBaseEast, Input{East: true}, true, 10, 16},
		{"west turns first", PlayerBaseEast, Input{West: true}, false, 10, 16},
		{"west", PlayerBaseWest, Input{West: true}, false, 9, 16},
		{"north", PlayerBaseEast, Input{North: true}, false, 10, 15},
		{"south", PlayerBaseEast, Input{South: true}, false, 10, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			if tt.wall {
				const wall = TileSolidFirst + 8
				w.Map.SetAttr(wall, AttrSolid)
				for y := 10; y <= 17; y++ {
					w.Map.SetTile(wall, 13, y)
				}
			}
			p := mountScooter(w, 10, 16)
			p.BaseFrame = tt.base
			w.Cmd = tt.cmd

			w.MovePlayerScooter()

			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, 1, p.Scooter)
		})
	}
}

func TestScooterHoversAboveFloor(t *testing.T) {
	w := newTestWorld(t)
	p := mountScooter(w, 10, 17)

	for range 3 {
		w.Cmd = Input{South: true}
		w.MovePlayerScooter()
	}
	assert.Equal(t, 18, p.Y)
}

func TestScooterJumpDismounts(t *testing.T) {
	w := newTestWorld(t)
	audio := &recordingAudio{}
	w.SetAudio(audio)
	p := mountScooter(w, 10, 16)

	w.Cmd = Input{Jump: true}
	w.MovePlayerScooter()

	assert.Zero(t, p.Scooter)
	assert.True(t, p.Falling)
	assert.True(t, p.Recoiling)
	assert.True(t, p.JumpLatch)
	assert.Equal(t, 8, p.MomentumNorth)
	assert.Equal(t, []Sound{SndPlayerJump}, audio.sounds)
}

func TestScooterBomb(t *testing.T) {
	w := newTestWorld(t)
	p := mountScooter(w, 10, 16)
	p.Bombs = 2

	for range 3 {
		w.Cmd = Input{Bomb: true}
		w.MovePlayerScooter()
	}
	assert.Equal(t, 1, p.Bombs)
	require.Equal(t, 1, w.NumActors())
	assert.Equal(t, 13, w.Actor(0).X)
	assert.Equal(t, 14, w.Actor(0).Y)
}
