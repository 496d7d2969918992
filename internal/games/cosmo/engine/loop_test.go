package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLevels builds a small walled level for every number it knows.
type testLevels map[int]uint16

func (l testLevels) Level(num int) (*Level, error) {
	flags, ok := l[num]
	if !ok {
		return nil, ErrLevelNotFound
	}

	m, err := NewTileMap(64)
	if err != nil {
		return nil, err
	}
	m.SetAttr(tileFloor, AttrSolid)
	m.SetTileRepeat(tileFloor, m.Width, 0, 20)
	for y := range 20 {
		m.SetTile(tileFloor, 0, y)
		m.SetTile(tileFloor, 63, y)
	}

	return &Level{
		Num:   num,
		Flags: flags,
		Map:   m,
		Actors: []MapActor{
			{Code: MapPlayerStart, X: 5, Y: 19},
			{Code: FirstActorCode + int(ActStar), X: 12, Y: 17},
			{Code: FirstActorCode + int(ActBarrelYelPear), X: 20, Y: 19},
			{Code: FirstActorCode + int(ActBarrelHorn), X: 30, Y: 19},
		},
	}, nil
}

func allTestLevels() testLevels {
	l := testLevels{}
	for i := range 20 {
		l[i] = 0
	}
	return l
}

func newLevelWorld(t *testing.T, levels LevelSource, seed int64) *World {
	t.Helper()
	w := NewWorld(Options{Sprites: NewSpriteTable(), Levels: levels, Seed: seed})
	require.NoError(t, w.SwitchLevel(0))
	return w
}

// scriptedInput walks east, jumps now and then and drops a bomb.
func scriptedInput(frame int) Input {
	return Input{
		East: frame%40 < 30,
		West: frame%40 >= 35,
		Jump: frame%25 < 4,
		Bomb: frame == 50,
	}
}

func TestSwitchLevelInstallsLevel(t *testing.T) {
	w := newLevelWorld(t, allTestLevels(), 1)

	assert.Equal(t, 0, w.Num)
	assert.Equal(t, 5, w.Player.X)
	assert.Equal(t, 19, w.Player.Y)
	assert.Equal(t, 3, w.NumActors())
	assert.Equal(t, 2, w.NumBarrels)
	assert.Contains(t, w.Notices(), Notice{Event: EventLevelIntro, Value: 0})

	b, err := w.saves.Load(TempSlot)
	require.NoError(t, err)
	assert.True(t, b.Valid())
	assert.Equal(t, 0, b.LevelNum)
}

func TestSwitchLevelMissing(t *testing.T) {
	w := NewWorld(Options{Sprites: NewSpriteTable(), Levels: testLevels{0: 0}})
	assert.ErrorIs(t, w.SwitchLevel(7), ErrLevelNotFound)

	w = NewWorld(Options{Sprites: NewSpriteTable()})
	assert.Error(t, w.SwitchLevel(0))
}

func TestApplyFlags(t *testing.T) {
	w := newTestWorld(t)
	w.applyFlags(0x0003 | LevelRain | LevelVScrollBackdrop | 2<<8 | 7<<11)

	assert.Equal(t, 3, w.Backdrop)
	assert.True(t, w.HasRain)
	assert.False(t, w.HScrollBackdrop)
	assert.True(t, w.VScrollBackdrop)
	assert.Equal(t, PaletteAnim(2), w.PaletteAnim)
	assert.Equal(t, 7, w.Music)
}

func TestNextLevel(t *testing.T) {
	tests := []struct {
		name      string
		num       int
		stars     uint32
		wantNum   int
		wantScore uint32
	}{
		{"first of section", 0, 0, 1, 0},
		{"second of section, few stars", 1, 10, 4, 10000},
		{"second of section, one bonus", 1, 30, 2, 30000},
		{"second of section, both bonuses", 1, 60, 3, 60000},
		{"first bonus", 2, 5, 4, 5000},
		{"second bonus", 3, 0, 4, 0},
		{"later section", 5, 0, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Num = tt.num
			w.Stars = tt.stars

			w.NextLevel()

			assert.Equal(t, tt.wantNum, w.Num)
			assert.Equal(t, tt.wantScore, w.Score)
			assert.Zero(t, w.Stars)
		})
	}
}

func TestNextLevelConfiguredOrder(t *testing.T) {
	w := NewWorld(Options{Sprites: NewSpriteTable(), LevelOrder: []int{0, 5, 9}})
	w.Num = 0
	w.NextLevel()
	assert.Equal(t, 5, w.Num)

	w.Num = 9
	w.NextLevel()
	assert.True(t, w.WinGame)
}

func TestNextLevelDemo(t *testing.T) {
	w := newTestWorld(t)
	w.Demo.Mode = DemoPlay

	for _, want := range DemoLevels[1:] {
		w.NextLevel()
		assert.Equal(t, want, w.Num)
	}
}

func TestStepLevelChange(t *testing.T) {
	w := newLevelWorld(t, testLevels{0: 0, 1: 0}, 1)
	w.Player.Health = 2
	w.Score = 400

	w.WinLevel = true
	assert.Equal(t, StepLevelChanged, w.Step(Input{}))
	assert.Equal(t, 1, w.Num)
	assert.Equal(t, 2, w.Player.Health, "health carries over")
	assert.Equal(t, uint32(400), w.Score)

	w.WinLevel = true
	assert.Equal(t, StepGameWon, w.Step(Input{}), "no level 4")
	assert.True(t, w.WinGame)
}

func TestStepRestartsAfterFallingOut(t *testing.T) {
	w := newLevelWorld(t, allTestLevels(), 1)
	w.Score = 300
	w.Player.Y = w.Map.Height + ScrollH + 5

	var res StepResult
	for range 40 {
		res = w.Step(Input{})
		if res != StepContinue {
			break
		}
	}

	require.Equal(t, StepRestarted, res)
	assert.Equal(t, 19, w.Player.Y)
	assert.Zero(t, w.Player.DeadTime)
	assert.Equal(t, uint32(0), w.Score, "score rolls back to the level start")
}

func TestStepIsDeterministic(t *testing.T) {
	w1 := newLevelWorld(t, allTestLevels(), 99)
	w2 := newLevelWorld(t, allTestLevels(), 99)

	for i := range 300 {
		in := scriptedInput(i)
		r1 := w1.Step(in)
		r2 := w2.Step(in)
		require.Equal(t, r1, r2, "frame %d", i)

		s1, s2 := w1.Snapshot(), w2.Snapshot()
		require.Equal(t, s1.Hash(), s2.Hash(), "frame %d", i)
	}

	assert.Equal(t, 300, w1.TickCount)
}

func TestDemoRecordAndPlayback(t *testing.T) {
	levels := allTestLevels()

	rec := NewWorld(Options{Sprites: NewSpriteTable(), Levels: levels, Seed: 5})
	require.NoError(t, rec.StartDemoRecording())

	var hashes []uint64
	for i := range 200 {
		require.Equal(t, StepContinue, rec.Step(scriptedInput(i)), "frame %d", i)
		snap := rec.Snapshot()
		hashes = append(hashes, snap.Hash())
	}
	require.Len(t, rec.Demo.Tape.Frames, 200)

	var buf bytes.Buffer
	_, err := rec.Demo.Tape.WriteTo(&buf)
	require.NoError(t, err)
	tape, err := ReadDemoTape(&buf)
	require.NoError(t, err)

	play := NewWorld(Options{Sprites: NewSpriteTable(), Levels: levels, Seed: 5})
	require.NoError(t, play.StartDemoPlayback(tape))

	for i := range 200 {
		require.Equal(t, StepContinue, play.Step(Input{West: true}), "frame %d", i)
		snap := play.Snapshot()
		require.Equal(t, hashes[i], snap.Hash(), "frame %d", i)
	}

	assert.Equal(t, StepQuit, play.Step(Input{}), "tape ran out")
}

func TestDemoLevelSkipBit(t *testing.T) {
	play := NewWorld(Options{Sprites: NewSpriteTable(), Levels: allTestLevels()})
	tape := &DemoTape{}
	require.NoError(t, tape.Append(Input{}))
	require.NoError(t, tape.Append(Input{Win: true}))
	require.NoError(t, play.StartDemoPlayback(tape))

	assert.Equal(t, StepContinue, play.Step(Input{}))
	assert.Equal(t, StepLevelChanged, play.Step(Input{}))
	assert.Equal(t, DemoLevels[1], play.Num)
}
