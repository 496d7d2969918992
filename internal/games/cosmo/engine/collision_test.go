package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileFloor = TileSolidFirst

// newTestWorld returns a world on an empty 64-wide map where every sprite
// is 1x1. Row 20 is a solid floor.
func newTestWorld(t *testing.T) *World {
	t.Helper()

	m, err := NewTileMap(64)
	require.NoError(t, err)
	m.SetAttr(tileFloor, AttrSolid)
	m.SetTileRepeat(tileFloor, m.Width, 0, 20)

	w := NewWorld(Options{Sprites: NewSpriteTable(), Seed: 1})
	w.LoadLevel(&Level{Num: 0, Map: m})
	return w
}

func TestNewTileMapWidth(t *testing.T) {
	for _, width := range []int{32, 64, 128, 256, 512, 1024, 2048} {
		m, err := NewTileMap(width)
		require.NoError(t, err, "width %d", width)
		assert.Equal(t, MapCells/width, m.Rows)
		assert.Equal(t, m.Rows-(ScrollH+1), m.Height)
	}

	for _, width := range []int{0, 16, 100, 4096} {
		_, err := NewTileMap(width)
		assert.ErrorIs(t, err, ErrBadMapWidth, "width %d", width)
	}
}

func TestTileOutsideGridIsEmpty(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, TileEmpty, w.Map.Tile(0, -1))
	assert.Equal(t, TileEmpty, w.Map.Tile(0, w.Map.Rows))

	// Dropped, not a panic.
	w.Map.SetTile(tileFloor, 0, w.Map.Rows+5)
}

func TestSpriteMoveMapEdges(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, MoveBlocked, w.TestSpriteMove(Dir4West, SprBarrel, 0, 0, 5), "west edge")
	assert.Equal(t, MoveFree, w.TestSpriteMove(Dir4West, SprBarrel, 0, 1, 5))

	assert.Equal(t, MoveBlocked, w.TestSpriteMove(Dir4East, SprBarrel, 0, 63, 5), "east edge")
	assert.Equal(t, MoveFree, w.TestSpriteMove(Dir4East, SprBarrel, 0, 62, 5))

	w.Sprites.Set(SprBarrel, 0, 3, 2)
	assert.Equal(t, MoveBlocked, w.TestSpriteMove(Dir4East, SprBarrel, 0, 61, 5), "wide sprite at east edge")
}

func TestSpriteMoveBlockBits(t *testing.T) {
	tests := []struct {
		name string
		attr TileAttr
		dir  Dir4
		want Move
	}{
		{"south blocks south", AttrBlockSouth, Dir4South, MoveBlocked},
		{"south ignores north", AttrBlockSouth, Dir4North, MoveFree},
		{"north blocks north", AttrBlockNorth, Dir4North, MoveBlocked},
		{"west blocks west", AttrBlockWest, Dir4West, MoveBlocked},
		{"west ignores east", AttrBlockWest, Dir4East, MoveFree},
		{"east blocks east", AttrBlockEast, Dir4East, MoveBlocked},
		{"slope is sloped going south", AttrSloped, Dir4South, MoveSloped},
		{"slope is sloped going west", AttrSloped, Dir4West, MoveSloped},
		{"slippery alone is free", AttrSlippery, Dir4South, MoveFree},
	}

	const probe = TileSolidFirst + 8

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Map.SetAttr(probe, tt.attr)
			w.Map.SetTile(probe, 10, 10)

			assert.Equal(t, tt.want, w.TestSpriteMove(tt.dir, SprBarrel, 0, 10, 10))
		})
	}
}

func TestPlayerMoveSouthOntoFloor(t *testing.T) {
	w := newTestWorld(t)
	w.Player.X, w.Player.Y = 10, 19

	assert.Equal(t, MoveBlocked, w.TestPlayerMove(Dir4South, 10, 20))
	assert.Equal(t, MoveFree, w.TestPlayerMove(Dir4South, 10, 15))
}

func TestPlayerMoveSlidingFlags(t *testing.T) {
	w := newTestWorld(t)
	const ice = TileSolidFirst + 16
	w.Map.SetAttr(ice, AttrSloped|AttrSlippery)
	w.Map.SetTile(ice, 10, 15)

	w.TestPlayerMove(Dir4South, 10, 15)
	assert.True(t, w.Player.SlidingEast)
	assert.False(t, w.Player.SlidingWest)

	w.TestPlayerMove(Dir4South, 8, 15)
	assert.False(t, w.Player.SlidingEast)
	assert.True(t, w.Player.SlidingWest)
}

func TestIsIntersecting(t *testing.T) {
	w := newTestWorld(t)
	w.Sprites.Set(SprBarrel, 0, 2, 2)

	assert.True(t, w.IsIntersecting(SprBarrel, 0, 10, 10, SprBarrel, 0, 11, 11))
	assert.True(t, w.IsIntersecting(SprBarrel, 0, 10, 10, SprBarrel, 0, 9, 9))
	assert.False(t, w.IsIntersecting(SprBarrel, 0, 10, 10, SprBarrel, 0, 12, 10))
	assert.False(t, w.IsIntersecting(SprBarrel, 0, 10, 10, SprBarrel, 0, 10, 12))
}

func TestIsTouchingPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.Player.X, w.Player.Y = 10, 19

	assert.True(t, w.IsTouchingPlayer(SprBarrel, 0, 11, 17))
	assert.False(t, w.IsTouchingPlayer(SprBarrel, 0, 13, 17))
	assert.False(t, w.IsTouchingPlayer(SprBarrel, 0, 11, 13))

	w.Player.DeadTime = 1
	assert.False(t, w.IsTouchingPlayer(SprBarrel, 0, 11, 17), "dead player touches nothing")
}

func TestIsSpriteVisible(t *testing.T) {
	w := newTestWorld(t)
	w.ScrollX, w.ScrollY = 10, 0

	assert.True(t, w.IsSpriteVisible(SprBarrel, 0, 10, 0))
	assert.True(t, w.IsSpriteVisible(SprBarrel, 0, 10+ScrollW-1, ScrollH-1))
	assert.False(t, w.IsSpriteVisible(SprBarrel, 0, 9, 5))
	assert.False(t, w.IsSpriteVisible(SprBarrel, 0, 10+ScrollW, 5))
}
