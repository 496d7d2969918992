package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpriteTable(t *testing.T) {
	tbl := DefaultSpriteTable()

	w, h := tbl.Size(SprBarrel, 0)
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	w, h = tbl.Size(SprBoss, 5)
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, 6, tbl.Frames(SprBoss))

	for s := range spriteCount {
		assert.GreaterOrEqual(t, tbl.Frames(s), 1, "sprite %v", s)
	}
}

func TestLoadSpriteTableErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "sprites: [1, 2"},
		{"unknown sprite", "sprites:\n  no-such-sprite: {frames: 1, size: [1, 1]}\n"},
		{"empty size", "sprites:\n  barrel: {frames: 1, size: [0, 4]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpriteTable([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSpriteTableFrameOverride(t *testing.T) {
	tbl, err := LoadSpriteTable([]byte("sprites:\n  spear: {frames: 2, size: [1, 4], frame: {1: [1, 2]}}\n"))
	require.NoError(t, err)

	w, h := tbl.Size(SprSpear, 0)
	assert.Equal(t, []int{1, 4}, []int{w, h})
	w, h = tbl.Size(SprSpear, 1)
	assert.Equal(t, []int{1, 2}, []int{w, h})

	w, h = tbl.Size(SprBarrel, 0)
	assert.Equal(t, []int{1, 1}, []int{w, h}, "unlisted sprites stay 1x1")
}

func TestSpriteByName(t *testing.T) {
	s, ok := SpriteByName("red-grn-berries")
	require.True(t, ok)
	assert.Equal(t, SprRedGrnBerries, s)
	assert.Equal(t, "red-grn-berries", s.String())

	_, ok = SpriteByName("nope")
	assert.False(t, ok)
}
