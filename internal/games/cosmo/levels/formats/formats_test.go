package formats

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

func TestBinaryRoundTrip(t *testing.T) {
	lv := Level{
		Flags: engine.LevelRain | 3,
		Width: 64,
		Tiles: make([]engine.Tile, engine.MapCells),
		Actors: []engine.MapActor{
			{Code: engine.MapPlayerStart, X: 2, Y: 10},
			{Code: engine.FirstActorCode + int(engine.ActStarFloat), X: 7, Y: 4},
		},
	}
	lv.Tiles[0] = TileWall
	lv.Tiles[64*5+3] = TileIce

	data, err := lv.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, binaryHeaderSize+6*2+engine.MapCells*2)

	got, err := ParseBinary(data)
	require.NoError(t, err)
	assert.Equal(t, lv.Flags, got.Flags)
	assert.Equal(t, 64, got.Width)
	assert.Equal(t, lv.Actors, got.Actors)
	assert.Equal(t, TileWall, got.Tiles[0])
	assert.Equal(t, TileIce, got.Tiles[64*5+3])
}

func TestParseBinaryShortGridIsPadded(t *testing.T) {
	data := binary.LittleEndian.AppendUint16(nil, 0)
	data = binary.LittleEndian.AppendUint16(data, 32)
	data = binary.LittleEndian.AppendUint16(data, 0)
	data = binary.LittleEndian.AppendUint16(data, uint16(TileWall))

	lv, err := ParseBinary(data)
	require.NoError(t, err)
	require.Len(t, lv.Tiles, engine.MapCells)
	assert.Equal(t, TileWall, lv.Tiles[0])
	assert.Equal(t, engine.TileEmpty, lv.Tiles[1])
	assert.Empty(t, lv.Actors)
}

func TestParseBinaryErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortMap},
		{"header only", []byte{0, 0, 64}, ErrShortMap},
		{"bad width", []byte{0, 0, 50, 0, 0, 0}, engine.ErrBadMapWidth},
		{"actor list cut", []byte{0, 0, 64, 0, 6, 0, 1, 0}, ErrShortMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBinary(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshalBinaryRejectsBadWidth(t *testing.T) {
	_, err := Level{Width: 100}.MarshalBinary()
	assert.ErrorIs(t, err, engine.ErrBadMapWidth)
}

func TestParseTileAttrs(t *testing.T) {
	data := make([]byte, TileAttrFileSize)
	data[int(TileWall/8)] = byte(engine.AttrSolid)
	data[int(TileIce/8)] = byte(engine.AttrSolid | engine.AttrSlippery)

	attrs, err := ParseTileAttrs(data)
	require.NoError(t, err)
	assert.Len(t, attrs, engine.AttrTableSize)
	assert.Equal(t, engine.AttrSolid, attrs[TileWall/8])
	assert.Equal(t, engine.AttrSolid|engine.AttrSlippery, attrs[TileIce/8])

	_, err = ParseTileAttrs(data[:100])
	assert.ErrorIs(t, err, ErrShortMap)
}

const sampleYAML = `
num: 3
name: "Sample"
width: 32
flags:
  backdrop: 5
  rain: true
  music: 2
legend:
  "B": barrel-yel-pear
rows: |
  ################################
  #     *                        #
  #  @     B   ~~~  ||   =    E  #
  ################################
actors:
  - kind: platform
    x: 10
    y: 1
`

func TestParseYAML(t *testing.T) {
	lv, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, lv.Num)
	assert.Equal(t, "Sample", lv.Name)
	assert.Equal(t, 32, lv.Width)
	assert.Equal(t, uint16(5)|engine.LevelRain|2<<11, lv.Flags)

	at := func(x, y int) engine.Tile { return lv.Tiles[y*32+x] }
	assert.Equal(t, TileWall, at(0, 0))
	assert.Equal(t, engine.TileEmpty, at(1, 1))
	assert.Equal(t, TileIce, at(13, 2))
	assert.Equal(t, TileCling, at(18, 2))
	assert.Equal(t, engine.TileStripedPlatform, at(23, 2))

	assert.Equal(t, engine.AttrSolid|engine.AttrSlippery, lv.Attrs[TileIce])
	assert.Equal(t, engine.AttrSolid|engine.AttrCanCling, lv.Attrs[TileCling])

	star := engine.FirstActorCode + int(engine.ActStarFloat)
	barrel, _ := ActorCode("barrel-yel-pear")
	exit, _ := ActorCode("exit-sign")
	assert.ElementsMatch(t, []engine.MapActor{
		{Code: star, X: 6, Y: 1},
		{Code: engine.MapPlayerStart, X: 3, Y: 2},
		{Code: barrel, X: 9, Y: 2},
		{Code: exit, X: 28, Y: 2},
		{Code: engine.MapPlatform, X: 10, Y: 1},
	}, lv.Actors)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad width", "width: 40\nrows: \"#\"\n"},
		{"wide legend key", "width: 32\nlegend:\n  \"ab\": ghost\nrows: \"#\"\n"},
		{"unknown legend actor", "width: 32\nlegend:\n  \"x\": no-such-thing\nrows: \"x\"\n"},
		{"unknown listed actor", "width: 32\nrows: \"#\"\nactors:\n  - kind: nope\n"},
		{"row too wide", "width: 32\nrows: \"#################################\"\n"},
		{"not yaml", "rows: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestActorCode(t *testing.T) {
	code, ok := ActorCode("player-start")
	assert.True(t, ok)
	assert.Equal(t, engine.MapPlayerStart, code)

	code, ok = ActorCode("star-float")
	assert.True(t, ok)
	assert.Equal(t, engine.FirstActorCode+int(engine.ActStarFloat), code)

	_, ok = ActorCode("dragon")
	assert.False(t, ok)
}

func TestYAMLFlags(t *testing.T) {
	f := YAMLFlags{Backdrop: 7, HScroll: true, VScroll: true, Palette: 4, Music: 17}
	v := f.Flags()
	assert.Equal(t, uint16(7), v&engine.LevelBackdropMask)
	assert.NotZero(t, v&engine.LevelHScrollBackdrop)
	assert.NotZero(t, v&engine.LevelVScrollBackdrop)
	assert.Zero(t, v&engine.LevelRain)
	assert.Equal(t, uint16(4), v>>8&0x07)
	assert.Equal(t, uint16(17), v>>11)
}
