package engine

import (
	"errors"
	"fmt"
)

// Tile is a map cell value. Attributes are looked up per group of eight
// tile values (tile/8).
type Tile uint16

// Well-known tiles. Values below TileStripedPlatform are "air": either empty
// or a platform direction command (Dir8 * 8).
const (
	TileEmpty             Tile = 0x0000
	TileInvisiblePlatform Tile = 0x0048
	TileStripedPlatform   Tile = 0x0050
	TileBluePlatform      Tile = 0x0058 // five consecutive tiles, west to east
	TileDoorBlock         Tile = 0x0080
	TileSwitchBlock1      Tile = 0x00a0
	TileSwitchBlock2      Tile = 0x00a8
	TileSwitchBlock3      Tile = 0x00b0
	TileSwitchBlock4      Tile = 0x00b8
	TileSwitchFree1N      Tile = 0x00c0 // four consecutive tiles
	TileSwitchFree1L      Tile = 0x0100 // four consecutive tiles
	TileMysteryBlockNW    Tile = 0x0120
	TileMysteryBlockNE    Tile = 0x0128
	TileMysteryBlockSW    Tile = 0x0130
	TileMysteryBlockSE    Tile = 0x0138

	// TileSolidFirst is the first tile a level tileset may define.
	TileSolidFirst Tile = 0x0140
	// TileMasked0 is the first masked (transparent background) tile.
	TileMasked0 Tile = 0x3e80
)

// TileAttr is the attribute bit set of a tile group.
type TileAttr uint8

const (
	AttrBlockSouth TileAttr = 0x01
	AttrBlockNorth TileAttr = 0x02
	AttrBlockWest  TileAttr = 0x04
	AttrBlockEast  TileAttr = 0x08
	AttrSlippery   TileAttr = 0x10
	AttrInFront    TileAttr = 0x20
	AttrSloped     TileAttr = 0x40
	AttrCanCling   TileAttr = 0x80

	AttrSolid = AttrBlockSouth | AttrBlockNorth | AttrBlockWest | AttrBlockEast
)

// MapCells is the fixed number of cells in every map; height follows from
// the width.
const MapCells = 32768

// AttrTableSize is the number of attribute groups a tile value can address.
const AttrTableSize = 0x10000 / 8

// ErrBadMapWidth is returned for widths that are not a power of two
// between 32 and 2048.
var ErrBadMapWidth = errors.New("map width must be a power of two in 32..2048")

// TileMap is the mutable grid of tiles plus the per-group attribute table.
type TileMap struct {
	Width  int
	Rows   int
	YPower uint
	// Height is the largest scroll row; the last ScrollH+1 rows sit below it.
	Height int

	cells []Tile
	attrs []TileAttr
}

// NewTileMap allocates an empty map of the given width with the default
// attribute table.
func NewTileMap(width int) (*TileMap, error) {
	var power uint
	switch width {
	case 1 << 5:
		power = 5
	case 1 << 6:
		power = 6
	case 1 << 7:
		power = 7
	case 1 << 8:
		power = 8
	case 1 << 9:
		power = 9
	case 1 << 10:
		power = 10
	case 1 << 11:
		power = 11
	default:
		return nil, fmt.Errorf("engine: new map: width %d: %w", width, ErrBadMapWidth)
	}

	rows := MapCells / width
	return &TileMap{
		Width:  width,
		Rows:   rows,
		YPower: power,
		Height: rows - (ScrollH + 1),
		cells:  make([]Tile, MapCells),
		attrs:  DefaultTileAttrs(),
	}, nil
}

// DefaultTileAttrs returns the attribute table for the engine's well-known
// tiles. Level tilesets extend it with SetAttr.
func DefaultTileAttrs() []TileAttr {
	attrs := make([]TileAttr, AttrTableSize)
	set := func(t Tile, a TileAttr) { attrs[t/8] = a }

	set(TileInvisiblePlatform, AttrBlockSouth)
	set(TileStripedPlatform, AttrBlockSouth)
	for i := range Tile(5) {
		set(TileBluePlatform+i*8, AttrBlockSouth)
	}
	set(TileDoorBlock, AttrSolid)
	set(TileSwitchBlock1, AttrSolid)
	set(TileSwitchBlock2, AttrSolid)
	set(TileSwitchBlock3, AttrSolid)
	set(TileSwitchBlock4, AttrSolid)
	for i := range Tile(4) {
		set(TileSwitchFree1N+i*8, 0)
		set(TileSwitchFree1L+i*8, 0)
	}
	set(TileMysteryBlockNW, AttrSolid)
	set(TileMysteryBlockNE, AttrSolid)
	set(TileMysteryBlockSW, AttrSolid)
	set(TileMysteryBlockSE, AttrSolid)

	return attrs
}

// SetAttr assigns the attributes of the group containing t.
func (m *TileMap) SetAttr(t Tile, a TileAttr) {
	m.attrs[t/8] = a
}

// SetAttrTable replaces the attribute table, one entry per tile group.
// Groups past the end of attrs keep their current attributes.
func (m *TileMap) SetAttrTable(attrs []TileAttr) {
	copy(m.attrs, attrs)
}

// Attr returns the attributes of a tile value.
func (m *TileMap) Attr(t Tile) TileAttr {
	return m.attrs[t/8]
}

// Has reports whether tile t carries every bit in a.
func (m *TileMap) Has(t Tile, a TileAttr) bool {
	return m.attrs[t/8]&a == a
}

// index maps a coordinate to a cell offset the way row-major addressing
// does, so x past the row end spills into the next row. -1 means outside
// the grid.
func (m *TileMap) index(x, y int) int {
	i := (y << m.YPower) + x
	if i < 0 || i >= len(m.cells) {
		return -1
	}
	return i
}

// Tile returns the tile at x,y. Cells outside the grid read as TileEmpty.
func (m *TileMap) Tile(x, y int) Tile {
	i := m.index(x, y)
	if i < 0 {
		return TileEmpty
	}
	return m.cells[i]
}

// SetTile writes t at x,y. Writes outside the grid are dropped.
func (m *TileMap) SetTile(t Tile, x, y int) {
	i := m.index(x, y)
	if i < 0 {
		return
	}
	m.cells[i] = t
}

// SetTileRepeat writes t into count cells starting at x,y going east.
func (m *TileMap) SetTileRepeat(t Tile, count, x, y int) {
	for i := range count {
		m.SetTile(t, x+i, y)
	}
}

// SetTile4 writes four distinct tiles starting at x,y going east.
func (m *TileMap) SetTile4(t1, t2, t3, t4 Tile, x, y int) {
	m.SetTile(t1, x, y)
	m.SetTile(t2, x+1, y)
	m.SetTile(t3, x+2, y)
	m.SetTile(t4, x+3, y)
}

func (m *TileMap) blockSouth(x, y int) bool { return m.Attr(m.Tile(x, y))&AttrBlockSouth != 0 }
func (m *TileMap) blockNorth(x, y int) bool { return m.Attr(m.Tile(x, y))&AttrBlockNorth != 0 }
func (m *TileMap) blockWest(x, y int) bool  { return m.Attr(m.Tile(x, y))&AttrBlockWest != 0 }
func (m *TileMap) blockEast(x, y int) bool  { return m.Attr(m.Tile(x, y))&AttrBlockEast != 0 }
func (m *TileMap) slippery(x, y int) bool   { return m.Attr(m.Tile(x, y))&AttrSlippery != 0 }
func (m *TileMap) sloped(x, y int) bool     { return m.Attr(m.Tile(x, y))&AttrSloped != 0 }
func (m *TileMap) canCling(x, y int) bool   { return m.Attr(m.Tile(x, y))&AttrCanCling != 0 }

// InFront reports whether the tile at x,y is drawn over sprites.
func (m *TileMap) InFront(x, y int) bool { return m.Attr(m.Tile(x, y))&AttrInFront != 0 }

// Cells exposes the raw grid for loaders and snapshots.
func (m *TileMap) Cells() []Tile { return m.cells }
