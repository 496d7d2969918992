// Package formats provides the level file parsers: the binary map format of
// the shipped game data and a YAML format with ASCII tile rows.
package formats

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

// ErrShortMap is returned for map data that ends inside the header or the
// actor list.
var ErrShortMap = errors.New("map data truncated")

// binaryHeaderSize is the flags, width and actor word count.
const binaryHeaderSize = 6

// TileAttrFileSize is the size of the tile attribute file shipped with the
// game data.
const TileAttrFileSize = 7000

// Level is a parsed level, independent of the file it came from.
type Level struct {
	Num    int
	Name   string
	Flags  uint16
	Width  int
	Tiles  []engine.Tile
	Attrs  map[engine.Tile]engine.TileAttr
	Actors []engine.MapActor
}

// ParseBinary decodes a binary map: a little-endian flags word, the map
// width, the number of actor words, that many words as (code, x, y)
// triples, then the tile grid one word per cell. A grid shorter than the
// map is padded with empty cells.
func ParseBinary(data []byte) (Level, error) {
	if len(data) < binaryHeaderSize {
		return Level{}, fmt.Errorf("binary header: %w", ErrShortMap)
	}
	le := binary.LittleEndian

	lv := Level{
		Flags: le.Uint16(data[0:]),
		Width: int(le.Uint16(data[2:])),
	}
	if _, err := engine.NewTileMap(lv.Width); err != nil {
		return Level{}, err
	}

	words := int(le.Uint16(data[4:]))
	off := binaryHeaderSize
	if len(data) < off+words*2 {
		return Level{}, fmt.Errorf("actor list of %d words: %w", words, ErrShortMap)
	}
	for i := 0; i+2 < words; i += 3 {
		p := off + i*2
		lv.Actors = append(lv.Actors, engine.MapActor{
			Code: int(le.Uint16(data[p:])),
			X:    int(le.Uint16(data[p+2:])),
			Y:    int(le.Uint16(data[p+4:])),
		})
	}
	off += words * 2

	lv.Tiles = make([]engine.Tile, engine.MapCells)
	for i := range lv.Tiles {
		p := off + i*2
		if p+1 >= len(data) {
			break
		}
		lv.Tiles[i] = engine.Tile(le.Uint16(data[p:]))
	}
	return lv, nil
}

// MarshalBinary encodes the level in the binary map format.
func (l Level) MarshalBinary() ([]byte, error) {
	if _, err := engine.NewTileMap(l.Width); err != nil {
		return nil, err
	}
	words := len(l.Actors) * 3
	buf := make([]byte, 0, binaryHeaderSize+words*2+engine.MapCells*2)

	le := binary.LittleEndian
	buf = le.AppendUint16(buf, l.Flags)
	buf = le.AppendUint16(buf, uint16(l.Width))
	buf = le.AppendUint16(buf, uint16(words))
	for _, a := range l.Actors {
		buf = le.AppendUint16(buf, uint16(a.Code))
		buf = le.AppendUint16(buf, uint16(a.X))
		buf = le.AppendUint16(buf, uint16(a.Y))
	}
	for i := range engine.MapCells {
		var t engine.Tile
		if i < len(l.Tiles) {
			t = l.Tiles[i]
		}
		buf = le.AppendUint16(buf, uint16(t))
	}
	return buf, nil
}

// ParseTileAttrs decodes the tile attribute file, one byte per group of
// eight tile values.
func ParseTileAttrs(data []byte) ([]engine.TileAttr, error) {
	if len(data) < TileAttrFileSize {
		return nil, fmt.Errorf("tile attributes: %d bytes, want %d: %w", len(data), TileAttrFileSize, ErrShortMap)
	}
	attrs := engine.DefaultTileAttrs()
	for i, b := range data[:TileAttrFileSize] {
		attrs[i] = engine.TileAttr(b)
	}
	return attrs, nil
}
