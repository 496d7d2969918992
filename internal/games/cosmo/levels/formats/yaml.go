package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Num    int               `yaml:"num"`
	Name   string            `yaml:"name"`
	Width  int               `yaml:"width"`
	Flags  YAMLFlags         `yaml:"flags"`
	Legend map[string]string `yaml:"legend,omitempty"`
	Rows   string            `yaml:"rows"`
	Actors []YAMLActor       `yaml:"actors,omitempty"`
}

// YAMLFlags are the level header fields.
type YAMLFlags struct {
	Backdrop int  `yaml:"backdrop"`
	Rain     bool `yaml:"rain"`
	HScroll  bool `yaml:"hscroll"`
	VScroll  bool `yaml:"vscroll"`
	Palette  int  `yaml:"palette"`
	Music    int  `yaml:"music"`
}

// YAMLActor places an actor or a map feature by name.
type YAMLActor struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

type asciiTile struct {
	tile engine.Tile
	attr engine.TileAttr
}

// Tile values used by the ASCII rows. Each sits in its own attribute group
// except the two slope shapes.
const (
	TileWall   = engine.TileSolidFirst
	TileIce    = engine.TileSolidFirst + 8
	TileCling  = engine.TileSolidFirst + 16
	TileSlopeE = engine.TileSolidFirst + 24
	TileSlopeW = engine.TileSolidFirst + 25
	TileBrush  = engine.TileSolidFirst + 32
)

var asciiTiles = map[rune]asciiTile{
	'#':  {TileWall, engine.AttrSolid},
	'~':  {TileIce, engine.AttrSolid | engine.AttrSlippery},
	'|':  {TileCling, engine.AttrSolid | engine.AttrCanCling},
	'/':  {TileSlopeE, engine.AttrBlockSouth | engine.AttrSloped},
	'\\': {TileSlopeW, engine.AttrBlockSouth | engine.AttrSloped},
	'%':  {TileBrush, engine.AttrInFront},
	'=':  {engine.TileStripedPlatform, engine.AttrBlockSouth},
	'-':  {engine.TileInvisiblePlatform, engine.AttrBlockSouth},
}

// Built-in actor markers. A level legend may add more.
var asciiActors = map[rune]string{
	'@': "player-start",
	'*': "star-float",
	'E': "exit-sign",
}

var featureCodes = map[string]int{
	"player-start":   engine.MapPlayerStart,
	"platform":       engine.MapPlatform,
	"fountain-small": engine.MapFountainSmall,
	"fountain-med":   engine.MapFountainMedium,
	"fountain-large": engine.MapFountainLarge,
	"fountain-huge":  engine.MapFountainHuge,
	"light-west":     engine.MapLightWest,
	"light-middle":   engine.MapLightMiddle,
	"light-east":     engine.MapLightEast,
}

// ActorCode resolves a feature or actor kind name to its map code.
func ActorCode(name string) (int, bool) {
	if code, ok := featureCodes[name]; ok {
		return code, true
	}
	if kind, ok := engine.ActorKindByName(name); ok {
		return engine.FirstActorCode + int(kind), true
	}
	return 0, false
}

// Flags packs the header fields into the level flags word.
func (f YAMLFlags) Flags() uint16 {
	v := uint16(f.Backdrop) & engine.LevelBackdropMask
	if f.Rain {
		v |= engine.LevelRain
	}
	if f.HScroll {
		v |= engine.LevelHScrollBackdrop
	}
	if f.VScroll {
		v |= engine.LevelVScrollBackdrop
	}
	v |= uint16(f.Palette&0x07) << 8
	v |= uint16(f.Music&0x1f) << 11
	return v
}

// ParseYAML parses a YAML level file. Row n of the rows block is map row n;
// unknown characters are empty space.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m, err := engine.NewTileMap(yl.Width)
	if err != nil {
		return Level{}, err
	}

	legend := make(map[rune]string, len(asciiActors)+len(yl.Legend))
	for r, name := range asciiActors {
		legend[r] = name
	}
	for key, name := range yl.Legend {
		r := []rune(key)
		if len(r) != 1 {
			return Level{}, fmt.Errorf("legend key %q: want a single character", key)
		}
		legend[r[0]] = name
	}

	lv := Level{
		Num:   yl.Num,
		Name:  yl.Name,
		Flags: yl.Flags.Flags(),
		Width: yl.Width,
		Attrs: make(map[engine.Tile]engine.TileAttr),
	}

	rows := strings.Split(strings.TrimRight(yl.Rows, "\n"), "\n")
	if len(rows) > m.Rows {
		return Level{}, fmt.Errorf("%d rows, map holds %d", len(rows), m.Rows)
	}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if x >= yl.Width {
				return Level{}, fmt.Errorf("row %d is wider than %d", y, yl.Width)
			}
			if at, ok := asciiTiles[r]; ok {
				m.SetTile(at.tile, x, y)
				lv.Attrs[at.tile] = at.attr
				continue
			}
			name, ok := legend[r]
			if !ok {
				continue
			}
			code, ok := ActorCode(name)
			if !ok {
				return Level{}, fmt.Errorf("row %d: unknown actor %q", y, name)
			}
			lv.Actors = append(lv.Actors, engine.MapActor{Code: code, X: x, Y: y})
		}
	}

	for _, a := range yl.Actors {
		code, ok := ActorCode(a.Kind)
		if !ok {
			return Level{}, fmt.Errorf("unknown actor %q", a.Kind)
		}
		lv.Actors = append(lv.Actors, engine.MapActor{Code: code, X: a.X, Y: a.Y})
	}

	lv.Tiles = append([]engine.Tile(nil), m.Cells()...)
	return lv, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".mni"}
}
