package cosmo

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
)

type drawKind int

const (
	drawSprite drawKind = iota
	drawPlayer
	drawLight
)

type drawCmd struct {
	kind   drawKind
	sprite engine.Sprite
	frame  int
	x, y   int
	mode   engine.DrawMode
}

// frame collects the draw calls of one simulation step so Render can paint
// them later, any number of times.
type frame struct {
	m                *engine.TileMap
	scrollX, scrollY int
	cmds             []drawCmd
}

func newFrame() *frame {
	return &frame{cmds: make([]drawCmd, 0, 64)}
}

func (f *frame) reset() {
	f.cmds = f.cmds[:0]
}

func (f *frame) DrawMapRegion(m *engine.TileMap, scrollX, scrollY int) {
	f.m = m
	f.scrollX, f.scrollY = scrollX, scrollY
}

func (f *frame) DrawSprite(s engine.Sprite, frameNum, x, y int, mode engine.DrawMode) {
	f.cmds = append(f.cmds, drawCmd{kind: drawSprite, sprite: s, frame: frameNum, x: x, y: y, mode: mode})
}

func (f *frame) DrawPlayer(frameNum, x, y int, mode engine.DrawMode) {
	f.cmds = append(f.cmds, drawCmd{kind: drawPlayer, frame: frameNum, x: x, y: y, mode: mode})
}

func (f *frame) DrawLight(side engine.LightSide, x, y int) {
	f.cmds = append(f.cmds, drawCmd{kind: drawLight, frame: int(side), x: x, y: y})
}

// view places the scrolled map window on the screen. Each map tile is tw
// columns wide.
type view struct {
	ox, oy int
	tw     int
}

// viewFor fits the map window into a screen, or reports false when the
// screen cannot hold it.
func viewFor(w, h int) (view, bool) {
	if h < engine.ScrollH+hudRows+2 {
		return view{}, false
	}
	switch {
	case w >= engine.ScrollW*2+2:
		return view{ox: (w - engine.ScrollW*2) / 2, oy: 1, tw: 2}, true
	case w >= engine.ScrollW+2:
		return view{ox: (w - engine.ScrollW) / 2, oy: 1, tw: 1}, true
	}
	return view{}, false
}

// hudRows is the status and message area below the map window.
const hudRows = 3

// mapWindow is the visible part of the map in tiles.
var mapWindow = core.NewRect(0, 0, engine.ScrollW, engine.ScrollH)

func (v view) rect() core.Rect {
	return core.NewRect(v.ox, v.oy, engine.ScrollW*v.tw, engine.ScrollH)
}

// put writes one map tile worth of columns at view cell cx,cy.
func (v view) put(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if !mapWindow.Contains(cx, cy) {
		return
	}
	for i := range v.tw {
		dst.SetColor(v.ox+cx*v.tw+i, v.oy+cy, r, c)
	}
}

// paint draws the recorded frame: map, then sprites and lights in call
// order.
func (f *frame) paint(dst *core.Screen, v view, sprites *engine.SpriteTable) {
	if f.m == nil {
		return
	}
	r := v.rect()
	dst.DrawBoxColor(r.Grow(1), core.ColorGray)

	for cy := range engine.ScrollH {
		for cx := range engine.ScrollW {
			g, c := tileGlyph(f.m, f.m.Tile(f.scrollX+cx, f.scrollY+cy))
			v.put(dst, cx, cy, g, c)
		}
	}

	for _, cmd := range f.cmds {
		switch cmd.kind {
		case drawLight:
			f.paintLight(dst, v, cmd)
		case drawPlayer:
			f.paintPlayer(dst, v, cmd)
		default:
			w, h := sprites.Size(cmd.sprite, cmd.frame)
			g, c := spriteGlyph(cmd.sprite)
			f.paintBox(dst, v, cmd, w, h, func(int, int) (rune, core.Color) { return g, c })
		}
	}
}

// paintBox fills a w by h tile box whose bottom-left tile is the command's
// position. Map-relative boxes are hidden behind in-front tiles unless
// drawn in front.
func (f *frame) paintBox(dst *core.Screen, v view, cmd drawCmd, w, h int, glyph func(dx, dy int) (rune, core.Color)) {
	originX, originY := f.scrollX, f.scrollY
	if cmd.mode == engine.DrawAbsolute {
		// Absolute positions count the window border.
		originX, originY = 1, 1
	}

	for dy := range h {
		for dx := range w {
			mx, my := cmd.x+dx, cmd.y-h+1+dy
			if cmd.mode != engine.DrawAbsolute && cmd.mode != engine.DrawInFront && f.m.InFront(mx, my) {
				continue
			}
			g, c := glyph(dx, dy)
			switch cmd.mode {
			case engine.DrawWhite:
				c = core.ColorBrightWhite
			case engine.DrawTranslucent:
				c = core.ColorGray
			}
			v.put(dst, mx-originX, my-originY, g, c)
		}
	}
}

func (f *frame) paintPlayer(dst *core.Screen, v view, cmd drawCmd) {
	dead := cmd.frame == engine.PlayerDead1 || cmd.frame == engine.PlayerDead2
	east := cmd.frame >= engine.PlayerBaseEast && !dead

	f.paintBox(dst, v, cmd, engine.PlayerWidth, 5, func(dx, dy int) (rune, core.Color) {
		switch {
		case dead:
			return 'x', core.ColorBrightRed
		case dy == 1 && dx == 2 && east:
			return '▶', core.ColorBrightWhite
		case dy == 1 && dx == 0 && !east:
			return '◀', core.ColorBrightWhite
		case dy == 0:
			return '▄', core.ColorBrightGreen
		}
		return '█', core.ColorBrightGreen
	})
}

func (f *frame) paintLight(dst *core.Screen, v view, cmd drawCmd) {
	cx, cy := cmd.x-f.scrollX, cmd.y-f.scrollY
	x := v.ox + cx*v.tw
	if dst.GetCell(x, v.oy+cy).Rune != ' ' {
		return
	}
	v.put(dst, cx, cy, '░', core.ColorYellow)
}

// tileGlyph picks the character for a tile from its attributes.
func tileGlyph(m *engine.TileMap, t engine.Tile) (rune, core.Color) {
	switch t {
	case engine.TileEmpty, engine.TileInvisiblePlatform:
		return ' ', core.ColorDefault
	case engine.TileMysteryBlockNW, engine.TileMysteryBlockNE,
		engine.TileMysteryBlockSW, engine.TileMysteryBlockSE:
		return '?', core.ColorBrightMagenta
	case engine.TileDoorBlock:
		return '▒', core.ColorYellow
	}

	a := m.Attr(t)
	switch {
	case t < engine.TileStripedPlatform:
		// Platform direction commands are invisible.
		return ' ', core.ColorDefault
	case a&engine.AttrSloped != 0:
		if a&engine.AttrBlockWest != 0 {
			return '◣', core.ColorGreen
		}
		return '◢', core.ColorGreen
	case a&engine.AttrSlippery != 0:
		return '▒', core.ColorBrightCyan
	case a&engine.AttrCanCling != 0:
		return '▓', core.ColorYellow
	case a&engine.AttrSolid == engine.AttrSolid:
		return '█', core.ColorBlue
	case a&engine.AttrBlockSouth != 0:
		return '▀', core.ColorBrightWhite
	case a&engine.AttrInFront != 0:
		return '░', core.ColorGreen
	case a != 0:
		return '▪', core.ColorBlue
	}
	return '·', core.ColorGray
}

type glyphRule struct {
	key   string
	glyph rune
	color core.Color
}

// spriteGlyphs is matched in order against the sprite name.
var spriteGlyphs = []glyphRule{
	{"score-effect", '$', core.ColorBrightGreen},
	{"speech", '!', core.ColorBrightWhite},
	{"shard", '%', core.ColorOrange},
	{"debris", '%', core.ColorOrange},
	{"sparkle", '+', core.ColorBrightYellow},
	{"smoke", '~', core.ColorGray},
	{"explosion", '#', core.ColorBrightRed},
	{"raindrop", '\'', core.ColorBrightBlue},
	{"spikes", '^', core.ColorBrightWhite},
	{"saw-blade", 'x', core.ColorBrightWhite},
	{"bomb", 'o', core.ColorBrightRed},
	{"barrel", 'B', core.ColorOrange},
	{"basket", 'b', core.ColorOrange},
	{"exit", 'E', core.ColorBrightGreen},
	{"hint-globe", '?', core.ColorBrightMagenta},
	{"door", 'D', core.ColorYellow},
	{"switch", 'S', core.ColorYellow},
	{"force-field", '|', core.ColorBrightCyan},
	{"fountain", '≈', core.ColorBrightBlue},
	{"transporter", 'T', core.ColorBrightCyan},
	{"pipe", 'O', core.ColorGray},
	{"jump-pad", 'J', core.ColorBrightMagenta},
	{"power-up", 'P', core.ColorBrightMagenta},
	{"invincibility", 'I', core.ColorBrightMagenta},
	{"hamburger", 'H', core.ColorBrightYellow},
	{"ghost", 'G', core.ColorWhite},
	{"boss", 'W', core.ColorBrightRed},
	{"robot", 'R', core.ColorBrightRed},
	{"slime", 's', core.ColorGreen},
	{"slug", 's', core.ColorGreen},
	{"worm", 'w', core.ColorGreen},
	{"plant", 'Y', core.ColorGreen},
	{"fire", '•', core.ColorBrightRed},
	{"flame", '•', core.ColorBrightRed},
	{"spear", '•', core.ColorBrightRed},
	{"projectile", '•', core.ColorBrightRed},
	{"bullet", '•', core.ColorBrightRed},
	{"spark", '•', core.ColorBrightRed},
	{"star", '*', core.ColorBrightYellow},
}

// spriteGlyph picks a character and color for a sprite. Sprites no rule
// matches use the first letter of their name.
func spriteGlyph(s engine.Sprite) (rune, core.Color) {
	name := s.String()
	for _, r := range spriteGlyphs {
		if strings.Contains(name, r.key) {
			return r.glyph, r.color
		}
	}
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		return r, core.ColorBrightGreen
	}
	return '?', core.ColorDefault
}
