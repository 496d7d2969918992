package engine

// Color is one of the sixteen EGA colors. The renderer maps the palette key
// color onto whatever the level draws with the animated palette slot.
type Color int

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// PaletteAnim selects how the palette key color changes from frame to frame.
type PaletteAnim int

const (
	PaletteNone PaletteAnim = iota
	PaletteLightning
	PaletteRYW
	PaletteRGB
	PaletteMono
	PaletteWRM
	PaletteExplosions
)

var paletteTables = map[PaletteAnim][]Color{
	PaletteRYW: {
		ColorRed, ColorRed, ColorLightRed, ColorLightRed, ColorYellow, ColorYellow,
		ColorWhite, ColorWhite, ColorYellow, ColorYellow, ColorLightRed, ColorLightRed,
	},
	PaletteRGB: {
		ColorBlack, ColorBlack, ColorRed, ColorRed, ColorLightRed, ColorRed, ColorRed,
		ColorBlack, ColorBlack, ColorGreen, ColorGreen, ColorLightGreen, ColorGreen, ColorGreen,
		ColorBlack, ColorBlack, ColorBlue, ColorBlue, ColorLightBlue, ColorBlue, ColorBlue,
	},
	PaletteMono: {
		ColorBlack, ColorBlack, ColorDarkGray, ColorLightGray, ColorWhite, ColorLightGray, ColorDarkGray,
	},
	PaletteWRM: {
		ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorWhite, ColorRed, ColorLightMagenta,
	},
}

// AnimatePalette advances the palette key color one frame. Explosion
// palettes are driven by DrawExplosions instead.
func (w *World) AnimatePalette() {
	switch w.PaletteAnim {
	case PaletteNone, PaletteExplosions:
		return

	case PaletteLightning:
		switch {
		case w.lightning == 2:
			w.lightning = 0
			w.PaletteKey = ColorDarkGray
		case w.lightning == 1:
			w.lightning = 2
			w.PaletteKey = ColorLightGray
		case w.rng.Intn(32768) < 1500:
			w.PaletteKey = ColorWhite
			w.startSound(SndThunder)
			w.lightning = 1
		default:
			w.PaletteKey = ColorBlack
			w.lightning = 0
		}

	default:
		table := paletteTables[w.PaletteAnim]
		if len(table) == 0 {
			return
		}
		w.paletteStep++
		if w.paletteStep >= len(table) {
			w.paletteStep = 0
		}
		w.PaletteKey = table[w.paletteStep]
	}
}
