// Package engine implements the frame-locked simulation core of Cosmo:
// tile map and collision queries, entity pools, actor behaviors, player
// kinematics and the per-frame orchestrator.
//
// Everything is driven through one explicit *World value. The engine has no
// goroutines and no wall-clock; the platform calls World.Step once per tick.
package engine

// Scroll window dimensions in tiles.
const (
	ScrollW = 38
	ScrollH = 18
)

// Pool capacities.
const (
	MaxActors      = 410
	MaxShards      = 16
	MaxExplosions  = 7
	MaxSpawners    = 6
	MaxDecorations = 10
	MaxPlatforms   = 10
	MaxFountains   = 10
	MaxLights      = 200
)

// LightCastDistance is how many rows a light cone reaches below its origin.
const LightCastDistance = 13

// Dir8 is an eight-way direction, with Stationary as the zero value.
type Dir8 int

const (
	Dir8Stationary Dir8 = iota
	Dir8North
	Dir8NorthEast
	Dir8East
	Dir8SouthEast
	Dir8South
	Dir8SouthWest
	Dir8West
	Dir8NorthWest
)

// Dir8X and Dir8Y hold the per-axis step for each Dir8.
var (
	Dir8X = [9]int{0, 0, 1, 1, 1, 0, -1, -1, -1}
	Dir8Y = [9]int{0, -1, -1, 0, 1, 1, 1, 0, -1}
)

// Dir4 is a cardinal direction used by movement probes.
type Dir4 int

const (
	Dir4None Dir4 = iota
	Dir4North
	Dir4South
	Dir4West
	Dir4East
)

func (d Dir4) String() string {
	switch d {
	case Dir4North:
		return "north"
	case Dir4South:
		return "south"
	case Dir4West:
		return "west"
	case Dir4East:
		return "east"
	default:
		return "none"
	}
}

// Dir2 is a two-way facing. West/South share 0 and East/North share 1 so a
// facing can be flipped with Flip.
type Dir2 int

const (
	Dir2West  Dir2 = 0
	Dir2East  Dir2 = 1
	Dir2South Dir2 = 0
	Dir2North Dir2 = 1
)

// Flip returns the opposite facing.
func (d Dir2) Flip() Dir2 {
	if d == 0 {
		return 1
	}
	return 0
}

// Move is the outcome of a movement probe.
type Move int

const (
	MoveFree Move = iota
	MoveBlocked
	MoveSloped
)

func (m Move) String() string {
	switch m {
	case MoveFree:
		return "free"
	case MoveBlocked:
		return "blocked"
	case MoveSloped:
		return "sloped"
	default:
		return "unknown"
	}
}

// DrawMode selects how a sprite is composited.
type DrawMode int

const (
	DrawNormal DrawMode = iota
	DrawHidden
	DrawWhite
	DrawTranslucent
	DrawFlipped
	DrawInFront
	DrawAbsolute
)

func (m DrawMode) String() string {
	switch m {
	case DrawNormal:
		return "normal"
	case DrawHidden:
		return "hidden"
	case DrawWhite:
		return "white"
	case DrawTranslucent:
		return "translucent"
	case DrawFlipped:
		return "flipped"
	case DrawInFront:
		return "in-front"
	case DrawAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// toggle flips a 0/1 animation counter.
func toggle(v int) int {
	if v == 0 {
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
