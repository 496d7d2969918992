package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Renderer receives every draw call the simulation makes during a frame.
// Coordinates are map tiles except in DrawAbsolute mode.
type Renderer interface {
	// DrawMapRegion draws the visible part of the tile map, starting at
	// the scroll origin.
	DrawMapRegion(m *TileMap, scrollX, scrollY int)
	DrawSprite(s Sprite, frame, x, y int, mode DrawMode)
	DrawPlayer(frame, x, y int, mode DrawMode)
	DrawLight(side LightSide, x, y int)
}

// Audio receives sound and music requests. Both are fire-and-forget.
type Audio interface {
	StartSound(s Sound)
	StartMusic(track int)
}

type nopRenderer struct{}

func (nopRenderer) DrawMapRegion(*TileMap, int, int)           {}
func (nopRenderer) DrawSprite(Sprite, int, int, int, DrawMode) {}
func (nopRenderer) DrawPlayer(int, int, int, DrawMode)         {}
func (nopRenderer) DrawLight(LightSide, int, int)              {}

type nopAudio struct{}

func (nopAudio) StartSound(Sound) {}
func (nopAudio) StartMusic(int)   {}

// Input is the per-frame command snapshot. Win skips the current level;
// it is only honored while recording a demo.
type Input struct {
	West, East, North, South bool
	Jump, Bomb               bool
	Win                      bool
}

// LevelState holds the per-level world switches and counters.
type LevelState struct {
	Num             int
	Flags           uint16
	Backdrop        int
	Music           int
	HasRain         bool
	HScrollBackdrop bool
	VScrollBackdrop bool
	PaletteAnim     PaletteAnim
	HasLightSwitch  bool

	ForceFieldsActive bool
	LightsActive      bool
	PlatformsActive   bool

	NumBarrels      int
	NumEyePlants    int
	MysteryWallTime int

	ActiveTransporter   int
	TransporterTimeLeft int

	WinLevel bool
	WinGame  bool
}

// GameStart is the player state a new game begins with.
type GameStart struct {
	Health    int
	MaxHealth int
	Bombs     int
}

// DefaultGameStart is the classic starting state: three bars of health
// plus the hidden extra one.
var DefaultGameStart = GameStart{Health: 4, MaxHealth: 3}

// Options configures a new World.
type Options struct {
	Sprites  *SpriteTable
	Levels   LevelSource
	Renderer Renderer
	Audio    Audio
	Saves    SaveStore
	Logger   *log.Logger
	Seed     int64
	// Episode selects the end-of-episode behavior of a few actors.
	Episode int
	Start   GameStart
	// LevelOrder replaces the episode's section progression when set.
	LevelOrder []int
	// BonusStars are the star counts that unlock the first and second
	// bonus level at the end of a section.
	BonusStars [2]int
}

// World is the whole simulation state. Nothing in the engine is global; every
// pass takes the World it operates on.
type World struct {
	LevelState

	Map     *TileMap
	Sprites *SpriteTable
	Player  Player
	Cmd     Input

	ScrollX, ScrollY int

	Score     uint32
	Stars     uint32
	Hints     Hints
	Episode   int
	Demo      DemoState
	GodMode   bool
	TickCount int

	actors      [MaxActors]Actor
	numActors   int
	shards      [MaxShards]Shard
	explosions  [MaxExplosions]Explosion
	spawners    [MaxSpawners]Spawner
	decorations [MaxDecorations]Decoration
	platforms   []Platform
	fountains   []Fountain
	lights      []Light

	nextDrawMode DrawMode

	rng          *rand.Rand
	randStep     int
	shardIncline int
	paletteStep  int
	lightning    int
	PaletteKey   Color
	fountainFast int
	fountainSlow int
	deathSpeech  int
	beamFrame    int

	levels     LevelSource
	start      GameStart
	levelOrder []int
	bonusStars [2]int

	renderer Renderer
	audio    Audio
	saves    SaveStore
	logger   *log.Logger
	notices  []Notice
}

// NewWorld creates a world holding a fresh game. A level must be installed
// with SwitchLevel or LoadLevel before stepping it.
func NewWorld(opts Options) *World {
	w := &World{
		Sprites:    opts.Sprites,
		levels:     opts.Levels,
		start:      opts.Start,
		levelOrder: opts.LevelOrder,
		bonusStars: opts.BonusStars,
		renderer:   opts.Renderer,
		audio:      opts.Audio,
		saves:      opts.Saves,
		logger:     opts.Logger,
		Episode:    opts.Episode,
	}
	if w.Sprites == nil {
		w.Sprites = DefaultSpriteTable()
	}
	if w.renderer == nil {
		w.renderer = nopRenderer{}
	}
	if w.audio == nil {
		w.audio = nopAudio{}
	}
	if w.saves == nil {
		w.saves = NewMemorySaveStore()
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	if w.Episode == 0 {
		w.Episode = 1
	}
	if w.start == (GameStart{}) {
		w.start = DefaultGameStart
	}
	if w.bonusStars == [2]int{} {
		w.bonusStars = [2]int{25, 50}
	}
	w.rng = rand.New(rand.NewSource(opts.Seed))
	w.platforms = make([]Platform, 0, MaxPlatforms)
	w.fountains = make([]Fountain, 0, MaxFountains)
	w.lights = make([]Light, 0, MaxLights)
	w.InitializeGame()
	return w
}

// SetRenderer swaps the draw target, e.g. when a new frame buffer is used.
func (w *World) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	w.renderer = r
}

// SetAudio swaps the sound sink.
func (w *World) SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	w.audio = a
}

// Levels returns the level source the world switches levels from.
func (w *World) Levels() LevelSource { return w.levels }

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger { return w.logger }

func (w *World) startSound(s Sound) { w.audio.StartSound(s) }

// drawSprite sends a sprite to the renderer unless the mode hides it.
func (w *World) drawSprite(s Sprite, frame, x, y int, mode DrawMode) {
	if mode == DrawHidden {
		return
	}
	w.renderer.DrawSprite(s, frame, x, y, mode)
}

// drawPlayer applies the player visibility rules before drawing.
func (w *World) drawPlayer(frame, x, y int, mode DrawMode) {
	p := &w.Player
	if mode != DrawAbsolute && (p.ForceFrame == PlayerHidden ||
		w.ActiveTransporter != 0 ||
		p.HurtCooldown%2 != 0 ||
		p.BlockActionCmds) {
		return
	}
	w.renderer.DrawPlayer(frame, x, y, mode)
}

// notify queues a notice for the platform to display after the frame.
func (w *World) notify(e Event, value int) {
	w.notices = append(w.notices, Notice{Event: e, Value: value})
}

// Notices drains the notices raised since the last call.
func (w *World) Notices() []Notice {
	n := w.notices
	w.notices = nil
	return n
}

// NumActors reports how many actor slots are in use, dead or alive.
func (w *World) NumActors() int { return w.numActors }

// Actor returns the actor in slot i.
func (w *World) Actor(i int) *Actor { return &w.actors[i] }

func (w *World) mapWidth() int { return w.Map.Width }

func (w *World) mapHeight() int { return w.Map.Height }
