package engine

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLevelNotFound is returned by a LevelSource for levels it does not
// have.
var ErrLevelNotFound = errors.New("level not found")

// Map actor codes below FirstActorCode place level features instead of
// actors. Codes from FirstActorCode up are actor kinds offset by that value.
const (
	MapPlayerStart    = 0
	MapPlatform       = 1
	MapFountainSmall  = 2
	MapFountainMedium = 3
	MapFountainLarge  = 4
	MapFountainHuge   = 5
	MapLightWest      = 6
	MapLightMiddle    = 7
	MapLightEast      = 8

	FirstActorCode = 31
)

// Level flag fields.
const (
	LevelBackdropMask    = 0x001f
	LevelRain            = 0x0020
	LevelHScrollBackdrop = 0x0040
	LevelVScrollBackdrop = 0x0080
)

// MapActor is one placement from a level file.
type MapActor struct {
	Code int
	X, Y int
}

// Level is a decoded level ready to be installed into a World.
type Level struct {
	Num    int
	Flags  uint16
	Map    *TileMap
	Actors []MapActor
}

// LevelSource supplies levels by number. Every call returns a level the
// caller may modify.
type LevelSource interface {
	Level(num int) (*Level, error)
}

// applyFlags decodes the level header into the level state.
func (w *World) applyFlags(flags uint16) {
	w.Flags = flags
	w.HasRain = flags&LevelRain != 0
	w.Backdrop = int(flags & LevelBackdropMask)
	w.HScrollBackdrop = flags&LevelHScrollBackdrop != 0
	w.VScrollBackdrop = flags&LevelVScrollBackdrop != 0
	w.PaletteAnim = PaletteAnim((flags >> 8) & 0x07)
	w.Music = int((flags >> 11) & 0x1f)
}

// InitializeGame resets everything that carries across levels to the
// start of a new game.
func (w *World) InitializeGame() {
	w.Score = 0
	w.Stars = 0
	w.Num = 0
	w.Player.Health = w.start.Health
	w.Player.MaxHealth = w.start.MaxHealth
	w.Player.Bombs = w.start.Bombs
	w.Hints.UsedCheat = false
	w.Hints.SawBombHint = false
	w.Hints.SawHealthHint = false
	if w.Demo.Tape != nil {
		w.Demo.pos = 0
	}
}

// InitializePlayer resets the player and the per-level state for a level
// start. Health, bombs and the persistent hints are kept.
func (w *World) InitializePlayer() {
	old := w.Player
	w.Player = Player{
		X:            old.X,
		Y:            old.Y,
		Health:       old.Health,
		MaxHealth:    old.MaxHealth,
		Bombs:        old.Bombs,
		ClingDir:     Dir4None,
		Falling:      true,
		JumpLatch:    true,
		FallTime:     1,
		FaceDir:      Dir4East,
		Frame:        PlayerWalk1,
		BaseFrame:    PlayerBaseEast,
		HurtCooldown: 40,
	}

	w.WinGame = false
	w.WinLevel = false
	w.TransporterTimeLeft = 0
	w.ActiveTransporter = 0
	w.ForceFieldsActive = true
	w.PlatformsActive = true
	w.paletteStep = 0
	w.randStep = 0
	w.NumBarrels = 0
	w.NumEyePlants = 0

	w.Hints = Hints{
		UsedCheat:     w.Hints.UsedCheat,
		SawBombHint:   w.Hints.SawBombHint,
		SawHealthHint: w.Hints.SawHealthHint,
		Pounce:        w.Hints.Pounce,
	}
}

// newMapActor installs one placement. Regular actors take slot numActors.
func (w *World) newMapActor(code, x, y int) {
	switch code {
	case MapPlayerStart:
		switch {
		case x > w.Map.Width-15:
			w.ScrollX = w.Map.Width - ScrollW
		case x-15 >= 0 && w.Map.YPower > 5:
			w.ScrollX = x - 15
		default:
			w.ScrollX = 0
		}
		w.ScrollY = max(y-10, 0)
		w.Player.X = x
		w.Player.Y = y

	case MapPlatform:
		w.AddPlatform(x, y)

	case MapFountainSmall, MapFountainMedium, MapFountainLarge, MapFountainHuge:
		w.AddFountain(x, y, code)

	case MapLightWest, MapLightMiddle, MapLightEast:
		w.AddLight(LightSide(code-MapLightWest), x, y)
	}

	if code >= FirstActorCode && w.NewActorAtIndex(w.numActors, ActorKind(code-FirstActorCode), x, y) {
		w.numActors++
	}
}

// LoadLevel installs a level's map, movers and actors. It does not touch
// the player's persistent state or the ephemeral pools.
func (w *World) LoadLevel(lv *Level) {
	w.Map = lv.Map
	w.Num = lv.Num

	w.numActors = 0
	w.platforms = w.platforms[:0]
	w.fountains = w.fountains[:0]
	w.lights = w.lights[:0]
	w.LightsActive = true
	w.HasLightSwitch = false

	for _, ma := range lv.Actors {
		w.newMapActor(ma.Code, ma.X, ma.Y)
		if w.numActors > MaxActors-1 {
			break
		}
	}

	w.stashPlatforms()

	w.logger.Debug("level loaded",
		"level", lv.Num,
		"width", lv.Map.Width,
		"actors", w.numActors,
		"platforms", len(w.platforms),
		"fountains", len(w.fountains),
		"lights", len(w.lights))
}

// introLevels get a title card outside of demos.
var introLevels = []int{0, 1, 4, 5, 8, 9, 12, 13, 16, 17}

// SwitchLevel fetches a level from the level source and starts it: player
// reset, map load, pool reset and the automatic save.
func (w *World) SwitchLevel(num int) error {
	if w.levels == nil {
		return fmt.Errorf("engine: switch to level %d: no level source", num)
	}
	lv, err := w.levels.Level(num)
	if err != nil {
		return fmt.Errorf("engine: switch to level %d: %w", num, err)
	}

	w.applyFlags(lv.Flags)
	w.InitializePlayer()
	w.LoadLevel(lv)

	if w.Demo.Mode == DemoNone && slices.Contains(introLevels, num) {
		w.notify(EventLevelIntro, num)
	}

	w.clearShards()
	w.clearExplosions()
	w.clearDecorations()
	w.ClearPlayerPush()
	w.clearSpawners()

	if err := w.SaveGameState(TempSlot); err != nil {
		w.logger.Warn("automatic save failed", "level", num, "err", err)
	}
	w.audio.StartMusic(w.Music)

	if w.PaletteAnim == PaletteExplosions {
		w.PaletteKey = ColorBlack
	}
	return nil
}

// restartLevel rolls back to the level-start save after a death.
func (w *World) restartLevel() {
	if err := w.LoadGameState(TempSlot); err != nil {
		w.logger.Error("restore level start", "err", err)
	}
	if err := w.SwitchLevel(w.Num); err != nil {
		w.logger.Error("restart level", "level", w.Num, "err", err)
		w.WinGame = true
	}
}

// cashStars converts the star count into score at a section end.
func (w *World) cashStars() {
	if w.Stars == 0 {
		return
	}
	w.notify(EventStarBonus, int(w.Stars))
	w.Score += w.Stars * 1000
	w.Stars = 0
}

// NextLevel picks the level that follows the current one. Demos cycle
// through DemoLevels. A configured level order replaces the episode's
// sections; otherwise every section is two regular levels followed by up
// to two bonus levels that unlock by star count.
func (w *World) NextLevel() {
	if w.Demo.Mode != DemoNone {
		if i := slices.Index(DemoLevels[:], w.Num); i >= 0 && i < len(DemoLevels)-1 {
			w.Num = DemoLevels[i+1]
		}
		return
	}

	if len(w.levelOrder) > 0 {
		i := slices.Index(w.levelOrder, w.Num)
		if i < 0 || i == len(w.levelOrder)-1 {
			w.WinGame = true
			return
		}
		w.cashStars()
		w.Num = w.levelOrder[i+1]
		return
	}

	stars := int(w.Stars)
	switch w.Num % 4 {
	case 2:
		w.Num++
		fallthrough
	case 3:
		w.notify(EventBonusComplete, w.Num)
		w.cashStars()
		w.Num++
	case 0:
		w.Num++
	case 1:
		w.notify(EventSectionComplete, w.Num)
		w.cashStars()
		if stars >= w.bonusStars[0] {
			w.notify(EventBonusStage, stars)
			w.startSound(SndBonusStage)
			if stars >= w.bonusStars[1] {
				w.Num++
			}
			w.Num++
		} else {
			w.Num += 3
		}
	}
}
