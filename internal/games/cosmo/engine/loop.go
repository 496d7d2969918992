package engine

// StepResult tells the platform what happened during a frame.
type StepResult int

const (
	// StepContinue is an ordinary frame.
	StepContinue StepResult = iota
	// StepRestarted means a death rolled the level back; nothing past the
	// map was drawn.
	StepRestarted
	// StepLevelChanged means the level was won and the next one started.
	StepLevelChanged
	// StepGameWon means the episode is over.
	StepGameWon
	// StepQuit means the demo tape ran out or filled up.
	StepQuit
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "continue"
	case StepRestarted:
		return "restarted"
	case StepLevelChanged:
		return "level-changed"
	case StepGameWon:
		return "game-won"
	case StepQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// readInput latches the frame's commands from the player, or from the demo
// tape during playback. Held movement is ignored while movement commands
// are blocked, and look/bomb while action commands are.
func (w *World) readInput(in Input) bool {
	if w.Demo.Mode == DemoPlay {
		return w.readDemoFrame()
	}

	p := &w.Player
	w.Cmd = Input{
		West:  in.West && !p.BlockMovementCmds,
		East:  in.East && !p.BlockMovementCmds,
		Jump:  in.Jump && !p.BlockMovementCmds,
		North: in.North,
		South: in.South,
		Bomb:  in.Bomb,
	}
	if p.BlockActionCmds {
		w.Cmd.North = false
		w.Cmd.South = false
		w.Cmd.Bomb = false
	}

	if w.Demo.Mode == DemoRecord && w.writeDemoFrame(in.Win) {
		return true
	}
	return false
}

// DrawRandomEffects sprinkles sparkles on a random slippery tile in view
// and drops rain from the top row on rainy levels.
func (w *World) DrawRandomEffects() {
	x := w.random(ScrollW) + w.ScrollX
	y := w.random(ScrollH) + w.ScrollY

	if w.random(2) != 0 && w.Map.slippery(x, y) {
		w.NewDecoration(SprSparkleSlippery, 5, x, y, Dir8Stationary, 1)
	}

	if w.HasRain {
		y = w.ScrollY + 1
		if w.Map.Tile(x, y) == TileEmpty {
			w.NewDecoration(SprRaindrop, 1, x, y, Dir8SouthWest, 20)
		}
	}
}

// Step runs one frame with the given commands. The passes run in a fixed
// order: palette, input, player, movers, map, player draw, then every
// pool, and finally the level and game completion checks.
func (w *World) Step(in Input) StepResult {
	w.TickCount++

	w.AnimatePalette()

	if w.readInput(in) {
		return StepQuit
	}

	p := &w.Player

	w.MovePlayer()
	if p.Scooter != 0 {
		w.MovePlayerScooter()
	}
	if p.QueueDizzy || p.DizzyLeft != 0 {
		w.ProcessPlayerDizzy()
	}

	w.MovePlatforms()
	w.MoveFountains()
	w.renderer.DrawMapRegion(w.Map, w.ScrollX, w.ScrollY)

	if w.DrawPlayerHelper() {
		if w.WinGame {
			return StepGameWon
		}
		return StepRestarted
	}

	w.DrawFountains()
	w.MoveAndDrawActors()
	w.MoveAndDrawShards()
	w.MoveAndDrawSpawners()
	w.DrawRandomEffects()
	w.DrawExplosions()
	w.MoveAndDrawDecorations()
	w.DrawLights()

	if w.Demo.Mode != DemoNone {
		w.drawSprite(SprDemoOverlay, 0, 18, 4, DrawAbsolute)
	}

	if w.Hints.Pounce == PounceHintQueued {
		w.Hints.Pounce = PounceHintSeen
		w.notify(EventPounceHint, 0)
	}

	switch {
	case w.WinLevel:
		w.WinLevel = false
		w.startSound(SndWinLevel)
		w.NextLevel()
		if w.WinGame {
			return StepGameWon
		}
		if err := w.SwitchLevel(w.Num); err != nil {
			w.logger.Info("no next level, episode over", "level", w.Num, "err", err)
			if w.Demo.Mode != DemoNone {
				return StepQuit
			}
			w.WinGame = true
			return StepGameWon
		}
		return StepLevelChanged

	case w.WinGame:
		return StepGameWon
	}

	return StepContinue
}
