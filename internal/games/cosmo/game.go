// Package cosmo adapts the cosmo engine to the arcade platform: it owns a
// World, maps platform actions onto the six engine commands and renders the
// recorded frame as text.
package cosmo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels"
	"github.com/vovakirdan/cosmo-arcade/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "cosmo"

// Options configures a game.
type Options struct {
	// Levels defaults to the embedded level set.
	Levels engine.LevelSource
	// Saves defaults to an in-memory store.
	Saves      engine.SaveStore
	Logger     *log.Logger
	Episode    int
	Start      engine.GameStart
	StartLevel int
	LevelOrder []int
	BonusStars [2]int
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(Options{})
	})
}

// messageTicks is how long a notice stays on the status line.
const messageTicks = 40

// Game implements registry.Game for Cosmo's Cosmic Adventure.
type Game struct {
	opts   Options
	world  *engine.World
	frame  *frame
	sounds *soundLog

	err     error
	over    bool
	won     bool
	paused  bool
	message string
	msgLeft int
}

// New creates a game with the given options. Reset must be called before
// the first Step.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{opts: opts, frame: newFrame()}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Cosmo's Cosmic Adventure" }

// Reset starts a new game at the configured level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.err = nil
	g.over, g.won, g.paused = false, false, false
	g.message, g.msgLeft = "", 0
	g.frame = newFrame()
	g.sounds = &soundLog{logger: g.opts.Logger}

	src := g.opts.Levels
	if src == nil {
		set, err := levels.Embedded()
		if err != nil {
			g.fail(err)
			return
		}
		src = set
	}

	g.world = engine.NewWorld(engine.Options{
		Levels:     src,
		Renderer:   g.frame,
		Audio:      g.sounds,
		Saves:      g.opts.Saves,
		Logger:     g.opts.Logger,
		Seed:       cfg.Seed,
		Episode:    g.opts.Episode,
		Start:      g.opts.Start,
		LevelOrder: g.opts.LevelOrder,
		BonusStars: g.opts.BonusStars,
	})
	if err := g.world.SwitchLevel(g.opts.StartLevel); err != nil {
		g.fail(err)
		return
	}
	g.drainNotices()
}

func (g *Game) fail(err error) {
	g.err = err
	g.over = true
	g.opts.Logger.Error("cosmo: game stopped", "err", err)
}

// Step advances the world by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.over {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.msgLeft > 0 {
		g.msgLeft--
	}

	g.frame.reset()
	switch g.world.Step(engineInput(in)) {
	case engine.StepGameWon:
		g.over, g.won = true, true
	case engine.StepQuit:
		g.over = true
	}

	return core.StepResult{State: g.State(), Messages: g.drainNotices()}
}

// engineInput maps platform actions onto the engine commands.
func engineInput(in core.InputFrame) engine.Input {
	return engine.Input{
		West:  in.Has(core.ActionLeft),
		East:  in.Has(core.ActionRight),
		North: in.Has(core.ActionUp),
		South: in.Has(core.ActionDown),
		Jump:  in.Has(core.ActionJump),
		Bomb:  in.Has(core.ActionFire),
	}
}

// drainNotices turns the world's queued notices into status messages.
func (g *Game) drainNotices() []string {
	var msgs []string
	for _, n := range g.world.Notices() {
		text := g.noticeText(n)
		if text == "" {
			continue
		}
		msgs = append(msgs, text)
		g.message, g.msgLeft = text, messageTicks
	}
	return msgs
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{GameOver: g.over, Won: g.won, Paused: g.paused}
	if g.world != nil {
		st.Score = int(g.world.Score)
		st.Level = g.world.Num
	}
	return st
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error { return g.err }

// World exposes the simulation for the CLI and tests.
func (g *Game) World() *engine.World { return g.world }

// SaveGame writes the player's progress to a save slot ('1'..'9').
func (g *Game) SaveGame(slot byte) error {
	if g.world == nil {
		return fmt.Errorf("cosmo: save: no game running")
	}
	if slot == engine.TempSlot {
		return fmt.Errorf("cosmo: save slot %q: %w", slot, engine.ErrBadSlot)
	}
	if err := g.world.SaveGameState(slot); err != nil {
		return err
	}
	g.message, g.msgLeft = fmt.Sprintf("Game saved in slot %c", slot), messageTicks
	return nil
}

// LoadGame restores a save slot and restarts its level.
func (g *Game) LoadGame(slot byte) error {
	if g.world == nil {
		return fmt.Errorf("cosmo: load: no game running")
	}
	if err := g.world.LoadGameState(slot); err != nil {
		return err
	}
	g.over, g.won, g.paused = false, false, false
	if err := g.world.SwitchLevel(g.world.Num); err != nil {
		g.fail(err)
		return err
	}
	g.drainNotices()
	g.message, g.msgLeft = fmt.Sprintf("Game restored from slot %c", slot), messageTicks
	return nil
}

// PlayDemo restarts the game driven by a recorded tape.
func (g *Game) PlayDemo(tape *engine.DemoTape) error {
	return g.startDemo(func() error { return g.world.StartDemoPlayback(tape) })
}

// RecordDemo restarts the game and records every frame of input.
func (g *Game) RecordDemo() error {
	return g.startDemo(g.world.StartDemoRecording)
}

func (g *Game) startDemo(start func() error) error {
	if g.world == nil {
		return fmt.Errorf("cosmo: demo: no game running")
	}
	g.over, g.won, g.paused = false, false, false
	if err := start(); err != nil {
		g.fail(err)
		return err
	}
	g.drainNotices()
	return nil
}

// DemoTape returns the tape being recorded or played, nil outside a demo.
func (g *Game) DemoTape() *engine.DemoTape {
	if g.world == nil {
		return nil
	}
	return g.world.Demo.Tape
}

// Render draws the last frame, the status line and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v, ok := viewFor(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if g.world != nil {
		g.frame.paint(dst, v, g.world.Sprites)
		g.renderHUD(dst, v)
	}

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Cannot continue", g.err.Error())
	case g.won:
		g.renderOverlay(dst, "You win!", fmt.Sprintf("Final score: %d", g.world.Score))
	case g.over:
		g.renderOverlay(dst, "Game over", "Press R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, v view) {
	p := &g.world.Player
	y := v.oy + engine.ScrollH + 1
	x := v.ox

	dst.DrawText(x, y, fmt.Sprintf("Score %07d", g.world.Score))
	x += 15

	dst.DrawText(x, y, "Health ")
	x += 7
	for i := range p.MaxHealth {
		if i < p.Health-1 {
			dst.SetColor(x, y, '♥', core.ColorBrightRed)
		} else {
			dst.SetColor(x, y, '·', core.ColorGray)
		}
		x++
	}
	x += 2

	dst.DrawText(x, y, fmt.Sprintf("Bombs %d  Stars %d  Level %d", p.Bombs, g.world.Stars, g.world.Num+1))

	if g.world.Demo.Mode != engine.DemoNone {
		dst.DrawTextColor(v.ox, y+1, "DEMO "+g.world.Demo.Mode.String(), core.ColorBrightYellow)
	} else if g.msgLeft > 0 {
		dst.DrawTextColor(v.ox, y+1, g.message, core.ColorBrightCyan)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// soundLog is the game's audio sink. The terminal has no sound, so
// requests are only remembered and logged.
type soundLog struct {
	logger *log.Logger
	last   engine.Sound
	music  int
}

func (s *soundLog) StartSound(snd engine.Sound) {
	s.last = snd
	s.logger.Debug("sound", "id", snd)
}

func (s *soundLog) StartMusic(track int) {
	s.music = track
	s.logger.Debug("music", "track", track)
}
