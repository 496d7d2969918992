package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
	"github.com/vovakirdan/cosmo-arcade/internal/registry"
	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

// SlotGame is implemented by games that keep numbered save slots.
type SlotGame interface {
	SaveGame(slot byte) error
	LoadGame(slot byte) error
}

// Options configures a game model.
type Options struct {
	// Store receives the score of every finished game. May be nil.
	Store *storage.Store
	// HoldFrames is how long a movement key stays down after a report.
	HoldFrames int
	Logger     *log.Logger
	// Prepared means the caller has already reset the game, for instance
	// to start a demo, and Init must not reset it again.
	Prepared bool
	// ScreenshotDir defaults to ~/.cosmo/screenshots.
	ScreenshotDir string
}

type slotPrompt int

const (
	promptNone slotPrompt = iota
	promptSave
	promptRestore
)

// noticeTicks is how long a save or restore result stays on screen.
const noticeTicks = 30

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	hold       *KeyHold
	gameState  core.GameState
	prompt     slotPrompt
	notice     string
	noticeLeft int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		config: cfg,
		keys:   DefaultKeyMap(),
		hold:   NewKeyHold(opts.HoldFrames),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if !m.opts.Prepared {
		m.game.Reset(m.config)
	}
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game keeps running; only the view is resized.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Save), key.Matches(msg, m.keys.Restore):
		if _, ok := m.game.(SlotGame); !ok {
			return m, nil
		}
		m.prompt = promptSave
		if key.Matches(msg, m.keys.Restore) {
			m.prompt = promptRestore
		}
		m.hold.Clear()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		// Esc also pauses, like the P key.
		m.hold.Press(core.ActionPause)
		return m, nil
	}

	m.hold.Press(m.keys.Action(msg))
	return m, nil
}

// handlePromptKey reads the slot digit after a save or restore key.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.prompt = promptNone
		return m, nil
	}

	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return m, nil
	}
	slot := s[0]
	sg := m.game.(SlotGame)

	var err error
	if m.prompt == promptSave {
		err = sg.SaveGame(slot)
	} else {
		err = sg.LoadGame(slot)
		m.gameState = m.game.State()
		m.scoreSaved = false
	}
	m.prompt = promptNone

	if err != nil {
		m.opts.Logger.Warn("save slot", "slot", string(slot), "error", err)
		m.setNotice(fmt.Sprintf("Slot %c: %v", slot, err))
	}
	return m, nil
}

func (m *Model) setNotice(text string) {
	m.notice, m.noticeLeft = text, noticeTicks
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.noticeLeft > 0 {
		m.noticeLeft--
	}
	// The game waits while a slot is being chosen.
	if m.prompt != promptNone {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.hold.Frame()

	// Check for restart
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.hold.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	for _, text := range result.Messages {
		m.opts.Logger.Debug("game message", "text", text)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.opts.Store != nil {
			if _, err := m.opts.Store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Level+1); err != nil {
				m.opts.Logger.Warn("could not save score", "error", err)
			}
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".cosmo", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.setNotice("Screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.renderStatus()
	return RenderScreen(m.screen)
}

// renderStatus draws the slot prompt or the last notice on the bottom row.
func (m Model) renderStatus() {
	y := m.screen.Height() - 1
	switch {
	case m.prompt == promptSave:
		m.screen.DrawTextColor(1, y, "Save to which slot (1-9)? Esc cancels", core.ColorBrightYellow)
	case m.prompt == promptRestore:
		m.screen.DrawTextColor(1, y, "Restore which slot (1-9)? Esc cancels", core.ColorBrightYellow)
	case m.noticeLeft > 0:
		m.screen.DrawTextColor(1, y, m.notice, core.ColorBrightYellow)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a game and returns the final model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
