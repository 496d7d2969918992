package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Bomb       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Save       key.Binding
	Restore    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Bomb, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Bomb, k.Pause, k.Restart},
		{k.Save, k.Restore, k.Screenshot},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "walk west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "walk east"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "look up, use doors"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "look down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "ctrl+@", "z"),
			key.WithHelp("space/z", "jump"),
		),
		Bomb: key.NewBinding(
			key.WithKeys("x", "alt+x"),
			key.WithHelp("x", "drop bomb"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Save: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "save game"),
		),
		Restore: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "restore game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Bomb):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// heldActions stay down for several frames after each key report. The rest
// last one frame.
var heldActions = map[core.Action]bool{
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionJump:  true,
}

// opposite is released when its partner is pressed.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// KeyHold turns key reports into held actions. Terminals send a press and
// its auto-repeats but never a release, so a movement key counts as held
// until holdFrames frames pass without a report.
type KeyHold struct {
	holdFrames int
	left       map[core.Action]int
}

// NewKeyHold creates a key hold tracker. holdFrames below 1 is treated as 1.
func NewKeyHold(holdFrames int) *KeyHold {
	return &KeyHold{
		holdFrames: max(holdFrames, 1),
		left:       make(map[core.Action]int),
	}
}

// Press records a key report for an action.
func (h *KeyHold) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(h.left, o)
	}
	if heldActions[a] {
		h.left[a] = h.holdFrames
		return
	}
	h.left[a] = 1
}

// Frame returns the actions held this frame and ages every hold by one
// frame.
func (h *KeyHold) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.left {
		in.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	return in
}

// Clear releases every action.
func (h *KeyHold) Clear() {
	clear(h.left)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
