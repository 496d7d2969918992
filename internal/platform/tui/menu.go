package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmo-arcade/internal/config"
	"github.com/vovakirdan/cosmo-arcade/internal/core"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDemo
	ChoiceScores
	ChoiceQuit
)

// LevelEntry names a level the game can start on.
type LevelEntry struct {
	Num  int
	Name string
}

type menuRow int

const (
	rowPlay menuRow = iota
	rowDifficulty
	rowLevel
	rowDemo
	rowScores
	rowQuit
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	rows         []menuRow
	levels       []LevelEntry
	cursor       int
	presetCursor int
	levelCursor  int
	width        int
	height       int
	config       core.RuntimeConfig
	choice       MenuChoice
	quitting     bool
}

// MenuConfig configures the title screen.
type MenuConfig struct {
	Levels     []LevelEntry
	Difficulty config.DifficultyPreset
	// HasDemo adds the demo entry.
	HasDemo bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(mc MenuConfig, cfg core.RuntimeConfig) MenuModel {
	rows := []menuRow{rowPlay, rowDifficulty}
	if len(mc.Levels) > 1 {
		rows = append(rows, rowLevel)
	}
	if mc.HasDemo {
		rows = append(rows, rowDemo)
	}
	rows = append(rows, rowScores, rowQuit)

	m := MenuModel{
		rows:   rows,
		levels: mc.Levels,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	for i, p := range presets {
		if p == mc.Difficulty {
			m.presetCursor = i
		}
	}
	if mc.Difficulty == "" {
		m.presetCursor = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		switch m.rows[m.cursor] {
		case rowPlay:
			m.choice = ChoicePlay
		case rowDemo:
			m.choice = ChoiceDemo
		case rowScores:
			m.choice = ChoiceScores
		case rowQuit:
			m.quitting = true
		default:
			m.cycle(1)
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// cycle changes the value of the selected row.
func (m *MenuModel) cycle(delta int) {
	switch m.rows[m.cursor] {
	case rowDifficulty:
		m.presetCursor = (m.presetCursor + delta + len(presets)) % len(presets)
	case rowLevel:
		if n := len(m.levels); n > 0 {
			m.levelCursor = (m.levelCursor + delta + n) % n
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("C O S M O ' S   C O S M I C   A D V E N T U R E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuSubtitle.Render("Forbidden Planet"), m.width))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+m.rowLabel(row)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(theme.MenuDescription.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowLabel(row menuRow) string {
	switch row {
	case rowPlay:
		return "Start a new game"
	case rowDifficulty:
		return "Difficulty: " + theme.MenuValue.Render(fmt.Sprintf("< %s >", m.Difficulty()))
	case rowLevel:
		lv := m.levels[m.levelCursor]
		label := fmt.Sprintf("< %d >", lv.Num+1)
		if lv.Name != "" {
			label = fmt.Sprintf("< %d: %s >", lv.Num+1, lv.Name)
		}
		return "Start level: " + theme.MenuValue.Render(label)
	case rowDemo:
		return "Watch the demo"
	case rowScores:
		return "High scores and saves"
	case rowQuit:
		return "Quit"
	}
	return ""
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return presets[m.presetCursor]
}

// StartLevel returns the selected starting level number.
func (m MenuModel) StartLevel() int {
	if len(m.levels) == 0 {
		return 0
	}
	return m.levels[m.levelCursor].Num
}

// Choice returns what the player picked, ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	if m.quitting {
		return ChoiceQuit
	}
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	StartLevel int
	Config     core.RuntimeConfig
}

// RunMenu runs the title screen and returns the selection.
func RunMenu(mc MenuConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(mc, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		StartLevel: m.StartLevel(),
		Config:     m.Config(),
	}
	if result.Choice == ChoiceNone {
		result.Choice = ChoiceQuit
	}
	return result, nil
}
