package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cosmo-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxScores          = 100 // Max scores to load
)

type scoreTab int

const (
	tabScores scoreTab = iota
	tabSaves
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "scores/saves"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "previous tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score and save slot
// screen.
type ScoreboardModel struct {
	gameID      string
	title       string
	store       *storage.Store     // Score storage, may be nil
	saves       storage.SlotLister // Save slots, may be nil
	tab         scoreTab
	scores      []storage.ScoreEntry
	slots       []storage.SlotInfo
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model for one game.
func NewScoreboardModel(gameID, title string, store *storage.Store, saves storage.SlotLister, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		title:       title,
		store:       store,
		saves:       saves,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

// load reads scores, stats and slots and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.loadErr = nil
	m.scores, m.slots, m.stats = nil, nil, nil

	if m.store != nil {
		if scores, err := m.store.TopScores(m.gameID, maxScores); err != nil {
			m.loadErr = err
		} else {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	if m.saves != nil {
		if slots, err := m.saves.Slots(); err != nil {
			m.loadErr = err
		} else {
			m.slots = slots
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) rebuildTable() {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	var t table.Model
	if m.tab == tabSaves {
		t = SlotTable(m.slots, tableWidth, m.height-9)
	} else {
		t = ScoreTable(m.scores, tableWidth, m.height-9)
	}
	t.Focus()
	m.table = t
}

// ScoreTable builds a table of score entries ranked in the given order.
func ScoreTable(scores []storage.ScoreEntry, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 18},
	}
	if width > 48 {
		columns[3].Width = min(width-28, 20)
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return newStyledTable(columns, rows, height)
}

// SlotTable builds a table of occupied save slots.
func SlotTable(slots []storage.SlotInfo, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 5},
		{Title: "Level", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Health", Width: 7},
		{Title: "Bombs", Width: 6},
		{Title: "Stars", Width: 6},
		{Title: "Saved", Width: 14},
	}
	if width > 0 && width < 62 {
		columns = columns[:6]
	}

	rows := make([]table.Row, len(slots))
	for i, s := range slots {
		slot := string(s.Slot)
		if s.Slot == 'T' {
			slot = "auto"
		}
		saved := "-"
		if !s.UpdatedAt.IsZero() {
			saved = s.UpdatedAt.Local().Format("Jan 02 15:04")
		}
		row := table.Row{
			slot,
			fmt.Sprintf("%d", s.Block.LevelNum+1),
			fmt.Sprintf("%d", s.Block.Score),
			fmt.Sprintf("%d/%d", max(s.Block.Health-1, 0), s.Block.MaxHealth),
			fmt.Sprintf("%d", s.Block.Bombs),
			fmt.Sprintf("%d", s.Block.Stars),
			saved,
		}
		rows[i] = row[:len(columns)]
	}
	return newStyledTable(columns, rows, height)
}

func newStyledTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			m.tab = 1 - m.tab
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES - " + m.title
	if m.tab == tabSaves {
		title = "SAVED GAMES - " + m.title
	}
	b.WriteString(centerText(theme.TableTitle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	content := theme.PanelBorder.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(theme.HelpText.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	names := []string{"Scores", "Saves"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if scoreTab(i) == m.tab {
			tabs[i] = theme.TabActive.Render(name)
		} else {
			tabs[i] = theme.TabInactive.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar shows aggregate statistics next to the table.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Statistics\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		sb.WriteString("No games played")
	} else {
		fmt.Fprintf(&sb, "Games:   %d\n", m.stats.GamesCount)
		fmt.Fprintf(&sb, "Best:    %d\n", m.stats.HighScore)
		fmt.Fprintf(&sb, "Average: %.0f\n", m.stats.AvgScore)
		fmt.Fprintf(&sb, "Level:   %d\n", m.stats.BestLevel)
		if !m.stats.LastPlayed.IsZero() {
			fmt.Fprintf(&sb, "Last:    %s", m.stats.LastPlayed.Format("Jan 02"))
		}
	}

	return theme.PanelBorder.Width(sidebarWidth).Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return theme.EmptyText.Render("Could not read records:\n" + m.loadErr.Error())
	}
	if m.tab == tabSaves && len(m.slots) == 0 {
		return theme.EmptyText.Render("No saved games.\nPress F2 while playing to save.")
	}
	if m.tab == tabScores && len(m.scores) == 0 {
		return theme.EmptyText.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(gameID, title string, store *storage.Store, saves storage.SlotLister, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(gameID, title, store, saves, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
